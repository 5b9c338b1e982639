package cvclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store persists the session across process restarts. Implementations
// must treat Clear as idempotent and Load on an empty store as an
// anonymous session, not an error.
type Store interface {
	Load() (Session, error)
	Save(session Session) error
	Clear() error
}

// FileStore persists the session as a JSON file with owner-only
// permissions. It is the durable client-side store: a restart reads the
// session back without contacting the backend.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore at path. Parent directories are
// created on the first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultSessionPath returns the conventional session file location
// under the user's config directory.
func DefaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "cv360", "session.json"), nil
}

func (s *FileStore) Load() (Session, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Session{}, nil
	}
	if err != nil {
		return Session{}, fmt.Errorf("read session: %w", err)
	}

	var session Session
	if err := json.Unmarshal(raw, &session); err != nil {
		// A corrupt session file is unrecoverable, treat it as logged out.
		return Session{}, nil
	}
	// Enforce the no-partial-session invariant on whatever was on disk.
	if session.Anonymous() {
		return Session{}, nil
	}
	return session, nil
}

func (s *FileStore) Save(session Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

// MemoryStore keeps the session in memory only. Useful in tests and for
// callers that explicitly do not want persistence.
type MemoryStore struct {
	session Session
	set     bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (Session, error) {
	if !s.set {
		return Session{}, nil
	}
	return s.session, nil
}

func (s *MemoryStore) Save(session Session) error {
	s.session = session
	s.set = true
	return nil
}

func (s *MemoryStore) Clear() error {
	s.session = Session{}
	s.set = false
	return nil
}
