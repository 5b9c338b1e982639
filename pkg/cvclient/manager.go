package cvclient

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// RegistrationRequest carries the sign-up form. ConfirmPassword is
// checked locally and stripped before transmission; it never reaches the
// backend.
type RegistrationRequest struct {
	Username        string `validate:"required"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
	Role            string `validate:"required,oneof=worker employer admin"`
	FullName        string `validate:"required"`
	Phone           string
	Location        string
}

// registerPayload is the wire shape, confirmation field already stripped.
type registerPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

// Manager is the single source of truth for "who is logged in". It owns
// the in-memory session, mirrors every transition into the Store, and
// invokes the OnChange callback synchronously at the point of change so
// navigation can never lag session state.
type Manager struct {
	client *Client
	store  Store

	mu      sync.RWMutex
	session Session

	onChange            func(Session)
	revalidateOnRestore bool
	invalidateOn401     bool

	validate *validator.Validate
}

// ManagerOption customises a Manager.
type ManagerOption func(*Manager)

// WithOnChange registers a callback fired synchronously on every session
// transition (login, registration, logout, restore, 401 invalidation).
func WithOnChange(fn func(Session)) ManagerOption {
	return func(m *Manager) { m.onChange = fn }
}

// WithRevalidateOnRestore makes Restore confirm the persisted token with
// the backend instead of trusting it optimistically.
func WithRevalidateOnRestore(enabled bool) ManagerOption {
	return func(m *Manager) { m.revalidateOnRestore = enabled }
}

// WithInvalidateOn401 makes a 401 from any resource call clear the
// session. Disabled by default: a rejected resource call then leaves the
// session untouched and surfaces an AuthError to the caller.
func WithInvalidateOn401(enabled bool) ManagerOption {
	return func(m *Manager) { m.invalidateOn401 = enabled }
}

// NewManager wires a Manager to its HTTP client and session store.
func NewManager(client *Client, store Store, opts ...ManagerOption) *Manager {
	m := &Manager{
		client:   client,
		store:    store,
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Current returns the active session (possibly anonymous).
func (m *Manager) Current() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session
}

// Login exchanges credentials for a session. The identifier may be a
// username or an email address. On success the session is persisted and
// OnChange fires with the new state.
func (m *Manager) Login(ctx context.Context, identifier, password string) (Session, error) {
	session, err := m.client.login(ctx, identifier, password)
	if err != nil {
		return Session{}, err
	}
	m.transition(session)
	return session, nil
}

// Register validates the form locally, then creates the account and logs
// it in. Validation failures return *ValidationError before any request
// is issued.
func (m *Manager) Register(ctx context.Context, req RegistrationRequest) (Session, error) {
	if err := m.validate.Struct(req); err != nil {
		return Session{}, &ValidationError{Message: registrationMessage(err)}
	}

	session, err := m.client.register(ctx, registerPayload{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		FullName: req.FullName,
		Phone:    req.Phone,
		Location: req.Location,
	})
	if err != nil {
		return Session{}, err
	}
	m.transition(session)
	return session, nil
}

// Logout clears the in-memory and persisted session unconditionally. It
// is idempotent and needs no network call; OnChange fires only when
// there was a session to clear.
func (m *Manager) Logout() {
	m.mu.Lock()
	wasAuthenticated := !m.session.Anonymous()
	m.session = Session{}
	m.mu.Unlock()

	_ = m.store.Clear()
	if wasAuthenticated && m.onChange != nil {
		m.onChange(Session{})
	}
}

// Restore re-populates the session from the store at process start. By
// default the persisted token is trusted without a round-trip; with
// WithRevalidateOnRestore the token is confirmed against the profile
// endpoint and cleared when rejected.
func (m *Manager) Restore(ctx context.Context) (Session, error) {
	session, err := m.store.Load()
	if err != nil {
		return Session{}, err
	}
	if session.Anonymous() {
		return Session{}, nil
	}

	if m.revalidateOnRestore {
		if _, err := m.client.profile(ctx, session.Token); err != nil {
			var ae *AuthError
			if errors.As(err, &ae) {
				_ = m.store.Clear()
				return Session{}, nil
			}
			// Transport or server trouble: keep the optimistic session.
		}
	}

	m.mu.Lock()
	m.session = session
	m.mu.Unlock()
	if m.onChange != nil {
		m.onChange(session)
	}
	return session, nil
}

// transition installs a new authenticated session: memory, store, then
// callback, in that order.
func (m *Manager) transition(session Session) {
	m.mu.Lock()
	m.session = session
	m.mu.Unlock()

	_ = m.store.Save(session)
	if m.onChange != nil {
		m.onChange(session)
	}
}

// rejected handles a 401 from a resource call according to policy.
func (m *Manager) rejected() {
	if m.invalidateOn401 {
		m.Logout()
	}
}

// registrationMessage flattens validator output into one inline message.
func registrationMessage(err error) string {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		switch {
		case fe.Field() == "ConfirmPassword" && fe.Tag() == "eqfield":
			msgs = append(msgs, "passwords do not match")
		case fe.Field() == "Password" && fe.Tag() == "min":
			msgs = append(msgs, "password must be at least 6 characters")
		default:
			msgs = append(msgs, strings.ToLower(fe.Field())+" is "+fe.Tag())
		}
	}
	return strings.Join(msgs, "; ")
}
