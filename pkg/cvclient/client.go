// Package cvclient is the Go client for the CV360 marketplace API. It
// owns the client side of the session lifecycle: credential exchange,
// durable session storage, role-based route guarding and the post-login
// landing decision, plus typed wrappers for the resource endpoints.
package cvclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// Client performs authenticated JSON requests against the backend. It is
// stateless: the session token is supplied per call by the Manager.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// ClientOption customises a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithClientLogger attaches a logger; the default discards everything.
func WithClientLogger(l zerolog.Logger) ClientOption {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a Client for the given base URL, e.g.
// "https://api.cv360.example".
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// errorEnvelope covers both error body shapes the backend family uses.
type errorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (e errorEnvelope) text() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}

// do issues one JSON request. Failure taxonomy:
//   - transport failure → *NetworkError
//   - non-2xx → *ServerError carrying the backend message when present
//   - 2xx with a body that does not decode into out → *ServerError
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Str("path", path).Msg("transport failure")
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope errorEnvelope
		_ = json.Unmarshal(raw, &envelope)
		return &ServerError{Status: resp.StatusCode, Message: envelope.text()}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &ServerError{Status: resp.StatusCode, Message: "malformed response body"}
	}
	return nil
}

// authPayload is the response shape of the login and register endpoints.
type authPayload struct {
	Token string   `json:"token"`
	User  *Profile `json:"user"`
}

// session validates the payload against the no-partial-session invariant.
func (p authPayload) session(status int) (Session, error) {
	if p.Token == "" || p.User == nil {
		return Session{}, &ServerError{Status: status, Message: "malformed auth response"}
	}
	return Session{Token: p.Token, User: p.User}, nil
}

func (c *Client) login(ctx context.Context, identifier, password string) (Session, error) {
	body := map[string]string{"username": identifier, "password": password}

	var payload authPayload
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "", body, &payload); err != nil {
		var se *ServerError
		if errors.As(err, &se) && se.Status == http.StatusUnauthorized {
			return Session{}, &AuthError{Kind: AuthInvalidCredentials, Message: se.Message}
		}
		return Session{}, err
	}
	return payload.session(http.StatusOK)
}

func (c *Client) register(ctx context.Context, req registerPayload) (Session, error) {
	var payload authPayload
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", "", req, &payload); err != nil {
		return Session{}, err
	}
	return payload.session(http.StatusCreated)
}
