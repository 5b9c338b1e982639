package cvclient

import "fmt"

// ValidationError is a local, pre-network failure. It is returned before
// any request is issued and surfaced inline on the form.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Message
}

// AuthErrorKind distinguishes the two authentication failure modes.
type AuthErrorKind string

const (
	// AuthInvalidCredentials means the backend rejected a login attempt.
	AuthInvalidCredentials AuthErrorKind = "invalid_credentials"
	// AuthRejected means the backend rejected the session token on a
	// resource call.
	AuthRejected AuthErrorKind = "rejected"
)

// AuthError is an authentication rejection from the backend.
type AuthError struct {
	Kind    AuthErrorKind
	Message string
}

func (e *AuthError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("auth (%s): %s", e.Kind, e.Message)
	}
	return "auth: " + string(e.Kind)
}

// NetworkError is a transport-level failure: the request never received
// an HTTP response. No retry is attempted.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "network: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ServerError is a non-2xx HTTP response, or a 2xx response whose body
// does not match the expected schema. Message carries the backend's own
// message verbatim when one was present.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "request failed"
	}
	if e.Status == 0 {
		return "server: " + msg
	}
	return fmt.Sprintf("server (%d): %s", e.Status, msg)
}
