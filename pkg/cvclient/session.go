package cvclient

import "time"

// Profile is the user record attached to a session, as returned by the
// backend's auth endpoints.
type Profile struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	FullName   string    `json:"full_name"`
	Phone      string    `json:"phone,omitempty"`
	Location   string    `json:"location,omitempty"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

// Session is the authenticated identity currently active in the client.
// Token and User are either both present (authenticated) or both absent
// (anonymous); there is no partial session.
type Session struct {
	Token string   `json:"token,omitempty"`
	User  *Profile `json:"user,omitempty"`
}

// Anonymous reports whether no user is logged in.
func (s Session) Anonymous() bool {
	return s.Token == "" || s.User == nil
}

// Role returns the session's role, or "" when anonymous.
func (s Session) Role() string {
	if s.Anonymous() {
		return ""
	}
	return s.User.Role
}
