package auth

// Package auth contains domain-level types for credentials and sessions.
// It is pure and free of framework/adapter concerns.

import (
	"strings"
	"time"
)

// Role represents the authorization role carried by a session.
// Keep string form for easy logging and template use.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
	RoleGuest    Role = "guest"
)

// roleLevels orders roles: Guest < Customer < Admin.
//
//nolint:gochecknoglobals // static read-only lookup
var roleLevels = map[Role]int{
	RoleGuest:    0,
	RoleCustomer: 1,
	RoleAdmin:    2,
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	_, ok := roleLevels[r]
	return ok
}

// Satisfies reports whether a session holding r may access a view requiring required.
// Unknown roles never satisfy anything.
func (r Role) Satisfies(required Role) bool {
	have, ok := roleLevels[r]
	if !ok {
		return false
	}
	need, ok := roleLevels[required]
	if !ok {
		return false
	}
	return have >= need
}

// ParseRole normalizes s and reports whether it names a known role.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if r.Valid() {
		return r, true
	}
	return "", false
}

// Credential is the token pair handed out by the remote API on login or registration.
// Token is opaque to this application; its presence alone proves authentication.
type Credential struct {
	Token     string    `json:"token"`
	Refresh   string    `json:"refresh,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Present reports whether the credential carries an access token.
func (c Credential) Present() bool { return strings.TrimSpace(c.Token) != "" }

// Session is the request-scoped view of a present credential.
// It is derived from the cookie on every request and never persisted.
type Session struct {
	Token   string `json:"-"`
	Subject string `json:"subject,omitempty"`
	Email   string `json:"email,omitempty"`
	Name    string `json:"name,omitempty"`
	Role    Role   `json:"role"`
}

// IsGuest returns true if the session role is guest.
func (s Session) IsGuest() bool { return s.Role == RoleGuest }

// IsAdmin returns true if the session role is admin.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }

// DisplayName prefers the name claim, then email, then subject.
func (s Session) DisplayName() string {
	switch {
	case s.Name != "":
		return s.Name
	case s.Email != "":
		return s.Email
	default:
		return s.Subject
	}
}
