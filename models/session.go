// Copyright (c) 2026 Chocorocks.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Role constants as reported by the backend
const (
	RoleAdmin    = "ADMINISTRATOR"
	RoleEmployee = "EMPLOYEE"
)

// Session is the authenticated identity for the current browser context.
// It is created by the session manager on login or token confirmation and
// is read-only everywhere else.
type Session struct {
	UserID        int    `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	Authenticated bool   `json:"authenticated"`
}

// IsAdmin reports whether the session carries the administrator role.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

// HasRole reports whether the session satisfies the required role.
// Administrators satisfy every role; an empty requirement is satisfied
// by any authenticated session.
func (s *Session) HasRole(required string) bool {
	if s == nil || !s.Authenticated {
		return false
	}
	if required == "" || s.Role == RoleAdmin {
		return true
	}
	return s.Role == required
}

// Credential is a transient login credential. It exists only for the
// duration of a login attempt and is never persisted.
type Credential struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenPair is the persisted bearer credential set issued by the identity
// provider. Both tokens are opaque to this service; possession alone never
// implies a valid session (the backend must confirm the access token).
type TokenPair struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at,omitempty"`
}
