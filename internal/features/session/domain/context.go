package domain

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrNotAuthenticated is returned when an operation needs a signed-in user.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrSessionNotFound is returned when a session id is unknown or expired.
	ErrSessionNotFound = errors.New("session not found")
)

// Context is the per-user application context. It starts anonymous, holds a
// token after login, carries the user once "who am I" answered, and is
// cleared on sign-out.
type Context struct {
	ID        string    `json:"id"`
	Token     string    `json:"token,omitempty"`
	User      *User     `json:"user,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// New creates an anonymous context with a fresh id.
func New() *Context {
	return &Context{ID: uuid.NewString()}
}

// Authenticate stores the bearer token and its expiry.
func (c *Context) Authenticate(token string, expiresAt time.Time) {
	c.Token = token
	c.ExpiresAt = expiresAt
	c.User = nil
}

// Populate stores the user returned by "who am I".
func (c *Context) Populate(u User) {
	c.User = &u
}

// Clear drops the token and user.
func (c *Context) Clear() {
	c.Token = ""
	c.User = nil
	c.ExpiresAt = time.Time{}
}

// Authenticated reports whether the context has both a token and a user.
func (c *Context) Authenticated() bool {
	return c != nil && c.Token != "" && c.User != nil
}

// Expired reports whether the session outlived its token.
func (c *Context) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// Role returns the user's role, or "" when anonymous.
func (c *Context) Role() Role {
	if !c.Authenticated() {
		return ""
	}
	return c.User.Role
}

// HasRole reports whether the user has one of roles.
func (c *Context) HasRole(roles ...Role) bool {
	r := c.Role()
	if r == "" {
		return false
	}
	for _, allowed := range roles {
		if r == allowed {
			return true
		}
	}
	return false
}

// TokenExpiry reads the exp claim of a JWT without verifying it; the
// backend verifies tokens. Opaque tokens report false.
func TokenExpiry(token string) (time.Time, bool) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
