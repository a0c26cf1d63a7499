package ports

import (
	"context"
	"time"

	"cargo-portal/internal/features/session/domain"
)

// Repository persists session contexts between requests.
type Repository interface {
	Save(ctx context.Context, sc *domain.Context, ttl time.Duration) error
	Get(ctx context.Context, id string) (*domain.Context, error)
	Delete(ctx context.Context, id string) error
}

// Authenticator is the backend's authentication surface.
type Authenticator interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, phone, password string) (string, error)
	// WhoAmI returns the user the token belongs to.
	WhoAmI(ctx context.Context, token string) (*domain.User, error)
	// Logout revokes the token on the backend.
	Logout(ctx context.Context, token string) error
}

// Service is the session lifecycle used by handlers and middleware.
type Service interface {
	Login(ctx context.Context, creds domain.Credentials) (*domain.Context, error)
	Resume(ctx context.Context, id string) (*domain.Context, error)
	Refresh(ctx context.Context, sc *domain.Context) (*domain.Context, error)
	Logout(ctx context.Context, sc *domain.Context) error
}
