package adapters

import (
	"context"
	"fmt"
	"net/http"

	"cargo-portal/internal/core/backend"
	"cargo-portal/internal/features/session/domain"
)

// BackendAuthenticator implements ports.Authenticator against the cargo backend.
type BackendAuthenticator struct {
	client *backend.Client
}

// NewBackendAuthenticator creates a new BackendAuthenticator.
func NewBackendAuthenticator(client *backend.Client) *BackendAuthenticator {
	return &BackendAuthenticator{client: client}
}

type loginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login posts credentials to /auth/login.
func (a *BackendAuthenticator) Login(ctx context.Context, phone, password string) (string, error) {
	var out loginResponse
	_, err := a.client.Do(ctx, backend.Request{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   loginRequest{Phone: phone, Password: password},
	}, &out)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	if out.Token == "" {
		return "", fmt.Errorf("login: %w: no token", backend.ErrInvalidResponse)
	}
	return out.Token, nil
}

// WhoAmI fetches /auth/me.
func (a *BackendAuthenticator) WhoAmI(ctx context.Context, token string) (*domain.User, error) {
	var user domain.User
	_, err := a.client.Do(ctx, backend.Request{
		Method: http.MethodGet,
		Path:   "/auth/me",
		Token:  token,
	}, &user)
	if err != nil {
		return nil, fmt.Errorf("who am i: %w", err)
	}
	return &user, nil
}

// Logout posts to /auth/logout.
func (a *BackendAuthenticator) Logout(ctx context.Context, token string) error {
	_, err := a.client.Do(ctx, backend.Request{
		Method: http.MethodPost,
		Path:   "/auth/logout",
		Token:  token,
	}, nil)
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}
