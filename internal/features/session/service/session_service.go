package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cargo-portal/internal/core/backend"
	"cargo-portal/internal/core/logger"
	"cargo-portal/internal/core/metrics"
	"cargo-portal/internal/core/validation"
	"cargo-portal/internal/features/session/domain"
	"cargo-portal/internal/features/session/ports"

	"go.uber.org/zap"
)

// SessionService manages the lifecycle of session contexts.
type SessionService struct {
	repo    ports.Repository
	auth    ports.Authenticator
	maxTTL  time.Duration
	now     func() time.Time
	onClose []func(sessionID string)
}

// NewSessionService creates a new SessionService. maxTTL caps session lifetime.
func NewSessionService(repo ports.Repository, auth ports.Authenticator, maxTTL time.Duration) *SessionService {
	return &SessionService{
		repo:   repo,
		auth:   auth,
		maxTTL: maxTTL,
		now:    time.Now,
	}
}

// OnClose registers a hook run when a session ends, used to tear down per-session state.
func (s *SessionService) OnClose(fn func(sessionID string)) {
	s.onClose = append(s.onClose, fn)
}

// Login authenticates with the backend, loads the user and persists a new session.
func (s *SessionService) Login(ctx context.Context, creds domain.Credentials) (*domain.Context, error) {
	if err := validation.Struct(creds); err != nil {
		return nil, err
	}

	token, err := s.auth.Login(ctx, creds.Phone, creds.Password)
	if err != nil {
		return nil, err
	}

	sc := domain.New()
	sc.Authenticate(token, s.expiry(token))

	user, err := s.auth.WhoAmI(ctx, token)
	if err != nil {
		return nil, err
	}
	sc.Populate(*user)

	if err := s.repo.Save(ctx, sc, s.ttl(sc)); err != nil {
		return nil, fmt.Errorf("service: failed to save session: %w", err)
	}

	metrics.SessionsOpenedTotal.Inc()
	logger.Named("session").Info("Session opened",
		zap.String("session_id", sc.ID),
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)),
	)
	return sc, nil
}

// Resume loads an existing authenticated session.
func (s *SessionService) Resume(ctx context.Context, id string) (*domain.Context, error) {
	if id == "" {
		return nil, domain.ErrSessionNotFound
	}

	sc, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if sc.Expired(s.now()) || !sc.Authenticated() {
		s.close(ctx, sc, closedExpired)
		return nil, domain.ErrSessionNotFound
	}
	return sc, nil
}

// Refresh re-runs "who am I" so role or verification changes show up.
// A token the backend no longer accepts ends the session.
func (s *SessionService) Refresh(ctx context.Context, sc *domain.Context) (*domain.Context, error) {
	if !sc.Authenticated() {
		return nil, domain.ErrNotAuthenticated
	}

	user, err := s.auth.WhoAmI(ctx, sc.Token)
	if errors.Is(err, backend.ErrUnauthorized) {
		s.close(ctx, sc, closedRevoked)
		return nil, domain.ErrNotAuthenticated
	}
	if err != nil {
		return nil, err
	}

	sc.Populate(*user)
	if err := s.repo.Save(ctx, sc, s.ttl(sc)); err != nil {
		return nil, fmt.Errorf("service: failed to save session: %w", err)
	}
	return sc, nil
}

// Logout revokes the token on a best-effort basis and clears the session.
func (s *SessionService) Logout(ctx context.Context, sc *domain.Context) error {
	if sc == nil {
		return nil
	}

	if sc.Token != "" {
		if err := s.auth.Logout(ctx, sc.Token); err != nil {
			logger.Named("session").Warn("Backend logout failed", zap.String("session_id", sc.ID), zap.Error(err))
		}
	}

	if err := s.close(ctx, sc, closedLogout); err != nil {
		return fmt.Errorf("service: failed to close session: %w", err)
	}
	return nil
}

// Reasons a session ends, as recorded in metrics.SessionsClosedTotal.
const (
	closedLogout  = "logout"
	closedExpired = "expired"
	closedRevoked = "revoked"
)

func (s *SessionService) close(ctx context.Context, sc *domain.Context, reason string) error {
	err := s.repo.Delete(ctx, sc.ID)
	for _, fn := range s.onClose {
		fn(sc.ID)
	}
	sc.Clear()
	metrics.SessionsClosedTotal.WithLabelValues(reason).Inc()
	return err
}

func (s *SessionService) expiry(token string) time.Time {
	limit := s.now().Add(s.maxTTL)
	if exp, ok := domain.TokenExpiry(token); ok && exp.Before(limit) {
		return exp
	}
	return limit
}

func (s *SessionService) ttl(sc *domain.Context) time.Duration {
	ttl := sc.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return time.Second
	}
	return ttl
}
