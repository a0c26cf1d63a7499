package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cargo-portal/internal/core/cache"
	"cargo-portal/internal/features/session/domain"
)

const sessionKeyPrefix = "session:"

// RedisSessionRepository implements ports.Repository on top of the cache port.
type RedisSessionRepository struct {
	cache cache.Cache
}

// NewRedisSessionRepository creates a new RedisSessionRepository.
func NewRedisSessionRepository(c cache.Cache) *RedisSessionRepository {
	return &RedisSessionRepository{cache: c}
}

// Save stores the session for ttl.
func (r *RedisSessionRepository) Save(ctx context.Context, sc *domain.Context, ttl time.Duration) error {
	data, err := json.Marshal(sc)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := r.cache.Set(ctx, sessionKeyPrefix+sc.ID, data, ttl); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Get loads a session. Unknown ids yield domain.ErrSessionNotFound.
func (r *RedisSessionRepository) Get(ctx context.Context, id string) (*domain.Context, error) {
	data, err := r.cache.Get(ctx, sessionKeyPrefix+id)
	if errors.Is(err, cache.ErrNotFound) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var sc domain.Context
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &sc, nil
}

// Delete removes a session.
func (r *RedisSessionRepository) Delete(ctx context.Context, id string) error {
	if err := r.cache.Delete(ctx, sessionKeyPrefix+id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
