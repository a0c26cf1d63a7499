package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cargo-portal/internal/core/cache"
	"cargo-portal/internal/features/announcements/domain"
)

const announcementKey = "announcement"

// RedisAnnouncementRepository implements ports.AnnouncementRepository on the cache.
type RedisAnnouncementRepository struct {
	cache cache.Cache
}

// NewRedisAnnouncementRepository creates a new RedisAnnouncementRepository.
func NewRedisAnnouncementRepository(c cache.Cache) *RedisAnnouncementRepository {
	return &RedisAnnouncementRepository{cache: c}
}

// Save stores the announcement, replacing any previous one. It expires
// after its duration.
func (r *RedisAnnouncementRepository) Save(ctx context.Context, a *domain.Announcement) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to marshal announcement: %w", err)
	}

	ttl := time.Duration(a.Duration) * time.Second
	if err := r.cache.Set(ctx, announcementKey, data, ttl); err != nil {
		return fmt.Errorf("failed to save announcement: %w", err)
	}
	return nil
}

// Get returns the current announcement, or nil when there is none.
func (r *RedisAnnouncementRepository) Get(ctx context.Context) (*domain.Announcement, error) {
	data, err := r.cache.Get(ctx, announcementKey)
	if errors.Is(err, cache.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get announcement: %w", err)
	}

	var a domain.Announcement
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to unmarshal announcement: %w", err)
	}
	return &a, nil
}

// Delete removes the announcement.
func (r *RedisAnnouncementRepository) Delete(ctx context.Context) error {
	if err := r.cache.Delete(ctx, announcementKey); err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	return nil
}
