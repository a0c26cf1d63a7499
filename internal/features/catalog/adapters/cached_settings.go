package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"cargo-portal/internal/core/cache"
	"cargo-portal/internal/core/logger"
	"cargo-portal/internal/features/catalog/domain"
	"cargo-portal/internal/features/catalog/ports"

	"go.uber.org/zap"
)

const settingsCacheKey = "settings:public"

// CachedSettings keeps the public settings in the cache for ttl. Every other
// lookup goes straight to the wrapped repository.
type CachedSettings struct {
	ports.ReferenceRepository

	cache cache.Cache
	ttl   time.Duration
}

// NewCachedSettings wraps next with a settings cache.
func NewCachedSettings(next ports.ReferenceRepository, c cache.Cache, ttl time.Duration) *CachedSettings {
	return &CachedSettings{ReferenceRepository: next, cache: c, ttl: ttl}
}

// PublicSettings returns the cached settings, fetching them on a miss.
// Cache failures are logged and never fail the request.
func (r *CachedSettings) PublicSettings(ctx context.Context) (*domain.PublicSettings, error) {
	log := logger.Named("settings-cache")

	data, err := r.cache.Get(ctx, settingsCacheKey)
	if err == nil {
		var s domain.PublicSettings
		if err := json.Unmarshal(data, &s); err == nil {
			return &s, nil
		}
		log.Warn("Discarding unreadable cached settings")
	} else if !errors.Is(err, cache.ErrNotFound) {
		log.Warn("Settings cache read failed", zap.Error(err))
	}

	s, err := r.ReferenceRepository.PublicSettings(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(s); err == nil {
		if err := r.cache.Set(ctx, settingsCacheKey, data, r.ttl); err != nil {
			log.Warn("Settings cache write failed", zap.Error(err))
		}
	}
	return s, nil
}

// CachedRepository is a BackendRepository that reads public settings through a CachedSettings.
type CachedRepository struct {
	*BackendRepository

	settings *CachedSettings
}

// NewCachedRepository wraps repo so PublicSettings is served from c for ttl.
func NewCachedRepository(repo *BackendRepository, c cache.Cache, ttl time.Duration) *CachedRepository {
	return &CachedRepository{BackendRepository: repo, settings: NewCachedSettings(repo, c, ttl)}
}

// PublicSettings implements ports.ReferenceRepository.
func (r *CachedRepository) PublicSettings(ctx context.Context) (*domain.PublicSettings, error) {
	return r.settings.PublicSettings(ctx)
}

var _ ports.Repository = (*CachedRepository)(nil)
