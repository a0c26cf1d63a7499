package adapters

import (
	"context"
	"net/http"
	"testing"
	"time"

	"cargo-portal/internal/core/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedSettings_PublicSettings(t *testing.T) {
	mr := miniredis.RunT(t)
	c, err := cache.NewRedisAdapter("redis://"+mr.Addr(), "portal:")
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	hits := 0
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`{"data":{"pricePerKg":"3000","supportPhone":"77001234"}}`))
	})
	cached := NewCachedSettings(repo, c, time.Minute)
	ctx := context.Background()

	first, err := cached.PublicSettings(ctx)
	require.NoError(t, err)
	second, err := cached.PublicSettings(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, hits)
	assert.Equal(t, first.SupportPhone, second.SupportPhone)
	assert.True(t, first.PricePerKg.Equal(second.PricePerKg))
	assert.True(t, mr.Exists("portal:settings:public"))

	mr.FastForward(2 * time.Minute)
	_, err = cached.PublicSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, hits)
}

func TestCachedSettings_CacheDown(t *testing.T) {
	mr := miniredis.RunT(t)
	c, err := cache.NewRedisAdapter("redis://"+mr.Addr(), "portal:")
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	mr.Close()

	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"supportPhone":"77001234"}}`))
	})

	s, err := NewCachedSettings(repo, c, time.Minute).PublicSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "77001234", s.SupportPhone)
}

func TestCachedRepository_PublicSettings(t *testing.T) {
	mr := miniredis.RunT(t)
	c, err := cache.NewRedisAdapter("redis://"+mr.Addr(), "portal:")
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	hits := 0
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`{"data":{"supportPhone":"77001234"}}`))
	})
	cached := NewCachedRepository(repo, c, time.Minute)

	for i := 0; i < 3; i++ {
		s, err := cached.PublicSettings(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "77001234", s.SupportPhone)
	}
	assert.Equal(t, 1, hits)
}
