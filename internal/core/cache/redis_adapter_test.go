package cache

import (
	"context"
	"testing"
	"time"

	"cargo-portal/internal/core/metrics"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T) (*RedisAdapter, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	adapter, err := NewRedisAdapter("redis://"+mr.Addr(), "portal:")
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	return adapter, mr
}

func TestRedisAdapter_GetSet(t *testing.T) {
	adapter, mr := newTestAdapter(t)
	ctx := context.Background()

	err := adapter.Set(ctx, "session:1", []byte("token"), 10*time.Second)
	require.NoError(t, err)

	value, err := adapter.Get(ctx, "session:1")
	require.NoError(t, err)
	assert.Equal(t, []byte("token"), value)

	// stored under the prefix
	assert.True(t, mr.Exists("portal:session:1"))
}

func TestRedisAdapter_GetNotFound(t *testing.T) {
	adapter, _ := newTestAdapter(t)

	_, err := adapter.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisAdapter_Delete(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "k", []byte("v"), 0))
	require.NoError(t, adapter.Delete(ctx, "k"))

	_, err := adapter.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, adapter.Delete(ctx, "k"))
}

func TestRedisAdapter_TTL(t *testing.T) {
	adapter, mr := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "ttl", []byte("soon"), time.Second))

	_, err := adapter.Get(ctx, "ttl")
	require.NoError(t, err)

	mr.FastForward(2 * time.Second)

	_, err = adapter.Get(ctx, "ttl")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisAdapter_Ping(t *testing.T) {
	adapter, _ := newTestAdapter(t)

	assert.NoError(t, adapter.Ping(context.Background()))
}

func TestRedisAdapter_InvalidURL(t *testing.T) {
	_, err := NewRedisAdapter("invalid://url", "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse Redis URL")
}

func TestRedisAdapter_CommandMetrics(t *testing.T) {
	adapter, mr := newTestAdapter(t)
	ctx := context.Background()

	hits := metrics.CacheCommandsTotal.WithLabelValues("get", "ok")
	misses := metrics.CacheCommandsTotal.WithLabelValues("get", "miss")
	failures := metrics.CacheCommandsTotal.WithLabelValues("ping", "error")
	hitsBefore, missesBefore, failuresBefore := testutil.ToFloat64(hits), testutil.ToFloat64(misses), testutil.ToFloat64(failures)

	require.NoError(t, adapter.Set(ctx, "k", []byte("v"), 0))
	_, _ = adapter.Get(ctx, "k")
	_, _ = adapter.Get(ctx, "absent")

	assert.Equal(t, hitsBefore+1, testutil.ToFloat64(hits))
	assert.Equal(t, missesBefore+1, testutil.ToFloat64(misses))

	mr.Close()
	assert.Error(t, adapter.Ping(ctx))
	assert.Greater(t, testutil.ToFloat64(failures), failuresBefore)
}
