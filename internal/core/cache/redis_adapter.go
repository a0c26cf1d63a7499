package cache

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"cargo-portal/internal/core/logger"
	"cargo-portal/internal/core/metrics"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisAdapter implements Cache on Redis. Keys are namespaced by a prefix so
// several deployments can share one database.
type RedisAdapter struct {
	client *redis.Client
	prefix string
}

// NewRedisAdapter connects to redisURL (redis://[:password@]host[:port][/database]).
func NewRedisAdapter(redisURL, prefix string) (*RedisAdapter, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	client.AddHook(commandHook{})

	return &RedisAdapter{client: client, prefix: prefix}, nil
}

func (r *RedisAdapter) key(k string) string {
	return r.prefix + k
}

// Get returns the value stored under key, or ErrNotFound.
func (r *RedisAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, r.key(key)).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	case err != nil:
		return nil, fmt.Errorf("cache: get %s: %w", key, err)
	}
	return val, nil
}

func (r *RedisAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.key(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("cache: set %s: %w", key, err)
	}
	return nil
}

func (r *RedisAdapter) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("cache: delete %s: %w", key, err)
	}
	return nil
}

// Ping reports whether Redis answers. It backs the redis entry of /healthz.
func (r *RedisAdapter) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("cache: ping: %w", err)
	}
	return nil
}

func (r *RedisAdapter) Close() error {
	return r.client.Close()
}

// commandHook counts every command and logs transport failures.
// A redis.Nil reply is a miss, not a failure.
type commandHook struct{}

func (commandHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := next(ctx, network, addr)
		if err != nil {
			logger.Named("cache").Warn("Redis dial failed", zap.String("addr", addr), zap.Error(err))
		}
		return conn, err
	}
}

func (commandHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		err := next(ctx, cmd)

		outcome := "ok"
		switch {
		case errors.Is(err, redis.Nil):
			outcome = "miss"
		case err != nil:
			outcome = "error"
			logger.FromContext(ctx).Named("cache").Warn("Redis command failed",
				zap.String("command", cmd.Name()),
				zap.Error(err),
			)
		}
		metrics.CacheCommandsTotal.WithLabelValues(cmd.Name(), outcome).Inc()

		return err
	}
}

func (commandHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}
