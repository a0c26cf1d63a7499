package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var globalLogger *zap.Logger

type rayIDKey struct{}

// Init initializes the global logger.
// "production" produces sampled JSON logs, anything else pretty console logs.
// An unparsable level keeps the environment's default level.
func Init(environment string, level string) error {
	var config zap.Config

	if environment == "production" {
		config = zap.NewProductionConfig()
		// List polling is chatty; keep the first 50 identical entries per second.
		config.Sampling = &zap.SamplingConfig{Initial: 50, Thereafter: 100}
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if l, err := zapcore.ParseLevel(level); err == nil {
		config.Level = zap.NewAtomicLevelAt(l)
	}

	logger, err := config.Build(zap.Fields(
		zap.String("service", "cargo-portal"),
		zap.String("env", environment),
	))
	if err != nil {
		return err
	}

	globalLogger = logger
	return nil
}

// Get returns the global logger, or a no-op logger before Init.
func Get() *zap.Logger {
	if globalLogger == nil {
		return zap.NewNop()
	}
	return globalLogger
}

// Named returns a child of the global logger tagged with a component name.
func Named(component string) *zap.Logger {
	return Get().Named(component)
}

// WithRayID returns a logger carrying the request id used in error bodies.
func WithRayID(rayID string) *zap.Logger {
	return Get().With(zap.String("ray_id", rayID))
}

// NewContext returns a copy of ctx that carries rayID.
func NewContext(ctx context.Context, rayID string) context.Context {
	return context.WithValue(ctx, rayIDKey{}, rayID)
}

// RayID returns the request id stored in ctx, or "".
func RayID(ctx context.Context) string {
	id, _ := ctx.Value(rayIDKey{}).(string)
	return id
}

// FromContext returns the global logger, tagged with ctx's request id when it has one.
func FromContext(ctx context.Context) *zap.Logger {
	if id := RayID(ctx); id != "" {
		return WithRayID(id)
	}
	return Get()
}

// Sync flushes any buffered log entries.
func Sync() {
	if globalLogger != nil {
		_ = globalLogger.Sync()
	}
}
