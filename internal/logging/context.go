package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger carried by ctx, or a disabled one.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent tags every later log line with the emitting component.
func WithComponent(ctx context.Context, component string) context.Context {
	return withField(ctx, "component", component)
}

// WithStorageKey tags every later log line with the preference key in use.
func WithStorageKey(ctx context.Context, key string) context.Context {
	return withField(ctx, "storage_key", key)
}

func withField(ctx context.Context, name, value string) context.Context {
	return WithContext(ctx, FromContext(ctx).With().Str(name, value).Logger())
}
