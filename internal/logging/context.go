package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// WithContext attaches logger to ctx
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// FromContext returns the logger attached to ctx. Contexts without a logger
// yield a disabled logger, never nil.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return zerolog.Ctx(ctx)
}
