package core

import (
	"context"

	"go.uber.org/zap"
)

// WithFallback runs primary and substitutes the fallback value when the
// primary provider is absent or fails. Read paths use this so a dead or
// unconfigured database degrades to sample data instead of surfacing an
// error to the user.
func WithFallback[T any](
	ctx context.Context,
	logger *zap.Logger,
	op string,
	primary func(ctx context.Context) (T, error),
	fallback func() T,
) T {
	if primary == nil {
		return fallback()
	}

	result, err := primary(ctx)
	if err != nil {
		logger.Warn("primary data source unavailable, using fallback",
			zap.String("op", op),
			zap.Error(err),
		)
		return fallback()
	}

	return result
}
