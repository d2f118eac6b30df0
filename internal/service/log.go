package service

import (
	"context"

	"github.com/rs/zerolog"
)

// requestLogger prefers the logger the command layer stored in ctx, which
// carries the invocation id, over the service's own.
func requestLogger(ctx context.Context, fallback zerolog.Logger) zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return *l
	}
	return fallback
}
