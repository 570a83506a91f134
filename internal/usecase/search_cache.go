package usecase

import (
	"context"
	"time"
)

// SearchCache is the response cache surface the usecases depend on. The
// Redis implementation bypasses itself when the server is unreachable, so
// callers treat every miss the same way.
type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}
