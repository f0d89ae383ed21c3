// Package ratelimit provides request rate limiting backed by Redis.
package ratelimit

import (
	"context"
	"time"
)

type RateLimiter interface {
	// Allow reports whether the keyed caller may proceed given at most
	// limit requests per window.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
	Reset(ctx context.Context, key string) error
}
