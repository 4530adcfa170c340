package service

import (
	"context"
	"time"
)

// RateLimitResult is the outcome of a single limiter check.
type RateLimitResult struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// RateLimiter decides whether a request identified by key may proceed.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (RateLimitResult, error)
}
