package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"crm/config"
	"crm/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// tokenBucketScript refills by whole intervals, takes one token if available
// and returns {allowed, remaining, retry_after_ms}.
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill_tokens = tonumber(ARGV[3])
local interval_ms = tonumber(ARGV[4])
local ttl_seconds = tonumber(ARGV[5])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
    tokens = capacity
    last_refill = now_ms
end

if interval_ms > 0 and refill_tokens > 0 then
    local elapsed = math.max(0, now_ms - last_refill)
    local intervals = math.floor(elapsed / interval_ms)
    if intervals > 0 then
        tokens = math.min(capacity, tokens + (intervals * refill_tokens))
        last_refill = last_refill + (intervals * interval_ms)
    end
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
    allowed = 1
    tokens = tokens - 1
else
    retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return { allowed, tokens, retry_after_ms }
`)

type tokenBucket struct {
	rdb *redis.Client
	cfg config.RateLimitConfig
	now func() time.Time
}

type allowAll struct{}

func (allowAll) Allow(context.Context, string) (service.RateLimitResult, error) {
	return service.RateLimitResult{Allowed: true}, nil
}

// NewTokenBucket returns a pass-through limiter when rdb is nil.
func NewTokenBucket(cfg *config.Config, rdb *redis.Client) service.RateLimiter {
	if rdb == nil || cfg.RateLimit == nil || !cfg.RateLimit.Enabled {
		return allowAll{}
	}

	return &tokenBucket{rdb: rdb, cfg: *cfg.RateLimit, now: time.Now}
}

// Allow consumes one token from the bucket stored under key.
func (b *tokenBucket) Allow(ctx context.Context, key string) (service.RateLimitResult, error) {
	vals, err := tokenBucketScript.Run(ctx, b.rdb, []string{b.cfg.Prefix + ":" + key},
		b.now().UnixMilli(),
		b.cfg.Capacity,
		b.cfg.RefillTokens,
		b.cfg.RefillInterval.Milliseconds(),
		int64(b.cfg.TTL/time.Second),
	).Result()
	if err != nil {
		return service.RateLimitResult{}, errors.Wrap(err, "run token bucket script")
	}

	return parseScriptResult(vals)
}

func parseScriptResult(vals any) (service.RateLimitResult, error) {
	arr, ok := vals.([]any)
	if !ok || len(arr) != 3 {
		return service.RateLimitResult{}, errors.Errorf("unexpected token bucket result: %#v", vals)
	}

	return service.RateLimitResult{
		Allowed:    asInt64(arr[0]) == 1,
		Remaining:  int(asInt64(arr[1])),
		RetryAfter: time.Duration(asInt64(arr[2])) * time.Millisecond,
	}, nil
}

func asInt64(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case float64:
		return int64(t)
	case string:
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return n
		}
	}

	n, _ := strconv.ParseInt(fmt.Sprint(v), 10, 64)

	return n
}
