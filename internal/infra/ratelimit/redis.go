// Package ratelimit provides the Redis-backed token bucket used on public auth routes.
package ratelimit

import (
	"context"
	"log/slog"

	"crm/config"
	"crm/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// RedisParams holds dependencies for the Redis client, injected by Fx
type RedisParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient returns nil when rate limiting is disabled or Redis is not configured.
func NewRedisClient(params RedisParams) *redis.Client {
	cfg := params.Config
	if cfg.RateLimit == nil || !cfg.RateLimit.Enabled || cfg.Redis == nil || cfg.Redis.Addr == "" {
		params.Logger.Info("Rate limiting disabled")

		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// The limiter fails open, so an unreachable Redis is logged rather than fatal.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed, rate limiter will fail open",
					slog.String("addr", cfg.Redis.Addr),
					slog.Any("error", err),
				)
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return client
}
