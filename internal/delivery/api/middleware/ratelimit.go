package middleware

import (
	"log/slog"
	"math"
	"strconv"

	deliverycontext "crm/internal/delivery/context"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/service"
	"crm/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RateLimitMiddleware applies the token bucket to a route, keyed by client IP
// and route. A nil limiter lets every request through.
type RateLimitMiddleware struct {
	limiter service.RateLimiter
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// RateLimitMiddlewareParams holds dependencies for RateLimitMiddleware, injected by Fx.
type RateLimitMiddlewareParams struct {
	fx.In

	Limiter service.RateLimiter `optional:"true"`
	Metrics *metrics.Metrics    `optional:"true"`
	Logger  *slog.Logger
}

// NewRateLimitMiddleware is the constructor for RateLimitMiddleware.
func NewRateLimitMiddleware(params RateLimitMiddlewareParams) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: params.Limiter,
		metrics: params.Metrics,
		logger:  params.Logger,
	}
}

// Limit rejects requests once the caller's bucket is empty.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.limiter == nil {
			return next(c)
		}

		ctx := c.Request().Context()
		key := c.RealIP() + ":" + c.Path()

		result, err := m.limiter.Allow(ctx, key)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).WarnContext(ctx, "Rate limiter unavailable, allowing request",
				slog.String("key", key),
				slog.Any("error", err),
			)

			return next(c)
		}

		if !result.Allowed {
			seconds := int(math.Ceil(result.RetryAfter.Seconds()))
			if seconds < 1 {
				seconds = 1
			}
			c.Response().Header().Set("Retry-After", strconv.Itoa(seconds))
			m.metrics.IncRateLimited()

			return domainerrors.ErrRateLimited
		}

		return next(c)
	}
}
