package ratelimit

import (
	"fmt"
	"time"
	"zatch-server/internal/apierrors"
	"zatch-server/internal/clients/redis"
	"zatch-server/internal/config"
	"zatch-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// Limiter enforces a fixed-window request cap per client IP and route,
// backed by a Redis counter.
type Limiter struct {
	redis  *redis.Client
	logger *observability.Logger
	max    int64
	window time.Duration
}

// New creates a new rate limiter
func New(redisClient *redis.Client, cfg config.RateLimitConfig, logger *observability.Logger) *Limiter {
	return &Limiter{
		redis:  redisClient,
		logger: logger,
		max:    int64(cfg.MaxPerWindow),
		window: time.Duration(cfg.WindowSeconds) * time.Second,
	}
}

// Middleware returns a gin middleware limiting requests on the wrapped route.
// Redis outages fail open: signup availability beats throttling accuracy.
func (l *Limiter) Middleware(route string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil || !l.redis.IsEnabled() {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := fmt.Sprintf("ratelimit:%s:%s", route, c.ClientIP())

		count, err := l.redis.Incr(ctx, key)
		if err != nil {
			l.logger.Error(ctx, "rate limit counter unavailable", err)
			c.Next()
			return
		}

		if count == 1 {
			if err := l.redis.Expire(ctx, key, l.window); err != nil {
				l.logger.Error(ctx, "failed to set rate limit window", err)
			}
		}

		if count > l.max {
			ctx = observability.WithFields(ctx,
				observability.Field{Key: "route", Value: route},
				observability.Field{Key: "client_ip", Value: c.ClientIP()},
			)
			l.logger.Warn(ctx, "rate limit exceeded")
			apierrors.TooManyRequests(c, "Too many requests. Please try again later.")
			c.Abort()
			return
		}

		c.Next()
	}
}
