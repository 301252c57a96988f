package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"curator/internal/shared/logger"
	"curator/internal/shared/utils"
)

// RateLimiter throttles login attempts per client IP with a fixed window
// counter in redis. Redis being down fails open: availability of login
// outranks throttling.
type RateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	logger logger.Interface
}

func NewRateLimiter(client *redis.Client, limit, windowSeconds int) *RateLimiter {
	return &RateLimiter{
		client: client,
		limit:  limit,
		window: time.Duration(windowSeconds) * time.Second,
		logger: logger.NewLogger().With("middleware", "ratelimit"),
	}
}

func (m *RateLimiter) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:login:%s", c.ClientIP())
		ctx := c.Request.Context()

		count, err := m.client.Incr(ctx, key).Result()
		if err != nil {
			m.logger.Warnw("rate limit check failed, allowing request", "error", err)
			c.Next()
			return
		}
		if count == 1 {
			if err := m.client.Expire(ctx, key, m.window).Err(); err != nil {
				m.logger.Warnw("failed to set rate limit window", "error", err)
			}
		}

		if count > int64(m.limit) {
			m.logger.Warnw("login rate limit exceeded", "ip", c.ClientIP(), "count", count)
			utils.ErrorResponse(c, http.StatusTooManyRequests, "Too many login attempts, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
