package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/coursehub/coursehub-backend/internal/config"
	"github.com/coursehub/coursehub-backend/internal/response"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RateLimiter counts requests per client IP in fixed Redis windows, so the
// limit holds across server replicas.
type RateLimiter struct {
	rdb    redis.Cmdable
	limit  int
	window time.Duration
	log    zerolog.Logger
}

// NewRateLimiter creates a RateLimiter allowing limit requests per window.
func NewRateLimiter(rdb redis.Cmdable, limit int, window time.Duration, log zerolog.Logger) *RateLimiter {
	return &RateLimiter{
		rdb:    rdb,
		limit:  limit,
		window: window,
		log:    log.With().Str("component", "rate_limiter").Logger(),
	}
}

// Middleware returns a Gin middleware that rate-limits requests by IP.
// Requests are let through when Redis is unavailable.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := config.CacheKey.LoginAttemptsKey(c.ClientIP())

		count, err := rl.rdb.Incr(ctx, key).Result()
		if err != nil {
			rl.log.Warn().Err(err).Msg("Rate limit check failed, allowing request")
			c.Next()
			return
		}
		// NX leaves a running window alone and retries one a failed hit never set.
		if err := rl.rdb.ExpireNX(ctx, key, rl.window).Err(); err != nil {
			rl.log.Warn().Err(err).Str("key", key).Msg("Failed to set rate limit window")
		}

		if count > int64(rl.limit) {
			c.Header("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			response.AbortFail(c, http.StatusTooManyRequests, response.ErrRateLimitExceeded)
			return
		}
		c.Next()
	}
}
