package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"campusdesk/internal/infrastructure/ratelimit"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/utils"
)

// RateLimiter enforces a per-IP request budget through the shared
// Redis limiter, so the budget holds across server instances.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	limit   int
	window  time.Duration
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.RateLimiter, requestsPerMinute int, log logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		limit:   requestsPerMinute,
		window:  time.Minute,
		logger:  log,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := rl.limiter.Allow(c.Request.Context(), "ip:"+c.ClientIP(), rl.limit, rl.window)
		if err != nil {
			// Redis being down must not take the API with it.
			rl.logger.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
