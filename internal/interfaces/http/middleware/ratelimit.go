package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"bulletin/internal/infrastructure/ratelimit"
	"bulletin/internal/shared/authorization"
	"bulletin/internal/shared/constants"
	"bulletin/internal/shared/logger"
	"bulletin/internal/shared/utils"
)

// RateLimiter applies a per-user fixed-window limit. A nil limiter or a
// limiter error lets the request through so a Redis outage never blocks
// reads from being marked.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	scope   string
	limit   int
	window  time.Duration
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.RateLimiter, scope string, limit int, window time.Duration, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		scope:   scope,
		limit:   limit,
		window:  window,
		logger:  logger,
	}
}

// Limit must run after RequireAuth; unauthenticated callers are keyed by IP.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.limiter == nil || rl.limit <= 0 {
			c.Next()
			return
		}

		key := rl.scope + ":ip:" + c.ClientIP()
		if userID, ok := authorization.CurrentUserID(c); ok {
			key = fmt.Sprintf("%s:user:%d", rl.scope, userID)
		}

		decision, err := rl.limiter.Allow(c.Request.Context(), key, rl.limit, rl.window)
		if err != nil {
			rl.logger.Warnw("rate limiter unavailable, allowing request", "error", err, "key", key)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(decision.Remaining, 10))

		if !decision.Allowed {
			seconds := int(decision.RetryAfter.Round(time.Second) / time.Second)
			if seconds < 1 {
				seconds = 1
			}
			c.Header(constants.HeaderRetryAfter, strconv.Itoa(seconds))
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
