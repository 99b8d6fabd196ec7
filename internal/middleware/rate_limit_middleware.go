package middleware

import (
	"math"

	"github.com/gin-gonic/gin"

	"travelog/internal/ratelimit"
	"travelog/internal/utils"
)

// RateLimit admits the request against one limiter pool, keyed by client
// IP. Limiter errors fail open inside the implementations, so a nil
// result never reaches the rejection path.
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := limiter.Allow(c.Request.Context(), ClientIP(c))
		if err != nil || result == nil {
			c.Next()
			return
		}

		if !result.Allowed {
			// Round up so a nearly-full window still reads as 60.
			retryAfter := int(math.Ceil(result.RetryAfter.Seconds()))
			utils.RateLimitResponse(c, result.Limit, retryAfter)
			c.Abort()
			return
		}

		c.Next()
	}
}
