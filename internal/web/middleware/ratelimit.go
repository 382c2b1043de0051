package middleware

import (
	"net/http"

	"job-board/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimit rejects clients over the per-minute budget. onLimited writes the
// response.
func RateLimit(limiter *ratelimit.Limiter, onLimited gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.Request.Context(), "ip:"+c.ClientIP()) {
			c.Header("Retry-After", "60")
			c.Status(http.StatusTooManyRequests)
			onLimited(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
