package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware limits requests per client IP. The data behind every
// endpoint is public and read-only, so there is no auth layer; the limiter
// only protects the upstream Sheets quota.
func (s *Server) RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		if !s.rateLimiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		c.Next()
	}
}
