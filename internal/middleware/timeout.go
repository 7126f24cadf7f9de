package middleware

import (
	"context" // Request deadline
	"time"    // Durations

	"github.com/gin-gonic/gin" // Gin web framework
)

// Timeout bounds every downstream call of a request with a deadline on its context
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
