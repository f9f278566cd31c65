package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// Timeout bounds each request's context. Handlers pass that context down
// to the store and cache, so a slow aggregation pass is cancelled rather
// than left running after the client gave up.
func Timeout(seconds int) gin.HandlerFunc {
	timeout := time.Duration(seconds) * time.Second

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
