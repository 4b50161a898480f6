package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// HTTPObserver receives per-request telemetry.  The monitoring package
// provides the production implementation.
type HTTPObserver interface {
	ObserveHTTPRequest(method, path, status string, elapsed time.Duration)
}

// Metrics records request counts and latency per route.  The route template
// is used as the path label so parameterised routes do not explode metric
// cardinality.
func Metrics(observer HTTPObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		observer.ObserveHTTPRequest(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
		)
	}
}
