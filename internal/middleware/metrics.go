package middleware

import (
	"strconv"
	"time"

	"github.com/borsibaar/barpos/internal/telemetry"
	"github.com/gin-gonic/gin"
)

// Metrics records request count and latency per route template.
// Unmatched routes share the "<no-route>" label.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "<no-route>"
		}

		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		telemetry.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
		telemetry.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
