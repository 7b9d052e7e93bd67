// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"content-platform/internal/metrics"
)

// Metrics returns a Gin middleware that records request count, duration and
// in-flight gauge by route template.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip metrics endpoint to avoid self-referential metrics
		if c.FullPath() == "/metrics" {
			c.Next()
			return
		}

		timer := metrics.NewTimer()
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		timer.ObserveDuration(metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path))
	}
}
