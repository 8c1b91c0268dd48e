// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"museum-review/internal/metrics"
)

// unobservedRoutes are the scrape endpoint and the probes.
var unobservedRoutes = map[string]struct{}{
	"/metrics": {},
	"/health":  {},
	"/ready":   {},
	"/live":    {},
}

// Metrics returns a Gin middleware that records Prometheus metrics for HTTP
// requests. Paths are labelled by route template, never the raw URL.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, skip := unobservedRoutes[c.FullPath()]; skip {
			c.Next()
			return
		}

		start := time.Now()

		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(duration)
	}
}
