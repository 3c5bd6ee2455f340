package middleware

import (
	"strconv"

	"github.com/calyxerp/calyx_backend/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records per-route request counts on the collector.
// Uses the route template (c.FullPath) rather than the raw URL so path
// parameters don't explode label cardinality.
func MetricsMiddleware(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		collector.RecordHTTPRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()))
	}
}
