package middleware

import (
	"strconv"
	"time"

	"github.com/capsule-retail/inventory-dashboard/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics observes request latency by method, route template and status.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, routeOf(c), strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
