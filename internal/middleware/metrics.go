package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jordache-jozz8/BA-system/internal/metrics"
)

// Metrics records every request. Unmatched paths share one route label to
// keep label cardinality bounded.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.Observe(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
