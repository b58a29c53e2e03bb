package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"book-catalog/pkg/metrics"
)

// Metrics records Prometheus counters and latency per handled request.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		metrics.RecordHTTPRequest(endpoint, c.Request.Method, status)
		metrics.RecordHTTPRequestDuration(endpoint, c.Request.Method, status, time.Since(start).Seconds())
	}
}
