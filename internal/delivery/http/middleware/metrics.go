package middleware

import (
	"strconv"
	"time"

	"github.com/fueldash/fuel-order-service/internal/infrastructure/metrics"
	"github.com/gin-gonic/gin"
)

func Metrics(m *metrics.OrderMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RequestDuration.
			WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
