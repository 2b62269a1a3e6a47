package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"naturapi/pkg/logger"
	"naturapi/pkg/metrics"
)

// RequestLogger logs one line per request and feeds the HTTP metrics.
// Errors attached with c.Error are logged alongside the request.
func RequestLogger(log *logger.Logger, m *metrics.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		m.ObserveHTTPRequest(route, c.Request.Method, status, elapsed)

		kv := []interface{}{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", elapsed,
			"trace_id", c.GetString("trace_id"),
		}
		if len(c.Errors) > 0 {
			log.Error("request failed", append(kv, "errors", c.Errors.String())...)
			return
		}
		log.Info("request", kv...)
	}
}
