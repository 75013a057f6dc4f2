package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestLogger registra cada request con método, ruta, status y
// latencia
func RequestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		entry := log.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
			"remote_ip":  c.ClientIP(),
		})

		switch {
		case status >= 500:
			entry.Error("request completed with server error")
		case status >= 400:
			entry.Warn("request completed with client error")
		default:
			entry.Info("request completed")
		}
	}
}
