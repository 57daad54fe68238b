package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"aircast/internal/shared/logger"
)

// RequestLogger logs one line per request at debug level, errors at
// warn.
func RequestLogger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []interface{}{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"client_ip", c.ClientIP(),
		}

		if c.Writer.Status() >= 500 {
			log.Warnw("request failed", fields...)
			return
		}
		log.Debugw("request handled", fields...)
	}
}
