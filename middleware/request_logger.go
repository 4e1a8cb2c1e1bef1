package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"animate-frames-lambda/application/ports/outbound"
)

func RequestLogger(logger outbound.LoggerPort) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		logger.InfoWithFields("request handled", map[string]interface{}{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(started).String(),
		})
	}
}
