package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/venomous-dashboard/notes-service/pkg/logger"
)

// RequestLogger logs each request with method, path, status and
// latency. Health checks are skipped to keep probe noise out of the
// logs.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		logger.Get().Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
