package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/xid"

	"github.com/youruser/cardgen/internal/logging"
)

const requestIDKey = "request_id"

// requestLogger tags each request with an id and logs it once served.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := xid.New().String()
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)

		start := time.Now()
		c.Next()

		logging.Info("request",
			requestIDKey, id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
