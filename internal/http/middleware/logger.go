package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func Logger(l zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		evt := l.Info()
		if c.Writer.Status() >= 500 {
			evt = l.Error()
		}
		if sid := c.Param("id"); sid != "" {
			evt = evt.Str("session_id", sid)
		}
		evt.
			Str("request_id", c.GetString(RequestIDHeader)).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", c.Writer.Status()).
			Dur("latency", latency).
			Msg("request")
	}
}
