package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const keyLogger = "logger"

// RequestLogger stores a request-scoped logger on the context and writes one
// access log line per request once the chain has finished.
func RequestLogger(base zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		log := base.With().Str("request_id", c.GetString(keyRequestID)).Logger()
		c.Set(keyLogger, log)

		c.Next()

		status := c.Writer.Status()
		ev := log.Info()
		if status >= 500 {
			ev = log.Error()
		}
		ev.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}

// LoggerFrom returns the request-scoped logger, or a no-op logger outside
// RequestLogger.
func LoggerFrom(c *gin.Context) zerolog.Logger {
	if v, ok := c.Get(keyLogger); ok {
		if log, ok := v.(zerolog.Logger); ok {
			return log
		}
	}
	return zerolog.Nop()
}
