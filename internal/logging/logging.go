// Package logging builds the process-wide zerolog logger.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Level maps LOG_LEVEL values to zerolog levels. The trace variants are
// accepted for compatibility with older deployments; unknown values mean info.
func Level(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace", "trace1", "trace-1", "trace2", "trace-2", "trace3", "trace-3":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New returns a JSON logger writing to w at the given level.
func New(level string, w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	return zerolog.New(w).
		Level(Level(level)).
		With().
		Timestamp().
		Str("service", "booking-api").
		Logger()
}
