package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Config holds logger options
type Config struct {
	Environment string // "development" writes human readable lines, anything else JSON
	Level       string // trace, debug, info, warn, error
	Output      io.Writer
}

// New creates a structured logger
func New(cfg Config) zerolog.Logger {
	var w io.Writer = cfg.Output
	if w == nil {
		w = os.Stdout
	}
	if cfg.Environment == "development" {
		w = zerolog.ConsoleWriter{Out: w}
	}

	return zerolog.New(w).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
}

// Nop returns a logger that discards everything
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// ParseLevel maps a level name to a zerolog level, defaulting to info
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
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

// ValidLevel reports whether s names a level ParseLevel understands
func ValidLevel(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "trace", "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}
