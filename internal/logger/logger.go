// Package logger provides a centralized slog-based logger for diagnostics.
// User-facing progress output goes through package console instead.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/swarm-toolkit/swarmgen/internal/branding"
)

const (
	defaultLevel  = "info"
	defaultFormat = "text"
)

// Init configures the default logger.
// Priority: verbose flag > SWARMGEN_LOG_LEVEL > LOG_LEVEL > "info".
// SWARMGEN_LOG_FORMAT selects text (default) or json.
func Init(w io.Writer, verbose bool) {
	levelStr := os.Getenv(branding.EnvVar("log_level"))
	if levelStr == "" {
		levelStr = os.Getenv("LOG_LEVEL")
	}
	level := parseLevel(levelStr)
	if verbose {
		level = slog.LevelDebug
	}

	format := strings.ToLower(os.Getenv(branding.EnvVar("log_format")))
	if format == "" {
		format = defaultFormat
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	slog.SetDefault(slog.New(handler))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "":
		return parseLevel(defaultLevel)
	default:
		return slog.LevelInfo
	}
}

// Debug logs at debug level.
func Debug(msg string, args ...any) {
	slog.Debug(msg, args...)
}

// Error logs at error level.
func Error(msg string, args ...any) {
	slog.Error(msg, args...)
}
