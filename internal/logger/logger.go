// Package logger configures the global slog logger. Output goes to
// stderr: stdout belongs to the console menu.
package logger

import (
	"log/slog"
	"os"
)

// Setup initializes the global slog logger with a text handler on stderr.
func Setup(level slog.Level) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// ParseLevel converts a string log level to slog.Level.
// Unrecognized values default to info.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
