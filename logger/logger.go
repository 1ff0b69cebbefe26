// Package logger builds the structured loggers used by the command line tools.
package logger

import (
	"io"
	"log/slog"
	"strings"
)

// Level converts a level name (debug, info, warn or error) to a slog level.
// Unknown names map to info.
func Level(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a JSON logger with the specified level and output.
func New(level string, output io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{
		Level: Level(level),
	}))
}

// NewText creates a text logger (easier to read in a terminal).
func NewText(level string, output io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{
		Level: Level(level),
	}))
}

// NewWithFormat returns NewText if format is "text" and New otherwise.
func NewWithFormat(format, level string, output io.Writer) *slog.Logger {
	if strings.ToLower(format) == "text" {
		return NewText(level, output)
	}
	return New(level, output)
}
