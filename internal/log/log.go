// Package log is a thin facade over log/slog for the interpreter's own
// diagnostics (never for program output). The level is adjustable at
// runtime via the CLI's --log-level flag.
package log

import (
	"log/slog"
	"os"
	"strings"
)

var level = new(slog.LevelVar)

func init() {
	level.Set(slog.LevelWarn)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// ParseLevel maps a level name to a slog.Level, defaulting to warn for
// anything unrecognized.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelWarn
}

// SetLevel adjusts the minimum level emitted by the default logger.
func SetLevel(l slog.Level) { level.Set(l) }

func Debug(msg string, args ...any) { slog.Debug(msg, args...) }
func Info(msg string, args ...any)  { slog.Info(msg, args...) }
func Warn(msg string, args ...any)  { slog.Warn(msg, args...) }
func Error(msg string, args ...any) { slog.Error(msg, args...) }
