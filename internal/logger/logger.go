// Package logger configures structured logging for the checker.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ParseLevel parses a log level case-insensitively. ok is false for unknown
// levels, in which case the level is info.
func ParseLevel(s string) (level slog.Level, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// Setup creates a logger writing to w in the given format, json or text, and
// installs it as the slog default. An unknown level falls back to info with a
// warning.
func Setup(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, ok := ParseLevel(level)
	opts := &slog.HandlerOptions{Level: lvl}
	var h slog.Handler
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	case "text", "":
		h = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	l := slog.New(h)
	if !ok {
		l.Warn("invalid log level configured, using default level",
			"configured_level", level,
			"default_level", "info")
	}
	slog.SetDefault(l)
	return l, nil
}
