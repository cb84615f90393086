// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// ParseLevel maps debug|info|warn|error (any case) to a slog level.
// Unknown names map to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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

// NewLogger returns a text or JSON logger on w tagged with a fresh run id.
// quiet raises the level to warn so progress messages are dropped but
// skipped-record warnings still show.
func NewLogger(w io.Writer, format, level string, quiet bool) *slog.Logger {
	lvl := ParseLevel(level)
	if quiet && lvl < slog.LevelWarn {
		lvl = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: lvl}
	var h slog.Handler
	if format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h).With("run", uuid.NewString())
}

// Warnf returns a printf-style warning sink that logs at warn level with
// the given source attribute.
func Warnf(l *slog.Logger, source string) func(format string, a ...any) {
	return func(format string, a ...any) {
		l.Warn(fmt.Sprintf(format, a...), "source", source)
	}
}
