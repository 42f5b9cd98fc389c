package ini

import (
	"context"
	"log/slog"
)

// LevelTrace is a custom log level more verbose than Debug.
// Use for per-token iteration logging.
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = slog.Level(-8)

var logCtx = context.Background()

// logger wraps slog.Logger with nil-safe helpers.
type logger struct {
	l *slog.Logger
}

func (lg logger) enabled(level slog.Level) bool {
	return lg.l != nil && lg.l.Enabled(logCtx, level)
}

func (lg logger) log(level slog.Level, msg string, attrs ...slog.Attr) {
	if lg.l != nil && lg.l.Enabled(logCtx, level) {
		lg.l.LogAttrs(logCtx, level, msg, attrs...)
	}
}

func (lg logger) traceEnabled() bool {
	return lg.enabled(LevelTrace)
}

func (lg logger) trace(msg string, attrs ...slog.Attr) {
	lg.log(LevelTrace, msg, attrs...)
}
