package annotile

import (
	"context"
	"log/slog"
	"os"

	"github.com/paulmach/orb/maptile"
)

// Logger wraps slog.Logger with annotile-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// WithTile adds a tile field to the logger.
func (l *Logger) WithTile(tile maptile.Tile) *Logger {
	return &Logger{
		Logger: l.Logger.With("z", uint32(tile.Z), "x", tile.X, "y", tile.Y),
	}
}

// LogAdd logs a batch add operation.
func (l *Logger) LogAdd(ctx context.Context, points, tiles int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "add annotations failed",
			"points", points,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "add annotations completed",
			"points", points,
			"tiles", tiles,
		)
	}
}

// LogRemove logs a batch remove operation.
func (l *Logger) LogRemove(ctx context.Context, ids, tiles int) {
	l.DebugContext(ctx, "remove annotations completed",
		"ids", ids,
		"tiles", tiles,
	)
}

// LogQuery logs a bounds query.
func (l *Logger) LogQuery(ctx context.Context, results int) {
	l.DebugContext(ctx, "bounds query completed",
		"results", results,
	)
}
