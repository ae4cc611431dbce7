package logger

import (
	"context"
	"log/slog"
)

// fanout duplicates each record across several handlers, letting the
// console and the run log file receive the same stream at different
// levels and formats.
type fanout struct {
	targets []slog.Handler
}

func newFanout(targets ...slog.Handler) slog.Handler {
	return fanout{targets: targets}
}

// Enabled reports true when any target would accept the level, so a
// debug record still reaches the file handler while the console stays
// quiet.
func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, t := range f.targets {
		if t.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, rec slog.Record) error {
	var firstErr error
	for _, t := range f.targets {
		if !t.Enabled(ctx, rec.Level) {
			continue
		}
		if err := t.Handle(ctx, rec.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	return f.apply(func(t slog.Handler) slog.Handler { return t.WithAttrs(attrs) })
}

func (f fanout) WithGroup(name string) slog.Handler {
	return f.apply(func(t slog.Handler) slog.Handler { return t.WithGroup(name) })
}

func (f fanout) apply(fn func(slog.Handler) slog.Handler) slog.Handler {
	targets := make([]slog.Handler, len(f.targets))
	for i, t := range f.targets {
		targets[i] = fn(t)
	}
	return fanout{targets: targets}
}
