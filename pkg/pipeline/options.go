package pipeline

import (
	"log/slog"
	"time"

	"github.com/antares2881/outlook-email-sender/pkg/report"
)

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger injects the logging sink. The default discards everything,
// so library users opt into logging explicitly.
func WithLogger(log *slog.Logger) Option {
	return func(p *Pipeline) {
		if log != nil {
			p.log = log
		}
	}
}

// WithObserver registers a callback invoked after each outcome is
// appended, in production order. Use it to flush the report row by row or
// to drive a progress display.
func WithObserver(fn func(report.Outcome)) Option {
	return func(p *Pipeline) {
		if fn != nil {
			p.observe = fn
		}
	}
}

// WithClock overrides the timestamp source. Tests use this to make
// outcomes deterministic.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		if now != nil {
			p.now = now
		}
	}
}
