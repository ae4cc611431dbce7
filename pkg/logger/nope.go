package logger

import (
	"io"
	"log/slog"
)

// NewNope returns a logger that drops every record. Library packages
// use it as their default so logging stays opt-in for callers.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
