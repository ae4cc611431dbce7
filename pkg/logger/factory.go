package logger

import (
	"io"
	"log/slog"
)

// New creates a logger writing human-readable records to console. When
// file is non-nil, the same records are also written there as JSON, so a
// run can be diagnosed after the fact from the log file alone.
func New(console, file io.Writer, level slog.Level) *slog.Logger {
	text := slog.NewTextHandler(console, &slog.HandlerOptions{Level: level})
	if file == nil {
		return slog.New(text)
	}
	js := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(newFanout(text, js))
}
