// Package logger builds the slog loggers used across the tool: a
// human-readable console stream fanned out, when a run log file is
// configured, to a JSON file handler so every run leaves a structured
// trace on disk.
//
// Library packages never log through globals; they receive an injected
// *slog.Logger and default to the no-op logger from NewNope.
package logger
