// Package logging configures the process-wide structured logger.
package logging

import (
	"io"
	"log/slog"
)

// New returns a JSON logger writing to w at level, tagged with the
// environment name.
func New(w io.Writer, level slog.Level, environment string) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("service", "hrpulse", "env", environment)
}

// Setup installs the logger as the slog default and returns it.
func Setup(w io.Writer, level slog.Level, environment string) *slog.Logger {
	logger := New(w, level, environment)
	slog.SetDefault(logger)
	return logger
}
