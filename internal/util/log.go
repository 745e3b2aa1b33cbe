// Package util contains small helpers shared by the autoloanc
// packages.
package util

import (
	"io"
	"log/slog"
)

// LevelForVerbosity maps the --verbose count to a log level.
func LevelForVerbosity(verbosity int) slog.Level {
	switch {
	case verbosity <= 0:
		return slog.LevelWarn
	case verbosity == 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// NewLogger creates a text logger writing to w. It does not set the
// global logger.
func NewLogger(verbosity int, w io.Writer) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: LevelForVerbosity(verbosity),
	})
	return slog.New(handler)
}
