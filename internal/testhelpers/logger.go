// Package testhelpers provides logging helpers for tests.
package testhelpers

import (
	"io"
	"log/slog"

	"github.com/jonathan/fitness-roadmap/internal/logging"
)

// NewLogger returns a debug-level logger writing to sink, usually a Writer from NewWriter.
func NewLogger(sink io.Writer) *slog.Logger {
	handler := logging.NewContextHandler(slog.NewTextHandler(sink, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	return slog.New(handler)
}
