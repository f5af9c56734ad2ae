// Package testutil provides shared helpers for tests.
package testutil

import (
	"io"
	"log/slog"
)

// DiscardLogger returns a logger that drops all output, keeping test
// logs clean.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
