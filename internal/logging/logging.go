// Package logging provides the structured logger shared by the ccc commands.
//
// Output goes to stderr so bundles written to stdout stay clean. The logger
// is built on log/slog; --verbose switches the level to debug, which is where
// per-file traversal progress and resolution misses are reported.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates a stderr logger. Verbose enables debug-level output.
func New(verbose bool) *slog.Logger {
	return NewWithWriter(os.Stderr, verbose)
}

// NewWithWriter creates a logger writing to the given writer.
func NewWithWriter(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
