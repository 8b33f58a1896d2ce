// Package logging configures the process-wide slog logger for the CLI.
package logging

import (
	"log/slog"
	"os"
)

// Init installs a text-format logger on stderr as the slog default.
// Verbose enables debug-level search tracing.
func Init(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
}
