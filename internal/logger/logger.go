// Package logger builds the charmbracelet/log loggers used by the
// command-line tools. Library packages do not log.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// New creates a logger writing to stderr, so program output on stdout
// stays machine-readable.
func New(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// NewVerbose creates a debug-level logger with timestamps, for the
// benchmark and dictionary tools.
func NewVerbose(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
		Level:           log.DebugLevel,
	})
}
