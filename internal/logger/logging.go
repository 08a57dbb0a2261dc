// Package logger builds prefixed charmbracelet/log loggers for packages whose
// stdout is owned by their protocol (msgpack IPC, batch output).
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// New creates a prefixed stderr logger that picks up the global log level.
// Diagnostics must stay off stdout so they never interleave with IPC frames
// or batch output.
func New(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// NewWithConfig creates a stderr logger with explicit options, for callers
// like the interactive CLI that want timestamps off.
func NewWithConfig(prefix string, level log.Level, caller bool, showTimestamp bool, fmt log.Formatter) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: showTimestamp,
		Formatter:       fmt,
	})
}
