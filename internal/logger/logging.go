// Package logger provides prefixed charmbracelet/log loggers for packages that
// want their own tag in the output.
//
// Loggers write to stderr: stdout carries the msgpack stream in IPC mode.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a default charm logger that follows the global log level.
func New(prefix string) *log.Logger {
	return NewWithConfig(os.Stderr, prefix, log.GetLevel(), false, log.GetLevel() <= log.DebugLevel, log.TextFormatter)
}

// NewWithConfig creates a charm logger with custom config
func NewWithConfig(w io.Writer, prefix string, level log.Level, caller bool, showTimestamp bool, fmt log.Formatter) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: showTimestamp,
		Formatter:       fmt,
	})
}
