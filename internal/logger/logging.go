// Package logger wraps charmbracelet/log's constructors so every component
// gets a prefixed logger that follows the global log level.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a prefixed charm logger on stderr. Stdout is left alone
// because the IPC transport writes its frames there.
func New(prefix string) *log.Logger {
	return NewWithConfig(os.Stderr, prefix, log.GetLevel(), false, true, log.TextFormatter)
}

// NewWithConfig creates a charm logger with custom options.
func NewWithConfig(w io.Writer, prefix string, level log.Level, caller bool, showTimestamp bool, fmt log.Formatter) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: showTimestamp,
		Formatter:       fmt,
	})
}

// Setup configures the package-level logger used across assetserve.
// debug turns on debug output with timestamps; otherwise level applies.
func Setup(w io.Writer, level log.Level, debug bool) {
	log.SetOutput(w)
	if debug {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
		return
	}
	log.SetLevel(level)
	log.SetReportTimestamp(false)
}
