// Package logging builds the structured logger used for diagnostics.
package logging

import (
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// New creates a logfmt logger writing to w with timestamp and caller
// fields. Debug lines are dropped unless verbose is set.
func New(w io.Writer, verbose bool) log.Logger {
	allow := level.AllowInfo()
	if verbose {
		allow = level.AllowDebug()
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, allow)
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}

// Nop returns a logger that discards everything.
func Nop() log.Logger {
	return log.NewNopLogger()
}
