// Package logging sets up the leveled logger of the winharden host.
package logging

import (
	"fmt"
	"io"

	"github.com/btcsuite/btclog"

	"github.com/mpyw/winharden/internal/hardening/errreport"
)

// Subsystem is the tag printed on every log line.
const Subsystem = "HRDN"

// DefaultLevel is used when no level is configured.
const DefaultLevel = "info"

// New creates a logger writing to w at the named level
// (trace, debug, info, warn, error, critical, off).
func New(w io.Writer, level string) (btclog.Logger, error) {
	lvl, ok := btclog.LevelFromString(level)
	if !ok {
		return nil, fmt.Errorf("unknown log level %q", level)
	}

	logger := btclog.NewBackend(w).Logger(Subsystem)
	logger.SetLevel(lvl)

	return logger, nil
}

// Sink delivers hardening failure reports to logger at error level.
func Sink(logger btclog.Logger) errreport.Sink {
	return errreport.SinkFunc(func(message string) {
		logger.Error(message)
	})
}
