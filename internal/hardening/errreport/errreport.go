// Package errreport turns platform failures into single-line reports.
//
// A report names the step that failed, the platform status code, and the
// system description of that code when one is available:
//
//	Failed 'SetConsoleMode' with error 5: Access is denied.
//
// Reporting is best-effort. Nothing in this package panics or returns an
// error to its caller; a report that cannot be produced is dropped.
package errreport

import (
	"errors"
	"fmt"
	"strings"
	"syscall"
)

// Sink receives composed report lines.
type Sink interface {
	ReportError(message string)
}

// SinkFunc adapts an ordinary function to Sink.
type SinkFunc func(message string)

// ReportError calls f(message).
func (f SinkFunc) ReportError(message string) {
	f(message)
}

// Describer looks up the system description of a status code.
type Describer func(code uint32) (string, error)

// Option configures a Reporter.
type Option func(*Reporter)

// WithDescriber replaces the platform description lookup.
func WithDescriber(describe Describer) Option {
	return func(r *Reporter) {
		r.describe = describe
	}
}

// Reporter delivers failure reports to a Sink.
type Reporter struct {
	sink     Sink
	describe Describer
}

// New creates a Reporter that delivers to sink.
func New(sink Sink, opts ...Option) *Reporter {
	r := &Reporter{
		sink:     sink,
		describe: DescribeStatus,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Report composes a line for the failure of label and hands it to the sink
// exactly once. A panic raised while describing, formatting or delivering
// is recovered and the report is dropped.
func (r *Reporter) Report(label string, err error) {
	defer func() { _ = recover() }()

	if r == nil || r.sink == nil {
		return
	}

	code, description := r.resolve(err)
	r.sink.ReportError(Format(label, code, description))
}

func (r *Reporter) resolve(err error) (uint32, string) {
	code, ok := StatusCode(err)
	if !ok {
		if err == nil {
			return 0, ""
		}

		return 0, err.Error()
	}

	if r.describe == nil {
		return code, ""
	}

	description, lookupErr := r.describe(code)
	if lookupErr != nil {
		return code, ""
	}

	return code, description
}

// StatusCode extracts the platform status code carried by err.
func StatusCode(err error) (uint32, bool) {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return 0, false
	}

	//nolint:gosec // G115: platform status codes are DWORDs
	return uint32(errno), true
}

// Format composes a report line. Only the first line of description is
// used, and a description that already ends with a period is not given a
// second one.
func Format(label string, code uint32, description string) string {
	description = firstLine(description)

	switch {
	case description == "":
		return fmt.Sprintf("Failed '%s' with error %d.", label, code)
	case strings.HasSuffix(description, "."):
		return fmt.Sprintf("Failed '%s' with error %d: %s", label, code, description)
	default:
		return fmt.Sprintf("Failed '%s' with error %d: %s.", label, code, description)
	}
}

func firstLine(s string) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		s = s[:i]
	}

	return strings.TrimSpace(s)
}
