// Package bootstrap hardens the current process at startup.
//
// Call it from main before any goroutines that do real work are started.
// Several mitigation policies are process-wide and some cannot be set once
// other threads are running.
//
//	b := bootstrap.New(errreport.SinkFunc(func(msg string) { log.Print(msg) }))
//	if !b.EnableTerminalAnsiSupport() {
//		// colors are unavailable, keep going
//	}
//	if !b.EnableMitigations() {
//		os.Exit(1)
//	}
//
// Both operations report a failure through the sink before returning false.
// What a false result means for the process is up to the caller.
package bootstrap

import (
	"github.com/mpyw/winharden/internal/hardening/console"
	"github.com/mpyw/winharden/internal/hardening/errreport"
	"github.com/mpyw/winharden/internal/hardening/mitigation"
)

// Option configures a Bootstrap.
type Option func(*options)

type options struct {
	device    console.Device
	setter    mitigation.Setter
	describer errreport.Describer
}

// WithConsoleDevice replaces the console device.
func WithConsoleDevice(device console.Device) Option {
	return func(o *options) {
		o.device = device
	}
}

// WithMitigationSetter replaces the process mitigation setter.
func WithMitigationSetter(setter mitigation.Setter) Option {
	return func(o *options) {
		o.setter = setter
	}
}

// WithDescriber replaces the status code description lookup.
func WithDescriber(describe errreport.Describer) Option {
	return func(o *options) {
		o.describer = describe
	}
}

// Bootstrap runs the startup hardening operations.
type Bootstrap struct {
	terminal    *console.Enabler
	mitigations *mitigation.Applier
}

// New creates a Bootstrap that reports failures to sink.
func New(sink errreport.Sink, opts ...Option) *Bootstrap {
	o := &options{
		device:    console.SystemDevice(),
		setter:    mitigation.ProcessSetter(),
		describer: errreport.DescribeStatus,
	}
	for _, opt := range opts {
		opt(o)
	}

	reporter := errreport.New(sink, errreport.WithDescriber(o.describer))

	return &Bootstrap{
		terminal:    console.NewEnabler(o.device, reporter),
		mitigations: mitigation.NewApplier(o.setter, reporter),
	}
}

// EnableTerminalAnsiSupport turns on ANSI escape sequence processing for
// the console output.
func (b *Bootstrap) EnableTerminalAnsiSupport() bool {
	return b.terminal.EnableVirtualTerminal()
}

// EnableMitigations applies the process mitigation policies.
func (b *Bootstrap) EnableMitigations() bool {
	return b.mitigations.Apply()
}
