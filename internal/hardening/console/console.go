// Package console turns on virtual terminal processing for the console
// attached to the current process, so that ANSI escape sequences written to
// it are interpreted instead of printed.
package console

// ModeVirtualTerminalProcessing is ENABLE_VIRTUAL_TERMINAL_PROCESSING.
const ModeVirtualTerminalProcessing uint32 = 0x0004

// Labels passed to the Reporter, one per step that can fail.
const (
	LabelOpen    = "CreateFile(CONOUT$)"
	LabelGetMode = "GetConsoleMode"
	LabelSetMode = "SetConsoleMode"
)

// Handle is an open console output handle.
type Handle interface {
	Mode() (uint32, error)
	SetMode(mode uint32) error
	Close() error
}

// Device opens the console output of the current process.
type Device interface {
	OpenOutput() (Handle, error)
}

// Reporter receives the failure of a labeled step.
type Reporter interface {
	Report(label string, err error)
}

// Enabler enables virtual terminal processing on a Device.
type Enabler struct {
	device   Device
	reporter Reporter
}

// NewEnabler creates an Enabler.
func NewEnabler(device Device, reporter Reporter) *Enabler {
	return &Enabler{
		device:   device,
		reporter: reporter,
	}
}

// EnableVirtualTerminal makes sure the console output has virtual terminal
// processing enabled. The mode is only written when the flag is missing.
// Failures are reported and turn into a false result.
func (e *Enabler) EnableVirtualTerminal() bool {
	h, err := e.device.OpenOutput()
	if err != nil {
		e.reporter.Report(LabelOpen, err)

		return false
	}
	defer func() { _ = h.Close() }()

	mode, err := h.Mode()
	if err != nil {
		e.reporter.Report(LabelGetMode, err)

		return false
	}

	if mode&ModeVirtualTerminalProcessing != 0 {
		return true
	}

	if err := h.SetMode(mode | ModeVirtualTerminalProcessing); err != nil {
		e.reporter.Report(LabelSetMode, err)

		return false
	}

	return true
}
