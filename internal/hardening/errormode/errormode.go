// Package errormode keeps the process from raising system error dialogs.
//
// Without it, a crash in a hardened process can open a Windows Error
// Reporting dialog and write a dump that may contain process memory.
package errormode

// SetErrorMode flags.
const (
	FailCriticalErrors uint32 = 0x0001
	NoGPFaultErrorBox  uint32 = 0x0002
	NoOpenFileErrorBox uint32 = 0x8000
)

// Quiet is the mode Suppress applies.
const Quiet = FailCriticalErrors | NoGPFaultErrorBox | NoOpenFileErrorBox

// setErrorMode is swapped in tests.
//
//nolint:gochecknoglobals // Required for test mocking
var setErrorMode = platformSetErrorMode

// Suppress applies Quiet and returns the previous error mode.
func Suppress() uint32 {
	return setErrorMode(Quiet)
}
