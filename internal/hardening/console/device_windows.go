//go:build windows

package console

import (
	"golang.org/x/sys/windows"
)

// SystemDevice returns the CONOUT$ device of the current process.
func SystemDevice() Device {
	return conout{}
}

type conout struct{}

// OpenOutput opens CONOUT$ rather than the standard output handle, so the
// console is reached even when stdout is redirected.
func (conout) OpenOutput() (Handle, error) {
	name, err := windows.UTF16PtrFromString("CONOUT$")
	if err != nil {
		return nil, err
	}

	h, err := windows.CreateFile(
		name,
		windows.GENERIC_READ|windows.GENERIC_WRITE,
		windows.FILE_SHARE_WRITE,
		nil,
		windows.OPEN_EXISTING,
		0,
		0,
	)
	if err != nil {
		return nil, err
	}

	return outputHandle(h), nil
}

type outputHandle windows.Handle

func (h outputHandle) Mode() (uint32, error) {
	var mode uint32
	err := windows.GetConsoleMode(windows.Handle(h), &mode)

	return mode, err
}

func (h outputHandle) SetMode(mode uint32) error {
	return windows.SetConsoleMode(windows.Handle(h), mode)
}

func (h outputHandle) Close() error {
	return windows.CloseHandle(windows.Handle(h))
}
