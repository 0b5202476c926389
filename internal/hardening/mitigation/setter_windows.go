//go:build windows

package mitigation

import (
	"errors"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

//nolint:gochecknoglobals // Lazily bound system procedure
var (
	modkernel32                    = windows.NewLazySystemDLL("kernel32.dll")
	procSetProcessMitigationPolicy = modkernel32.NewProc("SetProcessMitigationPolicy")
)

// ProcessSetter returns a Setter for the current process.
func ProcessSetter() Setter {
	return processSetter{}
}

type processSetter struct{}

func (processSetter) SetPolicy(p Policy) error {
	if err := procSetProcessMitigationPolicy.Find(); err != nil {
		return err
	}

	flags := p.Flags

	r1, _, e1 := procSetProcessMitigationPolicy.Call(
		uintptr(p.Kind),
		uintptr(unsafe.Pointer(&flags)),
		unsafe.Sizeof(flags),
	)
	if r1 != 0 {
		return nil
	}

	var errno syscall.Errno
	if errors.As(e1, &errno) && errno != 0 {
		return errno
	}

	return syscall.EINVAL
}
