// Package mitigation applies the process mitigation policies winharden
// enforces on itself.
package mitigation

import "fmt"

// Kind is a PROCESS_MITIGATION_POLICY value.
type Kind uint32

// Mitigation policy kinds used by this package.
const (
	KindDynamicCode       Kind = 2
	KindStrictHandleCheck Kind = 3
	KindSystemCallDisable Kind = 4
	KindSignature         Kind = 8
	KindFontDisable       Kind = 9
	KindImageLoad         Kind = 10
	KindChildProcess      Kind = 13
)

// String returns the platform name of the policy kind.
func (k Kind) String() string {
	switch k {
	case KindDynamicCode:
		return "ProcessDynamicCodePolicy"
	case KindStrictHandleCheck:
		return "ProcessStrictHandleCheckPolicy"
	case KindSystemCallDisable:
		return "ProcessSystemCallDisablePolicy"
	case KindSignature:
		return "ProcessSignaturePolicy"
	case KindFontDisable:
		return "ProcessFontDisablePolicy"
	case KindImageLoad:
		return "ProcessImageLoadPolicy"
	case KindChildProcess:
		return "ProcessChildProcessPolicy"
	default:
		return fmt.Sprintf("ProcessMitigationPolicy(%d)", uint32(k))
	}
}

// Flag bits of the PROCESS_MITIGATION_*_POLICY structures. Each structure
// is a single DWORD of bit fields.
const (
	ImageLoadNoRemoteImages            uint32 = 1 << 0
	ImageLoadNoLowMandatoryLabelImages uint32 = 1 << 1

	FontDisableNonSystemFonts uint32 = 1 << 0

	DynamicCodeProhibit uint32 = 1 << 0

	ChildProcessNoCreation uint32 = 1 << 0

	SignatureMicrosoftSignedOnly uint32 = 1 << 0

	SystemCallDisallowWin32k uint32 = 1 << 0

	StrictHandleRaiseOnInvalidReference uint32 = 1 << 0
	StrictHandlePermanentlyEnabled      uint32 = 1 << 1
)

// Policy is one mitigation policy record.
type Policy struct {
	Kind      Kind
	Flags     uint32
	FlagNames []string
	Summary   string
}

// Label names the policy in failure reports.
func (p Policy) Label() string {
	return "Set" + p.Kind.String()
}

// Policies returns the policies in the order they are applied.
// The slice is built fresh on every call.
func Policies() []Policy {
	return []Policy{
		{
			Kind:      KindImageLoad,
			Flags:     ImageLoadNoRemoteImages | ImageLoadNoLowMandatoryLabelImages,
			FlagNames: []string{"NoRemoteImages", "NoLowMandatoryLabelImages"},
			Summary:   "Refuse images from remote locations and from low integrity labeled files",
		},
		{
			Kind:      KindFontDisable,
			Flags:     FontDisableNonSystemFonts,
			FlagNames: []string{"DisableNonSystemFonts"},
			Summary:   "Load only fonts installed in the system font directory",
		},
		{
			Kind:      KindDynamicCode,
			Flags:     DynamicCodeProhibit,
			FlagNames: []string{"ProhibitDynamicCode"},
			Summary:   "Forbid generating or modifying executable code at run time",
		},
		{
			Kind:      KindChildProcess,
			Flags:     ChildProcessNoCreation,
			FlagNames: []string{"NoChildProcessCreation"},
			Summary:   "Forbid creating child processes",
		},
		{
			Kind:      KindSignature,
			Flags:     SignatureMicrosoftSignedOnly,
			FlagNames: []string{"MicrosoftSignedOnly"},
			Summary:   "Load only binaries signed by Microsoft",
		},
		{
			Kind:      KindSystemCallDisable,
			Flags:     SystemCallDisallowWin32k,
			FlagNames: []string{"DisallowWin32kSystemCalls"},
			Summary:   "Forbid win32k windowing and graphics system calls",
		},
		{
			Kind:      KindStrictHandleCheck,
			Flags:     StrictHandleRaiseOnInvalidReference | StrictHandlePermanentlyEnabled,
			FlagNames: []string{"RaiseExceptionOnInvalidHandleReference", "HandleExceptionsPermanentlyEnabled"},
			Summary:   "Raise an exception on any use of an invalid handle",
		},
	}
}
