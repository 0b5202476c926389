// Package colors provides pre-configured color functions for CLI output.
package colors

import "github.com/fatih/color"

//nolint:gochecknoglobals // Immutable color definitions initialized at package load
var (
	// Warning formats text in yellow for warning messages.
	Warning = color.New(color.FgYellow).SprintFunc()

	// Error formats text in red for error messages.
	Error = color.New(color.FgRed).SprintFunc()

	// Success formats text in green for success messages.
	Success = color.New(color.FgGreen).SprintFunc()

	// FieldLabel formats field labels (e.g., "Flags:") in cyan.
	FieldLabel = color.New(color.FgCyan).SprintFunc()

	// PolicyLabel formats policy labels (e.g., "SetProcessFontDisablePolicy") in bold.
	PolicyLabel = color.New(color.Bold).SprintFunc()

	// Order formats the position of a policy in the apply order in yellow.
	Order = color.New(color.FgYellow).SprintFunc()

	// Rule formats table separators in faint text.
	Rule = color.New(color.Faint).SprintFunc()

	// Failed formats "Failed" text in red.
	Failed = color.New(color.FgRed).SprintFunc()
)

// Disable turns off coloring for the rest of the process.
// Used when the console cannot interpret escape sequences.
func Disable() {
	color.NoColor = true
}
