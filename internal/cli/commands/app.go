// Package commands provides the command-line interface for winharden.
package commands

import (
	"github.com/urfave/cli/v3"

	"github.com/mpyw/winharden/internal/cli/commands/apply"
	"github.com/mpyw/winharden/internal/cli/commands/explain"
	cliinternal "github.com/mpyw/winharden/internal/cli/commands/internal"
	"github.com/mpyw/winharden/internal/cli/commands/policies"
)

// MakeApp creates a new CLI application instance.
func MakeApp() *cli.Command {
	return &cli.Command{
		Name:    "winharden",
		Usage:   "Harden the current Windows process and its console",
		Version: "0.1.0",
		Commands: []*cli.Command{
			apply.Command(),
			policies.Command(),
			explain.Command(),
		},
		CommandNotFound: cliinternal.CommandNotFound,
	}
}

// App is the main CLI application.
var App = MakeApp()
