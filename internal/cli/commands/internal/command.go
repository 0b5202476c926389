// Package internal provides shared utilities for CLI commands.
package internal

import (
	"context"
	"errors"
	"io"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/mpyw/winharden/internal/cli/output"
)

// CommandNotFound is a shared handler for unknown subcommands.
// It displays the command help and an error message.
func CommandNotFound(_ context.Context, cmd *cli.Command, command string) {
	_ = cli.ShowSubcommandHelp(cmd)
	output.Printf(ErrWriter(cmd), "\nUnknown command: %s\n", command)
}

// ErrWriter returns the root error writer, falling back to the root writer.
func ErrWriter(cmd *cli.Command) io.Writer {
	return lo.CoalesceOrEmpty(cmd.Root().ErrWriter, cmd.Root().Writer)
}

// Usage builds the error returned for malformed arguments.
func Usage(synopsis string) error {
	return errors.New("usage: winharden " + synopsis)
}
