// Package explain provides the explain command, which prints the report
// line a failing step with a given Windows error code would produce.
package explain

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"syscall"

	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/winharden/internal/cli/commands/internal"
	"github.com/mpyw/winharden/internal/cli/output"
	"github.com/mpyw/winharden/internal/hardening/errreport"
)

// DefaultLabel is used when --label is not given.
const DefaultLabel = "explain"

// Runner executes the explain command.
type Runner struct {
	Describe errreport.Describer
	Stdout   io.Writer
}

// Options holds the options for the explain command.
type Options struct {
	Code  uint32
	Label string
}

// Command returns the explain command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "explain",
		Usage:     "Describe a Windows error code the way failure reports do",
		ArgsUsage: "<code>",
		Description: `Print the line that would be logged if a hardening step failed with
the given Windows error code. The code may be decimal or 0x-prefixed hex.

EXAMPLES:
   winharden explain 5                              Failed 'explain' with error 5: Access is denied.
   winharden explain --label SetConsoleMode 0x57   Use a step name as the label`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "label",
				Value: DefaultLabel,
				Usage: "Step name to put in the report line",
			},
		},
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return cliinternal.Usage("explain <code>")
	}

	code, err := ParseCode(cmd.Args().First())
	if err != nil {
		return err
	}

	r := &Runner{
		Describe: errreport.DescribeStatus,
		Stdout:   cmd.Root().Writer,
	}

	return r.Run(ctx, Options{
		Code:  code,
		Label: cmd.String("label"),
	})
}

// ParseCode parses a decimal or 0x-prefixed status code.
func ParseCode(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid error code %q: %w", s, err)
	}

	return uint32(v), nil
}

// Run executes the explain command.
func (r *Runner) Run(_ context.Context, opts Options) error {
	reporter := errreport.New(
		errreport.SinkFunc(func(message string) { output.Println(r.Stdout, message) }),
		errreport.WithDescriber(r.Describe),
	)
	reporter.Report(opts.Label, syscall.Errno(opts.Code))

	return nil
}
