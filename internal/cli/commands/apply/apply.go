// Package apply provides the apply command, which runs the startup
// hardening bootstrap against the winharden process itself.
package apply

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/mpyw/winharden/internal/cli/colors"
	cliinternal "github.com/mpyw/winharden/internal/cli/commands/internal"
	"github.com/mpyw/winharden/internal/cli/output"
	"github.com/mpyw/winharden/internal/hardening/errormode"
	"github.com/mpyw/winharden/internal/logging"
	"github.com/mpyw/winharden/pkg/bootstrap"
)

// ErrRejected is printed next to a step that reported a failure.
// The platform detail is in the log line emitted by the reporter.
var ErrRejected = errors.New("rejected by the platform (see log)")

// Bootstrapper is the startup hardening surface driven by the command.
type Bootstrapper interface {
	EnableTerminalAnsiSupport() bool
	EnableMitigations() bool
}

// Runner executes the apply command.
type Runner struct {
	Bootstrap         Bootstrapper
	SuppressErrorMode func() uint32
	DisableColor      func()
	Stdout            io.Writer
	Stderr            io.Writer
}

// Options holds the options for the apply command.
type Options struct {
	Terminal             bool
	Mitigations          bool
	SuppressErrorDialogs bool
	KeepGoing            bool
}

// Command returns the apply command.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "apply",
		Usage: "Harden this process and report which steps the platform accepted",
		Description: `Run the startup hardening bootstrap against the winharden process.

STEPS (in order):
   error-dialogs  Keep crashes from raising error dialogs or crash dumps
   terminal       Enable ANSI escape sequence processing on the console
   mitigations    Apply the process mitigation policies (see 'winharden policies')

Each failing step is logged as a single line naming the rejected call and
the Windows error code. Without --keep-going the first failing step stops
the run. Mitigations that were applied before a failure stay in effect.

EXAMPLES:
   winharden apply                       Run every step
   winharden apply --no-mitigations      Only prepare the console
   winharden apply --keep-going          Try every step even after a failure
   winharden apply --log-level debug     Verbose logging`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-terminal",
				Usage: "Skip enabling ANSI escape sequence processing",
			},
			&cli.BoolFlag{
				Name:  "no-mitigations",
				Usage: "Skip applying process mitigation policies",
			},
			&cli.BoolFlag{
				Name:    "allow-error-dialogs",
				Usage:   "Leave the process error mode untouched",
				Sources: cli.EnvVars("WINHARDEN_ALLOW_ERROR_DIALOGS"),
			},
			&cli.BoolFlag{
				Name:    "keep-going",
				Usage:   "Continue with the remaining steps after a failure",
				Sources: cli.EnvVars("WINHARDEN_KEEP_GOING"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   logging.DefaultLevel,
				Usage:   "Log level (trace, debug, info, warn, error, critical, off)",
				Sources: cli.EnvVars("WINHARDEN_LOG_LEVEL"),
			},
		},
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() > 0 {
		return cliinternal.Usage("apply [options]")
	}

	stderr := cliinternal.ErrWriter(cmd)

	logger, err := logging.New(stderr, cmd.String("log-level"))
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	r := &Runner{
		Bootstrap:         bootstrap.New(logging.Sink(logger)),
		SuppressErrorMode: errormode.Suppress,
		DisableColor:      colors.Disable,
		Stdout:            cmd.Root().Writer,
		Stderr:            stderr,
	}

	return r.Run(ctx, Options{
		Terminal:             !cmd.Bool("no-terminal"),
		Mitigations:          !cmd.Bool("no-mitigations"),
		SuppressErrorDialogs: !cmd.Bool("allow-error-dialogs"),
		KeepGoing:            cmd.Bool("keep-going"),
	})
}

type step struct {
	name    string
	done    string
	enabled bool
	run     func() bool
	onFail  func()
}

// Run executes the apply command.
func (r *Runner) Run(_ context.Context, opts Options) error {
	steps := []step{
		{
			name:    "error-dialogs",
			enabled: opts.SuppressErrorDialogs,
			run:     r.suppressErrorDialogs,
		},
		{
			name:    "terminal",
			done:    "Enabled ANSI escape sequence processing",
			enabled: opts.Terminal,
			run:     r.Bootstrap.EnableTerminalAnsiSupport,
			onFail:  r.DisableColor,
		},
		{
			name:    "mitigations",
			done:    "Applied process mitigation policies",
			enabled: opts.Mitigations,
			run:     r.Bootstrap.EnableMitigations,
		},
	}

	var failed []string

	for _, s := range steps {
		if !s.enabled {
			continue
		}

		if s.run() {
			if s.done != "" {
				output.Success(r.Stdout, "%s", s.done)
			}

			continue
		}

		if s.onFail != nil {
			s.onFail()
		}

		output.Failed(r.Stderr, s.name, ErrRejected)
		failed = append(failed, s.name)

		if !opts.KeepGoing {
			return fmt.Errorf("hardening step %q failed", s.name)
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("hardening steps failed: %v", failed)
	}

	return nil
}

func (r *Runner) suppressErrorDialogs() bool {
	previous := r.SuppressErrorMode()
	output.Success(r.Stdout, "Suppressed error dialogs (previous mode 0x%04X)", previous)

	return true
}
