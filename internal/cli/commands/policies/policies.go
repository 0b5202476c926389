// Package policies provides the policies command, which lists the process
// mitigation policies in the order apply sets them.
package policies

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/mpyw/winharden/internal/cli/colors"
	cliinternal "github.com/mpyw/winharden/internal/cli/commands/internal"
	"github.com/mpyw/winharden/internal/cli/output"
	"github.com/mpyw/winharden/internal/cli/pager"
	"github.com/mpyw/winharden/internal/cli/terminal"
	"github.com/mpyw/winharden/internal/hardening/mitigation"
)

// maxRuleWidth caps the separator drawn under the header.
const maxRuleWidth = 80

// Runner executes the policies command.
type Runner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Options holds the options for the policies command.
type Options struct {
	Output    output.Format
	Verbose   bool
	RuleWidth int
}

// JSONOutputItem represents a single policy in JSON output.
type JSONOutputItem struct {
	Order     int      `json:"order"`
	Label     string   `json:"label"`
	Policy    string   `json:"policy"`
	Kind      uint32   `json:"kind"`
	Flags     uint32   `json:"flags"`
	FlagNames []string `json:"flagNames"`
	Summary   string   `json:"summary"`
}

// Command returns the policies command.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "policies",
		Aliases: []string{"ls"},
		Usage:   "List the process mitigation policies in apply order",
		Description: `List the process mitigation policies 'winharden apply' sets, in the
order they are set. The first policy the platform rejects stops the run,
so a failure at one position means none of the later ones were tried.

EXAMPLES:
   winharden policies                 Policy labels and flag values
   winharden policies --verbose       Include flag names and summaries
   winharden policies --output=json   Machine-readable output`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Show flag names and a summary for each policy",
			},
			&cli.BoolFlag{
				Name:  "no-pager",
				Usage: "Disable pager output",
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "Output format: text (default) or json",
			},
		},
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() > 0 {
		return cliinternal.Usage("policies [options]")
	}

	opts := Options{
		Output:    output.ParseFormat(cmd.String("output")),
		Verbose:   cmd.Bool("verbose"),
		RuleWidth: terminal.Width(cmd.Root().Writer, maxRuleWidth),
	}

	if opts.Output == output.FormatJSON && opts.Verbose {
		output.Warning(cliinternal.ErrWriter(cmd), "--verbose has no effect with --output=json")
	}

	noPager := cmd.Bool("no-pager") || opts.Output == output.FormatJSON

	return pager.WithPagerWriter(cmd.Root().Writer, noPager, func(w io.Writer) error {
		r := &Runner{
			Stdout: w,
			Stderr: cliinternal.ErrWriter(cmd),
		}

		return r.Run(ctx, opts)
	})
}

// Run executes the policies command.
func (r *Runner) Run(_ context.Context, opts Options) error {
	list := mitigation.Policies()

	if opts.Output == output.FormatJSON {
		items := lo.Map(list, func(p mitigation.Policy, i int) JSONOutputItem {
			return JSONOutputItem{
				Order:     i + 1,
				Label:     p.Label(),
				Policy:    p.Kind.String(),
				Kind:      uint32(p.Kind),
				Flags:     p.Flags,
				FlagNames: p.FlagNames,
				Summary:   p.Summary,
			}
		})

		enc := json.NewEncoder(r.Stdout)
		enc.SetIndent("", "  ")

		return enc.Encode(items)
	}

	labelWidth := lo.Max(lo.Map(list, func(p mitigation.Policy, _ int) int { return len(p.Label()) }))

	w := output.New(r.Stdout)
	output.Printf(r.Stdout, "%-3s %-*s %s\n", "#", labelWidth, "LABEL", "FLAGS")
	w.Rule(opts.RuleWidth)

	for i, p := range list {
		output.Printf(r.Stdout, "%s %s %s\n",
			colors.Order(fmt.Sprintf("%-3d", i+1)),
			colors.PolicyLabel(fmt.Sprintf("%-*s", labelWidth, p.Label())),
			fmt.Sprintf("0x%08X", p.Flags),
		)

		if opts.Verbose {
			w.Field("Policy", fmt.Sprintf("%s (%d)", p.Kind, uint32(p.Kind)))
			w.Field("Flags", strings.Join(p.FlagNames, ", "))
			w.Field("Summary", p.Summary)
		}
	}

	return nil
}
