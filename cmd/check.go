package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fondos-dev/fondos/renderer"
	"github.com/google/subcommands"
)

type checkCmd struct {
	cutover string
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "look for movements with no matching transfer leg" }
func (*checkCmd) Usage() string {
	return `check [-cutover <d/m/y>]

  For funds with a nonzero balance, reports recent movements that have no
  exactly negated same-date movement in any fund, together with the most
  likely intended counterpart. Diagnostics only, nothing is modified.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.cutover, "cutover", "", "only check movements after this date (default from FONDOS_CUTOVER)")
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.cutover != "" {
		cfg.Cutover = c.cutover
	}
	cutover, err := cfg.CutoverDate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid cutover: %v\n", err)
		return subcommands.ExitUsageError
	}
	ledger, _, err := loadLedger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ChecksMarkdown(ledger.CheckTransfers(cutover)))
	return subcommands.ExitSuccess
}
