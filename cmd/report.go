package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/fondos-dev/fondos"
	"github.com/fondos-dev/fondos/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	windows string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "print the variation reports from the stored ledger" }
func (*reportCmd) Usage() string {
	return `report [-w <days,days,...>]

  Computes the action-adjusted variation, consolidated figures and unit-value
  returns for each lookback window, without ingesting anything.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.windows, "w", "", "comma-separated lookback windows in days (default from FONDOS_WINDOWS)")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	windows := cfg.Windows
	if c.windows != "" {
		windows = windows[:0]
		for _, part := range strings.Split(c.windows, ",") {
			days, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: invalid window %q: %v\n", part, err)
				return subcommands.ExitUsageError
			}
			windows = append(windows, days)
		}
	}

	ledger, _, err := loadLedger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	today := fondos.Today()
	for _, days := range windows {
		report, err := ledger.Variation(today, days)
		if err != nil {
			log.Printf("skipping window: %v", err)
			continue
		}
		printMarkdown(renderer.VariationMarkdown(report))
	}
	return subcommands.ExitSuccess
}
