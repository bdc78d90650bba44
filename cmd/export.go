package cmd

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fondos-dev/fondos"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the published returns as CSV" }
func (*exportCmd) Usage() string {
	return `export [-o <file>]

  Writes one CSV row per fund with the merged published return percentages.
  Periods the bank never published stay NA. Use -o - for stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "returns.csv", "output file, or - for stdout")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger, _, err := loadLedger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	var out io.Writer = os.Stdout
	if c.output != "-" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not create %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		out = file
	}

	w := csv.NewWriter(out)
	if err := w.Write(fondos.ReturnsHeader); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not write CSV: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := w.WriteAll(ledger.ReturnsTable()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not write CSV: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
