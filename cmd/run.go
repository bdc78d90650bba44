package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fondos-dev/fondos"
	"github.com/fondos-dev/fondos/renderer"
	"github.com/google/subcommands"
)

type runCmd struct{}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "ingest pasted portal pages and refresh the reports" }
func (*runCmd) Usage() string {
	return `run

  Loads the snapshot, asks for the account status page, the movements pages
  and the returns page pasted from the portal, persists the merged ledger
  (skipped when nothing changed), and prints the variation reports.

  Type EOF on a line of its own to skip any page. See 'topic status',
  'topic movements' and 'topic returns' for where to find each page.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {}

func (c *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger, loadedHash, err := loadLedger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	today := fondos.Today()
	lines := fondos.NewLineScanner(os.Stdin)

	fmt.Println("Paste the account status page here, or EOF to skip:")
	warnings, err := ledger.IngestStatus(lines, today)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printWarnings(warnings)

	for {
		fmt.Println("Paste an 'Últimos Movimientos' page here, or EOF when done:")
		warnings, seenTable, err := ledger.IngestMovements(lines)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		printWarnings(warnings)
		if !seenTable {
			break
		}
	}

	fmt.Println("Paste the returns page here, or EOF to skip:")
	warnings, err = ledger.IngestReturns(lines, today)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printWarnings(warnings)

	written, err := fondos.SaveIfChanged(cfg.DataFile, ledger, cfg.BackupDir, loadedHash)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not persist snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	if !written {
		fmt.Println("Data remains the same. Files remain unchanged.")
	}

	for _, days := range cfg.Windows {
		report, err := ledger.Variation(today, days)
		if err != nil {
			log.Printf("skipping window: %v", err)
			continue
		}
		printMarkdown(renderer.VariationMarkdown(report))
	}
	return subcommands.ExitSuccess
}

func printWarnings(warnings []fondos.Warning) {
	for _, w := range warnings {
		log.Printf("warning: %s", w)
	}
}
