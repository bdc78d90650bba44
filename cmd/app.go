// Package cmd implements the CLI application to track the bank's funds.
package cmd

import (
	"errors"
	"io/fs"
	"log"

	"github.com/fondos-dev/fondos"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&runCmd{}, "ledger")

	c.Register(&reportCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")
	c.Register(&checkCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// loadLedger opens the snapshot, returning a fresh ledger when none exists
// yet, along with the structural hash taken at load time.
func loadLedger(cfg *Config) (*fondos.Ledger, uint64, error) {
	ledger, err := fondos.Load(cfg.DataFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("snapshot %q does not exist, starting a new ledger", cfg.DataFile)
		ledger, err = fondos.NewLedger(), nil
	}
	if err != nil {
		return nil, 0, err
	}
	return ledger, ledger.Hash(), nil
}
