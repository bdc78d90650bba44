package cmd

import (
	"fmt"

	"github.com/fondos-dev/fondos"
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application, read from the
// environment with the FONDOS prefix.
type Config struct {
	// DataFile is the path of the binary ledger snapshot.
	DataFile string `envconfig:"DATA_FILE" default:"funds.dat"`
	// BackupDir receives the timestamped snapshot backups. Empty means next
	// to the snapshot.
	BackupDir string `envconfig:"BACKUP_DIR" default:""`
	// Cutover bounds the transfer-consistency check: only movements after
	// this date are checked. d/m/y, like the portal.
	Cutover string `envconfig:"CUTOVER" default:"1/1/2021"`
	// Windows lists the lookback windows, in days, of the variation reports.
	Windows []int `envconfig:"WINDOWS" default:"30,91,182,365,730"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("fondos", &cfg); err != nil {
		return nil, fmt.Errorf("could not read configuration: %w", err)
	}
	return &cfg, nil
}

// CutoverDate parses the configured consistency-check cutover.
func (c *Config) CutoverDate() (fondos.Date, error) {
	return fondos.ParseDMY(c.Cutover)
}
