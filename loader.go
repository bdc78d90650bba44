package fondos

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// backupTimeFormat produces sortable backup suffixes: funds_backup20211231T235959.dat.
const backupTimeFormat = "20060102T150405"

// Load reads the snapshot file. A missing file is reported as-is via
// fs.ErrNotExist so the caller can decide to start a fresh ledger.
func Load(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	l, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not read snapshot %q: %w", path, err)
	}
	return l, nil
}

// Save persists the ledger durably: write to a temporary file next to the
// snapshot, rename any existing snapshot to a timestamped backup, then
// atomically rename the temporary file into place. A crash mid-write never
// corrupts the previously committed state.
func Save(path string, l *Ledger, backupDir string) error {
	tmp := tmpPath(path)
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("could not create temporary snapshot %q: %w", tmp, err)
	}
	if err := EncodeLedger(f, l); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("could not write temporary snapshot %q: %w", tmp, err)
	}
	if _, err := os.Stat(path); err == nil {
		backup := backupPath(path, backupDir, time.Now())
		if err := os.Rename(path, backup); err != nil {
			return fmt.Errorf("could not back up snapshot to %q: %w", backup, err)
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("could not move snapshot into place: %w", err)
	}
	return nil
}

// SaveIfChanged persists the ledger unless its structural hash still matches
// the hash taken at load time. It reports whether a write happened.
func SaveIfChanged(path string, l *Ledger, backupDir string, loadedHash uint64) (bool, error) {
	if l.Hash() == loadedHash {
		return false, nil
	}
	if err := Save(path, l, backupDir); err != nil {
		return false, err
	}
	return true, nil
}

func tmpPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".new"
}

func backupPath(path, backupDir string, now time.Time) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(filepath.Base(path), ext)
	if backupDir == "" {
		backupDir = filepath.Dir(path)
	}
	return filepath.Join(backupDir, base+"_backup"+now.Format(backupTimeFormat)+ext)
}
