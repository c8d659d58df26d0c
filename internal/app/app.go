// Package app implements the three screenshot operations: backing up a
// Steam user's compressed screenshots, sorting uncompressed screenshots
// in place, and merging a backup tree into a sorted tree.
package app

import (
	"github.com/charmbracelet/log"

	"ssu/internal/config"
)

// DefaultBackupDir is where backup writes when no output folder is given.
const DefaultBackupDir = "backup"

// BackupOptions captures user-supplied parameters for the backup operation.
type BackupOptions struct {
	SteamUserDir string
	OutputDir    string
}

// SortOptions captures user-supplied parameters for the sort operation.
type SortOptions struct {
	ScreenshotsDir string
}

// MergeOptions captures user-supplied parameters for the merge operation.
type MergeOptions struct {
	CompressedDir   string
	UncompressedDir string
}

// AppResult is the per-app outcome of one operation.
type AppResult struct {
	Folder    string
	Processed int // copied or moved
	Skipped   int // already present at the destination
	Failed    int
}

// Summary collects per-app results for the end-of-run report.
type Summary struct {
	Apps []AppResult
}

func (s Summary) Totals() (processed, skipped, failed int) {
	for _, a := range s.Apps {
		processed += a.Processed
		skipped += a.Skipped
		failed += a.Failed
	}
	return processed, skipped, failed
}

// RunBackup is the entry point for the backup operation.
func RunBackup(logger *log.Logger, opts BackupOptions) (Summary, error) {
	cfg, err := config.Load()
	if err != nil {
		return Summary{}, err
	}
	r := newBackupRunner(cfg, opts, logger)
	err = r.Execute()
	return r.summary, err
}

// RunSort is the entry point for the in-place sort operation.
func RunSort(logger *log.Logger, opts SortOptions) (Summary, error) {
	cfg, err := config.Load()
	if err != nil {
		return Summary{}, err
	}
	r := newSortRunner(cfg, opts, logger)
	err = r.Execute()
	return r.summary, err
}

// RunMerge is the entry point for the merge operation. Merge matches app
// folders by name and never resolves app ids, so it needs no config.
func RunMerge(logger *log.Logger, opts MergeOptions) (Summary, error) {
	r := newMergeRunner(opts, logger)
	err := r.Execute()
	return r.summary, err
}
