package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"ssu/internal/screenshots"
)

type mergeRunner struct {
	opts    MergeOptions
	log     *log.Logger
	summary Summary
}

func newMergeRunner(opts MergeOptions, logger *log.Logger) *mergeRunner {
	return &mergeRunner{opts: opts, log: logger}
}

// Execute backfills the sorted (uncompressed) tree with screenshots that
// only exist in the backup (compressed) tree. App folders are matched by
// identical name; a backup app with no matching sorted folder is skipped.
// The dedup key is the filename stem, since the compressed copy of a
// screenshot is a .jpg and the uncompressed one a .png. Existing files
// are never overwritten.
func (r *mergeRunner) Execute() error {
	if err := checkDir(r.opts.CompressedDir, "compressed screenshots folder"); err != nil {
		return err
	}
	if err := checkDir(r.opts.UncompressedDir, "uncompressed screenshots folder"); err != nil {
		return err
	}

	entries, err := os.ReadDir(r.opts.CompressedDir)
	if err != nil {
		return fmt.Errorf("read %q: %w", r.opts.CompressedDir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		destDir := filepath.Join(r.opts.UncompressedDir, entry.Name())
		if info, err := os.Stat(destDir); err != nil || !info.IsDir() {
			// also where a name-table drift between runs lands
			r.log.Debugf("No sorted folder named %s, skipping", entry.Name())
			continue
		}

		r.summary.Apps = append(r.summary.Apps, r.mergeApp(entry.Name(), destDir))
	}

	return nil
}

func (r *mergeRunner) mergeApp(folder, destDir string) AppResult {
	result := AppResult{Folder: folder}

	existing, err := stemSet(destDir)
	if err != nil {
		r.log.Errorf("Could not read %s: %v", destDir, err)
		result.Failed++
		return result
	}

	srcDir := filepath.Join(r.opts.CompressedDir, folder)
	shots, err := os.ReadDir(srcDir)
	if err != nil {
		r.log.Errorf("Could not read %s: %v", srcDir, err)
		result.Failed++
		return result
	}

	for _, shot := range shots {
		if shot.IsDir() || !screenshots.IsImage(shot.Name()) {
			continue
		}
		stem := screenshots.Stem(shot.Name())
		if _, ok := existing[stem]; ok {
			result.Skipped++
			continue
		}
		if err := copyFile(filepath.Join(srcDir, shot.Name()), filepath.Join(destDir, shot.Name())); err != nil {
			r.log.Errorf("Could not copy %s: %v", shot.Name(), err)
			result.Failed++
			continue
		}
		existing[stem] = struct{}{}
		result.Processed++
	}

	r.log.Infof("Merged %d compressed screenshots into %s", result.Processed, folder)
	return result
}

func stemSet(dir string) (map[string]struct{}, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		set[screenshots.Stem(entry.Name())] = struct{}{}
	}
	return set, nil
}
