package app

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/charmbracelet/log"

	"ssu/internal/config"
	"ssu/internal/screenshots"
	"ssu/internal/steamapps"
)

type sortRunner struct {
	cfg      config.Config
	opts     SortOptions
	log      *log.Logger
	resolver *steamapps.Resolver
	summary  Summary
}

func newSortRunner(cfg config.Config, opts SortOptions, logger *log.Logger) *sortRunner {
	return &sortRunner{
		cfg:      cfg,
		opts:     opts,
		log:      logger,
		resolver: steamapps.NewResolver(cfg, logger),
	}
}

// Execute moves every uncompressed screenshot sitting directly in the
// input folder into an "<appid> - <name>" subfolder of that same folder.
// Only the top level is scanned, so already-sorted files are never
// reprocessed. Files whose names don't follow the Steam convention stay
// where they are.
func (r *sortRunner) Execute() error {
	root := r.opts.ScreenshotsDir
	if err := checkDir(root, "screenshots folder"); err != nil {
		return err
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("read %q: %w", root, err)
	}

	// group files by app id so each app's name is resolved once
	groups := map[int][]screenshots.File{}
	var ids []int
	for _, entry := range entries {
		if entry.IsDir() || !screenshots.IsImage(entry.Name()) {
			continue
		}
		file, err := screenshots.Parse(filepath.Join(root, entry.Name()))
		if err != nil {
			r.log.Debugf("Leaving %s in place: %v", entry.Name(), err)
			continue
		}
		if _, ok := groups[file.AppID]; !ok {
			ids = append(ids, file.AppID)
		}
		groups[file.AppID] = append(groups[file.AppID], file)
	}
	if len(ids) == 0 {
		r.log.Infof("No screenshots to sort in %s", root)
		return nil
	}
	sort.Ints(ids)

	r.resolver.Load()

	for _, id := range ids {
		result := AppResult{Folder: r.resolver.FolderName(id)}
		dest := filepath.Join(root, result.Folder)
		if err := os.MkdirAll(dest, 0o755); err != nil {
			r.log.Errorf("Could not create %s: %v", dest, err)
			result.Failed += len(groups[id])
			r.summary.Apps = append(r.summary.Apps, result)
			continue
		}

		for _, file := range groups[id] {
			target := filepath.Join(dest, file.Name)
			if _, err := os.Stat(target); err == nil {
				r.log.Warnf("Not moving %s: %s already contains a file with that name", file.Name, result.Folder)
				result.Skipped++
				continue
			}
			if err := os.Rename(file.Path, target); err != nil {
				r.log.Errorf("Could not move %s: %v", file.Name, err)
				result.Failed++
				continue
			}
			if !file.Taken.IsZero() {
				r.log.Debugf("Moved %s (taken %s)", file.Name, file.Taken.Format(time.DateTime))
			}
			result.Processed++
		}

		r.log.Infof("Sorted %d screenshots into %s", result.Processed, result.Folder)
		r.summary.Apps = append(r.summary.Apps, result)
	}

	return nil
}
