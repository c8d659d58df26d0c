package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"

	"ssu/internal/config"
	"ssu/internal/screenshots"
	"ssu/internal/steamapps"
)

type backupRunner struct {
	cfg      config.Config
	opts     BackupOptions
	log      *log.Logger
	resolver *steamapps.Resolver
	summary  Summary
}

func newBackupRunner(cfg config.Config, opts BackupOptions, logger *log.Logger) *backupRunner {
	return &backupRunner{
		cfg:      cfg,
		opts:     opts,
		log:      logger,
		resolver: steamapps.NewResolver(cfg, logger),
	}
}

// Execute walks the per-app screenshot tree and copies every screenshot
// into "<output>/<appid> - <name>/". Files already present at the
// destination are skipped, so re-running is a no-op. Source files are
// never touched.
func (r *backupRunner) Execute() error {
	appsRoot, err := steamAppsRoot(r.opts.SteamUserDir)
	if err != nil {
		return err
	}

	output := r.opts.OutputDir
	if output == "" {
		output = DefaultBackupDir
	}
	if err := os.MkdirAll(output, 0o755); err != nil {
		return fmt.Errorf("create output folder %q: %w", output, err)
	}

	entries, err := os.ReadDir(appsRoot)
	if err != nil {
		return fmt.Errorf("read %q: %w", appsRoot, err)
	}

	r.resolver.Load()

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		// anything that isn't an integer app id is not Steam's
		appID, err := strconv.Atoi(entry.Name())
		if err != nil || appID <= 0 {
			continue
		}
		r.summary.Apps = append(r.summary.Apps, r.backupApp(appsRoot, entry.Name(), appID, output))
	}

	return nil
}

func (r *backupRunner) backupApp(appsRoot, appDir string, appID int, output string) AppResult {
	result := AppResult{Folder: r.resolver.FolderName(appID)}

	dest := filepath.Join(output, result.Folder)
	if err := os.MkdirAll(dest, 0o755); err != nil {
		r.log.Errorf("Could not create %s: %v", dest, err)
		result.Failed++
		return result
	}

	shotsDir := filepath.Join(appsRoot, appDir, "screenshots")
	shots, err := os.ReadDir(shotsDir)
	if err != nil {
		if !os.IsNotExist(err) {
			r.log.Warnf("Could not read %s: %v", shotsDir, err)
			result.Failed++
		}
		return result
	}

	for _, shot := range shots {
		if shot.IsDir() || !screenshots.IsImage(shot.Name()) {
			continue
		}
		target := filepath.Join(dest, shot.Name())
		if _, err := os.Stat(target); err == nil {
			result.Skipped++
			continue
		}
		if err := copyFile(filepath.Join(shotsDir, shot.Name()), target); err != nil {
			r.log.Errorf("Could not copy %s: %v", shot.Name(), err)
			result.Failed++
			continue
		}
		result.Processed++
	}

	r.log.Infof("Backed up %d new screenshots into %s", result.Processed, result.Folder)
	return result
}

// steamAppsRoot accepts either the per-app screenshot tree itself or a
// Steam user folder (Steam/userdata/<id>), whose screenshot tree lives
// under 760/remote.
func steamAppsRoot(root string) (string, error) {
	if err := checkDir(root, "steam user folder"); err != nil {
		return "", err
	}
	remote := filepath.Join(root, "760", "remote")
	if info, err := os.Stat(remote); err == nil && info.IsDir() {
		return remote, nil
	}
	return root, nil
}
