package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"ssu/internal/app"
)

func newBackupCommand(logger *log.Logger) *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "backup <steam_user_folder>",
		Short: "Copy a Steam user's compressed screenshots into per-app folders",
		Long: `Copy every screenshot under <steam_user_folder> into
"<output>/<appid> - <appname>/". The Steam user folder is
Steam/userdata/<user_id>; the screenshot tree under 760/remote is found
automatically. Useful when "Save uncompressed copy" is disabled and the
compressed screenshots are the only copy you have.

Re-running only copies screenshots that are new since the last backup.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := app.RunBackup(logger, app.BackupOptions{
				SteamUserDir: args[0],
				OutputDir:    outputDir,
			})
			if err != nil {
				return err
			}
			printSummary(cmd, "Copied", sum)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", app.DefaultBackupDir, "Output folder for the categorized backup")

	return cmd
}
