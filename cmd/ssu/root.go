package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	logger := log.New(os.Stderr)
	logger.SetTimeFormat("2006-01-02 15:04:05")

	rootCmd := &cobra.Command{
		Use:   "ssu",
		Short: "Steam Screenshot Utils",
		Long: `Back up, sort and merge Steam screenshots.

backup categorizes a Steam user's compressed screenshots into per-app
folders. sort does the same, in place, for uncompressed screenshots.
merge backfills a sorted tree with screenshots that only exist in a
backup tree.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newBackupCommand(logger))
	rootCmd.AddCommand(newSortCommand(logger))
	rootCmd.AddCommand(newMergeCommand(logger))

	return rootCmd
}
