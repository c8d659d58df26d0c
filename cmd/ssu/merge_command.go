package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"ssu/internal/app"
)

func newMergeCommand(logger *log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "merge <compressed_screenshots> <uncompressed_screenshots>",
		Short: "Backfill a sorted tree with backup-only screenshots",
		Long: `Copy compressed screenshots from a backup tree (the output of
"ssu backup") into the matching app folders of a sorted tree (the output
of "ssu sort"), whenever no uncompressed copy of them exists there.
Nothing in the sorted tree is ever overwritten. Useful when "Save
uncompressed copy" was only enabled partway through your history; the
backup can be safely removed afterwards.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := app.RunMerge(logger, app.MergeOptions{
				CompressedDir:   args[0],
				UncompressedDir: args[1],
			})
			if err != nil {
				return err
			}
			printSummary(cmd, "Merged", sum)
			return nil
		},
	}
}
