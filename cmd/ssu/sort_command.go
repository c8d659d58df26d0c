package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"ssu/internal/app"
)

func newSortCommand(logger *log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "sort <screenshots_folder>",
		Short: "Sort uncompressed screenshots into per-app folders, in place",
		Long: `Move every screenshot sitting directly in <screenshots_folder>
into an "<appid> - <appname>" subfolder, based on the app id embedded in
the filename. Sorting is done in place, so there is no output argument.
Useful when "Save uncompressed copy" is enabled.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := app.RunSort(logger, app.SortOptions{
				ScreenshotsDir: args[0],
			})
			if err != nil {
				return err
			}
			printSummary(cmd, "Moved", sum)
			return nil
		},
	}
}
