package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"ssu/internal/app"
)

// renderSummary builds the per-app outcome table shown after an
// operation. verb names the column for files that were acted on
// ("Copied", "Moved", "Merged").
func renderSummary(verb string, sum app.Summary) string {
	if len(sum.Apps) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	tw.AppendHeader(table.Row{"App", verb, "Skipped", "Failed"})
	for _, a := range sum.Apps {
		tw.AppendRow(table.Row{a.Folder, a.Processed, a.Skipped, a.Failed})
	}
	processed, skipped, failed := sum.Totals()
	tw.AppendFooter(table.Row{"Total", processed, skipped, failed})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})

	return tw.Render()
}

func printSummary(cmd *cobra.Command, verb string, sum app.Summary) {
	if out := renderSummary(verb, sum); out != "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
}
