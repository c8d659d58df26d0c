package main

import (
	"strings"
	"testing"

	"ssu/internal/app"
)

func TestRenderSummary(t *testing.T) {
	sum := app.Summary{Apps: []app.AppResult{
		{Folder: "440 - Team Fortress 2", Processed: 3, Skipped: 1},
		{Folder: "570 - Dota 2", Processed: 0, Skipped: 5, Failed: 1},
	}}

	out := renderSummary("Copied", sum)
	for _, want := range []string{"App", "Copied", "440 - Team Fortress 2", "570 - Dota 2", "Total"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary table missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSummaryEmpty(t *testing.T) {
	if out := renderSummary("Copied", app.Summary{}); out != "" {
		t.Fatalf("expected empty output for empty summary, got:\n%s", out)
	}
}
