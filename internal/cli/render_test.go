package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderTable_AlignsMultibyteCells(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Income", "€5.000,00"},
			{"---"},
			{"Savings", "€1.750,00"},
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("table has %d lines, want 7:\n%s", len(lines), out)
	}
	width := lipgloss.Width(lines[0])
	for i, line := range lines {
		if w := lipgloss.Width(line); w != width {
			t.Errorf("line %d width = %d, want %d", i, w, width)
		}
	}
}

func TestRenderUsageBar(t *testing.T) {
	bar := RenderUsageBar(0.5, 10)
	if !strings.Contains(bar, "50.0%") {
		t.Errorf("RenderUsageBar(0.5) = %q, want 50.0%%", bar)
	}
	if strings.Count(bar, "█") != 5 {
		t.Errorf("RenderUsageBar(0.5) filled %d cells, want 5", strings.Count(bar, "█"))
	}

	over := RenderUsageBar(1.4, 10)
	if strings.Count(over, "█") != 10 || !strings.Contains(over, "140.0%") {
		t.Errorf("RenderUsageBar(1.4) = %q", over)
	}

	if RenderUsageBar(0.5, 0) != "" {
		t.Error("zero width bar should be empty")
	}
}

func TestRenderSparkline(t *testing.T) {
	got := RenderSparkline([]float64{1, 2, 3, 4})
	if !strings.Contains(got, "▁") || !strings.Contains(got, "█") {
		t.Errorf("RenderSparkline = %q, want low and high blocks", got)
	}
	if RenderSparkline(nil) != "" {
		t.Error("empty sparkline should be empty")
	}
}
