package tui

import (
	"strings"
	"testing"

	"github.com/KeivanDerafshianApply/Berlin-Transport-Dashboard/pkg/transit"
)

func TestRenderTable(t *testing.T) {
	records := []transit.DisplayRecord{
		{Line: "S1", Direction: "Wannsee", Scheduled: "10:15", Expected: "10:17", DelayMinutes: 2, Platform: "4"},
		{Line: "U2", Direction: "Pankow", Scheduled: "10:20", Expected: "10:20", DelayMinutes: 0, Platform: "N/A"},
	}

	out := RenderTable(records)

	for _, want := range []string{"Line", "Direction", "Scheduled", "Expected", "Delay (Min)", "Platform"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected table header to contain %q, got:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "Wannsee") || !strings.Contains(out, "10:17") {
		t.Errorf("expected table to contain record values, got:\n%s", out)
	}
	if !strings.Contains(out, "+2") {
		t.Errorf("expected delayed record to render +2, got:\n%s", out)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("expected header plus 2 rows, got %d lines", len(lines))
	}
}

func TestRenderTable_Empty(t *testing.T) {
	out := RenderTable(nil)
	if !strings.Contains(out, "No departure data") {
		t.Errorf("expected empty-board message, got %q", out)
	}
}

func TestRenderTable_TruncatesLongDirections(t *testing.T) {
	records := []transit.DisplayRecord{
		{Line: "RE1", Direction: strings.Repeat("Frankfurt (Oder) ", 5), Scheduled: "10:15", Expected: "10:15", Platform: "1"},
	}

	out := RenderTable(records)
	if !strings.Contains(out, "…") {
		t.Errorf("expected an overlong direction to be truncated, got:\n%s", out)
	}
}

func TestRenderDelayChart(t *testing.T) {
	rows := []transit.LineDelay{
		{Line: "U2", MeanDelayMinutes: 8},
		{Line: "S1", MeanDelayMinutes: 2},
	}

	out := RenderDelayChart(rows)

	if !strings.Contains(out, "8.0 min") || !strings.Contains(out, "2.0 min") {
		t.Errorf("expected mean delays in chart, got:\n%s", out)
	}
	if !strings.Contains(out, "█") {
		t.Errorf("expected bar glyphs in chart, got:\n%s", out)
	}

	// The worst line gets the longest bar.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if strings.Count(lines[0], "█") <= strings.Count(lines[1], "█") {
		t.Errorf("expected the first (worst) row to have the longest bar, got:\n%s", out)
	}
}

func TestRenderDelayChart_Empty(t *testing.T) {
	out := RenderDelayChart(nil)
	if !strings.Contains(out, "No positive delays") {
		t.Errorf("expected no-delays message, got %q", out)
	}
}
