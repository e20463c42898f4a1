package tui

import (
	"fmt"
	"strings"

	"github.com/KeivanDerafshianApply/Berlin-Transport-Dashboard/pkg/transit"

	"github.com/charmbracelet/lipgloss"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	delayedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	chartBarStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

const chartBarWidth = 30

// RenderTable formats the canonical departure table for the terminal. It is
// a pure string builder so the layout can be tested without a TTY.
func RenderTable(records []transit.DisplayRecord) string {
	if len(records) == 0 {
		return "No departure data available."
	}

	var b strings.Builder
	b.WriteString(tableHeaderStyle.Render(fmt.Sprintf("%-10s %-28s %-10s %-10s %-12s %-8s",
		"Line", "Direction", "Scheduled", "Expected", "Delay (Min)", "Platform")))
	b.WriteString("\n")

	for _, rec := range records {
		delayCell := fmt.Sprintf("%-12d", rec.DelayMinutes)
		if rec.DelayMinutes > 0 {
			// Pad first, then style, so the ANSI codes don't skew the column width
			delayCell = delayedStyle.Render(fmt.Sprintf("%-12s", fmt.Sprintf("+%d", rec.DelayMinutes)))
		}
		b.WriteString(fmt.Sprintf("%-10s %-28s %-10s %-10s %s %-8s\n",
			truncate(rec.Line, 10), truncate(rec.Direction, 28), rec.Scheduled, rec.Expected, delayCell, rec.Platform))
	}
	return b.String()
}

// RenderDelayChart draws a horizontal bar chart of mean delay per line.
// Input rows arrive sorted descending, worst line first.
func RenderDelayChart(rows []transit.LineDelay) string {
	if len(rows) == 0 {
		return "No positive delays recorded in the current view."
	}

	worst := rows[0].MeanDelayMinutes
	var b strings.Builder
	for _, row := range rows {
		width := 1
		if worst > 0 {
			width = int(row.MeanDelayMinutes / worst * chartBarWidth)
			if width < 1 {
				width = 1
			}
		}
		bar := chartBarStyle.Render(strings.Repeat("█", width))
		b.WriteString(fmt.Sprintf("%-10s %s %.1f min\n", truncate(row.Line, 10), bar, row.MeanDelayMinutes))
	}
	return b.String()
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
