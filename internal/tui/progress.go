package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// barWidth is the character width of progress bars and gauges.
const barWidth = 24

// percentLabel formats a percentage for display, rounded to the nearest
// integer. Only labels round; compared values never do.
func percentLabel(p float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(p)))
}

// renderBar draws a bar filled to min(percent, 100). The fill turns to the
// danger color when the uncapped percent exceeds 100.
func renderBar(percent float64, width int, fill lipgloss.Style) string {
	if width <= 0 {
		width = barWidth
	}

	capped := percent
	if capped > 100 {
		capped = 100
	}
	if capped < 0 {
		capped = 0
	}

	cells := int(math.Round(capped / 100 * float64(width)))
	if cells > width {
		cells = width
	}

	style := fill
	if percent > 100 {
		style = styleBarOver
	}

	return style.Render(strings.Repeat("█", cells)) +
		styleBarEmpty.Render(strings.Repeat("░", width-cells))
}

// renderGauge draws a labeled gauge line, the ring indicator's terminal
// analog: a bar plus the rounded percent.
func renderGauge(label string, percent float64, fill lipgloss.Style) string {
	name := styleLabel.Render(fmt.Sprintf("%-8s", label))
	pct := percentLabel(percent)
	if percent > 100 {
		pct = styleDanger.Render(pct)
	} else {
		pct = styleValue.Render(pct)
	}
	return fmt.Sprintf("  %s %s %s", name, renderBar(percent, barWidth, fill), pct)
}
