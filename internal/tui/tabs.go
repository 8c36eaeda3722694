package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kberry/kcal/internal/tracker"
)

// TabBar renders the horizontal row of view tabs.
type TabBar struct {
	Active tracker.Tab
	Width  int
}

// View renders the tab bar as a single styled line. The active tab is
// highlighted and bold; inactive tabs use the muted color.
func (tb TabBar) View() string {
	activeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorAccent)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(colorMuted)

	tabs := []tracker.Tab{tracker.TabLog, tracker.TabBudget}
	var parts []string
	for i, tab := range tabs {
		label := fmt.Sprintf("[%d] %s", i+1, tab.Label())
		if tab == tb.Active {
			parts = append(parts, activeStyle.Render(label))
		} else {
			parts = append(parts, inactiveStyle.Render(label))
		}
	}

	line := strings.Join(parts, "  ")
	return lipgloss.NewStyle().
		Width(tb.Width).
		PaddingLeft(2).
		Render(line)
}
