package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary = lipgloss.Color("#00E676") // green, within budget
	colorWarning = lipgloss.Color("#FFB300") // amber, burned/activity
	colorDanger  = lipgloss.Color("#FF5252") // red, over budget
	colorMuted   = lipgloss.Color("#636363") // gray, de-emphasized
	colorWhite   = lipgloss.Color("#EEEEEE") // off-white, primary text
	colorAccent  = lipgloss.Color("#00BFFF") // cyan, headings and selection
)

// Selection indicator prepended to the active row.
const selectionIndicator = "▎"

// Section and text styles.
var (
	styleSection = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	styleLabel = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleValue = lipgloss.NewStyle().
			Foreground(colorWhite)

	styleDanger = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleEntryName = lipgloss.NewStyle().
			Foreground(colorWhite)

	styleEntrySelected = lipgloss.NewStyle().
				Foreground(colorWhite).
				Bold(true)

	styleSelectionIndicator = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	styleHelp = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleStatus = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleFormTitle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	styleFormLabel = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// Progress bar styles.
var (
	styleBarFill = lipgloss.NewStyle().
			Foreground(colorPrimary)

	styleBarWarn = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleBarOver = lipgloss.NewStyle().
			Foreground(colorDanger)

	styleBarEmpty = lipgloss.NewStyle().
			Foreground(colorMuted)
)
