package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings active while browsing.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	LogTab  key.Binding
	Budget  key.Binding
	NextTab key.Binding
	Add     key.Binding
	Remove  key.Binding
	Burned  key.Binding
	Action  key.Binding // export on the log tab, edit on the budget tab
	Quit    key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		LogTab: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "log"),
		),
		Budget: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "budget"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch tab"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add food"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove"),
		),
		Burned: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "burned"),
		),
		Action: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export/edit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
