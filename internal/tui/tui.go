package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kberry/kcal/internal/tracker"
)

// Program is an alias for tea.Program, exposed so callers don't need
// to import bubbletea directly.
type Program = tea.Program

// NewProgram creates a BubbleTea program over the given store.
// The program uses the alternate screen buffer for a clean TUI experience.
func NewProgram(store *tracker.Store, exportDir string, opts ...tea.ProgramOption) *Program {
	model := NewAppModel(store, exportDir)

	allOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
	}
	allOpts = append(allOpts, opts...)

	return tea.NewProgram(model, allOpts...)
}

// Run creates and runs a TUI program, blocking until it exits.
func Run(store *tracker.Store, exportDir string) error {
	p := NewProgram(store, exportDir)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// WithOutput returns a program option that directs TUI output to the given
// writer. Useful for testing or redirecting output.
func WithOutput(w io.Writer) tea.ProgramOption {
	return tea.WithOutput(w)
}
