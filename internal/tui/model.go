package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kberry/kcal/internal/export"
	"github.com/kberry/kcal/internal/tracker"
)

// focusArea tracks which surface receives key events.
type focusArea int

const (
	// focusBrowse is normal navigation on either tab.
	focusBrowse focusArea = iota
	// focusFood means the add-food form is open.
	focusFood
	// focusBurned means the total-burned input is open.
	focusBurned
	// focusBudget means the budget form is in its Editing state.
	focusBudget
)

// AppModel is the root BubbleTea model. Every key event becomes a store
// mutation (or pure view-state change) followed by a full re-render from
// state; nothing is rendered incrementally.
type AppModel struct {
	Store     *tracker.Store
	Keys      KeyMap
	ExportDir string

	Width  int
	Height int

	Focus  focusArea
	Cursor int // flat entry cursor on the log tab

	Food   FoodForm
	Burned textinput.Model
	Budget BudgetView

	Status string // transient line, e.g. export outcome
}

// NewAppModel creates the root model over a store.
func NewAppModel(store *tracker.Store, exportDir string) AppModel {
	burned := textinput.New()
	burned.Prompt = ""
	burned.Placeholder = "0"
	burned.CharLimit = 5
	burned.Width = 6

	return AppModel{
		Store:     store,
		Keys:      DefaultKeyMap(),
		ExportDir: exportDir,
		Food:      NewFoodForm(store.TrackFiber()),
		Burned:    burned,
		Budget:    NewBudgetView(store.TrackFiber()),
	}
}

// Init returns the cursor blink command.
func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all messages.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Budget.Width = msg.Width
		return m, nil

	case MsgSnapshotChanged:
		m.Store.Reload()
		m.clampCursor()
		return m, nil

	case MsgExportDone:
		if msg.Err != nil {
			m.Status = fmt.Sprintf("export failed: %v", msg.Err)
		} else {
			m.Status = "exported " + msg.Path
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Focus {
	case focusFood:
		return m.handleFoodKey(msg)
	case focusBurned:
		return m.handleBurnedKey(msg)
	case focusBudget:
		return m.handleBudgetKey(msg)
	}
	return m.handleBrowseKey(msg)
}

func (m AppModel) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.Store.State()
	m.Status = ""

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.LogTab):
		m.Store.SetActiveTab(tracker.TabLog)
		return m, nil

	case key.Matches(msg, m.Keys.Budget):
		m.Store.SetActiveTab(tracker.TabBudget)
		return m, nil

	case key.Matches(msg, m.Keys.NextTab):
		m.Store.SetActiveTab(st.ActiveTab.Next())
		return m, nil
	}

	if st.ActiveTab == tracker.TabBudget {
		if key.Matches(msg, m.Keys.Action) {
			m.Budget.BeginEdit(st.Budgets)
			m.Focus = focusBudget
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.Keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}

	case key.Matches(msg, m.Keys.Down):
		if m.Cursor < len(entryRefs(st))-1 {
			m.Cursor++
		}

	case key.Matches(msg, m.Keys.Add):
		m.Food.Reset()
		m.Food.Slot = m.slotUnderCursor()
		m.Focus = focusFood
		return m, textinput.Blink

	case key.Matches(msg, m.Keys.Remove):
		refs := entryRefs(st)
		if m.Cursor >= 0 && m.Cursor < len(refs) {
			ref := refs[m.Cursor]
			m.Store.RemoveFood(ref.Slot, st.Meals[ref.Slot][ref.Index].ID)
			m.clampCursor()
		}

	case key.Matches(msg, m.Keys.Burned):
		m.Burned.SetValue(fmt.Sprintf("%d", st.TotalBurned))
		m.Burned.Focus()
		m.Focus = focusBurned
		return m, textinput.Blink

	case key.Matches(msg, m.Keys.Action):
		return m, m.exportCmd()
	}

	return m, nil
}

func (m AppModel) handleFoodKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Focus = focusBrowse
		return m, nil
	case "enter":
		f := m.Store.AddFood(m.Food.Slot, m.Food.Draft())
		m.Food.Reset()
		m.Focus = focusBrowse
		m.Status = fmt.Sprintf("added %s (%d cal)", f.Name, f.Calories)
		m.clampCursor()
		return m, nil
	}

	var cmd tea.Cmd
	m.Food, cmd = m.Food.Update(msg)
	return m, cmd
}

func (m AppModel) handleBurnedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Burned.Blur()
		m.Focus = focusBrowse
		return m, nil
	case "enter":
		m.Store.SetTotalBurned(tracker.ParseAmount(m.Burned.Value()))
		m.Burned.Blur()
		m.Focus = focusBrowse
		return m, nil
	}

	var cmd tea.Cmd
	m.Burned, cmd = m.Burned.Update(msg)
	return m, cmd
}

func (m AppModel) handleBudgetKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Budget.Cancel()
		m.Focus = focusBrowse
		return m, nil
	case "enter":
		m.Store.SetBudgets(m.Budget.Budgets(m.Store.State().Budgets))
		m.Budget.Cancel()
		m.Focus = focusBrowse
		return m, nil
	}

	var cmd tea.Cmd
	m.Budget, cmd = m.Budget.Update(msg)
	return m, cmd
}

// slotUnderCursor picks the add-food default: the slot of the selected
// entry, or Breakfast when nothing is logged yet.
func (m AppModel) slotUnderCursor() tracker.MealSlot {
	refs := entryRefs(m.Store.State())
	if m.Cursor >= 0 && m.Cursor < len(refs) {
		return refs[m.Cursor].Slot
	}
	return tracker.Breakfast
}

// clampCursor keeps the cursor in range after entries are added or removed.
func (m *AppModel) clampCursor() {
	n := len(entryRefs(m.Store.State()))
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

func (m AppModel) exportCmd() tea.Cmd {
	// Snapshot the state: the write runs in a command goroutine and must not
	// observe later mutations.
	st := m.Store.State().Clone()
	dir := m.ExportDir
	fiber := m.Store.TrackFiber()
	return func() tea.Msg {
		path, err := export.Write(st, dir, fiber)
		return MsgExportDone{Path: path, Err: err}
	}
}

// View renders the full UI from state: tab bar, the active tab's view, any
// open form, then status and help lines.
func (m AppModel) View() string {
	st := m.Store.State()

	out := "\n" + TabBar{Active: st.ActiveTab, Width: m.Width}.View() + "\n\n"

	if st.ActiveTab == tracker.TabBudget {
		out += m.Budget.View(st.Budgets) + "\n"
	} else {
		out += LogView{
			State:      st,
			TrackFiber: m.Store.TrackFiber(),
			Cursor:     m.Cursor,
			Width:      m.Width,
		}.View()

		switch m.Focus {
		case focusFood:
			out += "\n" + m.Food.View() + "\n"
		case focusBurned:
			out += "\n" + styleFormTitle.Render("Calories burned") + "  " + m.Burned.View() +
				styleHelp.Render("  enter set · esc close") + "\n"
		}
	}

	if m.Status != "" {
		out += "\n" + styleStatus.Render("  "+m.Status) + "\n"
	}
	out += "\n" + styleHelp.Render("  "+m.helpLine()) + "\n"
	return out
}

func (m AppModel) helpLine() string {
	if m.Focus != focusBrowse {
		return "esc back"
	}
	if m.Store.State().ActiveTab == tracker.TabBudget {
		return "e edit · 1/2/tab view · q quit"
	}
	return "a add · x remove · b burned · e export · ↑↓ select · 1/2/tab view · q quit"
}
