package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kberry/kcal/internal/tracker"
)

// BudgetMode is the budget form's state: fields are read-only in Viewing
// and live inputs in Editing. There are no other states and no nested edit
// sessions.
type BudgetMode int

const (
	BudgetViewing BudgetMode = iota
	BudgetEditing
)

// budgetField describes one editable budget value and how to read/write it.
type budgetField struct {
	label string
	get   func(b tracker.Budgets) int
	set   func(b *tracker.Budgets, v int)
}

// budgetFields returns the form's fields in display order: the three
// scalars, the five meal budgets, then the macro budgets.
func budgetFields(trackFiber bool) []budgetField {
	fields := []budgetField{
		{
			label: "Daily calories",
			get:   func(b tracker.Budgets) int { return b.TotalCalories },
			set:   func(b *tracker.Budgets, v int) { b.TotalCalories = v },
		},
		{
			label: "TDEE",
			get:   func(b tracker.Budgets) int { return b.TDEE },
			set:   func(b *tracker.Budgets, v int) { b.TDEE = v },
		},
		{
			label: "Burn goal",
			get:   func(b tracker.Budgets) int { return b.BurnGoal },
			set:   func(b *tracker.Budgets, v int) { b.BurnGoal = v },
		},
	}
	for _, slot := range tracker.MealSlots() {
		fields = append(fields, budgetField{
			label: slot.Label(),
			get:   func(b tracker.Budgets) int { return b.Meals[slot] },
			set:   func(b *tracker.Budgets, v int) { b.Meals[slot] = v },
		})
	}
	for _, k := range tracker.MacroKinds(trackFiber) {
		fields = append(fields, budgetField{
			label: k.Label() + " (g)",
			get:   func(b tracker.Budgets) int { return b.Macros[k] },
			set:   func(b *tracker.Budgets, v int) { b.Macros[k] = v },
		})
	}
	return fields
}

// BudgetView renders the budget tab and owns the Viewing/Editing state
// machine. In Viewing it mirrors the store's current budgets; in Editing it
// holds one text input per field, populated from the store at edit start so
// a cancel discards everything typed.
type BudgetView struct {
	Mode       BudgetMode
	TrackFiber bool
	Width      int

	fields []budgetField
	inputs []textinput.Model
	focus  int
}

// NewBudgetView creates the budget view in Viewing mode.
func NewBudgetView(trackFiber bool) BudgetView {
	fields := budgetFields(trackFiber)
	inputs := make([]textinput.Model, len(fields))
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 5
		ti.Width = 6
		inputs[i] = ti
	}
	return BudgetView{TrackFiber: trackFiber, fields: fields, inputs: inputs}
}

// BeginEdit enters Editing, mirroring the current budgets into the inputs.
func (bv *BudgetView) BeginEdit(b tracker.Budgets) {
	for i, field := range bv.fields {
		bv.inputs[i].SetValue(strconv.Itoa(field.get(b)))
	}
	bv.Mode = BudgetEditing
	bv.setFocus(0)
}

// Cancel exits Editing, discarding anything typed. The next render mirrors
// the untouched store state again.
func (bv *BudgetView) Cancel() {
	bv.Mode = BudgetViewing
	bv.inputs[bv.focus].Blur()
}

// Budgets parses every field into a complete replacement value, starting
// from the current budgets so the map key sets stay fixed. Invalid input
// coerces to 0.
func (bv *BudgetView) Budgets(current tracker.Budgets) tracker.Budgets {
	b := current.Clone()
	for i, field := range bv.fields {
		field.set(&b, tracker.ParseAmount(bv.inputs[i].Value()))
	}
	return b
}

// NextField moves focus forward, wrapping around.
func (bv *BudgetView) NextField() {
	bv.setFocus((bv.focus + 1) % len(bv.inputs))
}

// PrevField moves focus backward, wrapping around.
func (bv *BudgetView) PrevField() {
	bv.setFocus((bv.focus + len(bv.inputs) - 1) % len(bv.inputs))
}

func (bv *BudgetView) setFocus(i int) {
	bv.inputs[bv.focus].Blur()
	bv.focus = i
	bv.inputs[i].Focus()
}

// Update feeds a key event to the focused input while editing.
func (bv BudgetView) Update(msg tea.KeyMsg) (BudgetView, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		bv.NextField()
		return bv, nil
	case "shift+tab", "up":
		bv.PrevField()
		return bv, nil
	}

	var cmd tea.Cmd
	bv.inputs[bv.focus], cmd = bv.inputs[bv.focus].Update(msg)
	return bv, cmd
}

// View renders the budget form from the given budgets. Editing renders the
// live inputs; Viewing renders read-only values.
func (bv BudgetView) View(b tracker.Budgets) string {
	var out strings.Builder
	out.WriteString(styleSection.Render("Budgets") + "\n")

	for i, field := range bv.fields {
		label := styleFormLabel.Render(fmt.Sprintf("%-16s", field.label))
		if bv.Mode == BudgetEditing {
			out.WriteString("  " + label + bv.inputs[i].View() + "\n")
		} else {
			out.WriteString("  " + label + styleValue.Render(strconv.Itoa(field.get(b))) + "\n")
		}
	}

	if bv.Mode == BudgetEditing {
		out.WriteString(styleHelp.Render("  enter save · esc cancel · tab/↑↓ field"))
	} else {
		out.WriteString(styleHelp.Render("  e edit"))
	}
	return out.String()
}
