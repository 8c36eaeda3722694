package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kberry/kcal/internal/tracker"
)

// Food form field positions. Field 0 is the meal-slot selector; the rest
// are text inputs.
const (
	foodFieldSlot = iota
	foodFieldName
	foodFieldCalories
	foodFieldProtein
	foodFieldCarbs
	foodFieldFat
	foodFieldFiber
)

var foodFieldLabels = []string{
	foodFieldSlot:     "meal",
	foodFieldName:     "name",
	foodFieldCalories: "calories",
	foodFieldProtein:  "protein",
	foodFieldCarbs:    "carbs",
	foodFieldFat:      "fat",
	foodFieldFiber:    "fiber",
}

// FoodForm gathers a draft food entry: a meal-slot selector plus one text
// input per field. Submit hands the raw values to the store, which does all
// coercion.
type FoodForm struct {
	Slot       tracker.MealSlot
	Inputs     []textinput.Model // indexed by field-1
	Focus      int
	TrackFiber bool
}

// NewFoodForm creates the form with the name field focused.
func NewFoodForm(trackFiber bool) FoodForm {
	count := foodFieldFat
	if trackFiber {
		count = foodFieldFiber
	}

	inputs := make([]textinput.Model, count)
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 32
		ti.Width = 20
		if i > 0 {
			ti.Placeholder = "0"
			ti.CharLimit = 5
			ti.Width = 6
		}
		inputs[i] = ti
	}
	inputs[0].Placeholder = "what did you eat?"

	f := FoodForm{Inputs: inputs, Focus: foodFieldName, TrackFiber: trackFiber}
	f.Inputs[0].Focus()
	return f
}

func (f *FoodForm) fieldCount() int {
	return len(f.Inputs) + 1 // +1 for the slot selector
}

// NextField moves focus forward, wrapping around.
func (f *FoodForm) NextField() {
	f.setFocus((f.Focus + 1) % f.fieldCount())
}

// PrevField moves focus backward, wrapping around.
func (f *FoodForm) PrevField() {
	f.setFocus((f.Focus + f.fieldCount() - 1) % f.fieldCount())
}

func (f *FoodForm) setFocus(field int) {
	f.Focus = field
	for i := range f.Inputs {
		if i == field-1 {
			f.Inputs[i].Focus()
		} else {
			f.Inputs[i].Blur()
		}
	}
}

// NextSlot cycles the meal slot forward.
func (f *FoodForm) NextSlot() {
	f.Slot = tracker.MealSlot((int(f.Slot) + 1) % len(tracker.MealSlots()))
}

// PrevSlot cycles the meal slot backward.
func (f *FoodForm) PrevSlot() {
	n := len(tracker.MealSlots())
	f.Slot = tracker.MealSlot((int(f.Slot) + n - 1) % n)
}

// Draft returns the raw field values for the store to parse.
func (f FoodForm) Draft() tracker.FoodDraft {
	d := tracker.FoodDraft{
		Name:     f.Inputs[foodFieldName-1].Value(),
		Calories: f.Inputs[foodFieldCalories-1].Value(),
		Protein:  f.Inputs[foodFieldProtein-1].Value(),
		Carbs:    f.Inputs[foodFieldCarbs-1].Value(),
		Fat:      f.Inputs[foodFieldFat-1].Value(),
	}
	if f.TrackFiber {
		d.Fiber = f.Inputs[foodFieldFiber-1].Value()
	}
	return d
}

// Reset clears every input after a submit, keeping the chosen slot.
func (f *FoodForm) Reset() {
	for i := range f.Inputs {
		f.Inputs[i].SetValue("")
	}
	f.setFocus(foodFieldName)
}

// Update routes key events: vertical movement cycles fields, horizontal
// movement changes the slot while the selector is focused, and anything
// else feeds the focused text input.
func (f FoodForm) Update(msg tea.KeyMsg) (FoodForm, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		f.NextField()
		return f, nil
	case "shift+tab", "up":
		f.PrevField()
		return f, nil
	case "left":
		if f.Focus == foodFieldSlot {
			f.PrevSlot()
			return f, nil
		}
	case "right":
		if f.Focus == foodFieldSlot {
			f.NextSlot()
			return f, nil
		}
	}

	if f.Focus == foodFieldSlot {
		return f, nil
	}

	var cmd tea.Cmd
	f.Inputs[f.Focus-1], cmd = f.Inputs[f.Focus-1].Update(msg)
	return f, cmd
}

// View renders the form.
func (f FoodForm) View() string {
	var b strings.Builder
	b.WriteString(styleFormTitle.Render("Add food") + "\n")

	slot := fmt.Sprintf("◀ %s ▶", f.Slot.Label())
	slotStyle := styleValue
	if f.Focus == foodFieldSlot {
		slotStyle = styleEntrySelected
	}
	b.WriteString("  " + styleFormLabel.Render(fmt.Sprintf("%-10s", foodFieldLabels[foodFieldSlot])) + slotStyle.Render(slot) + "\n")

	for i := range f.Inputs {
		b.WriteString("  " + styleFormLabel.Render(fmt.Sprintf("%-10s", foodFieldLabels[i+1])) + f.Inputs[i].View() + "\n")
	}

	b.WriteString(styleHelp.Render("  enter add · tab/↑↓ field · ←/→ meal · esc close"))
	return b.String()
}
