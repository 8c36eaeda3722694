package tui

import (
	"fmt"
	"strings"

	"github.com/kberry/kcal/internal/tracker"
)

// entryRef addresses one food entry by slot and position, used to map the
// flat browse cursor onto the per-slot lists.
type entryRef struct {
	Slot  tracker.MealSlot
	Index int
}

// entryRefs flattens the day's entries in display order.
func entryRefs(st *tracker.State) []entryRef {
	var refs []entryRef
	for _, slot := range tracker.MealSlots() {
		for i := range st.Meals[slot] {
			refs = append(refs, entryRef{Slot: slot, Index: i})
		}
	}
	return refs
}

// LogView renders the log tab: daily summary, macro summary, and the five
// meal sections. It is rebuilt from state on every render.
type LogView struct {
	State      *tracker.State
	TrackFiber bool
	Cursor     int // index into entryRefs order; ignored when out of range
	Width      int
}

// View renders the full log tab from state.
func (lv LogView) View() string {
	var b strings.Builder
	b.WriteString(lv.renderSummary())
	b.WriteString("\n")
	b.WriteString(lv.renderMacros())
	b.WriteString("\n")
	b.WriteString(lv.renderMeals())
	return b.String()
}

// renderSummary shows totals against budgets plus the two gauges.
func (lv LogView) renderSummary() string {
	st := lv.State
	totals := tracker.ComputeTotals(st)

	var b strings.Builder
	b.WriteString(styleSection.Render("Today") + "\n")

	eaten := fmt.Sprintf("%d / %d cal eaten", totals.Calories, st.Budgets.TotalCalories)
	burned := fmt.Sprintf("%d / %d cal burned", st.TotalBurned, st.Budgets.BurnGoal)
	b.WriteString("  " + styleValue.Render(eaten) + styleMuted.Render("   ·   ") + styleValue.Render(burned) + "\n")

	net := fmt.Sprintf("net %d cal", totals.NetCalories)
	deficit := fmt.Sprintf("deficit %d cal", totals.Deficit)
	if totals.Deficit < 0 {
		deficit = styleDanger.Render(deficit)
	} else {
		deficit = styleValue.Render(deficit)
	}
	b.WriteString("  " + styleValue.Render(net) + styleMuted.Render("   ·   ") + deficit + "\n")

	b.WriteString(renderGauge("eaten", tracker.Percent(totals.Calories, st.Budgets.TotalCalories), styleBarFill) + "\n")
	b.WriteString(renderGauge("burned", tracker.Percent(st.TotalBurned, st.Budgets.BurnGoal), styleBarWarn) + "\n")
	return b.String()
}

// renderMacros shows consumed-vs-budget grams per macro with a capped bar,
// flagged when consumption strictly exceeds the budget.
func (lv LogView) renderMacros() string {
	st := lv.State
	totals := tracker.ComputeTotals(st)

	var b strings.Builder
	b.WriteString(styleSection.Render("Macros") + "\n")
	for _, k := range tracker.MacroKinds(lv.TrackFiber) {
		budget := st.Budgets.Macros[k]
		consumed := totals.Macro(k)

		amount := fmt.Sprintf("%dg / %dg", consumed, budget)
		if consumed > budget {
			amount = styleDanger.Render(amount)
		} else {
			amount = styleValue.Render(amount)
		}

		pct := tracker.Percent(consumed, budget)
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			styleLabel.Render(fmt.Sprintf("%-8s", k.Label())),
			renderBar(pct, barWidth, styleBarFill),
			amount))
	}
	return b.String()
}

// renderMeals lists every slot in fixed order with its entries, the
// consumed/budget line, and a capped progress bar.
func (lv LogView) renderMeals() string {
	st := lv.State
	refs := entryRefs(st)

	var b strings.Builder
	flat := 0
	for _, slot := range tracker.MealSlots() {
		budget := st.Budgets.Meals[slot]
		total := tracker.MealTotal(st, slot)

		header := fmt.Sprintf("%d/%d cal", total, budget)
		if total > budget {
			header = styleDanger.Render(header)
		} else {
			header = styleMuted.Render(header)
		}
		b.WriteString(styleSection.Render(slot.Label()) + "  " + header + "\n")

		entries := st.Meals[slot]
		if len(entries) == 0 {
			b.WriteString("  " + styleMuted.Render("nothing logged") + "\n")
		}
		for _, f := range entries {
			selected := flat == lv.Cursor && flat < len(refs)
			b.WriteString(lv.renderEntry(f, selected))
			flat++
		}

		pct := tracker.Percent(total, budget)
		b.WriteString("  " + renderBar(pct, barWidth, styleBarFill) + "\n\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// renderEntry renders one food row: name, per-entry macros, calories.
func (lv LogView) renderEntry(f tracker.FoodEntry, selected bool) string {
	indicator := "  "
	nameStyle := styleEntryName
	if selected {
		indicator = styleSelectionIndicator.Render(selectionIndicator) + " "
		nameStyle = styleEntrySelected
	}

	macros := fmt.Sprintf("P:%dg C:%dg F:%dg", f.Protein, f.Carbs, f.Fat)
	if lv.TrackFiber {
		macros += fmt.Sprintf(" Fb:%dg", f.Fiber)
	}

	name := f.Name
	if name == "" {
		name = "(unnamed)"
	}

	return fmt.Sprintf("%s%s  %s  %s\n",
		indicator,
		nameStyle.Render(fmt.Sprintf("%-18s", name)),
		styleMuted.Render(macros),
		styleValue.Render(fmt.Sprintf("%d cal", f.Calories)))
}
