package tui

import (
	"strings"
	"testing"

	"github.com/kberry/kcal/internal/tracker"
)

func logState() *tracker.State {
	st := tracker.DefaultState()
	st.TotalBurned = 300
	st.Meals[tracker.Breakfast] = []tracker.FoodEntry{
		{ID: 1, Name: "Oats", Calories: 350, Protein: 10, Carbs: 60, Fat: 6, Fiber: 8},
	}
	st.Meals[tracker.Lunch] = []tracker.FoodEntry{
		{ID: 2, Name: "Rice", Calories: 200, Protein: 4, Carbs: 45, Fiber: 1},
	}
	return st
}

func TestLogViewListsMealsInFixedOrder(t *testing.T) {
	t.Parallel()
	out := LogView{State: logState(), TrackFiber: true}.View()

	order := []string{"Breakfast", "Morning Snack", "Lunch", "Evening Snack", "Dinner"}
	last := -1
	for _, label := range order {
		idx := strings.Index(out, label)
		if idx < 0 {
			t.Fatalf("meal section %q missing from view", label)
		}
		if idx < last {
			t.Errorf("meal section %q out of order", label)
		}
		last = idx
	}
}

func TestLogViewShowsEntriesAndTotals(t *testing.T) {
	t.Parallel()
	out := LogView{State: logState(), TrackFiber: true}.View()

	if !strings.Contains(out, "Oats") || !strings.Contains(out, "Rice") {
		t.Error("entries missing from view")
	}
	if !strings.Contains(out, "550 / 2000 cal eaten") {
		t.Errorf("summary total missing: want 550 / 2000 cal eaten")
	}
	if !strings.Contains(out, "300 / 500 cal burned") {
		t.Error("burned summary missing")
	}
	if !strings.Contains(out, "net 250 cal") {
		t.Error("net calories missing")
	}
	if !strings.Contains(out, "deficit 2250 cal") {
		t.Error("deficit missing")
	}
	// Breakfast consumed/budget line.
	if !strings.Contains(out, "350/400 cal") {
		t.Error("breakfast consumed/budget line missing")
	}
	if !strings.Contains(out, "nothing logged") {
		t.Error("empty slots should show a placeholder")
	}
}

func TestLogViewMacroRows(t *testing.T) {
	t.Parallel()
	out := LogView{State: logState(), TrackFiber: true}.View()

	if !strings.Contains(out, "14g / 150g") {
		t.Error("protein row missing consumed/budget grams")
	}
	if !strings.Contains(out, "Fiber") {
		t.Error("fiber row missing with fiber tracking on")
	}

	without := LogView{State: logState(), TrackFiber: false}.View()
	if strings.Contains(without, "Fiber") {
		t.Error("fiber row present with fiber tracking off")
	}
}

func TestLogViewEntryMacroLine(t *testing.T) {
	t.Parallel()
	out := LogView{State: logState(), TrackFiber: true}.View()
	if !strings.Contains(out, "P:10g C:60g F:6g Fb:8g") {
		t.Errorf("per-entry macro line missing")
	}

	without := LogView{State: logState(), TrackFiber: false}.View()
	if strings.Contains(without, "Fb:") {
		t.Error("fiber shown per entry with fiber tracking off")
	}
}

func TestLogViewCursorIndicator(t *testing.T) {
	t.Parallel()
	out := LogView{State: logState(), TrackFiber: true, Cursor: 1}.View()
	if !strings.Contains(out, selectionIndicator) {
		t.Error("selection indicator missing for in-range cursor")
	}
}

func TestEntryRefsFlattenInDisplayOrder(t *testing.T) {
	t.Parallel()
	refs := entryRefs(logState())
	if len(refs) != 2 {
		t.Fatalf("got %d refs, want 2", len(refs))
	}
	if refs[0].Slot != tracker.Breakfast || refs[1].Slot != tracker.Lunch {
		t.Errorf("refs out of order: %+v", refs)
	}
}
