package tracker

import (
	"path/filepath"
	"testing"
)

func newMemStore() *Store {
	return NewStore("", Options{TrackFiber: true})
}

func TestAddFoodCoercesInvalidInput(t *testing.T) {
	t.Parallel()
	store := newMemStore()

	f := store.AddFood(Lunch, FoodDraft{
		Name:     "Mystery",
		Calories: "lots",
		Protein:  "-3",
		Carbs:    "45",
		Fat:      "",
		Fiber:    "2",
	})

	if f.Calories != 0 || f.Protein != 0 || f.Fat != 0 {
		t.Errorf("invalid fields not coerced to 0: %+v", f)
	}
	if f.Carbs != 45 || f.Fiber != 2 {
		t.Errorf("valid fields mangled: %+v", f)
	}
	if len(store.State().Meals[Lunch]) != 1 {
		t.Fatalf("entry not appended to lunch")
	}
}

func TestAddFoodIDsAreUnique(t *testing.T) {
	t.Parallel()
	store := newMemStore()

	seen := make(map[int64]bool)
	for i := 0; i < 50; i++ {
		f := store.AddFood(Dinner, FoodDraft{Name: "x", Calories: "1"})
		if seen[f.ID] {
			t.Fatalf("duplicate id %d at entry %d", f.ID, i)
		}
		seen[f.ID] = true
	}
}

func TestAddFoodIgnoresFiberWhenUntracked(t *testing.T) {
	t.Parallel()
	store := NewStore("", Options{TrackFiber: false})

	f := store.AddFood(Breakfast, FoodDraft{Name: "Bran", Calories: "100", Fiber: "12"})
	if f.Fiber != 0 {
		t.Errorf("Fiber = %d, want 0 when fiber tracking is off", f.Fiber)
	}
}

func TestRemoveFoodMissingIDIsNoOp(t *testing.T) {
	t.Parallel()
	store := newMemStore()
	store.AddFood(Lunch, FoodDraft{Name: "Rice", Calories: "200"})

	store.RemoveFood(Lunch, 9999)
	store.RemoveFood(Dinner, 1)

	if got := len(store.State().Meals[Lunch]); got != 1 {
		t.Errorf("lunch has %d entries after no-op removes, want 1", got)
	}
}

func TestRemoveFoodKeepsOrder(t *testing.T) {
	t.Parallel()
	store := newMemStore()
	a := store.AddFood(Lunch, FoodDraft{Name: "a", Calories: "1"})
	b := store.AddFood(Lunch, FoodDraft{Name: "b", Calories: "2"})
	c := store.AddFood(Lunch, FoodDraft{Name: "c", Calories: "3"})

	store.RemoveFood(Lunch, b.ID)

	entries := store.State().Meals[Lunch]
	if len(entries) != 2 || entries[0].ID != a.ID || entries[1].ID != c.ID {
		t.Errorf("entries after remove = %+v, want [a c] in insertion order", entries)
	}
}

func TestSetTotalBurnedClampsNegative(t *testing.T) {
	t.Parallel()
	store := newMemStore()

	store.SetTotalBurned(350)
	if got := store.State().TotalBurned; got != 350 {
		t.Errorf("TotalBurned = %d, want 350", got)
	}

	store.SetTotalBurned(-20)
	if got := store.State().TotalBurned; got != 0 {
		t.Errorf("TotalBurned = %d after negative set, want 0", got)
	}
}

func TestSetBudgetsReplacesAtomically(t *testing.T) {
	t.Parallel()
	store := newMemStore()

	b := store.State().Budgets.Clone()
	b.TotalCalories = 1800
	b.Meals[Lunch] = 550
	b.Macros[Fiber] = 25
	store.SetBudgets(b)

	got := store.State().Budgets
	if got.TotalCalories != 1800 || got.Meals[Lunch] != 550 || got.Macros[Fiber] != 25 {
		t.Errorf("budgets not replaced: %+v", got)
	}

	// Mutating the caller's value afterwards must not leak into the store.
	b.Meals[Lunch] = 1
	if store.State().Budgets.Meals[Lunch] != 550 {
		t.Error("SetBudgets aliased the caller's meal map")
	}
}

func TestSetActiveTab(t *testing.T) {
	t.Parallel()
	store := newMemStore()

	store.SetActiveTab(TabBudget)
	if got := store.State().ActiveTab; got != TabBudget {
		t.Errorf("ActiveTab = %v, want TabBudget", got)
	}
}

// Save followed by a fresh load must reconstruct an observationally equal
// state: same meals, same budgets, same burned calories, same tab.
func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), StateFileName)
	store := NewStore(path, Options{Persist: true, TrackFiber: true})

	store.AddFood(Breakfast, FoodDraft{Name: "Yogurt", Calories: "150", Protein: "15"})
	store.AddFood(Lunch, FoodDraft{Name: "Rice", Calories: "200", Carbs: "45", Fiber: "1"})
	store.SetTotalBurned(250)
	store.SetActiveTab(TabBudget)

	b := store.State().Budgets.Clone()
	b.TDEE = 2700
	b.Macros[Protein] = 160
	store.SetBudgets(b)

	reloaded := NewStore(path, Options{Persist: true, TrackFiber: true})
	got, want := reloaded.State(), store.State()

	if got.ActiveTab != want.ActiveTab || got.TotalBurned != want.TotalBurned {
		t.Errorf("scalars: got tab=%v burned=%d, want tab=%v burned=%d",
			got.ActiveTab, got.TotalBurned, want.ActiveTab, want.TotalBurned)
	}
	if got.Budgets.TDEE != 2700 || got.Budgets.Macros[Protein] != 160 {
		t.Errorf("budgets not round-tripped: %+v", got.Budgets)
	}
	for _, slot := range MealSlots() {
		if len(got.Meals[slot]) != len(want.Meals[slot]) {
			t.Fatalf("%v: %d entries, want %d", slot, len(got.Meals[slot]), len(want.Meals[slot]))
		}
		for i := range want.Meals[slot] {
			if got.Meals[slot][i] != want.Meals[slot][i] {
				t.Errorf("%v[%d] = %+v, want %+v", slot, i, got.Meals[slot][i], want.Meals[slot][i])
			}
		}
	}
}

// A store loaded from a snapshot must not hand out ids that collide with
// persisted entries.
func TestIDCounterSeededPastSnapshot(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), StateFileName)

	first := NewStore(path, Options{Persist: true, TrackFiber: true})
	old := first.AddFood(Dinner, FoodDraft{Name: "Pasta", Calories: "500"})

	second := NewStore(path, Options{Persist: true, TrackFiber: true})
	fresh := second.AddFood(Dinner, FoodDraft{Name: "Sauce", Calories: "90"})

	if fresh.ID <= old.ID {
		t.Errorf("fresh id %d not past persisted id %d", fresh.ID, old.ID)
	}
}

func TestNoPersistLeavesNoFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, StateFileName)

	store := NewStore(path, Options{Persist: false, TrackFiber: true})
	store.AddFood(Lunch, FoodDraft{Name: "Rice", Calories: "200"})

	reloaded := NewStore(path, Options{Persist: false, TrackFiber: true})
	if got := len(reloaded.State().Meals[Lunch]); got != 0 {
		t.Errorf("persist disabled but %d entries survived a reload", got)
	}
}
