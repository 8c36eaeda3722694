package tracker

import "testing"

func TestMealSlotKeyRoundTrip(t *testing.T) {
	t.Parallel()
	for _, slot := range MealSlots() {
		got, ok := MealSlotFromKey(slot.Key())
		if !ok || got != slot {
			t.Errorf("MealSlotFromKey(%q) = %v, %v; want %v, true", slot.Key(), got, ok, slot)
		}
	}
	if _, ok := MealSlotFromKey("brunch"); ok {
		t.Error("MealSlotFromKey(\"brunch\") accepted an unknown key")
	}
}

func TestMealSlotLabel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		slot MealSlot
		want string
	}{
		{Breakfast, "Breakfast"},
		{MorningSnack, "Morning Snack"},
		{Lunch, "Lunch"},
		{EveningSnack, "Evening Snack"},
		{Dinner, "Dinner"},
		{MealSlot(99), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			if got := tt.slot.Label(); got != tt.want {
				t.Errorf("MealSlot(%d).Label() = %q, want %q", tt.slot, got, tt.want)
			}
		})
	}
}

func TestMacroKindsOrder(t *testing.T) {
	t.Parallel()
	withFiber := MacroKinds(true)
	want := []MacroKind{Protein, Carbs, Fat, Fiber}
	if len(withFiber) != len(want) {
		t.Fatalf("MacroKinds(true) returned %d kinds, want %d", len(withFiber), len(want))
	}
	for i, k := range want {
		if withFiber[i] != k {
			t.Errorf("MacroKinds(true)[%d] = %v, want %v", i, withFiber[i], k)
		}
	}

	withoutFiber := MacroKinds(false)
	if len(withoutFiber) != 3 {
		t.Fatalf("MacroKinds(false) returned %d kinds, want 3", len(withoutFiber))
	}
	for _, k := range withoutFiber {
		if k == Fiber {
			t.Error("MacroKinds(false) includes Fiber")
		}
	}
}

func TestTabNext(t *testing.T) {
	t.Parallel()
	if got := TabLog.Next(); got != TabBudget {
		t.Errorf("TabLog.Next() = %v, want TabBudget", got)
	}
	if got := TabBudget.Next(); got != TabLog {
		t.Errorf("TabBudget.Next() = %v, want TabLog", got)
	}
}

func TestParseAmount(t *testing.T) {
	t.Parallel()
	tests := []struct {
		raw  string
		want int
	}{
		{"200", 200},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"-5", 0},
		{"12.5", 0},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			if got := ParseAmount(tt.raw); got != tt.want {
				t.Errorf("ParseAmount(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDefaultStateShape(t *testing.T) {
	t.Parallel()
	st := DefaultState()

	// Every slot key is present, even when empty.
	for _, slot := range MealSlots() {
		if _, ok := st.Meals[slot]; !ok {
			t.Errorf("DefaultState missing meal list for %v", slot)
		}
		if _, ok := st.Budgets.Meals[slot]; !ok {
			t.Errorf("DefaultState missing meal budget for %v", slot)
		}
	}
	for _, k := range MacroKinds(true) {
		if _, ok := st.Budgets.Macros[k]; !ok {
			t.Errorf("DefaultState missing macro budget for %v", k)
		}
	}

	if st.Budgets.TotalCalories != 2000 || st.Budgets.TDEE != 2500 || st.Budgets.BurnGoal != 500 {
		t.Errorf("default budget scalars = %d/%d/%d, want 2000/2500/500",
			st.Budgets.TotalCalories, st.Budgets.TDEE, st.Budgets.BurnGoal)
	}
}

func TestBudgetsCloneIsDeep(t *testing.T) {
	t.Parallel()
	b := DefaultState().Budgets
	c := b.Clone()
	c.Meals[Lunch] = 9999
	c.Macros[Protein] = 9999
	if b.Meals[Lunch] == 9999 || b.Macros[Protein] == 9999 {
		t.Error("Clone shares maps with the original")
	}
}
