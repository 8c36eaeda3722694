package tracker

// Totals is the full set of values derived from a State. It is always
// recomputed from the meal lists; nothing here is cached as source of truth.
type Totals struct {
	Calories int
	Protein  int
	Carbs    int
	Fat      int
	Fiber    int

	// NetCalories is calories eaten minus calories burned through activity.
	NetCalories int
	// Deficit is TDEE minus net calories. Positive means under the baseline;
	// negative means over. The subtraction order is part of the contract.
	Deficit int
}

// Macro returns the consumed grams for the given macro kind.
func (t Totals) Macro(k MacroKind) int {
	switch k {
	case Protein:
		return t.Protein
	case Carbs:
		return t.Carbs
	case Fat:
		return t.Fat
	case Fiber:
		return t.Fiber
	}
	return 0
}

// ComputeTotals sums every entry across all meal slots and derives net
// calories and the TDEE deficit.
func ComputeTotals(s *State) Totals {
	var t Totals
	for _, slot := range MealSlots() {
		for _, f := range s.Meals[slot] {
			t.Calories += f.Calories
			t.Protein += f.Protein
			t.Carbs += f.Carbs
			t.Fat += f.Fat
			t.Fiber += f.Fiber
		}
	}
	t.NetCalories = t.Calories - s.TotalBurned
	t.Deficit = s.Budgets.TDEE - t.NetCalories
	return t
}

// Percent returns value as a percentage of budget. A budget of zero (or
// less) yields 0 rather than dividing by zero. The result is not clamped;
// capping at 100 for display is a rendering concern.
func Percent(value, budget int) float64 {
	if budget <= 0 {
		return 0
	}
	return float64(value) / float64(budget) * 100
}

// MealTotal sums the calories of the entries in one meal slot.
func MealTotal(s *State, slot MealSlot) int {
	total := 0
	for _, f := range s.Meals[slot] {
		total += f.Calories
	}
	return total
}
