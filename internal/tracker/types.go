package tracker

import "strconv"

// MealSlot identifies one of the five fixed eating occasions used to bucket
// food entries. The set is not user-extensible.
type MealSlot int

const (
	Breakfast MealSlot = iota
	MorningSnack
	Lunch
	EveningSnack
	Dinner
)

// mealSlotCount is the total number of meal slots.
const mealSlotCount = 5

// mealSlotKeys maps each slot to its stable snapshot key.
var mealSlotKeys = [mealSlotCount]string{
	Breakfast:    "breakfast",
	MorningSnack: "morningSnack",
	Lunch:        "lunch",
	EveningSnack: "eveningSnack",
	Dinner:       "dinner",
}

// mealSlotLabels maps each slot to its human-readable display label.
var mealSlotLabels = [mealSlotCount]string{
	Breakfast:    "Breakfast",
	MorningSnack: "Morning Snack",
	Lunch:        "Lunch",
	EveningSnack: "Evening Snack",
	Dinner:       "Dinner",
}

// MealSlots returns all slots in fixed display order.
func MealSlots() []MealSlot {
	return []MealSlot{Breakfast, MorningSnack, Lunch, EveningSnack, Dinner}
}

// Key returns the slot's stable key used in the persisted snapshot.
func (m MealSlot) Key() string {
	if int(m) >= 0 && int(m) < mealSlotCount {
		return mealSlotKeys[m]
	}
	return "unknown"
}

// Label returns the slot's display label.
func (m MealSlot) Label() string {
	if int(m) >= 0 && int(m) < mealSlotCount {
		return mealSlotLabels[m]
	}
	return "Unknown"
}

// MealSlotFromKey converts a snapshot key back to a MealSlot.
// Returns the slot and true if valid, or Breakfast and false otherwise.
func MealSlotFromKey(key string) (MealSlot, bool) {
	for i, k := range mealSlotKeys {
		if k == key {
			return MealSlot(i), true
		}
	}
	return Breakfast, false
}

// MacroKind identifies a tracked macronutrient, budgeted in grams.
type MacroKind int

const (
	Protein MacroKind = iota
	Carbs
	Fat
	Fiber
)

const macroKindCount = 4

var macroKindKeys = [macroKindCount]string{
	Protein: "protein",
	Carbs:   "carbs",
	Fat:     "fat",
	Fiber:   "fiber",
}

var macroKindLabels = [macroKindCount]string{
	Protein: "Protein",
	Carbs:   "Carbs",
	Fat:     "Fat",
	Fiber:   "Fiber",
}

// MacroKinds returns the tracked macros in budget order. Fiber is excluded
// when fiber tracking is disabled.
func MacroKinds(trackFiber bool) []MacroKind {
	if trackFiber {
		return []MacroKind{Protein, Carbs, Fat, Fiber}
	}
	return []MacroKind{Protein, Carbs, Fat}
}

// Key returns the macro's stable snapshot key.
func (k MacroKind) Key() string {
	if int(k) >= 0 && int(k) < macroKindCount {
		return macroKindKeys[k]
	}
	return "unknown"
}

// Label returns the macro's display label.
func (k MacroKind) Label() string {
	if int(k) >= 0 && int(k) < macroKindCount {
		return macroKindLabels[k]
	}
	return "Unknown"
}

// MacroKindFromKey converts a snapshot key back to a MacroKind.
func MacroKindFromKey(key string) (MacroKind, bool) {
	for i, k := range macroKindKeys {
		if k == key {
			return MacroKind(i), true
		}
	}
	return Protein, false
}

// Tab identifies which of the two top-level views is visible.
type Tab int

const (
	TabLog Tab = iota
	TabBudget
)

const tabCount = 2

// Key returns the tab's stable snapshot key.
func (t Tab) Key() string {
	if t == TabBudget {
		return "budget"
	}
	return "log"
}

// Label returns the tab's display label.
func (t Tab) Label() string {
	if t == TabBudget {
		return "budget"
	}
	return "log"
}

// Next cycles forward to the next tab, wrapping around.
func (t Tab) Next() Tab {
	return Tab((int(t) + 1) % tabCount)
}

// TabFromKey converts a snapshot key back to a Tab.
func TabFromKey(key string) (Tab, bool) {
	switch key {
	case "log":
		return TabLog, true
	case "budget":
		return TabBudget, true
	}
	return TabLog, false
}

// FoodEntry is a single logged food. Immutable once created; it belongs to
// exactly one meal slot's list. All amounts are non-negative integers
// (calories in kcal, macros in grams).
type FoodEntry struct {
	ID       int64
	Name     string
	Calories int
	Protein  int
	Carbs    int
	Fat      int
	Fiber    int
}

// Macro returns the entry's grams for the given macro kind.
func (f FoodEntry) Macro(k MacroKind) int {
	switch k {
	case Protein:
		return f.Protein
	case Carbs:
		return f.Carbs
	case Fat:
		return f.Fat
	case Fiber:
		return f.Fiber
	}
	return 0
}

// FoodDraft carries raw form input for a new food entry. Numeric fields are
// unparsed strings; ParseAmount coerces anything invalid to zero.
type FoodDraft struct {
	Name     string
	Calories string
	Protein  string
	Carbs    string
	Fat      string
	Fiber    string
}

// ParseAmount parses a raw numeric field. Non-numeric or negative input is
// coerced to 0 rather than rejected.
func ParseAmount(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Budgets holds all daily targets: total calories consumed, the TDEE
// baseline used for deficit calculation, the activity burn goal, and the
// per-meal and per-macro targets.
type Budgets struct {
	TotalCalories int
	TDEE          int
	BurnGoal      int
	Meals         map[MealSlot]int
	Macros        map[MacroKind]int
}

// Clone returns a deep copy so a Budgets value can be replaced atomically
// without aliasing the caller's maps.
func (b Budgets) Clone() Budgets {
	c := b
	c.Meals = make(map[MealSlot]int, len(b.Meals))
	for slot, v := range b.Meals {
		c.Meals[slot] = v
	}
	c.Macros = make(map[MacroKind]int, len(b.Macros))
	for k, v := range b.Macros {
		c.Macros[k] = v
	}
	return c
}

// State is the root application state: the visible tab, calories burned
// through activity, all budgets, and the day's food entries per meal slot.
// Every meal slot key is always present, even when its list is empty.
type State struct {
	ActiveTab   Tab
	TotalBurned int
	Budgets     Budgets
	Meals       map[MealSlot][]FoodEntry
}

// Clone returns a deep copy of the state, for readers that outlive the
// current event (e.g. a background export).
func (s *State) Clone() *State {
	c := &State{
		ActiveTab:   s.ActiveTab,
		TotalBurned: s.TotalBurned,
		Budgets:     s.Budgets.Clone(),
		Meals:       make(map[MealSlot][]FoodEntry, len(s.Meals)),
	}
	for slot, entries := range s.Meals {
		c.Meals[slot] = append([]FoodEntry(nil), entries...)
	}
	return c
}

// DefaultState returns the built-in starting state used when no snapshot
// exists, and the base that snapshots are merged onto.
func DefaultState() *State {
	return &State{
		ActiveTab:   TabLog,
		TotalBurned: 0,
		Budgets: Budgets{
			TotalCalories: 2000,
			TDEE:          2500,
			BurnGoal:      500,
			Meals: map[MealSlot]int{
				Breakfast:    400,
				MorningSnack: 200,
				Lunch:        600,
				EveningSnack: 200,
				Dinner:       600,
			},
			Macros: map[MacroKind]int{
				Protein: 150,
				Carbs:   200,
				Fat:     67,
				Fiber:   30,
			},
		},
		Meals: map[MealSlot][]FoodEntry{
			Breakfast:    {},
			MorningSnack: {},
			Lunch:        {},
			EveningSnack: {},
			Dinner:       {},
		},
	}
}
