package tracker

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// StateFileName is the name of the snapshot file inside the state directory.
const StateFileName = "kcal.state.toml"

// stateRecord is the TOML-serializable form of State. Scalars are pointers
// so a value absent from an older snapshot can be told apart from zero and
// filled from defaults during the merge.
type stateRecord struct {
	ActiveTab   string                  `toml:"active_tab,omitempty"`
	TotalBurned *int                    `toml:"total_burned,omitempty"`
	Budgets     budgetsRecord           `toml:"budgets,omitempty"`
	Meals       map[string][]foodRecord `toml:"meals,omitempty"`
}

type budgetsRecord struct {
	TotalCalories *int           `toml:"total_calories,omitempty"`
	TDEE          *int           `toml:"tdee,omitempty"`
	BurnGoal      *int           `toml:"burn_goal,omitempty"`
	Meals         map[string]int `toml:"meals,omitempty"`
	Macros        map[string]int `toml:"macros,omitempty"`
}

type foodRecord struct {
	ID       int64  `toml:"id"`
	Name     string `toml:"name"`
	Calories int    `toml:"calories"`
	Protein  int    `toml:"protein"`
	Carbs    int    `toml:"carbs"`
	Fat      int    `toml:"fat"`
	Fiber    int    `toml:"fiber"`
}

// loadSnapshot reads the snapshot at path and deep-merges it onto a fresh
// default state. It fails open: a missing or unparsable snapshot silently
// yields the defaults.
func loadSnapshot(path string) *State {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultState()
	}
	var rec stateRecord
	if err := toml.Unmarshal(data, &rec); err != nil {
		return DefaultState()
	}
	return mergeSnapshot(rec)
}

// mergeSnapshot overlays a decoded snapshot onto the defaults. Scalars
// present in the snapshot win; the meal and macro budget maps are merged
// key by key so a key added after the snapshot was written picks up its
// default. Unknown keys in the snapshot are dropped, so the fixed key sets
// hold after any merge.
func mergeSnapshot(rec stateRecord) *State {
	st := DefaultState()

	if tab, ok := TabFromKey(rec.ActiveTab); ok {
		st.ActiveTab = tab
	}
	if rec.TotalBurned != nil && *rec.TotalBurned >= 0 {
		st.TotalBurned = *rec.TotalBurned
	}

	if rec.Budgets.TotalCalories != nil {
		st.Budgets.TotalCalories = *rec.Budgets.TotalCalories
	}
	if rec.Budgets.TDEE != nil {
		st.Budgets.TDEE = *rec.Budgets.TDEE
	}
	if rec.Budgets.BurnGoal != nil {
		st.Budgets.BurnGoal = *rec.Budgets.BurnGoal
	}
	for key, v := range rec.Budgets.Meals {
		if slot, ok := MealSlotFromKey(key); ok {
			st.Budgets.Meals[slot] = v
		}
	}
	for key, v := range rec.Budgets.Macros {
		if k, ok := MacroKindFromKey(key); ok {
			st.Budgets.Macros[k] = v
		}
	}

	for key, foods := range rec.Meals {
		slot, ok := MealSlotFromKey(key)
		if !ok {
			continue
		}
		entries := make([]FoodEntry, 0, len(foods))
		for _, fr := range foods {
			entries = append(entries, FoodEntry(fr))
		}
		st.Meals[slot] = entries
	}

	return st
}

// saveSnapshot writes the full state atomically (write temp + rename).
func saveSnapshot(path string, st *State) error {
	data, err := toml.Marshal(encodeSnapshot(st))
	if err != nil {
		return fmt.Errorf("marshaling state: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing temp state file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming state file: %w", err)
	}
	return nil
}

func encodeSnapshot(st *State) stateRecord {
	burned := st.TotalBurned
	total := st.Budgets.TotalCalories
	tdee := st.Budgets.TDEE
	burnGoal := st.Budgets.BurnGoal

	rec := stateRecord{
		ActiveTab:   st.ActiveTab.Key(),
		TotalBurned: &burned,
		Budgets: budgetsRecord{
			TotalCalories: &total,
			TDEE:          &tdee,
			BurnGoal:      &burnGoal,
			Meals:         make(map[string]int, len(st.Budgets.Meals)),
			Macros:        make(map[string]int, len(st.Budgets.Macros)),
		},
		Meals: make(map[string][]foodRecord, mealSlotCount),
	}
	for slot, v := range st.Budgets.Meals {
		rec.Budgets.Meals[slot.Key()] = v
	}
	for k, v := range st.Budgets.Macros {
		rec.Budgets.Macros[k.Key()] = v
	}
	for _, slot := range MealSlots() {
		foods := make([]foodRecord, 0, len(st.Meals[slot]))
		for _, f := range st.Meals[slot] {
			foods = append(foods, foodRecord(f))
		}
		rec.Meals[slot.Key()] = foods
	}
	return rec
}
