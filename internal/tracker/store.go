package tracker

// Options configures a Store's capability flags.
type Options struct {
	// Persist controls whether mutations are written to the snapshot file.
	Persist bool
	// TrackFiber controls whether fiber appears in macro summaries, budget
	// fields, and exports. Entries always carry the field; it just stays
	// zero when untracked.
	TrackFiber bool
}

// Store owns the single State instance and exposes all mutation operations.
// Views and aggregation read the state through it but never mutate it
// directly. Every mutating operation persists the whole state, best effort.
type Store struct {
	path   string
	opts   Options
	state  *State
	nextID int64
}

// NewStore initializes a store from the snapshot at path, falling back to
// defaults when the snapshot is missing or unreadable. The id counter is
// seeded past the largest id found so entries added this session never
// collide with persisted ones.
func NewStore(path string, opts Options) *Store {
	s := &Store{path: path, opts: opts}
	s.state = loadSnapshot(path)
	s.nextID = maxEntryID(s.state) + 1
	return s
}

// maxEntryID returns the largest entry id in the state, or 0 when empty.
func maxEntryID(st *State) int64 {
	var max int64
	for _, slot := range MealSlots() {
		for _, f := range st.Meals[slot] {
			if f.ID > max {
				max = f.ID
			}
		}
	}
	return max
}

// State returns the canonical state for reading. Callers must not mutate it.
func (s *Store) State() *State {
	return s.state
}

// TrackFiber reports whether fiber tracking is enabled.
func (s *Store) TrackFiber() bool {
	return s.opts.TrackFiber
}

// AddFood parses the draft (invalid numerics coerce to 0), assigns a fresh
// id, appends the entry to the slot's list, and persists.
func (s *Store) AddFood(slot MealSlot, d FoodDraft) FoodEntry {
	f := FoodEntry{
		ID:       s.nextID,
		Name:     d.Name,
		Calories: ParseAmount(d.Calories),
		Protein:  ParseAmount(d.Protein),
		Carbs:    ParseAmount(d.Carbs),
		Fat:      ParseAmount(d.Fat),
	}
	if s.opts.TrackFiber {
		f.Fiber = ParseAmount(d.Fiber)
	}
	s.nextID++
	s.state.Meals[slot] = append(s.state.Meals[slot], f)
	s.persist()
	return f
}

// RemoveFood removes the entry with the given id from the slot's list.
// A missing id is a silent no-op, not an error.
func (s *Store) RemoveFood(slot MealSlot, id int64) {
	entries := s.state.Meals[slot]
	for i, f := range entries {
		if f.ID == id {
			s.state.Meals[slot] = append(entries[:i], entries[i+1:]...)
			s.persist()
			return
		}
	}
}

// SetTotalBurned sets the activity calories, clamping negatives to 0.
func (s *Store) SetTotalBurned(v int) {
	if v < 0 {
		v = 0
	}
	s.state.TotalBurned = v
	s.persist()
}

// SetBudgets replaces all budget values atomically. The value is deep
// copied so later edits to the caller's maps cannot leak in.
func (s *Store) SetBudgets(b Budgets) {
	s.state.Budgets = b.Clone()
	s.persist()
}

// SetActiveTab records which view is visible.
func (s *Store) SetActiveTab(t Tab) {
	s.state.ActiveTab = t
	s.persist()
}

// Reload re-reads the snapshot from disk, replacing the in-memory state.
// Used when the snapshot file changed underneath us.
func (s *Store) Reload() {
	s.state = loadSnapshot(s.path)
	if id := maxEntryID(s.state); id >= s.nextID {
		s.nextID = id + 1
	}
}

// Save writes the full state to the snapshot file.
func (s *Store) Save() error {
	return saveSnapshot(s.path, s.state)
}

// persist is the best-effort save performed after every mutation. Failures
// are invisible to the mutation's caller; the in-memory state is already
// updated either way.
func (s *Store) persist() {
	if !s.opts.Persist {
		return
	}
	_ = s.Save()
}
