package filter

// View owns the mutable predicate state for one Source List and keeps the
// Derived View current. Every mutator recomputes synchronously before it
// returns, so a caller never observes a stale or half-applied view.
//
// A View is not safe for concurrent use; create one per page session.
type View[T Item] struct {
	source  []T
	state   State
	derived []T
	sortBy  func([]T) []T
}

func NewView[T Item](source []T) *View[T] {
	v := &View[T]{source: source, state: NewState()}
	v.recompute()
	return v
}

// NewRankedView returns a View whose Derived View is additionally ordered by
// key after filtering.
func NewRankedView[T Ranked](source []T, key SortKey) *View[T] {
	v := &View[T]{source: source, state: NewState()}
	v.sortBy = func(items []T) []T { return Sort(items, key) }
	v.recompute()
	return v
}

func (v *View[T]) SetCategory(category string) *View[T] {
	return v.set(v.state.WithCategory(category))
}

func (v *View[T]) SetCollection(collection string) *View[T] {
	return v.set(v.state.WithCollection(collection))
}

func (v *View[T]) ToggleTag(tag string) *View[T] {
	return v.set(v.state.ToggleTag(tag))
}

func (v *View[T]) SetSearchQuery(query string) *View[T] {
	return v.set(v.state.WithQuery(query))
}

// ClearAll resets every predicate in one step.
func (v *View[T]) ClearAll() *View[T] {
	return v.set(v.state.Cleared())
}

// Replace installs a whole State at once.
func (v *View[T]) Replace(st State) *View[T] {
	return v.set(st)
}

func (v *View[T]) State() State { return v.state }

// Items returns the current Derived View. The slice must not be modified.
func (v *View[T]) Items() []T { return v.derived }

func (v *View[T]) Source() []T { return v.source }

// Empty reports the EmptyResult state: a valid view with zero items.
func (v *View[T]) Empty() bool { return len(v.derived) == 0 }

func (v *View[T]) Categories() []string  { return Categories(v.source) }
func (v *View[T]) Collections() []string { return Collections(v.source) }
func (v *View[T]) Tags() []string        { return Tags(v.source) }

func (v *View[T]) set(st State) *View[T] {
	v.state = st
	v.recompute()
	return v
}

func (v *View[T]) recompute() {
	derived := Apply(v.source, v.state)
	if v.sortBy != nil {
		derived = v.sortBy(derived)
	}
	v.derived = derived
}
