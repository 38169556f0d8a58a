// Package filter derives views of a Source List from a set of independently
// toggled predicates: single-select category and collection, conjunctive
// tags, and a case-insensitive free-text query.
package filter

import (
	"slices"
)

// All is the sentinel value that disables a single-select predicate.
const All = "All"

// State is an immutable set of predicate values. Every mutator returns a new
// State and leaves the receiver untouched. The zero value disables every
// predicate.
type State struct {
	category   string
	collection string
	tags       []string
	query      string
}

// NewState returns a State with every predicate disabled.
func NewState() State {
	return State{category: All, collection: All}
}

func (s State) Category() string   { return orAll(s.category) }
func (s State) Collection() string { return orAll(s.collection) }
func (s State) Query() string      { return s.query }

// Tags returns the active tag set in sorted order.
func (s State) Tags() []string {
	return slices.Clone(s.tags)
}

func (s State) HasTag(tag string) bool {
	_, found := slices.BinarySearch(s.tags, tag)
	return found
}

// WithCategory sets the category predicate. All or "" disables it.
func (s State) WithCategory(category string) State {
	s.category = category
	return s
}

// WithCollection sets the collection predicate. All or "" disables it.
func (s State) WithCollection(collection string) State {
	s.collection = collection
	return s
}

// WithQuery sets the free-text predicate. The empty string disables it.
func (s State) WithQuery(query string) State {
	s.query = query
	return s
}

// ToggleTag adds tag to the active set if absent and removes it if present.
// The empty tag is never active.
func (s State) ToggleTag(tag string) State {
	if tag == "" {
		return s
	}
	i, found := slices.BinarySearch(s.tags, tag)
	next := slices.Clone(s.tags)
	if found {
		next = slices.Delete(next, i, i+1)
	} else {
		next = slices.Insert(next, i, tag)
	}
	if len(next) == 0 {
		next = nil
	}
	s.tags = next
	return s
}

// Cleared returns a State with every predicate disabled.
func (s State) Cleared() State {
	return NewState()
}

// Active reports whether any predicate is enabled.
func (s State) Active() bool {
	return enabled(s.category) || enabled(s.collection) || len(s.tags) > 0 || s.query != ""
}

// Equal reports whether both states select the same items.
func (s State) Equal(o State) bool {
	return s.Category() == o.Category() &&
		s.Collection() == o.Collection() &&
		s.query == o.query &&
		slices.Equal(s.tags, o.tags)
}

func enabled(v string) bool {
	return v != "" && v != All
}

func orAll(v string) string {
	if v == "" {
		return All
	}
	return v
}
