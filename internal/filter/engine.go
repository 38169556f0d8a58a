package filter

import (
	"slices"
	"strings"
)

// Item is the capability every filterable entity exposes.
type Item interface {
	Key() string
	FilterCategory() string
	FilterTags() []string
	SearchFields() []string
}

// Collected is implemented by items with an optional second grouping
// dimension. An empty collection means the item belongs to none.
type Collected interface {
	FilterCollection() string
}

// Apply returns the items of source that satisfy every active predicate in
// st, in source order. source is never modified and the result is never nil.
func Apply[T Item](source []T, st State) []T {
	q := strings.ToLower(st.query)
	out := make([]T, 0, len(source))
	for _, item := range source {
		if categoryOK(item, st) && collectionOK(item, st) && tagsOK(item, st) && searchOK(item, q) {
			out = append(out, item)
		}
	}
	return out
}

// Match reports whether a single item satisfies st.
func Match[T Item](item T, st State) bool {
	return categoryOK(item, st) && collectionOK(item, st) && tagsOK(item, st) &&
		searchOK(item, strings.ToLower(st.query))
}

func categoryOK(item Item, st State) bool {
	if !enabled(st.category) {
		return true
	}
	return item.FilterCategory() == st.category
}

func collectionOK(item Item, st State) bool {
	if !enabled(st.collection) {
		return true
	}
	c, ok := item.(Collected)
	if !ok {
		return false
	}
	col := c.FilterCollection()
	return col != "" && col == st.collection
}

// tagsOK is conjunctive: every active tag must be present on the item.
func tagsOK(item Item, st State) bool {
	if len(st.tags) == 0 {
		return true
	}
	have := item.FilterTags()
	for _, t := range st.tags {
		if !slices.Contains(have, t) {
			return false
		}
	}
	return true
}

func searchOK(item Item, q string) bool {
	if q == "" {
		return true
	}
	for _, f := range item.SearchFields() {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
