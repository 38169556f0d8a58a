package filter

// Categories returns All followed by every distinct non-empty category of
// source, in order of first appearance.
func Categories[T Item](source []T) []string {
	return distinct(source, func(item T) []string {
		return []string{item.FilterCategory()}
	}, true)
}

// Collections is Categories for the collection dimension. Items that are not
// Collected, or that belong to no collection, contribute nothing.
func Collections[T Item](source []T) []string {
	return distinct(source, func(item T) []string {
		if c, ok := any(item).(Collected); ok {
			return []string{c.FilterCollection()}
		}
		return nil
	}, true)
}

// Tags returns every distinct tag of source in order of first appearance.
// There is no All sentinel: an empty tag set is the disabled state.
func Tags[T Item](source []T) []string {
	return distinct(source, func(item T) []string {
		return item.FilterTags()
	}, false)
}

func distinct[T any](source []T, values func(T) []string, withAll bool) []string {
	out := []string{}
	if withAll {
		out = append(out, All)
	}
	seen := map[string]bool{}
	for _, item := range source {
		for _, v := range values(item) {
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
