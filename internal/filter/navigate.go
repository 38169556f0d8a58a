package filter

type Direction int

const (
	Prev Direction = -1
	Next Direction = 1
)

// Neighbor returns the item before or after the one keyed key within items,
// wrapping around at either end. ok is false when key is not in items.
func Neighbor[T Item](items []T, key string, dir Direction) (T, bool) {
	var zero T
	idx := -1
	for i, item := range items {
		if item.Key() == key {
			idx = i
			break
		}
	}
	if idx < 0 {
		return zero, false
	}
	n := len(items)
	return items[((idx+int(dir))%n+n)%n], true
}
