package filter

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"time"
)

type SortKey string

const (
	SortNone    SortKey = ""
	SortStars   SortKey = "stars"
	SortForks   SortKey = "forks"
	SortUpdated SortKey = "updated"
)

var ErrUnknownSortKey = errors.New("unknown sort key")

// SortKeys lists the keys a user may choose from, in display order.
var SortKeys = []SortKey{SortUpdated, SortStars, SortForks}

func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(s); k {
	case SortNone, SortStars, SortForks, SortUpdated:
		return k, nil
	}
	return SortNone, fmt.Errorf("%w %q: must be one of stars, forks, updated", ErrUnknownSortKey, s)
}

// Ranked items carry the numeric and date fields the sort keys order by.
type Ranked interface {
	Item
	RankStars() int
	RankForks() int
	RankUpdated() time.Time
}

// Sort returns a copy of items ordered descending by key. Ties keep their
// relative input order. SortNone returns the copy unchanged.
func Sort[T Ranked](items []T, key SortKey) []T {
	out := slices.Clone(items)
	if out == nil {
		out = []T{}
	}
	var compare func(a, b T) int
	switch key {
	case SortStars:
		compare = func(a, b T) int { return cmp.Compare(b.RankStars(), a.RankStars()) }
	case SortForks:
		compare = func(a, b T) int { return cmp.Compare(b.RankForks(), a.RankForks()) }
	case SortUpdated:
		compare = func(a, b T) int { return b.RankUpdated().Compare(a.RankUpdated()) }
	default:
		return out
	}
	slices.SortStableFunc(out, compare)
	return out
}
