package site

import (
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/filter"
)

// parseState builds a filter.State from the query string. Each tag parameter
// toggles that tag, so a repeated tag cancels itself out.
func parseState(c *gin.Context, categoryParams ...string) filter.State {
	if len(categoryParams) == 0 {
		categoryParams = []string{"category"}
	}
	st := filter.NewState()
	for _, p := range categoryParams {
		if v := c.Query(p); v != "" {
			st = st.WithCategory(v)
			break
		}
	}
	st = st.WithCollection(c.Query("collection")).WithQuery(c.Query("q"))
	for _, tag := range c.QueryArray("tag") {
		st = st.ToggleTag(tag)
	}
	return st
}

// parseSort reads the sort parameter, defaulting to most recently updated.
func parseSort(c *gin.Context) (filter.SortKey, error) {
	return filter.ParseSortKey(c.DefaultQuery("sort", string(filter.SortUpdated)))
}

// encodeState is the inverse of parseState.
func encodeState(st filter.State, categoryParam string, sort filter.SortKey) url.Values {
	q := url.Values{}
	if st.Category() != filter.All {
		q.Set(categoryParam, st.Category())
	}
	if st.Collection() != filter.All {
		q.Set("collection", st.Collection())
	}
	for _, tag := range st.Tags() {
		q.Add("tag", tag)
	}
	if st.Query() != "" {
		q.Set("q", st.Query())
	}
	if sort != filter.SortNone && sort != filter.SortUpdated {
		q.Set("sort", string(sort))
	}
	return q
}

func link(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
