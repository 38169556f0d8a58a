package site

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/filter"
)

// listResponse is the JSON shape of every filtered Source List. Empty marks
// the no-results state and is never used for failures.
type listResponse[T any] struct {
	Items       []T        `json:"items"`
	Count       int        `json:"count"`
	Total       int        `json:"total"`
	Empty       bool       `json:"empty"`
	Categories  []string   `json:"categories"`
	Collections []string   `json:"collections,omitempty"`
	Tags        []string   `json:"tags"`
	Filter      filterData `json:"filter"`
}

func newListResponse[T filter.Item](v *filter.View[T], collections bool) listResponse[T] {
	resp := listResponse[T]{
		Items:      v.Items(),
		Count:      len(v.Items()),
		Total:      len(v.Source()),
		Empty:      v.Empty(),
		Categories: v.Categories(),
		Tags:       v.Tags(),
		Filter:     newFilterData(v.State()),
	}
	if collections {
		resp.Collections = v.Collections()
	}
	return resp
}

func (s *Server) projectsAPI(c *gin.Context) {
	v := filter.NewView(s.currentCatalog().Projects).Replace(parseState(c))
	c.JSON(http.StatusOK, newListResponse(v, false))
}

func (s *Server) blogAPI(c *gin.Context) {
	v := filter.NewView(s.currentCatalog().Posts).Replace(parseState(c))
	c.JSON(http.StatusOK, newListResponse(v, false))
}

func (s *Server) photosAPI(c *gin.Context) {
	v := filter.NewView(s.currentCatalog().Photos).Replace(parseState(c))
	c.JSON(http.StatusOK, newListResponse(v, true))
}
