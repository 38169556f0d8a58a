package site

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/catalog"
	"github.com/Zachkp/folio/internal/filter"
	"github.com/Zachkp/folio/internal/github"
)

const fetchFailedMessage = "Failed to fetch GitHub data. Please try again later."

// githubResult is the page session after its single fetch: either a profile
// with a sorted, filtered repository view, or a terminal failure with an
// empty repository list.
type githubResult struct {
	view    *filter.View[catalog.Repository]
	profile *catalog.Profile
	sortBy  filter.SortKey
	failed  bool
}

// loadGitHub waits for this page load's fetch. ok is false when the client went
// away before it finished; nothing has been written in that case.
func (s *Server) loadGitHub(c *gin.Context, sortBy filter.SortKey) (githubResult, bool) {
	snap, err := s.githubSession().Load(c.Request.Context())
	res := githubResult{sortBy: sortBy}
	switch {
	case err == nil:
		res.profile = snap.Profile
		res.view = filter.NewRankedView(snap.Repositories, sortBy).Replace(parseState(c, "language", "category"))
	case errors.Is(err, github.ErrFetch):
		res.failed = true
		res.view = filter.NewRankedView([]catalog.Repository{}, sortBy)
	default:
		log.Printf("[%s] GitHub wait abandoned: %v", reqID(c), err)
		return res, false
	}
	return res, true
}

func (s *Server) githubPage(c *gin.Context) {
	sortBy, err := parseSort(c)
	if err != nil {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{"title": "Bad Request", "error": err.Error()})
		return
	}
	res, ok := s.loadGitHub(c, sortBy)
	if !ok {
		return
	}

	data := gin.H{
		"title":        "GitHub",
		"profile":      res.profile,
		"repositories": res.view.Items(),
		"empty":        !res.failed && res.view.Empty(),
		"filters": newFilterBar(res.view, barOptions{
			path: "/github", categoryParam: "language", tags: true, sort: sortBy, sortable: true,
		}),
	}
	status := http.StatusOK
	if res.failed {
		data["error"] = fetchFailedMessage
		status = http.StatusBadGateway
	}
	c.HTML(status, "github.html", data)
}

type githubResponse struct {
	Status  github.Status    `json:"status"`
	Profile *catalog.Profile `json:"profile"`
	Sort    filter.SortKey   `json:"sort"`
	Error   string           `json:"error,omitempty"`
	listResponse[catalog.Repository]
}

func (s *Server) githubAPI(c *gin.Context) {
	sortBy, err := parseSort(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, ok := s.loadGitHub(c, sortBy)
	if !ok {
		return
	}

	resp := githubResponse{
		Status:       github.StatusReady,
		Profile:      res.profile,
		Sort:         sortBy,
		listResponse: newListResponse(res.view, false),
	}
	if res.failed {
		resp.Status = github.StatusFailed
		resp.Error = fetchFailedMessage
		resp.Empty = false
		c.JSON(http.StatusBadGateway, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
