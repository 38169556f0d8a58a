package github

import (
	"time"

	"github.com/Zachkp/folio/internal/catalog"
)

// apiUser is the subset of GET /users/{username} the site uses.
type apiUser struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	PublicGists int    `json:"public_gists"`
}

func (u *apiUser) toModel() *catalog.Profile {
	return &catalog.Profile{
		Login:       u.Login,
		Name:        u.Name,
		PublicRepos: u.PublicRepos,
		Followers:   u.Followers,
		Following:   u.Following,
		PublicGists: u.PublicGists,
	}
}

// apiRepo is one element of GET /users/{username}/repos. description,
// language and homepage are null on the wire when unset.
type apiRepo struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description"`
	HTMLURL         string    `json:"html_url"`
	Homepage        *string   `json:"homepage"`
	StargazersCount int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	WatchersCount   int       `json:"watchers_count"`
	Language        *string   `json:"language"`
	Topics          []string  `json:"topics"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (r *apiRepo) toModel() catalog.Repository {
	repo := catalog.Repository{
		ID:          r.ID,
		Name:        r.Name,
		Description: deref(r.Description),
		Topics:      r.Topics,
		Stars:       r.StargazersCount,
		Forks:       r.ForksCount,
		Watchers:    r.WatchersCount,
		HTMLURL:     r.HTMLURL,
		Homepage:    deref(r.Homepage),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.Language != nil && *r.Language != "" {
		lang := *r.Language
		repo.Language = &lang
	}
	if repo.Topics == nil {
		repo.Topics = []string{}
	}
	return repo
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
