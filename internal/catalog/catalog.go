// Package catalog defines the portfolio entities and the Source List aggregate.
package catalog

import (
	"context"
	"time"
)

// Author is the byline shown on a post.
type Author struct {
	Name   string `json:"name" yaml:"name"`
	Avatar string `json:"avatar" yaml:"avatar"`
}

type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	Date        time.Time `json:"date"`
	CoverImage  string    `json:"coverImage,omitempty"`
	Body        string    `json:"-"`
	ReadTime    int       `json:"readTime"`
	Featured    bool      `json:"featured"`
	ExternalURL string    `json:"externalUrl,omitempty"`
	Author      Author    `json:"author"`
}

type Project struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	FullDescription string   `json:"fullDescription,omitempty"`
	Category        string   `json:"category"`
	Technologies    []string `json:"technologies"`
	Image           string   `json:"image,omitempty"`
	LiveURL         string   `json:"liveUrl,omitempty"`
	RepoURL         string   `json:"githubUrl,omitempty"`
	Featured        bool     `json:"featured"`
}

// Photo carries an optional second grouping dimension: an empty Collection
// means the photo belongs to no collection.
type Photo struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Collection  string    `json:"collection,omitempty"`
	Tags        []string  `json:"tags"`
	Src         string    `json:"src"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	Date        time.Time `json:"date"`
}

// Repository is a public repository as reported by the GitHub API.
// Language is nil when GitHub could not detect one.
type Repository struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Language    *string   `json:"language"`
	Topics      []string  `json:"topics"`
	Stars       int       `json:"stars"`
	Forks       int       `json:"forks"`
	Watchers    int       `json:"watchers"`
	HTMLURL     string    `json:"htmlUrl"`
	Homepage    string    `json:"homepage,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Profile holds the counters shown above the repository list.
type Profile struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	PublicRepos int    `json:"publicRepos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	PublicGists int    `json:"publicGists"`
}

// Catalog is the set of Source Lists loaded once at start-up. It is never
// mutated after loading; reloading produces a new Catalog.
type Catalog struct {
	Posts    []Post
	Projects []Project
	Photos   []Photo
}

// Source loads a Catalog from some backing medium.
type Source interface {
	Load(ctx context.Context) (*Catalog, error)
}

// FeaturedPost returns the first post marked featured, falling back to the
// first post. ok is false when there are no posts.
func FeaturedPost(posts []Post) (Post, bool) {
	for _, p := range posts {
		if p.Featured {
			return p, true
		}
	}
	if len(posts) == 0 {
		return Post{}, false
	}
	return posts[0], true
}

func FeaturedProjects(projects []Project) []Project {
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// LatestPosts returns up to n posts, most recent first. The input is not modified.
func LatestPosts(posts []Post, n int) []Post {
	out := make([]Post, len(posts))
	copy(out, posts)
	sortPostsByDate(out)
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

func (c *Catalog) PostBySlug(slug string) (Post, bool) {
	for _, p := range c.Posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return Post{}, false
}
