package content

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/Zachkp/folio/internal/catalog"
)

// Parse reads YAML frontmatter and body from r into T.
func Parse[T any](r io.Reader) (T, string, error) {
	var meta T
	body, err := frontmatter.Parse(r, &meta)
	if err != nil {
		return meta, "", fmt.Errorf("parsing frontmatter: %w", err)
	}
	return meta, strings.TrimSpace(string(body)), nil
}

type postMeta struct {
	ID          string         `yaml:"id"`
	Title       string         `yaml:"title"`
	Slug        string         `yaml:"slug"`
	Date        time.Time      `yaml:"date"`
	Category    string         `yaml:"category"`
	CoverImage  string         `yaml:"cover_image"`
	Excerpt     string         `yaml:"excerpt"`
	ReadTime    int            `yaml:"read_time"`
	Tags        []string       `yaml:"tags"`
	Featured    bool           `yaml:"featured"`
	ExternalURL string         `yaml:"external_url"`
	Author      catalog.Author `yaml:"author"`
}

type projectMeta struct {
	ID           string   `yaml:"id"`
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Category     string   `yaml:"category"`
	Technologies []string `yaml:"technologies"`
	Image        string   `yaml:"image"`
	LiveURL      string   `yaml:"live_url"`
	RepoURL      string   `yaml:"github_url"`
	Featured     bool     `yaml:"featured"`
}

type photoMeta struct {
	ID          string    `yaml:"id"`
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Category    string    `yaml:"category"`
	Collection  string    `yaml:"collection"`
	Tags        []string  `yaml:"tags"`
	Src         string    `yaml:"src"`
	Width       int       `yaml:"width"`
	Height      int       `yaml:"height"`
	Date        time.Time `yaml:"date"`
}
