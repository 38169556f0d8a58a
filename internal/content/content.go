// Package content loads the portfolio Source Lists from markdown files with
// YAML frontmatter, laid out as blog/*.md, projects/*.md and photos/*.md.
// Files are read in lexical order, which is the Source List order.
package content

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/Zachkp/folio/internal/catalog"
)

//go:embed defaults
var defaults embed.FS

// Dir is a catalog.Source backed by a file system.
type Dir struct {
	fsys fs.FS
}

var _ catalog.Source = (*Dir)(nil)

func New(fsys fs.FS) *Dir {
	return &Dir{fsys: fsys}
}

// Default returns the built-in sample content.
func Default() *Dir {
	sub, err := fs.Sub(defaults, "defaults")
	if err != nil {
		panic(err)
	}
	return New(sub)
}

// Open returns Default when dir is empty, else a Dir over the directory.
func Open(dir string) (*Dir, error) {
	if dir == "" {
		return Default(), nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("opening content dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content dir %s is not a directory", dir)
	}
	return New(os.DirFS(dir)), nil
}

func (d *Dir) Load(ctx context.Context) (*catalog.Catalog, error) {
	posts, err := loadAll(ctx, d.fsys, "blog", toPost)
	if err != nil {
		return nil, err
	}
	projects, err := loadAll(ctx, d.fsys, "projects", toProject)
	if err != nil {
		return nil, err
	}
	photos, err := loadAll(ctx, d.fsys, "photos", toPhoto)
	if err != nil {
		return nil, err
	}

	c := &catalog.Catalog{Posts: posts, Projects: projects, Photos: photos}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validating content: %w", err)
	}
	return c, nil
}

func loadAll[M, E any](ctx context.Context, fsys fs.FS, dir string, convert func(M, string, string) E) ([]E, error) {
	matches, err := fs.Glob(fsys, path.Join(dir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("globbing %s: %w", dir, err)
	}
	out := make([]E, 0, len(matches))
	for _, name := range matches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		meta, body, err := readEntity[M](fsys, name)
		if err != nil {
			return nil, err
		}
		out = append(out, convert(meta, body, fileID(name)))
	}
	return out, nil
}

func readEntity[M any](fsys fs.FS, name string) (M, string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		var zero M
		return zero, "", fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	meta, body, err := Parse[M](f)
	if err != nil {
		return meta, "", fmt.Errorf("%s: %w", name, err)
	}
	return meta, body, nil
}

// fileID strips the directory, extension and any numeric ordering prefix:
// "blog/03-rest-api.md" becomes "rest-api".
func fileID(name string) string {
	base := strings.TrimSuffix(path.Base(name), path.Ext(name))
	if i := strings.IndexByte(base, '-'); i > 0 && strings.Trim(base[:i], "0123456789") == "" {
		base = base[i+1:]
	}
	return base
}

func toPost(m postMeta, body, fallbackID string) catalog.Post {
	p := catalog.Post{
		ID:          firstNonEmpty(m.ID, fallbackID),
		Title:       m.Title,
		Slug:        firstNonEmpty(m.Slug, Slugify(m.Title)),
		Excerpt:     m.Excerpt,
		Category:    m.Category,
		Tags:        nonNil(m.Tags),
		Date:        m.Date,
		CoverImage:  m.CoverImage,
		Body:        body,
		ReadTime:    m.ReadTime,
		Featured:    m.Featured,
		ExternalURL: m.ExternalURL,
		Author:      m.Author,
	}
	if p.Excerpt == "" {
		p.Excerpt = Excerpt(body)
	}
	if p.ReadTime == 0 {
		p.ReadTime = ReadTime(body)
	}
	return p
}

func toProject(m projectMeta, body, fallbackID string) catalog.Project {
	p := catalog.Project{
		ID:              firstNonEmpty(m.ID, fallbackID),
		Title:           m.Title,
		Description:     m.Description,
		FullDescription: body,
		Category:        m.Category,
		Technologies:    nonNil(m.Technologies),
		Image:           m.Image,
		LiveURL:         m.LiveURL,
		RepoURL:         m.RepoURL,
		Featured:        m.Featured,
	}
	if p.Description == "" {
		p.Description = Excerpt(body)
	}
	return p
}

func toPhoto(m photoMeta, body, fallbackID string) catalog.Photo {
	p := catalog.Photo{
		ID:          firstNonEmpty(m.ID, fallbackID),
		Title:       m.Title,
		Description: firstNonEmpty(m.Description, body),
		Category:    m.Category,
		Collection:  m.Collection,
		Tags:        nonNil(m.Tags),
		Src:         m.Src,
		Width:       m.Width,
		Height:      m.Height,
		Date:        m.Date,
	}
	return p
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
