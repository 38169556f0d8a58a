// Package store keeps a catalog snapshot in SQLite so the site can serve its
// Source Lists without reading markdown at startup.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/Zachkp/folio/internal/catalog"
)

//go:embed schema.sql
var schema string

// timeLayout is fixed width so stored timestamps sort chronologically as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ErrNoImport is returned by LastImport before anything was saved.
var ErrNoImport = errors.New("no import recorded")

// Store handles database operations
type Store struct {
	db *sql.DB
}

var _ catalog.Source = (*Store)(nil)

// ImportRun records one SaveCatalog call.
type ImportRun struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Posts     int       `json:"posts"`
	Projects  int       `json:"projects"`
	Photos    int       `json:"photos"`
}

// Open creates a Store with the given database path and applies the schema.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveCatalog replaces the stored Source Lists with c, keeping c's order.
func (s *Store) SaveCatalog(ctx context.Context, c *catalog.Catalog) (*ImportRun, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"posts", "projects", "photos"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return nil, fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for i, p := range c.Posts {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO posts (id, position, title, slug, excerpt, category, tags, date,
				cover_image, body, read_time, featured, external_url, author_name, author_avatar)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, i, p.Title, p.Slug, p.Excerpt, p.Category, encodeList(p.Tags), formatTime(p.Date),
			p.CoverImage, p.Body, p.ReadTime, p.Featured, p.ExternalURL, p.Author.Name, p.Author.Avatar,
		)
		if err != nil {
			return nil, fmt.Errorf("insert post %s: %w", p.ID, err)
		}
	}

	for i, p := range c.Projects {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO projects (id, position, title, description, full_description, category,
				technologies, image, live_url, repo_url, featured)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, i, p.Title, p.Description, p.FullDescription, p.Category,
			encodeList(p.Technologies), p.Image, p.LiveURL, p.RepoURL, p.Featured,
		)
		if err != nil {
			return nil, fmt.Errorf("insert project %s: %w", p.ID, err)
		}
	}

	for i, p := range c.Photos {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO photos (id, position, title, description, category, collection, tags,
				src, width, height, date)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, i, p.Title, p.Description, p.Category, p.Collection, encodeList(p.Tags),
			p.Src, p.Width, p.Height, formatTime(p.Date),
		)
		if err != nil {
			return nil, fmt.Errorf("insert photo %s: %w", p.ID, err)
		}
	}

	run := &ImportRun{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Posts:     len(c.Posts),
		Projects:  len(c.Projects),
		Photos:    len(c.Photos),
	}
	_, err = tx.ExecContext(ctx,
		"INSERT INTO import_runs (id, created_at, posts, projects, photos) VALUES (?, ?, ?, ?, ?)",
		run.ID, formatTime(run.CreatedAt), run.Posts, run.Projects, run.Photos,
	)
	if err != nil {
		return nil, fmt.Errorf("insert import run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}
	return run, nil
}

// Load reads the stored Source Lists in their saved order.
func (s *Store) Load(ctx context.Context) (*catalog.Catalog, error) {
	posts, err := s.listPosts(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.listProjects(ctx)
	if err != nil {
		return nil, err
	}
	photos, err := s.listPhotos(ctx)
	if err != nil {
		return nil, err
	}
	return &catalog.Catalog{Posts: posts, Projects: projects, Photos: photos}, nil
}

// LastImport returns the most recent import run.
func (s *Store) LastImport(ctx context.Context) (*ImportRun, error) {
	var run ImportRun
	var created string
	err := s.db.QueryRowContext(ctx,
		"SELECT id, created_at, posts, projects, photos FROM import_runs ORDER BY created_at DESC, rowid DESC LIMIT 1",
	).Scan(&run.ID, &created, &run.Posts, &run.Projects, &run.Photos)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoImport
	}
	if err != nil {
		return nil, fmt.Errorf("get import run: %w", err)
	}
	if run.CreatedAt, err = parseTime(created); err != nil {
		return nil, err
	}
	return &run, nil
}

func (s *Store) listPosts(ctx context.Context) ([]catalog.Post, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, slug, excerpt, category, tags, date, cover_image, body,
			read_time, featured, external_url, author_name, author_avatar
		FROM posts ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := []catalog.Post{}
	for rows.Next() {
		var p catalog.Post
		var tags, date string
		if err := rows.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Category, &tags, &date,
			&p.CoverImage, &p.Body, &p.ReadTime, &p.Featured, &p.ExternalURL,
			&p.Author.Name, &p.Author.Avatar); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		if p.Tags, err = decodeList(tags); err != nil {
			return nil, fmt.Errorf("post %s tags: %w", p.ID, err)
		}
		if p.Date, err = parseTime(date); err != nil {
			return nil, fmt.Errorf("post %s: %w", p.ID, err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (s *Store) listProjects(ctx context.Context) ([]catalog.Project, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, full_description, category, technologies,
			image, live_url, repo_url, featured
		FROM projects ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := []catalog.Project{}
	for rows.Next() {
		var p catalog.Project
		var tech string
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.FullDescription, &p.Category,
			&tech, &p.Image, &p.LiveURL, &p.RepoURL, &p.Featured); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		if p.Technologies, err = decodeList(tech); err != nil {
			return nil, fmt.Errorf("project %s technologies: %w", p.ID, err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (s *Store) listPhotos(ctx context.Context) ([]catalog.Photo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, category, collection, tags, src, width, height, date
		FROM photos ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	defer rows.Close()

	photos := []catalog.Photo{}
	for rows.Next() {
		var p catalog.Photo
		var tags, date string
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Category, &p.Collection,
			&tags, &p.Src, &p.Width, &p.Height, &date); err != nil {
			return nil, fmt.Errorf("scan photo: %w", err)
		}
		if p.Tags, err = decodeList(tags); err != nil {
			return nil, fmt.Errorf("photo %s tags: %w", p.ID, err)
		}
		if p.Date, err = parseTime(date); err != nil {
			return nil, fmt.Errorf("photo %s: %w", p.ID, err)
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

func encodeList(vals []string) string {
	if len(vals) == 0 {
		return "[]"
	}
	b, _ := json.Marshal(vals)
	return string(b)
}

func decodeList(s string) ([]string, error) {
	vals := []string{}
	if err := json.Unmarshal([]byte(s), &vals); err != nil {
		return nil, err
	}
	return vals, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time %q: %w", s, err)
	}
	return t, nil
}
