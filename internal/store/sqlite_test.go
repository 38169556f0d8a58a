package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/folio/internal/catalog"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "folio.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleCatalog() *catalog.Catalog {
	day := func(d int) time.Time { return time.Date(2023, 3, d, 0, 0, 0, 0, time.UTC) }
	return &catalog.Catalog{
		Posts: []catalog.Post{
			{
				ID: "2", Title: "Second", Slug: "second", Excerpt: "b", Category: "Go",
				Tags: []string{"go", "sql"}, Date: day(2), Body: "# Second", ReadTime: 3,
				Author: catalog.Author{Name: "Zach", Avatar: "/a.png"},
			},
			{
				ID: "1", Title: "First", Slug: "first", Excerpt: "a", Category: "Web",
				Tags: []string{}, Date: day(1), Featured: true, ExternalURL: "https://example.com",
			},
		},
		Projects: []catalog.Project{
			{ID: "p", Title: "Folio", Description: "site", Category: "Web", Technologies: []string{"Go"}, Featured: true},
		},
		Photos: []catalog.Photo{
			{ID: "x", Title: "Sky", Category: "Nature", Collection: "Landscapes", Tags: []string{"blue"}, Src: "/x.jpg", Width: 10, Height: 20, Date: day(3)},
			{ID: "y", Title: "Desk", Category: "Tech", Tags: []string{}, Src: "/y.jpg", Date: day(4)},
		},
	}
}

func TestStore_SaveAndLoadRoundTrip(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()
	want := sampleCatalog()

	run, err := s.SaveCatalog(ctx, want)
	require.NoError(t, err)
	_, err = uuid.Parse(run.ID)
	assert.NoError(t, err)
	assert.Equal(t, 2, run.Posts)
	assert.Equal(t, 1, run.Projects)
	assert.Equal(t, 2, run.Photos)

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStore_SaveReplacesPreviousImport(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	_, err := s.SaveCatalog(ctx, sampleCatalog())
	require.NoError(t, err)

	smaller := sampleCatalog()
	smaller.Posts = smaller.Posts[:1]
	smaller.Photos = nil
	second, err := s.SaveCatalog(ctx, smaller)
	require.NoError(t, err)

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got.Posts, 1)
	assert.NotNil(t, got.Photos)
	assert.Empty(t, got.Photos)

	last, err := s.LastImport(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, last.ID)
	assert.Equal(t, 0, last.Photos)
}

func TestStore_EmptyDatabase(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.Posts)
	assert.Empty(t, got.Projects)
	assert.Empty(t, got.Photos)

	_, err = s.LastImport(ctx)
	assert.ErrorIs(t, err, ErrNoImport)
}

func TestStore_InvalidCatalogIsRejected(t *testing.T) {
	s := openTest(t)
	c := sampleCatalog()
	c.Photos[0].Src = ""

	_, err := s.SaveCatalog(context.Background(), c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "photo src is required")

	_, err = s.LastImport(context.Background())
	assert.ErrorIs(t, err, ErrNoImport)
}

func TestStore_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.db")
	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.SaveCatalog(context.Background(), sampleCatalog())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "second", got.Posts[0].Slug)
}

func TestStore_LastImportIsChronological(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	whole := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	later := whole.Add(500 * time.Millisecond)
	for _, run := range []struct {
		id string
		at time.Time
	}{{"later", later}, {"whole", whole}} {
		_, err := s.db.ExecContext(ctx,
			"INSERT INTO import_runs (id, created_at, posts, projects, photos) VALUES (?, ?, 0, 0, 0)",
			run.id, formatTime(run.at))
		require.NoError(t, err)
	}

	last, err := s.LastImport(ctx)
	require.NoError(t, err)
	assert.Equal(t, "later", last.ID)
	assert.True(t, later.Equal(last.CreatedAt))
}

func TestFormatTime_SortsAsText(t *testing.T) {
	whole := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	assert.Less(t, formatTime(whole), formatTime(whole.Add(time.Nanosecond)))
	assert.Less(t, formatTime(whole.Add(500*time.Millisecond)), formatTime(whole.Add(time.Second)))

	got, err := parseTime(formatTime(whole))
	require.NoError(t, err)
	assert.True(t, whole.Equal(got))
}
