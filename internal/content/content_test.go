package content

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	src := `---
title: "Hello"
date: 2024-05-01T00:00:00Z
tags:
  - go
  - web
---

Body text.
`
	meta, body, err := Parse[postMeta](strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "Hello", meta.Title)
	assert.Equal(t, []string{"go", "web"}, meta.Tags)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), meta.Date.UTC())
	assert.Equal(t, "Body text.", body)
}

func TestLoad_DirectoryOrderAndDerivedFields(t *testing.T) {
	fsys := fstest.MapFS{
		"blog/02-second.md":  {Data: []byte("---\ntitle: Second Post\ncategory: Go\n---\n\nshort body")},
		"blog/01-first.md":   {Data: []byte("---\nid: p1\ntitle: First\nslug: first-post\ncategory: Go\nexcerpt: given\nread_time: 4\n---\n\nbody")},
		"projects/01-cli.md": {Data: []byte("---\ntitle: CLI\ncategory: Tools\n---\n\nA command line tool.")},
		"photos/01-sky.md":   {Data: []byte("---\ntitle: Sky\ncategory: Nature\nsrc: /sky.jpg\n---\n")},
	}

	c, err := New(fsys).Load(context.Background())
	require.NoError(t, err)

	require.Len(t, c.Posts, 2)
	assert.Equal(t, "p1", c.Posts[0].ID)
	assert.Equal(t, "first-post", c.Posts[0].Slug)
	assert.Equal(t, "given", c.Posts[0].Excerpt)
	assert.Equal(t, 4, c.Posts[0].ReadTime)

	second := c.Posts[1]
	assert.Equal(t, "second", second.ID)
	assert.Equal(t, "second-post", second.Slug)
	assert.Equal(t, "short body", second.Excerpt)
	assert.Equal(t, 1, second.ReadTime)
	assert.NotNil(t, second.Tags)

	require.Len(t, c.Projects, 1)
	assert.Equal(t, "cli", c.Projects[0].ID)
	assert.Equal(t, "A command line tool.", c.Projects[0].Description)
	assert.Equal(t, "A command line tool.", c.Projects[0].FullDescription)

	require.Len(t, c.Photos, 1)
	assert.Equal(t, "", c.Photos[0].Collection)
}

func TestLoad_MissingDirectoriesAreEmpty(t *testing.T) {
	c, err := New(fstest.MapFS{}).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, c.Posts)
	assert.Empty(t, c.Projects)
	assert.Empty(t, c.Photos)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
		want string
	}{
		{
			name: "missing category",
			fsys: fstest.MapFS{"blog/a.md": {Data: []byte("---\ntitle: A\n---\n")}},
			want: "post category is required",
		},
		{
			name: "duplicate slug",
			fsys: fstest.MapFS{
				"blog/a.md": {Data: []byte("---\ntitle: Same\ncategory: X\n---\n")},
				"blog/b.md": {Data: []byte("---\ntitle: Same\ncategory: X\n---\n")},
			},
			want: `duplicate post slug "same"`,
		},
		{
			name: "photo without src",
			fsys: fstest.MapFS{"photos/a.md": {Data: []byte("---\ntitle: A\ncategory: X\n---\n")}},
			want: "photo src is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.fsys).Load(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_BadFrontmatter(t *testing.T) {
	fsys := fstest.MapFS{"blog/a.md": {Data: []byte("---\ntitle: [unclosed\n---\n")}}
	_, err := New(fsys).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blog/a.md")
}

func TestLoad_CanceledContext(t *testing.T) {
	fsys := fstest.MapFS{"blog/a.md": {Data: []byte("---\ntitle: A\ncategory: X\n---\n")}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(fsys).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDefault(t *testing.T) {
	c, err := Default().Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, c.Posts, 7)
	assert.Len(t, c.Projects, 6)
	assert.Len(t, c.Photos, 12)

	assert.True(t, c.Posts[0].Featured)
	assert.Equal(t, "Web Development", c.Posts[0].Category)
	assert.Equal(t, "Mechanical Keyboard", c.Photos[6].Title)
	assert.Empty(t, c.Photos[6].Collection)
	assert.Equal(t, "Landscapes", c.Photos[0].Collection)
	assert.NotEmpty(t, c.Posts[6].Excerpt)
}

func TestOpen(t *testing.T) {
	d, err := Open("")
	require.NoError(t, err)
	assert.NotNil(t, d)

	_, err = Open(t.TempDir() + "/missing")
	assert.Error(t, err)
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "Title plain text", Excerpt("# Title\n\nplain *text*\n\n```\ncode()\n```"))

	long := strings.Repeat("word ", 60)
	got := Excerpt(long)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.LessOrEqual(t, len([]rune(got)), excerptLen+3)
}

func TestReadTime(t *testing.T) {
	assert.Equal(t, 1, ReadTime(""))
	assert.Equal(t, 1, ReadTime(strings.Repeat("w ", 200)))
	assert.Equal(t, 2, ReadTime(strings.Repeat("w ", 201)))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "server-side-rendering-vs-static-site-generation-in-next-js",
		Slugify("Server-Side Rendering vs. Static Site Generation in Next.js"))
	assert.Equal(t, "hello-world", Slugify("  Hello, World!  "))
	assert.Equal(t, "cafe-resume-tips", Slugify("Café Résumé Tips"))
	assert.Equal(t, "uber-cool-notes", Slugify("ÜBER Cool Notes"))
}

func TestFileID(t *testing.T) {
	assert.Equal(t, "rest-api", fileID("blog/03-rest-api.md"))
	assert.Equal(t, "rest-api", fileID("blog/rest-api.md"))
	assert.Equal(t, "v2-notes", fileID("blog/v2-notes.md"))
}
