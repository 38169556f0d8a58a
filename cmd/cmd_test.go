package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// setupEnv moves into an empty directory and writes a config file holding
// settings. It returns the config path.
func setupEnv(t *testing.T, settings map[string]any) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)

	b, err := yaml.Marshal(settings)
	require.NoError(t, err)
	path := filepath.Join(dir, "folio.yaml")
	require.NoError(t, os.WriteFile(path, b, 0o644))
	return path
}

func run(t *testing.T, cfgPath string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestList_BlogByCategory(t *testing.T) {
	cfg := setupEnv(t, map[string]any{})

	out, _, err := run(t, cfg, "list", "blog", "--category", "Web Development")
	require.NoError(t, err)
	assert.Contains(t, out, "building-responsive-web-apps")
	assert.Contains(t, out, "future-web-development-wasm")
	assert.Contains(t, out, "ssr-vs-ssg-nextjs")
	assert.NotContains(t, out, "understanding-typescript")
}

func TestList_PhotosByTags(t *testing.T) {
	cfg := setupEnv(t, map[string]any{})

	out, _, err := run(t, cfg, "list", "photos", "--tag", "sunset", "--tag", "mountains")
	require.NoError(t, err)
	assert.Contains(t, out, "colorful")

	out, _, err = run(t, cfg, "list", "photos", "--tag", "sunset", "--tag", "sunset", "--collection", "Macro")
	require.NoError(t, err)
	assert.NotContains(t, out, "No photos found.")
}

func TestList_EmptyTagFlagIsIgnored(t *testing.T) {
	cfg := setupEnv(t, map[string]any{})

	out, _, err := run(t, cfg, "list", "blog", "--tag", "")
	require.NoError(t, err)
	assert.NotContains(t, out, "No posts found.")
	assert.Contains(t, out, "understanding-typescript")
}

func TestList_EmptyResult(t *testing.T) {
	cfg := setupEnv(t, map[string]any{})

	out, _, err := run(t, cfg, "list", "projects", "-q", "no such project anywhere")
	require.NoError(t, err)
	assert.Equal(t, "No projects found.\n", out)
}

func TestList_InvalidKind(t *testing.T) {
	cfg := setupEnv(t, map[string]any{})
	_, _, err := run(t, cfg, "list", "videos")
	assert.Error(t, err)
}

func TestShow(t *testing.T) {
	cfg := setupEnv(t, map[string]any{})

	out, _, err := run(t, cfg, "show", "building-responsive-web-apps")
	require.NoError(t, err)
	assert.Contains(t, out, "Setting Up Your Project")
}

func TestShow_NotFound(t *testing.T) {
	cfg := setupEnv(t, map[string]any{})
	_, _, err := run(t, cfg, "show", "missing-post")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `post "missing-post" not found`)
}

func TestImportThenListFromDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "folio.db")
	cfg := setupEnv(t, map[string]any{"db_path": dbPath})

	out, _, err := run(t, cfg, "import")
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 7 posts, 6 projects, 12 photos into "+dbPath)

	out, _, err = run(t, cfg, "list", "blog", "--category", "Programming")
	require.NoError(t, err)
	assert.Contains(t, out, "understanding-typescript")
	assert.NotContains(t, out, "ssr-vs-ssg-nextjs")
}

func TestImport_RequiresDatabase(t *testing.T) {
	cfg := setupEnv(t, map[string]any{})
	_, _, err := run(t, cfg, "import")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no database")
}

func newGitHubServer(t *testing.T, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != 0 {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if strings.HasSuffix(r.URL.Path, "/repos") {
			w.Write([]byte(`[
				{"id": 1, "name": "alpha", "language": "Go", "stargazers_count": 2, "forks_count": 5, "updated_at": "2026-01-01T00:00:00Z"},
				{"id": 2, "name": "beta", "language": "TypeScript", "stargazers_count": 9, "forks_count": 1, "updated_at": "2026-03-01T00:00:00Z"}
			]`))
			return
		}
		w.Write([]byte(`{"login": "tester", "name": "Test User", "public_repos": 2, "followers": 1200}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGitHub_ListsRepositories(t *testing.T) {
	srv := newGitHubServer(t, 0)
	cfg := setupEnv(t, map[string]any{"github": map[string]any{"username": "tester", "api_url": srv.URL}})

	out, _, err := run(t, cfg, "github", "--sort", "stars")
	require.NoError(t, err)
	assert.Contains(t, out, "Test User")
	assert.Contains(t, out, "1,200")
	assert.Less(t, strings.Index(out, "beta"), strings.Index(out, "alpha"))

	out, _, err = run(t, cfg, "github", "--language", "Go")
	require.NoError(t, err)
	assert.Contains(t, out, "alpha")
	assert.NotContains(t, out, "beta")
}

func TestGitHub_UnknownSort(t *testing.T) {
	srv := newGitHubServer(t, 0)
	cfg := setupEnv(t, map[string]any{"github": map[string]any{"api_url": srv.URL}})
	_, _, err := run(t, cfg, "github", "--sort", "name")
	assert.Error(t, err)
}

func TestGitHub_FetchFailure(t *testing.T) {
	srv := newGitHubServer(t, http.StatusInternalServerError)
	cfg := setupEnv(t, map[string]any{"github": map[string]any{"api_url": srv.URL}})

	out, stderr, err := run(t, cfg, "github")
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "Failed to fetch GitHub data. Please try again later.")
}
