package cmd

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatch(t *testing.T, dir string) *atomic.Int32 {
	t.Helper()
	var reloads atomic.Int32
	w, err := watchContent(dir, func() error {
		reloads.Add(1)
		return nil
	})
	require.NoError(t, err)
	t.Cleanup(func() { w.Close() })
	return &reloads
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestWatchContent_ReloadsAfterEditsSettle(t *testing.T) {
	dir := t.TempDir()
	blog := filepath.Join(dir, "blog")
	require.NoError(t, os.Mkdir(blog, 0o755))
	reloads := startWatch(t, dir)

	post := filepath.Join(blog, "01-hello.md")
	for i := range 3 {
		writeFile(t, post, "---\ntitle: Hello\ncategory: Go\n---\n\nedit "+string(rune('a'+i)))
	}
	assert.Equal(t, int32(0), reloads.Load(), "no reload before the debounce elapses")

	require.Eventually(t, func() bool { return reloads.Load() == 1 }, 5*time.Second, 20*time.Millisecond)
	time.Sleep(3 * reloadDebounce)
	assert.Equal(t, int32(1), reloads.Load(), "a burst of edits reloads once")
}

func TestWatchContent_WatchesNewDirectories(t *testing.T) {
	dir := t.TempDir()
	reloads := startWatch(t, dir)

	photos := filepath.Join(dir, "photos")
	require.NoError(t, os.Mkdir(photos, 0o755))
	require.Eventually(t, func() bool { return reloads.Load() == 1 }, 5*time.Second, 20*time.Millisecond)

	writeFile(t, filepath.Join(photos, "01-sky.md"), "---\ntitle: Sky\ncategory: Nature\nsrc: /sky.jpg\n---\n")
	require.Eventually(t, func() bool { return reloads.Load() == 2 }, 5*time.Second, 20*time.Millisecond)
}

func TestWatchContent_MissingDirectory(t *testing.T) {
	_, err := watchContent(filepath.Join(t.TempDir(), "missing"), func() error { return nil })
	assert.NoError(t, err, "walk errors are logged and the watch starts empty")
}
