package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_RerunsOnChange(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, filepath.Join(dir, "classes.json"), "[]")

	diagnostics, _ := quietDiagnostics()
	watcher := NewWatcher([]string{input}, 20*time.Millisecond, diagnostics)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runs := make(chan struct{}, 10)
	done := make(chan error, 1)
	go func() {
		done <- watcher.Watch(ctx, func() error {
			runs <- struct{}{}
			return nil
		})
	}()

	// fsnotify registration happens inside Watch; keep touching the file until a run fires
	deadline := time.After(5 * time.Second)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-runs:
			break loop
		case <-ticker.C:
			require.NoError(t, os.WriteFile(input, []byte(`[{"name": "UserDto"}]`), 0o644))
		case <-deadline:
			t.Fatal("watcher did not rerun")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcher_Directories(t *testing.T) {
	root := t.TempDir()
	file := writeFile(t, filepath.Join(root, "a", "classes.json"), "[]")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "b", "c"), 0o755))

	diagnostics, _ := quietDiagnostics()

	flat := NewWatcher([]string{file, filepath.Join(root, "b")}, 0, diagnostics)
	assert.Equal(t, []string{filepath.Join(root, "a"), filepath.Join(root, "b")}, flat.directories())
	assert.Equal(t, DefaultDebounce, flat.debounce)

	recursive := NewWatcher([]string{filepath.Join(root, "b") + "/...", filepath.Join(root, "missing")}, 0, diagnostics)
	assert.Equal(t, []string{filepath.Join(root, "b"), filepath.Join(root, "b", "c")}, recursive.directories())
}
