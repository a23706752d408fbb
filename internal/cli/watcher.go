package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/toyz/stratum/internal/errors"
	"github.com/toyz/stratum/internal/utils"
)

// DefaultDebounce is the quiet period after the last change before a rerun
const DefaultDebounce = 300 * time.Millisecond

// Watcher reruns a callback when descriptor inputs change
type Watcher struct {
	inputs      []string
	debounce    time.Duration
	diagnostics *utils.DiagnosticSystem
}

// NewWatcher creates a watcher over inputs
func NewWatcher(inputs []string, debounce time.Duration, diagnostics *utils.DiagnosticSystem) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{inputs: inputs, debounce: debounce, diagnostics: diagnostics}
}

// Watch blocks until ctx is cancelled, calling run after each burst of changes
// to a descriptor file. Errors returned by run are logged, not fatal.
func (w *Watcher) Watch(ctx context.Context, run func() error) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.WrapFileSystemError("watch", strings.Join(w.inputs, ", "), err)
	}
	defer fsw.Close()

	for _, dir := range w.directories() {
		if err := fsw.Add(dir); err != nil {
			return errors.WrapFileSystemError("watch", dir, err)
		}
		w.diagnostics.Debug("Watching %s", dir)
	}

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !IsDescriptorFile(event.Name) || event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.diagnostics.Debug("Change detected: %s", event)
			timer.Reset(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.diagnostics.Warn("Watch error: %v", err)

		case <-timer.C:
			w.diagnostics.Info("Inputs changed, regenerating")
			if err := run(); err != nil {
				w.diagnostics.Error("Regeneration failed: %v", err)
			}
		}
	}
}

// directories returns the directories to watch. Files are watched through their
// parent so editors that replace files on save keep triggering events.
func (w *Watcher) directories() []string {
	seen := make(map[string]bool)
	var dirs []string

	add := func(dir string) {
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}

	for _, input := range w.inputs {
		recursive := strings.HasSuffix(input, "/...")
		input = strings.TrimSuffix(input, "/...")
		if input == "" {
			input = "."
		}

		info, err := os.Stat(input)
		if err != nil {
			continue
		}
		if !info.IsDir() {
			add(filepath.Dir(input))
			continue
		}
		if !recursive {
			add(input)
			continue
		}
		_ = filepath.WalkDir(input, func(path string, d os.DirEntry, err error) error {
			if err == nil && d.IsDir() {
				add(path)
			}
			return nil
		})
	}

	return dirs
}
