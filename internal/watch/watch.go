// Package watch re-runs a callback when a session file changes on disk.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"shiftrota/internal/util"
)

const DefaultDebounce = 300 * time.Millisecond

// File watches a single file. Editors often save by renaming a temp file over
// the watched path, so the parent directory is watched and events are filtered
// by name.
type File struct {
	path     string
	debounce time.Duration
}

func NewFile(path string, debounce time.Duration) (*File, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &File{path: filepath.Clean(abs), debounce: debounce}, nil
}

func (f *File) Path() string { return f.path }

// Run blocks until ctx is done, calling onChange once per burst of writes.
func (f *File) Run(ctx context.Context, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(f.path)); err != nil {
		return err
	}
	util.Info("watching %s", f.path)

	timer := time.NewTimer(f.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !f.relevant(ev) {
				continue
			}
			util.Debug("watch: %s %s", ev.Op, ev.Name)
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(f.debounce)
			fire = timer.C

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			util.Warn("watch: %v", err)

		case <-fire:
			fire = nil
			onChange()
		}
	}
}

func (f *File) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != f.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}
