package fs

import (
	"github.com/fsnotify/fsnotify"
	apperrors "github.com/kk-code-lab/thunars/internal/errors"
)

const watchedOps = fsnotify.Create | fsnotify.Remove | fsnotify.Rename | fsnotify.Write

// Watcher reports changes inside one directory at a time. It never blocks:
// callers drain it once per tick with Changed.
type Watcher struct {
	w   *fsnotify.Watcher
	dir string
}

// NewWatcher starts an fsnotify watcher with nothing registered.
func NewWatcher() (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, apperrors.New(apperrors.IOFailure, "watch", "", err)
	}
	return &Watcher{w: w}, nil
}

// Watch moves the watcher to dir. Watching the current directory again is a no-op.
func (w *Watcher) Watch(dir string) error {
	if dir == w.dir {
		return nil
	}
	if w.dir != "" {
		_ = w.w.Remove(w.dir)
		w.dir = ""
	}
	if err := w.w.Add(dir); err != nil {
		return apperrors.New(apperrors.IOFailure, "watch", dir, err)
	}
	w.dir = dir
	return nil
}

// Dir returns the directory being watched, or "".
func (w *Watcher) Dir() string {
	return w.dir
}

// Changed drains pending events and reports whether any of them altered the
// listing of the watched directory. Chmod-only events are ignored.
func (w *Watcher) Changed() bool {
	changed := false
	for {
		select {
		case ev, ok := <-w.w.Events:
			if !ok {
				return changed
			}
			if ev.Op&watchedOps != 0 {
				changed = true
			}
		case _, ok := <-w.w.Errors:
			if !ok {
				return changed
			}
		default:
			return changed
		}
	}
}

// Close stops the underlying watcher.
func (w *Watcher) Close() error {
	return w.w.Close()
}
