// Package watcher notifies listeners when profile or task files change.
package watcher

import (
	"context"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settleDelay is how long the watcher waits after the last event before
// firing. Batch operations touch several files in quick succession and
// should produce a single notification.
const settleDelay = 100 * time.Millisecond

// relevantOps are the filesystem operations that can change plan input.
const relevantOps = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

// Watcher invokes a callback, debounced, whenever a watched path changes.
type Watcher struct {
	fsw    *fsnotify.Watcher
	notify func()

	mu      sync.Mutex
	pending *time.Timer
}

// New creates a Watcher over the given paths. The callback fires on its own
// goroutine after changes settle.
func New(paths []string, notify func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, p := range paths {
		if err := fsw.Add(p); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}
	return &Watcher{fsw: fsw, notify: notify}, nil
}

// Run consumes filesystem events until the context is canceled or the
// underlying watcher is closed. Watch errors go to errFn when non-nil.
func (w *Watcher) Run(ctx context.Context, errFn func(error)) {
	defer w.cancelPending()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&relevantOps != 0 {
				w.schedule()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			if errFn != nil {
				errFn(err)
			}
		}
	}
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending != nil {
		w.pending.Stop()
	}
	w.pending = time.AfterFunc(settleDelay, w.notify)
}

func (w *Watcher) cancelPending() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending != nil {
		w.pending.Stop()
	}
}
