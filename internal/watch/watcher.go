// Package watch notices changes made to a single file by other processes.
//
// The directory holding the file is watched instead of the file itself, so
// writers that replace the file with a rename (as the file storage backend
// does) keep being observed after the original inode is gone.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Event describes one change to the watched file.
type Event struct {
	Path string
	Op   fsnotify.Op
}

// relevantOps are the operations that can change what a reader of the file sees.
const relevantOps = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

// Watcher watches one file for changes.
type Watcher struct {
	watcher   *fsnotify.Watcher
	path      string
	callbacks []func(Event)
	mu        sync.RWMutex
	done      chan struct{}
	stopOnce  sync.Once
	logger    *slog.Logger
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithLogger sets the logger for the watcher.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// New creates a watcher for path. The parent directory must exist.
func New(path string, opts ...Option) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher: fw,
		path:    filepath.Clean(path),
		done:    make(chan struct{}),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		w.logger.Error("failed to watch directory",
			"path", dir,
			"error", err,
		)
		return nil, err
	}
	w.logger.Debug("watching directory for changes",
		"path", dir,
		"file", filepath.Base(w.path),
	)
	return w, nil
}

// OnChange registers a callback invoked for every change to the watched file.
// Callbacks run on the goroutine executing Run.
func (w *Watcher) OnChange(callback func(Event)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Run processes filesystem events until ctx is done or Stop is called.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				w.logger.Debug("watcher events channel closed")
				return
			}
			if filepath.Clean(event.Name) != w.path || !event.Op.Has(relevantOps) {
				continue
			}
			w.notify(Event{Path: event.Name, Op: event.Op})
		case err, ok := <-w.watcher.Errors:
			if !ok {
				w.logger.Debug("watcher errors channel closed")
				return
			}
			w.logger.Error("storage watcher error", "error", err)
		case <-ctx.Done():
			return
		case <-w.done:
			return
		}
	}
}

// Stop releases the underlying watcher. It is safe to call more than once.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
		if err != nil {
			w.logger.Error("failed to close watcher", "error", err)
		}
	})
	return err
}

func (w *Watcher) notify(e Event) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, cb := range w.callbacks {
		cb(e)
	}
}
