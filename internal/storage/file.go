// Copyright (c) 2025 Authflag
// Licensed under the MIT License. See LICENSE file in the project root for details.

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	apperrors "authflag/cli/internal/errors"
	"authflag/cli/internal/watch"
	"authflag/cli/internal/xdg"
)

// FileName is the name of the storage file inside the XDG state directory.
const FileName = "storage.json"

// File persists a flat JSON object of string keys and values.
//
// Writes go to a temporary file that is renamed over the target, so another
// process reading concurrently sees either the old or the new contents.
// There is no cross-process locking; the last writer wins.
type File struct {
	path   string
	mu     sync.Mutex
	logger *slog.Logger
}

// FileOption configures a File.
type FileOption func(*File)

// WithFileLogger sets the logger used by the file backend and its watcher.
func WithFileLogger(logger *slog.Logger) FileOption {
	return func(f *File) {
		f.logger = logger
	}
}

// NewFile returns a File storage at path. Nothing is created until the first write.
func NewFile(path string, opts ...FileOption) *File {
	f := &File{
		path:   filepath.Clean(path),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// DefaultFilePath returns storage.json inside the XDG state directory,
// creating the directory if needed.
func DefaultFilePath() (string, error) {
	dir, err := xdg.StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Path returns the storage file location.
func (f *File) Path() string {
	return f.path
}

func (f *File) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	items, err := f.load()
	if err != nil {
		return "", false, err
	}
	v, ok := items[key]
	return v, ok, nil
}

func (f *File) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	items, err := f.load()
	if err != nil {
		return err
	}
	if cur, ok := items[key]; ok && cur == value {
		return nil
	}
	items[key] = value
	return f.save(items)
}

func (f *File) Remove(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	items, err := f.load()
	if err != nil {
		return err
	}
	if _, ok := items[key]; !ok {
		return nil
	}
	delete(items, key)
	return f.save(items)
}

// Watch implements Watchable. Changes are coalesced: a burst of writes may
// be reported as a single Change.
func (f *File) Watch(ctx context.Context) (<-chan Change, error) {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return nil, apperrors.Wrap(apperrors.WatchFailed, "create storage directory", err)
	}

	w, err := watch.New(f.path, watch.WithLogger(f.logger))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.WatchFailed, "watch "+f.path, err)
	}

	ch := make(chan Change, 1)
	w.OnChange(func(e watch.Event) {
		f.logger.Debug("storage file changed",
			"file", e.Path,
			"op", e.Op.String(),
		)
		select {
		case ch <- Change{}:
		default:
		}
	})

	go func() {
		defer close(ch)
		defer w.Stop()
		w.Run(ctx)
	}()
	return ch, nil
}

// load must be called with f.mu held. A missing or empty file is empty storage.
func (f *File) load() (map[string]string, error) {
	items := make(map[string]string)

	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return items, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", f.path, err)
	}
	return items, nil
}

// save must be called with f.mu held.
func (f *File) save(items map[string]string) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		// No-op once the rename succeeded.
		_ = os.Remove(tmpName)
	}()

	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return err
	}
	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return err
	}

	f.logger.Debug("storage file written", "path", f.path, "keys", len(items))
	return nil
}
