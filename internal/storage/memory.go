// Copyright (c) 2025 Authflag
// Licensed under the MIT License. See LICENSE file in the project root for details.

package storage

import (
	"context"
	"sync"
)

// Memory is an in-process Storage. Every Set or Remove is reported to all
// active watchers, which lets several flags share one Memory the way several
// processes share one storage file.
type Memory struct {
	mu       sync.RWMutex
	items    map[string]string
	watchers map[chan Change]struct{}
}

// NewMemory creates an empty Memory storage.
func NewMemory() *Memory {
	return &Memory{
		items:    make(map[string]string),
		watchers: make(map[chan Change]struct{}),
	}
}

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	m.broadcast(Change{Key: key})
	return nil
}

func (m *Memory) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	m.broadcast(Change{Key: key})
	return nil
}

// Watch implements Watchable.
func (m *Memory) Watch(ctx context.Context) (<-chan Change, error) {
	ch := make(chan Change, 16)

	m.mu.Lock()
	m.watchers[ch] = struct{}{}
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		delete(m.watchers, ch)
		close(ch)
		m.mu.Unlock()
	}()
	return ch, nil
}

// broadcast must be called with m.mu held. A full buffer already holds a
// pending change for that watcher.
func (m *Memory) broadcast(c Change) {
	for ch := range m.watchers {
		select {
		case ch <- c:
		default:
		}
	}
}
