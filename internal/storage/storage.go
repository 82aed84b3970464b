// Copyright (c) 2025 Authflag
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package storage defines the persistent key-value capability the login flag is
// derived from, together with its backends.
//
// A backend that cannot notice writes from other processes simply does not
// implement Watchable. An environment with no usable storage gets Noop, which
// makes the fallback explicit instead of a hidden environment check.
package storage

import "context"

// Storage is a persistent string key-value store.
type Storage interface {
	// Get returns the value under key and whether it exists.
	Get(key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(key string) error
}

// Change is a notification that storage was modified outside the caller.
// Key is empty when the backend cannot tell which key changed.
type Change struct {
	Key string
}

// Watchable is implemented by backends that can report changes made by other
// processes or storage handles sharing the same data.
type Watchable interface {
	// Watch returns a channel of changes. The channel is closed once ctx is done.
	Watch(ctx context.Context) (<-chan Change, error)
}

// Available reports whether s is a real storage capability.
func Available(s Storage) bool {
	if s == nil {
		return false
	}
	switch s.(type) {
	case Noop, *Noop:
		return false
	}
	return true
}

// Noop stands in for storage in environments that have none.
// Reads report nothing stored and writes are discarded.
type Noop struct{}

func (Noop) Get(string) (string, bool, error) { return "", false, nil }
func (Noop) Set(string, string) error         { return nil }
func (Noop) Remove(string) error              { return nil }
