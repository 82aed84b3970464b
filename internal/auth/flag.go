// Copyright (c) 2025 Authflag
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package auth holds the client-side login flag.
//
// A Flag reports whether a token is present in storage and lets callers
// subscribe to changes. It does not validate tokens, talk to a server or
// track expiry: a non-empty value under the token key means logged in,
// anything else means logged out.
//
// The flag is derived from storage once at construction, updated by SetAuth,
// and re-derived whenever the storage reports a change made elsewhere.
package auth

import (
	"context"
	"log/slog"

	"authflag/cli/internal/config"
	apperrors "authflag/cli/internal/errors"
	"authflag/cli/internal/storage"
	"authflag/cli/internal/store"
)

// Flag is the process-local view of the login state kept in storage.
// It is safe for concurrent use.
type Flag struct {
	storage  storage.Storage
	key      string
	loggedIn *store.Writable[bool]
	logger   *slog.Logger
}

// Option configures a Flag.
type Option func(*Flag)

// WithKey sets the storage key the token is kept under.
func WithKey(key string) Option {
	return func(f *Flag) {
		if key != "" {
			f.key = key
		}
	}
}

// WithLogger sets the logger for the flag.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Flag) {
		f.logger = logger
	}
}

// NewFlag creates a Flag over st and seeds it from storage.
// A nil st behaves like storage.Noop.
func NewFlag(st storage.Storage, opts ...Option) (*Flag, error) {
	f := &Flag{
		storage: st,
		key:     config.DefaultKey,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}

	initial, err := f.Initialize()
	if err != nil {
		return nil, err
	}
	f.loggedIn = store.NewWritable(initial)
	return f, nil
}

// Key returns the storage key the token is kept under.
func (f *Flag) Key() string {
	return f.key
}

// Initialize reads storage and reports whether a non-empty token is present.
// Without a storage capability it reports false and never fails.
// It does not change the published value; see Sync.
func (f *Flag) Initialize() (bool, error) {
	if !storage.Available(f.storage) {
		return false, nil
	}
	v, ok, err := f.storage.Get(f.key)
	if err != nil {
		return false, apperrors.Wrap(apperrors.StorageRead, "read "+f.key, err)
	}
	return ok && v != "", nil
}

// IsLoggedIn returns the current value of the flag.
func (f *Flag) IsLoggedIn() bool {
	return f.loggedIn.Get()
}

// Subscribe calls fn with the current value and then with every change.
// The returned function stops further calls.
func (f *Flag) Subscribe(fn func(loggedIn bool)) (unsubscribe func()) {
	return f.loggedIn.Subscribe(fn)
}

// SetAuth stores token and marks the flag logged in. An empty token removes
// the stored one and marks the flag logged out.
//
// Without a storage capability SetAuth does nothing. When the storage write
// fails the flag keeps its previous value and the error is returned.
func (f *Flag) SetAuth(token string) error {
	if !storage.Available(f.storage) {
		f.logger.Debug("no storage available, ignoring auth change")
		return nil
	}

	if token != "" {
		if err := f.storage.Set(f.key, token); err != nil {
			return apperrors.Wrap(apperrors.StorageWrite, "write "+f.key, err)
		}
		f.logger.Debug("token stored", "key", f.key)
		f.loggedIn.Set(true)
		return nil
	}

	if err := f.storage.Remove(f.key); err != nil {
		return apperrors.Wrap(apperrors.StorageWrite, "remove "+f.key, err)
	}
	f.logger.Debug("token removed", "key", f.key)
	f.loggedIn.Set(false)
	return nil
}

// ClearAuth removes the stored token. It is SetAuth("").
func (f *Flag) ClearAuth() error {
	return f.SetAuth("")
}

// Token returns the stored token and whether one is present.
func (f *Flag) Token() (string, bool, error) {
	if !storage.Available(f.storage) {
		return "", false, nil
	}
	v, ok, err := f.storage.Get(f.key)
	if err != nil {
		return "", false, apperrors.Wrap(apperrors.StorageRead, "read "+f.key, err)
	}
	if !ok || v == "" {
		return "", false, nil
	}
	return v, true, nil
}

// Sync re-derives the flag from storage and publishes the result.
// A read failure is logged and the current value is kept.
func (f *Flag) Sync() {
	loggedIn, err := f.Initialize()
	if err != nil {
		f.logger.Warn("failed to resync login state", "error", err)
		return
	}
	f.loggedIn.Set(loggedIn)
}

// Listen calls Sync for every change received until ctx is done or changes
// is closed. It returns ctx.Err() in the first case and nil in the second.
func (f *Flag) Listen(ctx context.Context, changes <-chan storage.Change) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case c, ok := <-changes:
			if !ok {
				return nil
			}
			f.logger.Debug("storage changed externally", "key", c.Key)
			f.Sync()
		}
	}
}

// Watch listens to the storage's own change feed until ctx is done.
// Storage that cannot report changes leaves the flag as is and Watch just
// waits for ctx.
func (f *Flag) Watch(ctx context.Context) error {
	w, ok := f.storage.(storage.Watchable)
	if !ok || !storage.Available(f.storage) {
		f.logger.Debug("storage cannot report external changes")
		<-ctx.Done()
		return ctx.Err()
	}

	changes, err := w.Watch(ctx)
	if err != nil {
		return err
	}
	// Pick up anything written between construction and the watch starting.
	f.Sync()
	return f.Listen(ctx, changes)
}
