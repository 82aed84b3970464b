// Copyright (c) 2025 Authflag
// Licensed under the MIT License. See LICENSE file in the project root for details.

package keychain

import (
	"errors"
	"testing"

	"github.com/99designs/keyring"
)

func TestManager_SetGetDelete(t *testing.T) {
	m := NewWithKeyring(keyring.NewArrayKeyring(nil))

	if _, err := m.Get("token"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get() on empty ring error = %v, want ErrNotFound", err)
	}

	if err := m.Set("token", "abc123"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := m.Get("token")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "abc123" {
		t.Errorf("Get() = %q, want %q", got, "abc123")
	}

	if err := m.Delete("token"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := m.Get("token"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after Delete error = %v, want ErrNotFound", err)
	}
}

func TestManager_DeleteMissing(t *testing.T) {
	m := NewWithKeyring(keyring.NewArrayKeyring(nil))

	if err := m.Delete("token"); err != nil {
		t.Errorf("Delete() of missing key error = %v, want nil", err)
	}
}

func TestManager_ExistingItems(t *testing.T) {
	m := NewWithKeyring(keyring.NewArrayKeyring([]keyring.Item{
		{Key: "token", Data: []byte("preloaded")},
	}))

	got, err := m.Get("token")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "preloaded" {
		t.Errorf("Get() = %q, want %q", got, "preloaded")
	}
}
