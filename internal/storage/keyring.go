// Copyright (c) 2025 Authflag
// Licensed under the MIT License. See LICENSE file in the project root for details.

package storage

import (
	"errors"

	"authflag/cli/internal/keychain"
)

// Keyring keeps values in the OS credential store. It is not Watchable:
// platform keychains offer no change feed.
type Keyring struct {
	m *keychain.Manager
}

// NewKeyring wraps a keychain manager.
func NewKeyring(m *keychain.Manager) *Keyring {
	return &Keyring{m: m}
}

func (k *Keyring) Get(key string) (string, bool, error) {
	v, err := k.m.Get(key)
	if err != nil {
		if errors.Is(err, keychain.ErrNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return v, true, nil
}

func (k *Keyring) Set(key, value string) error {
	return k.m.Set(key, value)
}

func (k *Keyring) Remove(key string) error {
	return k.m.Delete(key)
}
