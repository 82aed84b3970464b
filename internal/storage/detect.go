// Copyright (c) 2025 Authflag
// Licensed under the MIT License. See LICENSE file in the project root for details.

package storage

import (
	"fmt"
	"log/slog"

	"authflag/cli/internal/config"
	apperrors "authflag/cli/internal/errors"
	"authflag/cli/internal/keychain"
)

// Detect selects the storage backend named by cfg.
//
// With the auto backend the file store is used when a state directory can be
// resolved; otherwise the environment has no storage and Noop is returned
// without an error. Explicitly requested backends that cannot be opened are
// reported as StorageUnavailable.
func Detect(cfg config.Storage, logger *slog.Logger) (Storage, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.Backend {
	case config.BackendAuto, "":
		path, err := filePath(cfg)
		if err != nil {
			logger.Debug("no storage-capable environment, token state disabled", "error", err)
			return Noop{}, nil
		}
		logger.Debug("using file storage", "path", path)
		return NewFile(path, WithFileLogger(logger)), nil
	case config.BackendFile:
		path, err := filePath(cfg)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.StorageUnavailable, "resolve storage file", err)
		}
		logger.Debug("using file storage", "path", path)
		return NewFile(path, WithFileLogger(logger)), nil
	case config.BackendKeyring:
		m, err := keychain.GetManager()
		if err != nil {
			return nil, apperrors.Wrap(apperrors.StorageUnavailable, "open OS keychain", err)
		}
		logger.Debug("using keyring storage", "service", keychain.ServiceName)
		return NewKeyring(m), nil
	case config.BackendMemory:
		logger.Debug("using in-memory storage")
		return NewMemory(), nil
	case config.BackendNone:
		logger.Debug("storage disabled")
		return Noop{}, nil
	default:
		return nil, apperrors.New(apperrors.InvalidConfig, fmt.Sprintf("unknown storage backend %q", cfg.Backend))
	}
}

func filePath(cfg config.Storage) (string, error) {
	if cfg.Path != "" {
		return cfg.Path, nil
	}
	return DefaultFilePath()
}
