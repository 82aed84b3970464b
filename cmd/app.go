// Copyright (c) 2025 Authflag
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"log/slog"
	"os"

	"authflag/cli/internal/auth"
	"authflag/cli/internal/config"
	"authflag/cli/internal/logging"
	"authflag/cli/internal/storage"
)

// app bundles everything a subcommand needs. It is built once per invocation
// and owns the flag for the lifetime of the command.
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	storage storage.Storage
	flag    *auth.Flag
}

// newApp loads configuration, applies command-line overrides and wires the
// logger, the storage backend and the login flag.
func newApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if backendName != "" {
		cfg.Storage.Backend = backendName
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.NewLogger(os.Stderr, cfg.Log.Level)

	st, err := storage.Detect(cfg.Storage, logger)
	if err != nil {
		return nil, err
	}

	flag, err := auth.NewFlag(st,
		auth.WithKey(cfg.Storage.Key),
		auth.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:     cfg,
		logger:  logger,
		storage: st,
		flag:    flag,
	}, nil
}

// storageAvailable reports whether the selected backend can hold a token.
func (a *app) storageAvailable() bool {
	return storage.Available(a.storage)
}
