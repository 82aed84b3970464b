// Package config loads CLI configuration for authflag.
// Settings come from, in increasing priority: built-in defaults, a YAML file in the
// XDG config dir, and AUTHFLAG_* environment variables. Command-line flags are
// applied on top by the caller.
// Only non-secret settings are kept here; the token itself lives in storage.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	apperrors "authflag/cli/internal/errors"
	"authflag/cli/internal/xdg"
)

// EnvPrefix is the prefix of environment variables that override file settings.
// AUTHFLAG_STORAGE_BACKEND maps to storage.backend.
const EnvPrefix = "AUTHFLAG_"

// Storage backend names.
const (
	BackendAuto    = "auto"
	BackendFile    = "file"
	BackendKeyring = "keyring"
	BackendMemory  = "memory"
	BackendNone    = "none"
)

// DefaultKey is the storage key the token is kept under.
const DefaultKey = "token"

// Config holds non-sensitive CLI settings.
type Config struct {
	Storage Storage `koanf:"storage"`
	Log     Log     `koanf:"log"`
}

// Storage selects where the token is persisted.
type Storage struct {
	Backend string `koanf:"backend"`
	Key     string `koanf:"key"`
	// Path overrides the file backend location.
	Path string `koanf:"path"`
}

// Log holds logging settings.
type Log struct {
	Level string `koanf:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Storage: Storage{
			Backend: BackendAuto,
			Key:     DefaultKey,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads configuration from path and the environment.
// An empty path means the default XDG location, where a missing file is not
// an error. An explicitly given path must exist.
// The result is not validated so that callers can apply flag overrides first.
func Load(path string) (Config, error) {
	c := Default()
	k := koanf.New(".")

	explicit := path != ""
	if !explicit {
		p, err := xdg.ConfigFile()
		if err == nil {
			path = p
		}
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return c, fmt.Errorf("load config file %s: %w", path, err)
			}
		} else if explicit || !errors.Is(err, os.ErrNotExist) {
			return c, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// AUTHFLAG_STORAGE_BACKEND -> storage.backend; empty variables are ignored
	envTransformer := func(key, value string) (string, any) {
		if value == "" {
			return "", nil
		}
		key = strings.TrimPrefix(key, EnvPrefix)
		key = strings.ToLower(key)
		return strings.ReplaceAll(key, "_", "."), value
	}
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envTransformer), nil); err != nil {
		return c, fmt.Errorf("load env: %w", err)
	}

	if err := k.Unmarshal("", &c); err != nil {
		return c, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Validate checks that every setting can be used.
func (c Config) Validate() error {
	switch c.Storage.Backend {
	case BackendAuto, BackendFile, BackendKeyring, BackendMemory, BackendNone:
	default:
		return apperrors.New(apperrors.InvalidConfig, fmt.Sprintf("unknown storage backend %q", c.Storage.Backend))
	}
	if strings.TrimSpace(c.Storage.Key) == "" {
		return apperrors.New(apperrors.InvalidConfig, "storage key must not be empty")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return apperrors.New(apperrors.InvalidConfig, fmt.Sprintf("unknown log level %q", c.Log.Level))
	}
	return nil
}
