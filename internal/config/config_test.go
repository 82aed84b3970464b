package config

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "authflag/cli/internal/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return p
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c != Default() {
		t.Errorf("Load() = %+v, want %+v", c, Default())
	}
}

func TestLoad_File(t *testing.T) {
	p := writeConfig(t, "storage:\n  backend: memory\n  key: session\nlog:\n  level: debug\n")

	c, err := Load(p)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Storage.Backend != BackendMemory {
		t.Errorf("Storage.Backend = %q, want %q", c.Storage.Backend, BackendMemory)
	}
	if c.Storage.Key != "session" {
		t.Errorf("Storage.Key = %q, want %q", c.Storage.Key, "session")
	}
	if c.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", c.Log.Level)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	p := writeConfig(t, "storage:\n  backend: memory\n")
	t.Setenv("AUTHFLAG_STORAGE_BACKEND", "none")

	c, err := Load(p)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Storage.Backend != BackendNone {
		t.Errorf("Storage.Backend = %q, want %q", c.Storage.Backend, BackendNone)
	}
	if c.Storage.Key != DefaultKey {
		t.Errorf("Storage.Key = %q, want default %q", c.Storage.Key, DefaultKey)
	}
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() expected error for missing explicit file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "keyring backend", mutate: func(c *Config) { c.Storage.Backend = BackendKeyring }},
		{name: "unknown backend", mutate: func(c *Config) { c.Storage.Backend = "cookie" }, wantErr: true},
		{name: "empty key", mutate: func(c *Config) { c.Storage.Key = " " }, wantErr: true},
		{name: "bad level", mutate: func(c *Config) { c.Log.Level = "loud" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !apperrors.IsKind(err, apperrors.InvalidConfig) {
				t.Errorf("Validate() error kind = %q, want %q", apperrors.KindOf(err), apperrors.InvalidConfig)
			}
		})
	}
}

func TestLoad_EmptyEnvIgnored(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("AUTHFLAG_STORAGE_KEY", "")

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Storage.Key != DefaultKey {
		t.Errorf("Storage.Key = %q, want %q", c.Storage.Key, DefaultKey)
	}
}
