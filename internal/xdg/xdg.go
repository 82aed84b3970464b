// Package xdg provides helpers to resolve XDG Base Directory paths for authflag.
// It implements the XDG Base Directory specification for determining appropriate
// locations for configuration files and persisted state on Unix-like systems.
//
// The package falls back to the traditional home-relative locations when XDG
// environment variables are not set and creates directories with private
// permissions, since the state directory holds the stored token.
package xdg

import (
	"os"
	"path/filepath"
)

// AppName is the directory name used under every XDG base directory.
const AppName = "authflag"

// StateDir returns the XDG state directory for authflag.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.local/state/authflag when XDG_STATE_HOME is unset.
func StateDir() (string, error) {
	return appDir("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

// ConfigFile returns the default config file path without creating anything.
func ConfigFile() (string, error) {
	base, err := baseDir("XDG_CONFIG_HOME", ".config")
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppName, "config.yaml"), nil
}

func appDir(envVar, homeRel string) (string, error) {
	base, err := baseDir(envVar, homeRel)
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, AppName)
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}

func baseDir(envVar, homeRel string) (string, error) {
	if base := os.Getenv(envVar); base != "" {
		return base, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, homeRel), nil
}
