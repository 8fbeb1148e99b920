package config

import (
	"errors"
	"os"
	"path/filepath"
)

func ConfigRoot() string {
	// Windows
	if appdata := os.Getenv("APPDATA"); appdata != "" {
		return filepath.Join(appdata, "mangaread")
	}

	// Linux/macOS XDG
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "mangaread")
	}

	// Linux/macOS default
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "mangaread")
}

func ConfigPath() string {
	return filepath.Join(ConfigRoot(), "config.yaml")
}

// InitDefaultConfig writes the defaults to ConfigPath. An existing file is
// kept and reported with os.ErrExist.
func InitDefaultConfig() (string, error) {
	path := ConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	if _, err := os.Stat(path); err == nil {
		return path, os.ErrExist
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	if err := SaveYAML(DefaultConfig(), path); err != nil {
		return "", err
	}

	return path, nil
}

// ResetConfig overwrites the config file with the defaults.
func ResetConfig() (string, error) {
	path := ConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	return path, SaveYAML(DefaultConfig(), path)
}
