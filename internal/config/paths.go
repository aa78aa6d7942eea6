package config

import (
	"os"
	"path/filepath"
)

const appName = "hoverscroll"

// DefaultPath returns the default config file location.
func DefaultPath() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName, "config.json")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.json")
}

// DefaultLogDir returns the directory used for log files.
func DefaultLogDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, appName, "logs")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), appName+"-logs")
	}
	return filepath.Join(home, ".cache", appName, "logs")
}
