package config

import (
	"os"
	"path/filepath"

	"github.com/Norgate-AV/instant-clean/internal/paths"
)

// FindConfigFile returns the first config.{yml,yaml,json,toml} found in dir
func FindConfigFile(dir string) string {
	if dir == "" {
		return ""
	}

	for _, ext := range []string{"yml", "yaml", "json", "toml"} {
		path := filepath.Join(dir, "config."+ext)

		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}

	return ""
}

// DefaultInstantDir returns ~/.instant, or "" if the home directory is unknown
func DefaultInstantDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}

	return filepath.Join(home, paths.DefaultInstantDirName)
}
