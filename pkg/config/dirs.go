// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

var (
	// configDirOverride replaces ConfigDir's platform lookup in tests,
	// since os.UserHomeDir() doesn't reliably respect HOME on every platform.
	configDirOverride string

	getwd = os.Getwd
)

// SetConfigDirOverride makes ConfigDir return dir. An empty dir restores
// the platform lookup.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// ConfigDir returns the per-user procman configuration directory:
//   - Linux and others: $XDG_CONFIG_HOME/procman (default ~/.config/procman)
//   - macOS: ~/Library/Application Support/procman
//   - Windows: %APPDATA%\procman\config
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			profile := os.Getenv("USERPROFILE")
			if profile == "" {
				return "", errors.New("neither APPDATA nor USERPROFILE is set")
			}
			appData = filepath.Join(profile, "AppData", "Roaming")
		}
		return filepath.Join(appData, AppName, "config"), nil
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, "Library", "Application Support", AppName), nil
	default:
		base := os.Getenv("XDG_CONFIG_HOME")
		if base == "" || !filepath.IsAbs(base) {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			base = filepath.Join(home, ".config")
		}
		return filepath.Join(base, AppName), nil
	}
}

// SearchDirs returns the directories searched when no config path is given:
// the current working directory, then ConfigDir.
func SearchDirs() ([]string, error) {
	cwd, err := getwd()
	if err != nil {
		return nil, &WorkingDirError{Err: err}
	}

	cfgDir, err := ConfigDir()
	if err != nil {
		return nil, &ConfigDirError{Err: err}
	}

	return []string{cwd, cfgDir}, nil
}
