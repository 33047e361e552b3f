// Package paths resolves where the herbarium CLI looks for its configuration.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the per-user configuration subdirectory.
const AppName = "herbarium"

// ConfigFileName is the configuration file looked up inside the config directory.
const ConfigFileName = "config.yaml"

// EnvConfigDir overrides the platform default configuration directory.
const EnvConfigDir = "HERBARIUM_CONFIG_DIR"

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	goos          string
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	goos:          runtime.GOOS,
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/herbarium (fallback ~/.config/herbarium)
// macOS:   ~/Library/Application Support/herbarium
// Windows: %APPDATA%/herbarium
func DefaultConfigDir() (string, error) {
	if platformDir.goos == "linux" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", AppName), nil
	}
	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName), nil
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > HERBARIUM_CONFIG_DIR env > DefaultConfigDir().
// Explicit values are made absolute.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ConfigFile returns the path of config.yaml inside dir.
func ConfigFile(dir string) string {
	return filepath.Join(dir, ConfigFileName)
}
