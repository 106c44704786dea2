// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// Configuration
	EnvPrefix        = "WELCOME" // Environment variable prefix for Viper
	ConfigFileName   = "config"  // Config file name for XDG config dir (without extension)
	LocalConfigFile  = "welcome" // Config file name for current directory (without extension)
	ConfigType       = "yaml"    // Config file type
	DefaultConfigExt = ".yaml"   // Default config file extension
	EnvFile          = ".env"    // Dotenv file loaded from the current directory

	// DefaultPlibDir is where the panel keeps this extension's library code
	DefaultPlibDir = "/usr/local/psa/admin/plib/modules/welcome"

	// SettingsFileName is the wizard state file in the data dir
	SettingsFileName = "settings.yaml"
)

// Paths holds all XDG-compliant directory paths
type Paths struct {
	DataDir   string
	CacheDir  string
	ConfigDir string

	SettingsFile string // Wizard state for the file settings backend
	LogFile      string // JSON debug log
}

var (
	// GlobalPaths is the global paths instance
	GlobalPaths *Paths
)

func init() {
	GlobalPaths = GetPaths()
}

// GetPaths returns XDG-compliant directory paths
func GetPaths() *Paths {
	dataHome := xdgDir("XDG_DATA_HOME", ".local", "share")
	cacheHome := xdgDir("XDG_CACHE_HOME", ".cache")
	configHome := xdgDir("XDG_CONFIG_HOME", ".config")

	dataDir := filepath.Join(dataHome, "welcome")

	return &Paths{
		DataDir:      dataDir,
		CacheDir:     filepath.Join(cacheHome, "welcome"),
		ConfigDir:    filepath.Join(configHome, "welcome"),
		SettingsFile: filepath.Join(dataDir, SettingsFileName),
		LogFile:      filepath.Join(dataDir, "debug.log"),
	}
}

// xdgDir returns $env, falling back to a directory under the user's home
func xdgDir(env string, fallback ...string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}

	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to get home directory: %v\n", err)
		os.Exit(1)
	}

	return filepath.Join(append([]string{home}, fallback...)...)
}

// IsLocalMode returns true when a welcome.yaml exists in the current
// working directory
func IsLocalMode() bool {
	_, err := os.Stat(filepath.Join(".", LocalConfigFile+DefaultConfigExt))
	return err == nil
}

// InitDirs creates all necessary directories
func InitDirs() error {
	dirs := []string{
		GlobalPaths.ConfigDir,
		GlobalPaths.DataDir,
		GlobalPaths.CacheDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
