// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// InitViper initializes Viper configuration with defaults and search paths
// Precedence order: ENV > local conf > user conf > defaults
func InitViper() {
	// Set config type
	viper.SetConfigType(ConfigType)

	// Set defaults (lowest precedence)
	for key, def := range ConfigRegistry {
		viper.SetDefault(key, def.Default)
	}

	// Enable environment variable support (highest precedence)
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()
}

// LoadConfig reads config files in precedence order
// Precedence: ENV (incl. ./.env) > ./welcome.yaml > ~/.config/welcome/config.yaml > defaults
func LoadConfig() error {
	// .env never overrides variables that are already set
	if err := godotenv.Load(EnvFile); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load %s: %w", EnvFile, err)
	}

	// First, try to read user config from XDG config directory
	viper.SetConfigName(ConfigFileName)
	viper.AddConfigPath(GlobalPaths.ConfigDir)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read user config file: %w", err)
		}
		// Config file not found is OK
	}

	// Then, try to merge in local directory config (overrides user config)
	viper.SetConfigName(LocalConfigFile)
	viper.AddConfigPath(".")

	if err := viper.MergeInConfig(); err != nil {
		// Ignore if local config doesn't exist
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read local config file: %w", err)
		}
	} else {
		// Validate local config doesn't contain forbidden keys
		if err := validateConfigFile(filepath.Join(".", LocalConfigFile+DefaultConfigExt), ScopeLocal); err != nil {
			return err
		}
	}

	return nil
}

// GetUseTUI returns the use-tui configuration value
func GetUseTUI() bool {
	return viper.GetBool("use-tui")
}

// GetLogLevel returns the log-level configuration value
func GetLogLevel() string {
	return viper.GetString("log-level")
}

// GetOutput returns the output configuration value (text, json or yaml)
func GetOutput() string {
	return viper.GetString("output")
}

// GetPanelURL returns the panel base URL
func GetPanelURL() string {
	return viper.GetString("panel.url")
}

// GetPanelAPIKey returns the panel secret key
// Priority: ENV:WELCOME_PANEL_API_KEY > user config > defaults
func GetPanelAPIKey() string {
	return viper.GetString("panel.api-key")
}

// GetPanelLogin returns the panel administrator login
func GetPanelLogin() string {
	return viper.GetString("panel.login")
}

// GetPanelPassword returns the panel administrator password
func GetPanelPassword() string {
	return viper.GetString("panel.password")
}

// GetPanelAPIVersion returns the default API-RPC packet version
func GetPanelAPIVersion() string {
	return viper.GetString("panel.api-version")
}

// GetPanelOS returns the panel.os configuration value (auto, windows, linux)
func GetPanelOS() string {
	return viper.GetString("panel.os")
}

// GetPlibDir returns this extension's plib directory on the panel
func GetPlibDir() string {
	return viper.GetString("panel.plib-dir")
}

// GetPanelInsecureTLS returns whether to skip TLS verification for the panel
func GetPanelInsecureTLS() bool {
	return viper.GetBool("panel.insecure-tls")
}

// GetPanelTimeout returns the API-RPC request timeout
func GetPanelTimeout() time.Duration {
	return viper.GetDuration("panel.timeout")
}

// GetSettingsBackend returns the settings store backend (file or redis)
func GetSettingsBackend() string {
	return viper.GetString("settings.backend")
}

// GetSettingsRedisURL returns the redis URL for the redis settings backend
func GetSettingsRedisURL() string {
	return viper.GetString("settings.redis-url")
}

// GetServeAddr returns the listen address for the serve command
func GetServeAddr() string {
	return viper.GetString("serve.addr")
}

// validateConfigFile validates that a config file doesn't contain forbidden
// keys or invalid values for the given scope
func validateConfigFile(configPath string, scope ConfigScope) error {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil // No config file, nothing to validate
	}

	// Create a temporary Viper instance to read just this config file
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType(ConfigType)

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file for validation: %w", err)
	}

	// Flatten keys and validate each one
	keys := flattenKeys(v.AllSettings(), "")
	for _, key := range keys {
		if GetKeyDefinition(key) == nil {
			log.Debugf("Unknown key '%s' in %s config", key, getScopeName(scope))
			continue
		}

		if err := ValidateKeyScope(key, scope); err != nil {
			return fmt.Errorf("invalid key in config file %s: %w", configPath, err)
		}

		if err := ValidateValue(key, v.Get(key), scope); err != nil {
			return fmt.Errorf("invalid value in config file %s: %w", configPath, err)
		}
	}

	return nil
}

// BindFlags binds all relevant cobra flags to Viper
func BindFlags(flags *pflag.FlagSet) error {
	flagsToBind := []string{
		"use-tui",
		"log-level",
		"output",
	}

	for _, flagName := range flagsToBind {
		if err := viper.BindPFlag(flagName, flags.Lookup(flagName)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flagName, err)
		}
	}

	return nil
}
