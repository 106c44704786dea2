// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// ConfigScope indicates whether to operate on local or user config
type ConfigScope int

const (
	ScopeLocal ConfigScope = iota // Local config (./welcome.yaml) - this panel / working directory
	ScopeUser                     // User config (~/.config/welcome/config.yaml) - personal preferences and secrets
)

// ConfigValue represents a configuration key-value pair with its source
type ConfigValue struct {
	Key    string      `json:"key" yaml:"key"`
	Value  interface{} `json:"value" yaml:"value"`
	Source string      `json:"source" yaml:"source"`
}

// getConfigPath returns the config file path based on scope
func getConfigPath(scope ConfigScope) string {
	if scope == ScopeUser {
		return filepath.Join(GlobalPaths.ConfigDir, ConfigFileName+DefaultConfigExt)
	}
	return filepath.Join(".", LocalConfigFile+DefaultConfigExt)
}

// getScopeName returns a human-readable scope name
func getScopeName(scope ConfigScope) string {
	if scope == ScopeUser {
		return "user"
	}
	return "local"
}

// SetConfigValue sets a configuration value in the specified scope
func SetConfigValue(key, valueStr string, scope ConfigScope) error {
	// Validate key scope
	if err := ValidateKeyScope(key, scope); err != nil {
		return err
	}

	configPath := getConfigPath(scope)

	// Create a new Viper instance for isolated config file operations
	v := viper.New()
	v.SetConfigType(ConfigType)
	v.SetConfigFile(configPath)

	// Read existing config if it exists
	_ = v.ReadInConfig() // Ignore error if file doesn't exist

	value := parseValueFor(key, valueStr)

	// Validate value with scope-specific constraints
	if err := ValidateValue(key, value, scope); err != nil {
		return err
	}

	v.Set(key, value)

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Write config using the safe pattern - try SafeWriteConfigAs first
	if err := v.SafeWriteConfigAs(configPath); err != nil {
		// If file already exists, overwrite it
		if _, ok := err.(viper.ConfigFileAlreadyExistsError); ok {
			if err := v.WriteConfigAs(configPath); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to create config: %w", err)
		}
	}

	return nil
}

// GetConfigValue retrieves a configuration value and its source
func GetConfigValue(key string) (*ConfigValue, error) {
	if !viper.IsSet(key) {
		return nil, fmt.Errorf("configuration key not found: %s", key)
	}

	return &ConfigValue{
		Key:    key,
		Value:  maskSecret(key, viper.Get(key)),
		Source: getConfigSource(key),
	}, nil
}

// UnsetConfigValue removes a configuration key from the specified scope
func UnsetConfigValue(key string, scope ConfigScope) error {
	configPath := getConfigPath(scope)
	scopeName := getScopeName(scope)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return fmt.Errorf("%s config file does not exist: %s", scopeName, configPath)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType(ConfigType)

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	if !v.IsSet(key) {
		return fmt.Errorf("key '%s' not found in %s config", key, scopeName)
	}

	// Get all settings and remove the key
	settings := v.AllSettings()
	if err := deleteNestedKey(settings, key); err != nil {
		return err
	}

	// Create a fresh Viper instance to write back
	newV := viper.New()
	newV.SetConfigFile(configPath)
	newV.SetConfigType(ConfigType)

	for k, val := range settings {
		newV.Set(k, val)
	}

	if err := newV.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// ListConfigValues returns all configuration values with their sources
func ListConfigValues() ([]ConfigValue, error) {
	settings := viper.AllSettings()

	if len(settings) == 0 {
		return []ConfigValue{}, nil
	}

	keys := flattenKeys(settings, "")
	sort.Strings(keys)

	values := make([]ConfigValue, 0, len(keys))
	for _, key := range keys {
		values = append(values, ConfigValue{
			Key:    key,
			Value:  maskSecret(key, viper.Get(key)),
			Source: getConfigSource(key),
		})
	}

	return values, nil
}

// maskSecret hides keys that are forbidden in local config
func maskSecret(key string, value interface{}) interface{} {
	def := GetKeyDefinition(key)
	if def == nil || def.LocalConstraints == nil || !def.LocalConstraints.Forbidden {
		return value
	}
	if s, ok := value.(string); ok && s != "" {
		return "********"
	}
	return value
}

// parseValueFor parses valueStr according to the registered type of key,
// falling back to smart detection for unknown keys
func parseValueFor(key, valueStr string) interface{} {
	if def := GetKeyDefinition(key); def != nil {
		switch def.Type {
		case "string", "enum", "duration", "version":
			return valueStr
		}
	}
	return parseValue(valueStr)
}

// parseValue attempts to parse a string value into its appropriate type
func parseValue(valueStr string) interface{} {
	// Try boolean aliases
	switch strings.ToLower(valueStr) {
	case "true", "yes", "on", "enable", "enabled":
		return true
	case "false", "no", "off", "disable", "disabled":
		return false
	}

	if i, err := strconv.Atoi(valueStr); err == nil {
		return i
	}

	if f, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return f
	}

	return valueStr
}

// keyToEnvVar converts a config key to its environment variable name
func keyToEnvVar(key string) string {
	envKey := strings.ToUpper(EnvPrefix + "_" + strings.ReplaceAll(key, "-", "_"))
	envKey = strings.ReplaceAll(envKey, ".", "_")
	return envKey
}

// getConfigSource determines where a config value comes from
func getConfigSource(key string) string {
	envKey := keyToEnvVar(key)
	if os.Getenv(envKey) != "" {
		return fmt.Sprintf("from ENV: %s", envKey)
	}

	configFile := viper.ConfigFileUsed()
	if configFile != "" && viper.InConfig(key) {
		if strings.Contains(configFile, LocalConfigFile+DefaultConfigExt) {
			return fmt.Sprintf("from ./%s%s", LocalConfigFile, DefaultConfigExt)
		}
		if strings.Contains(configFile, GlobalPaths.ConfigDir) {
			return fmt.Sprintf("from ~/.config/welcome/%s%s", ConfigFileName, DefaultConfigExt)
		}
		return fmt.Sprintf("from %s", configFile)
	}

	return "default"
}

// deleteNestedKey removes a key from a nested map using dot notation
func deleteNestedKey(m map[string]interface{}, key string) error {
	keys := strings.Split(key, ".")

	// Navigate to the parent of the target key
	current := m
	for i := 0; i < len(keys)-1; i++ {
		next, ok := current[keys[i]]
		if !ok {
			return fmt.Errorf("key not found: %s", key)
		}
		nextMap, ok := next.(map[string]interface{})
		if !ok {
			return fmt.Errorf("cannot traverse through non-map value at %s", keys[i])
		}
		current = nextMap
	}

	lastKey := keys[len(keys)-1]
	if _, exists := current[lastKey]; !exists {
		return fmt.Errorf("key not found: %s", key)
	}
	delete(current, lastKey)

	return nil
}

// flattenKeys recursively flattens nested map keys with dot notation
func flattenKeys(m map[string]interface{}, prefix string) []string {
	var keys []string

	for k, v := range m {
		fullKey := k
		if prefix != "" {
			fullKey = prefix + "." + k
		}

		if nestedMap, ok := v.(map[string]interface{}); ok {
			keys = append(keys, flattenKeys(nestedMap, fullKey)...)
		} else {
			keys = append(keys, fullKey)
		}
	}

	return keys
}
