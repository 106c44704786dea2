// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"

	"github.com/Work-Fort/Welcome/pkg/apirpc"
)

// ScopeConstraints defines per-scope validation rules for a configuration key
type ScopeConstraints struct {
	Forbidden  bool     // If true, this key cannot be set in this scope
	EnumValues []string // Valid enum values for this scope (overrides global EnumValues if set)
	Pattern    string   // Regex pattern for this scope (overrides global Pattern if set)
}

// ConfigKeyDefinition defines metadata for a configuration key
type ConfigKeyDefinition struct {
	Key         string      // Configuration key (dot notation)
	Type        string      // "string", "bool", "enum", "int", "duration", "version"
	Default     interface{} // Default value
	Description string      // Help text

	// Global constraints (apply unless overridden by scope-specific constraints)
	EnumValues []string // Valid values for enum type (if Type="enum")
	Pattern    string   // Regex pattern for validation (if Type="string")
	MinVersion string   // Oldest accepted value (if Type="version")

	// Per-scope constraints (optional - if nil, key is allowed in scope with global constraints)
	UserConstraints  *ScopeConstraints // Constraints when setting in user config
	LocalConstraints *ScopeConstraints // Constraints when setting in local config
}

// secretInLocal forbids a key in ./welcome.yaml, which tends to be shared
var secretInLocal = &ScopeConstraints{Forbidden: true}

// ConfigRegistry holds all known configuration keys with per-scope constraints.
var ConfigRegistry = map[string]ConfigKeyDefinition{
	"use-tui": {
		Key:         "use-tui",
		Type:        "bool",
		Default:     true,
		Description: "Use TUI for interactive prompts",
	},

	"log-level": {
		Key:         "log-level",
		Type:        "enum",
		Default:     "debug",
		Description: "Log verbosity level",
		EnumValues:  []string{"disabled", "debug", "info", "warn", "error"},
	},

	"output": {
		Key:         "output",
		Type:        "enum",
		Default:     "text",
		Description: "Output format for command results",
		EnumValues:  []string{"text", "json", "yaml"},
	},

	"panel.url": {
		Key:         "panel.url",
		Type:        "string",
		Default:     "https://localhost:8443",
		Description: "Panel base URL the API-RPC agent is reached under",
		Pattern:     "^https?://[^\\s/]+(:[0-9]+)?/?$",
	},

	"panel.api-key": {
		Key:              "panel.api-key",
		Type:             "string",
		Default:          "",
		Description:      "Panel secret key sent as the KEY header",
		LocalConstraints: secretInLocal,
	},

	"panel.login": {
		Key:         "panel.login",
		Type:        "string",
		Default:     "",
		Description: "Panel administrator login (used when no API key is set)",
	},

	"panel.password": {
		Key:              "panel.password",
		Type:             "string",
		Default:          "",
		Description:      "Panel administrator password",
		LocalConstraints: secretInLocal,
	},

	"panel.api-version": {
		Key:         "panel.api-version",
		Type:        "version",
		Default:     apirpc.DefaultProtocolVersion,
		Description: "Default API-RPC packet version",
		MinVersion:  apirpc.MinProtocolVersion,
	},

	"panel.os": {
		Key:         "panel.os",
		Type:        "enum",
		Default:     "auto",
		Description: "Panel operating system; auto detects the local host",
		EnumValues:  []string{"auto", "windows", "linux"},
	},

	"panel.plib-dir": {
		Key:         "panel.plib-dir",
		Type:        "string",
		Default:     DefaultPlibDir,
		Description: "This extension's plib directory; sibling extensions are looked up next to it",
	},

	"panel.insecure-tls": {
		Key:         "panel.insecure-tls",
		Type:        "bool",
		Default:     false,
		Description: "Skip TLS certificate verification for the panel (self-signed certificates)",
	},

	"panel.timeout": {
		Key:         "panel.timeout",
		Type:        "duration",
		Default:     "60s",
		Description: "API-RPC request timeout",
	},

	"settings.backend": {
		Key:         "settings.backend",
		Type:        "enum",
		Default:     "file",
		Description: "Where wizard state is kept",
		EnumValues:  []string{"file", "redis"},
	},

	"settings.redis-url": {
		Key:              "settings.redis-url",
		Type:             "string",
		Default:          "",
		Description:      "Redis URL for the redis settings backend",
		Pattern:          "^(rediss?://.*)?$",
		LocalConstraints: secretInLocal,
	},

	"serve.addr": {
		Key:         "serve.addr",
		Type:        "string",
		Default:     "127.0.0.1:8780",
		Description: "Listen address of the serve command",
	},
}

// GetKeyDefinition returns the definition for a key, or nil if not found
func GetKeyDefinition(key string) *ConfigKeyDefinition {
	if def, ok := ConfigRegistry[key]; ok {
		return &def
	}
	return nil
}

// scopeConstraints picks the constraints of def for scope
func scopeConstraints(def *ConfigKeyDefinition, scope ConfigScope) *ScopeConstraints {
	if scope == ScopeUser {
		return def.UserConstraints
	}
	return def.LocalConstraints
}

// ValidateKeyScope checks if a key can be set in the given scope
// Returns an error if the key is forbidden in the specified scope
func ValidateKeyScope(key string, scope ConfigScope) error {
	def := GetKeyDefinition(key)
	if def == nil {
		return fmt.Errorf("unknown configuration key: %s", key)
	}

	constraints := scopeConstraints(def, scope)
	if constraints == nil || !constraints.Forbidden {
		return nil
	}

	if scope == ScopeUser {
		return fmt.Errorf(
			"key '%s' cannot be set in user config\n\n"+
				"Hint: Remove --global flag:\n"+
				"  welcome config set %s <value>",
			key,
			key,
		)
	}

	return fmt.Errorf(
		"key '%s' cannot be set in local config (sensitive setting)\n\n"+
			"Hint: Use --global flag:\n"+
			"  welcome config set --global %s <value>\n\n"+
			"User config: ~/.config/welcome/config.yaml",
		key,
		key,
	)
}

// ValidateValue checks if a value is valid for the given key in the specified scope
// Applies per-scope constraints if defined, otherwise uses global constraints
func ValidateValue(key string, value interface{}, scope ConfigScope) error {
	def := GetKeyDefinition(key)
	if def == nil {
		return fmt.Errorf("unknown configuration key: %s", key)
	}

	vt, ok := valueTypes[def.Type]
	if !ok {
		return fmt.Errorf("key '%s' has unknown type %q", key, def.Type)
	}

	return vt.check(key, def, scopeConstraints(def, scope), scope, value)
}
