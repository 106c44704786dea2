// SPDX-License-Identifier: Apache-2.0
package config

import (
	"strings"
	"testing"
)

func TestConfigRegistry_ContainsUseTUI(t *testing.T) {
	def, ok := ConfigRegistry["use-tui"]
	if !ok {
		t.Fatal("ConfigRegistry should contain 'use-tui' key")
	}
	if def.Type != "bool" {
		t.Errorf("use-tui type = %v, want bool", def.Type)
	}
	if def.Default != true {
		t.Errorf("use-tui default = %v, want true", def.Default)
	}
	if def.UserConstraints != nil || def.LocalConstraints != nil {
		t.Error("use-tui should have no scope constraints")
	}
}

func TestConfigRegistry_KeysMatchMapKeys(t *testing.T) {
	for key, def := range ConfigRegistry {
		if def.Key != key {
			t.Errorf("registry entry %s has Key %s", key, def.Key)
		}
		if def.Description == "" {
			t.Errorf("registry entry %s has no description", key)
		}
	}
}

func TestConfigRegistry_SecretsForbiddenInLocalScope(t *testing.T) {
	for _, key := range []string{"panel.api-key", "panel.password", "settings.redis-url"} {
		def := GetKeyDefinition(key)
		if def == nil {
			t.Fatalf("ConfigRegistry should contain %s", key)
		}
		if def.LocalConstraints == nil || !def.LocalConstraints.Forbidden {
			t.Errorf("%s should be forbidden in local scope", key)
		}
		if def.UserConstraints != nil && def.UserConstraints.Forbidden {
			t.Errorf("%s should be allowed in user scope", key)
		}
	}
}

func TestGetKeyDefinition_NonExistentKey(t *testing.T) {
	if def := GetKeyDefinition("nonexistent.key"); def != nil {
		t.Error("GetKeyDefinition should return nil for unknown key")
	}
}

func TestValidateKeyScope(t *testing.T) {
	if err := ValidateKeyScope("panel.api-key", ScopeUser); err != nil {
		t.Errorf("panel.api-key should be allowed in user scope: %v", err)
	}

	err := ValidateKeyScope("panel.api-key", ScopeLocal)
	if err == nil {
		t.Fatal("panel.api-key should be forbidden in local scope")
	}
	if !strings.Contains(err.Error(), "sensitive") {
		t.Errorf("error should mention sensitive setting: %v", err)
	}

	if err := ValidateKeyScope("panel.url", ScopeLocal); err != nil {
		t.Errorf("panel.url should be allowed in local scope: %v", err)
	}

	if err := ValidateKeyScope("does-not-exist", ScopeUser); err == nil {
		t.Error("unknown key should be rejected")
	}
}

func TestValidateValue(t *testing.T) {
	tests := []struct {
		key     string
		value   interface{}
		wantErr bool
	}{
		{key: "use-tui", value: true},
		{key: "use-tui", value: "yes", wantErr: true},
		{key: "log-level", value: "info"},
		{key: "log-level", value: "verbose", wantErr: true},
		{key: "output", value: "yaml"},
		{key: "output", value: "xml", wantErr: true},
		{key: "panel.url", value: "https://panel.example.com:8443"},
		{key: "panel.url", value: "panel.example.com", wantErr: true},
		{key: "panel.url", value: 8443, wantErr: true},
		{key: "panel.os", value: "windows"},
		{key: "panel.os", value: "darwin", wantErr: true},
		{key: "panel.api-version", value: "1.6.7.0"},
		{key: "panel.api-version", value: "1.6.3.0"},
		{key: "panel.api-version", value: 1.6, wantErr: true},
		{key: "panel.api-version", value: "1.0", wantErr: true},
		{key: "panel.api-version", value: "latest", wantErr: true},
		{key: "panel.timeout", value: "30s"},
		{key: "panel.timeout", value: "soon", wantErr: true},
		{key: "settings.backend", value: "redis"},
		{key: "settings.redis-url", value: "redis://localhost:6379/0"},
		{key: "settings.redis-url", value: "localhost:6379", wantErr: true},
		{key: "unknown.key", value: "x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			err := ValidateValue(tt.key, tt.value, ScopeUser)
			if tt.wantErr && err == nil {
				t.Errorf("ValidateValue(%s, %v) should fail", tt.key, tt.value)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateValue(%s, %v) unexpected error: %v", tt.key, tt.value, err)
			}
		})
	}
}

func TestScopeConstraints_DifferentEnumValuesPerScope(t *testing.T) {
	ConfigRegistry["test.scoped-enum"] = ConfigKeyDefinition{
		Key:         "test.scoped-enum",
		Type:        "enum",
		Description: "test key",
		EnumValues:  []string{"a", "b"},
		LocalConstraints: &ScopeConstraints{
			EnumValues: []string{"a"},
		},
	}
	defer delete(ConfigRegistry, "test.scoped-enum")

	if err := ValidateValue("test.scoped-enum", "b", ScopeUser); err != nil {
		t.Errorf("b should be valid in user scope: %v", err)
	}
	if err := ValidateValue("test.scoped-enum", "b", ScopeLocal); err == nil {
		t.Error("b should be invalid in local scope")
	}
}

func TestValidateValue_VersionBelowMinimum(t *testing.T) {
	err := ValidateValue("panel.api-version", "1.0", ScopeUser)
	if err == nil {
		t.Fatal("versions older than the API client minimum should be rejected")
	}
	if !strings.Contains(err.Error(), "1.6.3.0") {
		t.Errorf("error should name the minimum version: %v", err)
	}
}

func TestValueTypes_CoverRegistry(t *testing.T) {
	for key, def := range ConfigRegistry {
		if _, ok := valueTypes[def.Type]; !ok {
			t.Errorf("key %s uses unregistered type %q", key, def.Type)
		}
	}
}

func TestValidateValue_UnknownType(t *testing.T) {
	ConfigRegistry["test.odd-type"] = ConfigKeyDefinition{Key: "test.odd-type", Type: "float", Description: "test key"}
	defer delete(ConfigRegistry, "test.odd-type")

	if err := ValidateValue("test.odd-type", 1.5, ScopeUser); err == nil {
		t.Error("keys with an unregistered type should be rejected")
	}
}
