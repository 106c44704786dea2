// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"
	"regexp"
	"slices"
	"time"

	"github.com/hashicorp/go-version"
)

// valueType is a registry key type: how values of it are checked and how
// it appears in the exported JSON schema
type valueType struct {
	schemaType    string
	schemaPattern string
	check         func(key string, def *ConfigKeyDefinition, rules *ScopeConstraints, scope ConfigScope, value interface{}) error
}

// valueTypes holds every type a ConfigKeyDefinition may name
var valueTypes = map[string]valueType{
	"bool":     {schemaType: "boolean", check: checkBool},
	"int":      {schemaType: "integer", check: checkInt},
	"string":   {schemaType: "string", check: checkString},
	"enum":     {schemaType: "string", check: checkEnum},
	"duration": {schemaType: "string", schemaPattern: `^([0-9]+(\.[0-9]+)?(ns|us|µs|ms|s|m|h))+$`, check: checkDuration},
	"version":  {schemaType: "string", schemaPattern: `^[0-9]+(\.[0-9]+)*$`, check: checkVersion},
}

func checkBool(key string, _ *ConfigKeyDefinition, _ *ScopeConstraints, _ ConfigScope, value interface{}) error {
	if _, ok := value.(bool); !ok {
		return fmt.Errorf("key '%s' must be a boolean", key)
	}
	return nil
}

func checkInt(key string, _ *ConfigKeyDefinition, _ *ScopeConstraints, _ ConfigScope, value interface{}) error {
	if _, ok := value.(int); !ok {
		return fmt.Errorf("key '%s' must be an integer", key)
	}
	return nil
}

func checkString(key string, def *ConfigKeyDefinition, rules *ScopeConstraints, scope ConfigScope, value interface{}) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("key '%s' must be a string", key)
	}

	pattern := def.Pattern
	if rules != nil && rules.Pattern != "" {
		pattern = rules.Pattern
	}
	if pattern == "" {
		return nil
	}

	matched, err := regexp.MatchString(pattern, str)
	if err != nil {
		return fmt.Errorf("pattern validation error: %w", err)
	}
	if !matched {
		return fmt.Errorf("key '%s' value '%s' does not match required format for %s scope", key, str, getScopeName(scope))
	}
	return nil
}

func checkEnum(key string, def *ConfigKeyDefinition, rules *ScopeConstraints, scope ConfigScope, value interface{}) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("key '%s' must be a string", key)
	}

	allowed := def.EnumValues
	if rules != nil && rules.EnumValues != nil {
		allowed = rules.EnumValues
	}
	if !slices.Contains(allowed, str) {
		return fmt.Errorf("key '%s' must be one of %v in %s scope (got '%s')", key, allowed, getScopeName(scope), str)
	}
	return nil
}

func checkDuration(key string, _ *ConfigKeyDefinition, _ *ScopeConstraints, _ ConfigScope, value interface{}) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("key '%s' must be a duration such as 30s", key)
	}
	if _, err := time.ParseDuration(str); err != nil {
		return fmt.Errorf("key '%s': %w", key, err)
	}
	return nil
}

func checkVersion(key string, def *ConfigKeyDefinition, _ *ScopeConstraints, _ ConfigScope, value interface{}) error {
	str, ok := value.(string)
	if !ok {
		// parseValue turns "1.6" into a float; accept its text form
		str = fmt.Sprint(value)
	}

	v, err := version.NewVersion(str)
	if err != nil {
		return fmt.Errorf("key '%s' must be a version such as 1.6.7.0: %w", key, err)
	}

	if def.MinVersion != "" && v.LessThan(version.Must(version.NewVersion(def.MinVersion))) {
		return fmt.Errorf("key '%s' must be at least %s (got %s)", key, def.MinVersion, str)
	}
	return nil
}
