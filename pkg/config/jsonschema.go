// SPDX-License-Identifier: Apache-2.0
package config

import (
	"encoding/json"
	"strings"
)

const jsonSchemaDialect = "https://json-schema.org/draft/2020-12/schema"

// JSONSchema represents a JSON Schema Draft 2020-12 document
type JSONSchema struct {
	Schema               string                 `json:"$schema"`
	Title                string                 `json:"title"`
	Description          string                 `json:"description"`
	Type                 string                 `json:"type"`
	Properties           map[string]interface{} `json:"properties"`
	AdditionalProperties bool                   `json:"additionalProperties"`
}

// JSONSchemaProperty is one key, or one dotted prefix, of the schema
type JSONSchemaProperty struct {
	Type        string                 `json:"type,omitempty"`
	Description string                 `json:"description,omitempty"`
	Default     interface{}            `json:"default,omitempty"`
	Enum        []string               `json:"enum,omitempty"`
	Pattern     string                 `json:"pattern,omitempty"`
	Properties  map[string]interface{} `json:"properties,omitempty"`
}

// schemaHeadings are the title and description per scope filter
var schemaHeadings = map[string][2]string{
	"all":   {"Welcome Configuration", "Configuration schema for the welcome wizard CLI"},
	"user":  {"Welcome User Configuration", "User-specific configuration (preferences and panel credentials)"},
	"local": {"Welcome Local Configuration", "Working-directory configuration (per-panel settings)"},
}

// GenerateJSONSchema exports every registry key as a JSON Schema
func GenerateJSONSchema() ([]byte, error) {
	return GenerateJSONSchemaForScope(nil)
}

// GenerateJSONSchemaForScope exports the registry keys allowed in scope.
// A nil scope exports all keys.
func GenerateJSONSchemaForScope(scope *ConfigScope) ([]byte, error) {
	heading := schemaHeadings["all"]
	if scope != nil {
		heading = schemaHeadings[getScopeName(*scope)]
	}

	schema := JSONSchema{
		Schema:      jsonSchemaDialect,
		Title:       heading[0],
		Description: heading[1],
		Type:        "object",
		Properties:  make(map[string]interface{}),
	}

	for _, def := range ConfigRegistry {
		if scope != nil {
			if rules := scopeConstraints(&def, *scope); rules != nil && rules.Forbidden {
				continue
			}
		}
		insertProperty(schema.Properties, strings.Split(def.Key, "."), keyProperty(def))
	}

	return json.MarshalIndent(schema, "", "  ")
}

// insertProperty places prop at path, creating object nodes for the
// dotted prefixes
func insertProperty(props map[string]interface{}, path []string, prop *JSONSchemaProperty) {
	if len(path) == 1 {
		props[path[0]] = prop
		return
	}

	node, ok := props[path[0]].(*JSONSchemaProperty)
	if !ok {
		node = &JSONSchemaProperty{Type: "object", Properties: make(map[string]interface{})}
		props[path[0]] = node
	}
	insertProperty(node.Properties, path[1:], prop)
}

// keyProperty describes one registry key using its value type
func keyProperty(def ConfigKeyDefinition) *JSONSchemaProperty {
	vt := valueTypes[def.Type]

	prop := &JSONSchemaProperty{
		Type:        vt.schemaType,
		Description: def.Description,
		Default:     def.Default,
		Enum:        def.EnumValues,
		Pattern:     vt.schemaPattern,
	}
	if def.Pattern != "" {
		prop.Pattern = def.Pattern
	}

	return prop
}
