package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildItemJSONSchema returns the JSON-Schema (draft 2020-12 subset) one
// extracted item must satisfy. Parsed output is validated item-by-item;
// schema-invalid items are a parse failure, never silently dropped.
func BuildItemJSONSchema(allowedCategories []string) map[string]any {
	props := map[string]any{
		"name":        map[string]any{"type": "string", "minLength": 1},
		"description": map[string]any{"type": "string"},
		"category": map[string]any{
			"type": "string",
			"enum": allowedCategories,
		},
		"menu_name": map[string]any{"type": "string"},
		"sizes": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"size":  map[string]any{"type": "string"},
					"price": map[string]any{"type": "string"},
				},
			},
		},
		"modifiers": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"group_name": map[string]any{"type": "string", "minLength": 1},
					"options": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
				"required": []string{"group_name"},
			},
		},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             []string{"name", "category"},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

// ValidateItems checks every parsed item against the item schema and returns
// the first offender's index and error.
func ValidateItems(schemaMap map[string]any, items []json.RawMessage) error {
	for i, raw := range items {
		if err := ValidateJSONAgainstSchema(schemaMap, raw); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}
