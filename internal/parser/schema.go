package parser

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// buildAnnouncementSchema returns the JSON-Schema (draft 2020-12 subset) for
// one detected announcement object. Validation is per item so one malformed
// detection cannot sink its siblings.
func buildAnnouncementSchema() map[string]any {
	nullableString := map[string]any{"type": []string{"string", "null"}}
	taxonomyRef := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"id":   map[string]any{"type": []string{"integer", "null"}},
			"name": nullableString,
		},
		"required": []string{"name"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"announcement": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":          nullableString,
					"title":       nullableString,
					"description": nullableString,
					"number":      nullableString,
					"owner":       nullableString,
					"terms":       nullableString,
					"contact":     nullableString,
					// Models emit amounts as numbers or formatted strings.
					"dueAmount":   map[string]any{"type": []string{"number", "string", "null"}},
					"publishDate": nullableString,
					"dueDate":     nullableString,
					"status":      map[string]any{"type": []string{"integer", "null"}},
				},
			},
			"wilaya":           taxonomyRef,
			"businessLine":     taxonomyRef,
			"announcementType": taxonomyRef,
			"boundingBox": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"x_min": map[string]any{"type": "integer"},
					"y_min": map[string]any{"type": "integer"},
					"x_max": map[string]any{"type": "integer"},
					"y_max": map[string]any{"type": "integer"},
				},
				"required": []string{"x_min", "y_min", "x_max", "y_max"},
			},
		},
		"required": []string{"announcement"},
	}
}

// validateAgainstSchema validates data against schemaMap.
func validateAgainstSchema(schemaMap map[string]any, data []byte) error {
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
