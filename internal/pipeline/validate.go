package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/cuisinehq/mercuriale/constants"
)

// BuildRecordsJSONSchema returns the JSON-Schema (draft 2020-12 subset) for
// a reviewed candidate payload: an array of parsed records, possibly edited
// by hand between review and commit.
func BuildRecordsJSONSchema() map[string]any {
	record := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":       map[string]any{"type": "string", "minLength": 2},
			"unit":       map[string]any{"type": "string", "minLength": 1},
			"unit_price": map[string]any{"type": "number", "exclusiveMinimum": 0.0},
			"quantity":   map[string]any{"type": "number", "minimum": 0.0},
			"allergens": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string", "enum": constants.AllergensAsStringSlice()},
			},
			"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		},
		"required": []string{"name", "unit", "unit_price"},
	}
	return map[string]any{
		"type":     "array",
		"minItems": 1,
		"items":    record,
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
