package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildRecordJSONSchema returns a JSON-Schema (draft 2020-12 subset) for the
// flat record shape. Used locally to validate whatever the model produced
// before any field of it is trusted.
func BuildRecordJSONSchema(allowedCategories []string) map[string]any {
	props := map[string]any{
		"vendor":   map[string]any{"type": "string", "minLength": 1},
		"date":     map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
		"amount":   map[string]any{"type": []any{"string", "number"}},
		"currency": map[string]any{"type": "string", "minLength": 3, "maxLength": 3},
		"category": map[string]any{"type": "string"},
	}
	// Constrain category if a taxonomy is provided.
	if len(allowedCategories) > 0 {
		props["category"] = map[string]any{
			"type": "string",
			"enum": allowedCategories,
		}
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             []string{"vendor", "date", "amount"},
	}
}

// CompileRecordSchema compiles the record schema once; the result is safe for
// concurrent validation.
func CompileRecordSchema(allowedCategories []string) (*jsonschema.Schema, error) {
	raw, err := json.Marshal(BuildRecordJSONSchema(allowedCategories))
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("record.schema.json", bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	schema, err := compiler.Compile("record.schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}

// ValidateRecordJSON checks a model JSON document against the schema.
func ValidateRecordJSON(schema *jsonschema.Schema, doc []byte) error {
	var v any
	if err := json.Unmarshal(doc, &v); err != nil {
		return fmt.Errorf("decode model json: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("validate model json: %w", err)
	}
	return nil
}
