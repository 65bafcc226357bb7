package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://catalog.json"

// schemaDefinition describes a catalog document.
var schemaDefinition = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"conditions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name": map[string]any{"type": "string", "minLength": 1},
					"weights": map[string]any{
						"type":          "object",
						"minProperties": 1,
						"additionalProperties": map[string]any{
							"type":    "number",
							"minimum": 0,
						},
					},
				},
				"required":             []any{"name", "weights"},
				"additionalProperties": false,
			},
		},
	},
	"required": []any{"conditions"},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// compiledSchema compiles the catalog schema once.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler expects a parsed JSON value; round-trip to get one.
		defBytes, err := json.Marshal(schemaDefinition)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}
