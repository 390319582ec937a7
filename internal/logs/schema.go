// internal/logs/schema.go
package logs

import (
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// recordSchemaDefinition accepts any of the three challenge record shapes;
// target is always required.
func recordSchemaDefinition() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"target"},
		"properties": map[string]any{
			"target": map[string]any{"type": "string"},
			"completions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"logp": map[string]any{"type": []string{"number", "null"}},
			"results": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "array",
					"minItems": 3,
					"maxItems": 3,
					"items": []map[string]any{
						{"type": "string"},
						{"type": "number"},
						{"type": "number"},
					},
				},
			},
		},
	}
}

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func compiledRecordSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schemaLoader := gojsonschema.NewGoLoader(recordSchemaDefinition())
		schema, schemaErr = gojsonschema.NewSchema(schemaLoader)
	})
	return schema, schemaErr
}

// validateLine checks one raw log line against the record schema.
func validateLine(line []byte) error {
	compiled, err := compiledRecordSchema()
	if err != nil {
		return fmt.Errorf("schema compile error: %w", err)
	}

	result, err := compiled.Validate(gojsonschema.NewBytesLoader(line))
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return fmt.Errorf("schema violation: %s", strings.Join(msgs, "; "))
	}
	return nil
}
