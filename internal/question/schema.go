package question

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const recordSchemaURL = "schema://question-record.json"

// recordSchemaDoc describes one non-null entry of the persisted list
const recordSchemaDoc = `{
	"type": "object",
	"required": ["question", "options", "answer"],
	"properties": {
		"question": {"type": "string"},
		"answer": {"type": "string"},
		"options": {
			"oneOf": [
				{"type": "array", "items": {"type": "string"}, "minItems": 4, "maxItems": 4},
				{"type": "string"}
			]
		}
	}
}`

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// recordSchema returns the compiled entry schema, compiling it on first use
func recordSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		var doc any
		if err := json.Unmarshal([]byte(recordSchemaDoc), &doc); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(recordSchemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}

		compiledSchema, compileErr = c.Compile(recordSchemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compile: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// ValidateEntry checks one raw persisted entry against the record schema
func ValidateEntry(raw json.RawMessage) error {
	schema, err := recordSchema()
	if err != nil {
		return err
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
