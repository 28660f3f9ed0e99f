package config

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://moodlexml-config.json"

// schemaDefinition describes both the YAML file and the merged Config.
var schemaDefinition = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"output": map[string]any{"type": "string", "minLength": 1},
		"indent": map[string]any{"type": "integer", "minimum": 0, "maximum": 16},
		"log_level": map[string]any{
			"type": "string",
			"enum": []any{"debug", "info", "warn", "error"},
		},
		"log_format": map[string]any{
			"type": "string",
			"enum": []any{"text", "json"},
		},
		"category": map[string]any{"type": "string"},
		"default_grade": map[string]any{
			"type":    []any{"string", "number"},
			"pattern": `^[0-9]+(\.[0-9]+)?$`,
		},
		"question_text_format": map[string]any{
			"type": "string",
			"enum": []any{"moodle_auto_format", "html", "plain_text", "markdown"},
		},
	},
	"additionalProperties": false,
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// ValidationError wraps a schema violation.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config: %v", e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Validate checks cfg against the config schema.
func (c Config) Validate() error {
	b, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return validateDocument(doc)
}

// validateDocument validates a decoded document. YAML values are
// normalized through JSON so numbers reach the validator as float64.
func validateDocument(doc any) error {
	schema, err := getCompiledSchema()
	if err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return &ValidationError{Err: err}
	}
	var parsed any
	if err := json.Unmarshal(b, &parsed); err != nil {
		return &ValidationError{Err: err}
	}
	if parsed == nil {
		return nil
	}
	if err := schema.Validate(parsed); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}

func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
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
