package seed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "memory://schemas/events-seed.json"

// SchemaValidator validates decoded seed documents against the embedded JSON Schema,
// compiled once on first use.
type SchemaValidator struct {
	once     sync.Once
	compiled *jsonschema.Schema
	err      error
}

// NewSchemaValidator returns a validator for the events seed format.
func NewSchemaValidator() *SchemaValidator {
	return &SchemaValidator{}
}

// Validate checks a document decoded from YAML. The value is normalized through JSON so
// YAML-specific scalars (timestamps, integer kinds) reach the validator as JSON types.
func (v *SchemaValidator) Validate(document any) error {
	compiled, err := v.schema()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(document)
	if err != nil {
		return fmt.Errorf("encode seed document: %w", err)
	}
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	var normalized any
	if err := decoder.Decode(&normalized); err != nil {
		return fmt.Errorf("decode seed document: %w", err)
	}

	if err := compiled.Validate(normalized); err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}

	return nil
}

func (v *SchemaValidator) schema() (*jsonschema.Schema, error) {
	v.once.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
			v.err = fmt.Errorf("register seed schema: %w", err)
			return
		}

		v.compiled, v.err = compiler.Compile(schemaURL)
		if v.err != nil {
			v.err = fmt.Errorf("compile seed schema: %w", v.err)
		}
	})
	return v.compiled, v.err
}
