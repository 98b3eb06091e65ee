// Package seed reads YAML event catalogs for bulk import.
package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON []byte

// Event is one catalog entry of a seed file. Date and Time are raw and get normalized
// on import like any other write.
type Event struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Overview    string   `yaml:"overview"`
	Image       string   `yaml:"image"`
	Venue       string   `yaml:"venue"`
	Location    string   `yaml:"location"`
	Date        string   `yaml:"date"`
	Time        string   `yaml:"time"`
	Mode        string   `yaml:"mode"`
	Audience    string   `yaml:"audience"`
	Agenda      []string `yaml:"agenda"`
	Organizer   string   `yaml:"organizer"`
	Tags        []string `yaml:"tags"`
}

// Document is a whole seed file.
type Document struct {
	Events []Event `yaml:"events"`
}

// Load decodes and validates a seed file.
func Load(r io.Reader, validator *SchemaValidator) (Document, error) {
	if validator == nil {
		validator = NewSchemaValidator()
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("read seed: %w", err)
	}

	var generic any
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return Document{}, fmt.Errorf("parse seed yaml: %w", err)
	}
	if generic == nil {
		return Document{}, errors.New("seed file is empty")
	}
	if err := validator.Validate(generic); err != nil {
		return Document{}, err
	}

	var doc Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Document{}, fmt.Errorf("decode seed: %w", err)
	}
	return doc, nil
}
