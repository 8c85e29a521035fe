package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/bnema/gridbrowser/internal/domain/build"
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// JSONSchema reflects Config into an indented JSON schema document.
func (*SchemaProvider) JSONSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		DoNotReference: true,
	}
	schema := r.Reflect(&Config{})

	schema.ID = jsonschema.ID(build.RepoURL() + "/config.schema.json")
	schema.Title = "Grid Browser Configuration"
	schema.Description = "Configuration schema for gridbrowser, a grid of independently navigable web views"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
