package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/gridbrowser/internal/application/port"
)

// GetConfigSchemaUseCase retrieves the configuration file schema.
type GetConfigSchemaUseCase struct {
	provider port.ConfigSchemaProvider
}

// NewGetConfigSchemaUseCase creates a new GetConfigSchemaUseCase.
func NewGetConfigSchemaUseCase(provider port.ConfigSchemaProvider) *GetConfigSchemaUseCase {
	return &GetConfigSchemaUseCase{
		provider: provider,
	}
}

// GetConfigSchemaOutput contains the schema document.
type GetConfigSchemaOutput struct {
	Schema []byte
}

// Execute returns the JSON schema describing config.toml.
func (uc *GetConfigSchemaUseCase) Execute(_ context.Context) (*GetConfigSchemaOutput, error) {
	schema, err := uc.provider.JSONSchema()
	if err != nil {
		return nil, fmt.Errorf("generate config schema: %w", err)
	}
	return &GetConfigSchemaOutput{
		Schema: schema,
	}, nil
}
