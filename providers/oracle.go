package providers

import (
	"context"
	"fmt"
	"log/slog"
)

// OracleProvider extracts the schema of the connected user from the Oracle data dictionary
type OracleProvider struct{}

// NewOracleProvider creates a new oracle provider
func NewOracleProvider() SchemaProvider {
	return &OracleProvider{}
}

// Name returns the provider name
func (p *OracleProvider) Name() string {
	return "oracle"
}

// IsAvailable always returns true; the provider only needs a database connection
func (p *OracleProvider) IsAvailable() bool {
	return true
}

// ExtractSchema extracts the entities and renders them in the requested format
func (p *OracleProvider) ExtractSchema(ctx context.Context, params ExtractParams) (*SchemaResult, error) {
	if params.DB == nil {
		return nil, fmt.Errorf("oracle provider requires database connection")
	}

	format := params.Format
	if format == "" {
		format = FormatInfo
	}
	slog.Debug("extracting schema using oracle provider", "format", format)

	entities, err := NewIntrospector(params.DB, params.Reporter).ExtractEntities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract schema: %w", err)
	}

	rendered, err := Render(entities, format)
	if err != nil {
		return nil, err
	}

	return &SchemaResult{
		Entities: entities,
		Rendered: rendered,
		Format:   format,
	}, nil
}
