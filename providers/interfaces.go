package providers

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
)

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces_test.go -package=providers

// Querier runs a catalog query and returns the materialized cursor.
// *sql.DB and *sql.Conn satisfy it.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Reporter receives non-fatal diagnostics. *slog.Logger satisfies it.
type Reporter interface {
	Warn(msg string, args ...any)
}

// SchemaProvider defines the interface for different schema extraction providers
type SchemaProvider interface {
	// Name returns the provider name for identification
	Name() string

	// ExtractSchema extracts the schema using the provider's method
	ExtractSchema(ctx context.Context, params ExtractParams) (*SchemaResult, error)

	// IsAvailable checks if this provider can be used in the current environment
	IsAvailable() bool
}

// ExtractParams contains parameters needed for schema extraction
type ExtractParams struct {
	// DB is the database connection used to run the catalog queries
	DB Querier

	// Reporter receives warnings; nil falls back to the default slog logger
	Reporter Reporter

	// Format specifies the output format
	Format SchemaFormat
}

// SchemaFormat represents the desired output format
type SchemaFormat string

const (
	FormatInfo SchemaFormat = "info" // Human-readable format
	FormatSQL  SchemaFormat = "sql"  // Oracle DDL
	FormatJSON SchemaFormat = "json"
	FormatYAML SchemaFormat = "yaml"
)

// ParseSchemaFormat validates a format name
func ParseSchemaFormat(s string) (SchemaFormat, error) {
	switch f := SchemaFormat(s); f {
	case FormatInfo, FormatSQL, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatInfo, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", s)
	}
}

// SchemaResult contains the extracted schema in the requested format
type SchemaResult struct {
	// Entities contains the normalized schema graph
	Entities []*Entity

	// Rendered contains the entities rendered in Format
	Rendered string

	Format SchemaFormat
}

// ProviderRegistry manages available schema providers
type ProviderRegistry struct {
	providers map[string]SchemaProvider
}

// NewProviderRegistry creates a new provider registry
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		providers: make(map[string]SchemaProvider),
	}
}

// Register adds a provider to the registry
func (r *ProviderRegistry) Register(provider SchemaProvider) {
	r.providers[provider.Name()] = provider
}

// Get retrieves a provider by name
func (r *ProviderRegistry) Get(name string) (SchemaProvider, bool) {
	provider, exists := r.providers[name]
	return provider, exists
}

// ListAvailable returns all available providers, sorted by name
func (r *ProviderRegistry) ListAvailable() []string {
	var available []string
	for name, provider := range r.providers {
		if provider.IsAvailable() {
			available = append(available, name)
		}
	}
	sort.Strings(available)
	return available
}
