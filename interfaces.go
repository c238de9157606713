package main

import (
	"context"
	"database/sql"

	"github.com/alc6/ora2schema/providers"
)

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces_test.go -package=main

// DatabaseManager handles database lifecycle and operations
type DatabaseManager interface {
	// Setup creates and initializes the database connection
	Setup(ctx context.Context) error
	// Close cleans up database resources
	Close(ctx context.Context) error
	// RunMigrations executes the provided migrations in order
	RunMigrations(ctx context.Context, migrations []Migration) error
	// GetDB returns the underlying database connection
	GetDB() *sql.DB
}

// SchemaExtractor handles extracting schema information from a database
type SchemaExtractor interface {
	// ExtractSchema reads the catalog of the connected user
	ExtractSchema(ctx context.Context, db providers.Querier) ([]*providers.Entity, error)
	// FormatSchema renders entities in the given format
	FormatSchema(entities []*providers.Entity, format providers.SchemaFormat) (string, error)
}

// MigrationReader handles reading migration files
type MigrationReader interface {
	// DiscoverMigrations finds all migration files in the given directory
	DiscoverMigrations(dir string) ([]Migration, error)
}
