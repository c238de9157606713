package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/alc6/ora2schema/providers"
)

// OracleConnectionManager connects to an existing Oracle database
type OracleConnectionManager struct {
	dsn  string
	db   *sql.DB
	open func(ctx context.Context, dsn string) (*sql.DB, error)
}

func NewOracleConnectionManager(dsn string) DatabaseManager {
	return &OracleConnectionManager{dsn: dsn, open: OpenOracle}
}

func (o *OracleConnectionManager) Setup(ctx context.Context) error {
	slog.Debug("connecting to oracle database")
	db, err := o.open(ctx, o.dsn)
	if err != nil {
		return err
	}
	o.db = db
	slog.Info("oracle connection ready")
	return nil
}

func (o *OracleConnectionManager) Close(_ context.Context) error {
	if o.db != nil {
		return o.db.Close()
	}
	return nil
}

func (o *OracleConnectionManager) RunMigrations(ctx context.Context, migrations []Migration) error {
	return runMigrations(ctx, o.db, migrations)
}

func (o *OracleConnectionManager) GetDB() *sql.DB {
	return o.db
}

// OracleContainerManager runs against a disposable Oracle container
type OracleContainerManager struct {
	image    string
	database *Database
}

func NewOracleContainerManager(image string) DatabaseManager {
	if image == "" {
		image = defaultImage
	}
	return &OracleContainerManager{image: image}
}

func (o *OracleContainerManager) Setup(ctx context.Context) error {
	database, err := SetupOracle(ctx, o.image)
	if err != nil {
		return err
	}
	o.database = database
	return nil
}

func (o *OracleContainerManager) Close(ctx context.Context) error {
	if o.database == nil {
		return nil
	}
	return o.database.Close(ctx)
}

func (o *OracleContainerManager) RunMigrations(ctx context.Context, migrations []Migration) error {
	if o.database == nil {
		return fmt.Errorf("database is not set up")
	}
	return o.database.RunMigrations(ctx, migrations)
}

func (o *OracleContainerManager) GetDB() *sql.DB {
	if o.database == nil {
		return nil
	}
	return o.database.DB
}

// NewDatabaseManager picks the container manager when a migrations directory is configured
func NewDatabaseManager(cfg *Config) (DatabaseManager, error) {
	if cfg.MigrationsDir != "" {
		return NewOracleContainerManager(cfg.Image), nil
	}
	dsn, err := cfg.DataSourceName()
	if err != nil {
		return nil, err
	}
	return NewOracleConnectionManager(dsn), nil
}

type OracleSchemaExtractor struct {
	reporter providers.Reporter
}

// NewOracleSchemaExtractor creates an extractor that reports warnings to reporter, or to
// the default slog logger when reporter is nil
func NewOracleSchemaExtractor(reporter providers.Reporter) SchemaExtractor {
	return &OracleSchemaExtractor{reporter: reporter}
}

func (e *OracleSchemaExtractor) ExtractSchema(ctx context.Context, db providers.Querier) ([]*providers.Entity, error) {
	return providers.NewIntrospector(db, e.reporter).ExtractEntities(ctx)
}

func (e *OracleSchemaExtractor) FormatSchema(entities []*providers.Entity, format providers.SchemaFormat) (string, error) {
	return providers.Render(entities, format)
}

type FileMigrationReader struct{}

func NewFileMigrationReader() MigrationReader {
	return &FileMigrationReader{}
}

func (r *FileMigrationReader) DiscoverMigrations(dir string) ([]Migration, error) {
	return ParseMigrations(dir)
}
