package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/alc6/ora2schema/providers"
)

var (
	extractMode bool
	mcpMode     bool
	cfgFile     string
	logLevel    = new(slog.LevelVar)
)

var rootCmd = &cobra.Command{
	Use:   "ora2schema [migration-directory]",
	Short: "Extract the relational schema of an Oracle user",
	Long: `ora2schema reads the Oracle data dictionary of the connected user and prints the
tables, columns, indexes and foreign keys it finds as a normalized entity model.

It either connects to an existing database (--dsn, or --username/--password/--connect-string)
or, given a directory of .up.sql migration files, starts a disposable Oracle Free container
with testcontainers, runs the migrations and extracts the resulting schema.

Settings are read from ora2schema.yaml, ORA2SCHEMA_* environment variables and flags.

Modes:
  info mode (default): Shows human-readable schema information
  extract mode (-e): Outputs Oracle DDL statements
  mcp mode (--mcp): Run as Model Context Protocol server`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runOra2Schema,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var existsCmd = &cobra.Command{
	Use:   "exists NAME",
	Short: "Check whether an Oracle user (schema) exists",
	Args:  cobra.ExactArgs(1),
	RunE:  runExists,
}

func init() {
	rootCmd.AddCommand(existsCmd)
}

func main() {
	if err := run(); err != nil {
		slog.Error("command execution failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))

	registerFlags()

	return rootCmd.Execute()
}

func registerFlags() {
	flags := rootCmd.PersistentFlags()
	if flags.Lookup("extract") != nil {
		return
	}

	flags.StringVar(&cfgFile, "config", "", "Config file (default: ./ora2schema.yaml)")
	flags.BoolVarP(&extractMode, "extract", "e", false, "Extract schema as Oracle DDL (same as --format sql)")
	flags.String("format", defaultFormat, "Output format: info, sql, json or yaml")
	flags.String("dsn", "", "godror connection string, e.g. user/password@host:1521/service")
	flags.String("username", "", "Database user, used when --dsn is not set")
	flags.String("password", "", "Database password, used when --dsn is not set")
	flags.String("connect-string", "", "Oracle connect string (host:port/service), used when --dsn is not set")
	flags.String("migrations", "", "Directory of migration files to run in a disposable Oracle container")
	flags.String("image", defaultImage, "Oracle Docker image used with --migrations")
	flags.String("log-level", defaultLogging, "Log level: debug, info, warn or error")

	rootCmd.Flags().BoolVar(&mcpMode, "mcp", false, "Run as Model Context Protocol server")
}

// loadConfig resolves the configuration for cmd and applies the log level
func loadConfig(cmd *cobra.Command) (*Config, error) {
	cfg, err := LoadConfig(cfgFile, cmd.Flags())
	if err != nil {
		return nil, err
	}
	if extractMode {
		cfg.Format = string(providers.FormatSQL)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	level, _ := cfg.SlogLevel()
	logLevel.Set(level)
	return cfg, nil
}

func runOra2Schema(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.MigrationsDir = args[0]
	}

	if mcpMode {
		slog.Info("starting mcp server")
		if err := StartMCPServer(cfg); err != nil {
			return fmt.Errorf("failed to start mcp server: %w", err)
		}
		return nil
	}

	dbManager, err := NewDatabaseManager(cfg)
	if err != nil {
		return err
	}

	return processSchema(cmd.Context(), cfg, NewFileMigrationReader(), dbManager, NewOracleSchemaExtractor(nil), cmd.OutOrStdout())
}

func processSchema(ctx context.Context, cfg *Config, migrationReader MigrationReader, dbManager DatabaseManager,
	schemaExtractor SchemaExtractor, out io.Writer) error {
	format, err := providers.ParseSchemaFormat(cfg.Format)
	if err != nil {
		return err
	}

	var migrations []Migration
	if cfg.MigrationsDir != "" {
		slog.Info("processing migration directory", "directory", cfg.MigrationsDir)

		if _, err := os.Stat(cfg.MigrationsDir); os.IsNotExist(err) {
			return fmt.Errorf("migration directory does not exist: %s", cfg.MigrationsDir)
		}

		slog.Info("parsing migration files")
		migrations, err = migrationReader.DiscoverMigrations(cfg.MigrationsDir)
		if err != nil {
			return fmt.Errorf("failed to parse migrations: %w", err)
		}

		if len(migrations) == 0 {
			return fmt.Errorf("no migration files found in directory: %s", cfg.MigrationsDir)
		}

		slog.Info("found migrations", "count", len(migrations))
	}

	slog.Info("setting up database")
	if err := dbManager.Setup(ctx); err != nil {
		return fmt.Errorf("failed to setup database: %w", err)
	}
	defer func() {
		if err := dbManager.Close(ctx); err != nil {
			slog.Error("failed to cleanup", "error", err)
		}
	}()

	if len(migrations) > 0 {
		slog.Info("running migrations")
		if err := dbManager.RunMigrations(ctx, migrations); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	db := dbManager.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is not available")
	}

	slog.Info("extracting schema")
	entities, err := schemaExtractor.ExtractSchema(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to extract schema: %w", err)
	}

	rendered, err := schemaExtractor.FormatSchema(entities, format)
	if err != nil {
		return fmt.Errorf("failed to format schema: %w", err)
	}

	if format == providers.FormatInfo {
		fmt.Fprintln(out, "\n=== DATABASE SCHEMA ===")
	}
	fmt.Fprint(out, rendered)

	return nil
}

func runExists(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	dsn, err := cfg.DataSourceName()
	if err != nil {
		return err
	}

	return checkSchemaExists(cmd.Context(), args[0], NewOracleConnectionManager(dsn), cmd.OutOrStdout())
}

// checkSchemaExists prints "true" or "false" depending on whether the user name exists
func checkSchemaExists(ctx context.Context, name string, dbManager DatabaseManager, out io.Writer) error {
	if err := dbManager.Setup(ctx); err != nil {
		return fmt.Errorf("failed to setup database: %w", err)
	}
	defer func() {
		if err := dbManager.Close(ctx); err != nil {
			slog.Error("failed to cleanup", "error", err)
		}
	}()

	db := dbManager.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is not available")
	}

	exists, err := SchemaExists(ctx, db, name)
	if err != nil {
		return fmt.Errorf("failed to check schema: %w", err)
	}

	slog.Debug("checked schema", "name", name, "exists", exists)
	fmt.Fprintln(out, exists)
	return nil
}
