package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/alc6/ora2schema/providers"
)

// StartMCPServer starts the MCP server for schema extraction
func StartMCPServer(cfg *Config) error {
	s := server.NewMCPServer(
		"ora2schema",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	extractSchemaTool := mcp.NewTool("extract_schema",
		mcp.WithDescription("Extract the schema of an Oracle user, either from a live database or from migration files applied to a disposable Oracle container"),
		mcp.WithString("migration_directory",
			mcp.Description("Path to directory containing .up.sql migration files; when set, a container is started"),
		),
		mcp.WithString("dsn",
			mcp.Description("godror connection string (user/password@host:port/service); defaults to the configured database"),
		),
		mcp.WithString("format",
			mcp.Description("Output format (default: sql)"),
			mcp.Enum("info", "sql", "json", "yaml"),
		),
		mcp.WithString("oracle_image",
			mcp.Description("Oracle Docker image to use (default: "+defaultImage+")"),
		),
	)

	s.AddTool(extractSchemaTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleExtractSchema(ctx, request, cfg)
	})

	canonicalizeTypeTool := mcp.NewTool("canonicalize_type",
		mcp.WithDescription("Map an Oracle column type such as 'TIMESTAMP(6) WITH TIME ZONE' to its canonical name and logical type"),
		mcp.WithString("type",
			mcp.Required(),
			mcp.Description("Vendor column type as reported by the data dictionary"),
		),
	)

	s.AddTool(canonicalizeTypeTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleCanonicalizeType(ctx, request)
	})

	validateMigrationsTool := mcp.NewTool("validate_migrations",
		mcp.WithDescription("Validate migration files in directory without running them"),
		mcp.WithString("migration_directory",
			mcp.Required(),
			mcp.Description("Path to directory containing migration files"),
		),
	)

	s.AddTool(validateMigrationsTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleValidateMigrations(ctx, request)
	})

	slog.Info("starting ora2schema mcp server")
	return server.ServeStdio(s)
}

// handleExtractSchema processes the extract_schema tool request
func handleExtractSchema(ctx context.Context, request mcp.CallToolRequest, cfg *Config) (*mcp.CallToolResult, error) {
	toolCfg := *cfg
	toolCfg.MigrationsDir = request.GetString("migration_directory", "")
	toolCfg.DSN = request.GetString("dsn", cfg.DSN)
	toolCfg.Image = request.GetString("oracle_image", cfg.Image)

	output, err := extractSchemaCore(ctx, &toolCfg, request.GetString("format", "sql"), "oracle")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("schema extracted successfully:\n\n%s", output)), nil
}

// extractSchemaCore contains the core logic for schema extraction, separated for testing
func extractSchemaCore(ctx context.Context, cfg *Config, format, providerName string) (string, error) {
	registry := providers.NewProviderRegistry()
	registry.Register(providers.NewOracleProvider())

	provider, exists := registry.Get(providerName)
	if !exists {
		return "", fmt.Errorf("unknown provider: %s", providerName)
	}

	if !provider.IsAvailable() {
		return "", fmt.Errorf("provider '%s' is not available in this environment", providerName)
	}

	schemaFormat, err := providers.ParseSchemaFormat(format)
	if err != nil {
		return "", err
	}

	dbManager, err := NewDatabaseManager(cfg)
	if err != nil {
		return "", err
	}

	return extractSchemaCoreWithProvider(ctx, cfg.MigrationsDir, schemaFormat, NewFileMigrationReader(), dbManager, provider)
}

// extractSchemaCoreWithProvider is the provider-based extraction function. An empty
// migrationDir extracts from the database as it is.
func extractSchemaCoreWithProvider(ctx context.Context, migrationDir string, format providers.SchemaFormat,
	migrationReader MigrationReader, dbManager DatabaseManager, provider providers.SchemaProvider) (string, error) {
	var migrations []Migration
	if migrationDir != "" {
		if _, err := os.Stat(migrationDir); os.IsNotExist(err) {
			return "", fmt.Errorf("migration directory does not exist: %s", migrationDir)
		}

		var err error
		migrations, err = migrationReader.DiscoverMigrations(migrationDir)
		if err != nil {
			return "", fmt.Errorf("failed to parse migrations: %w", err)
		}

		if len(migrations) == 0 {
			return "", fmt.Errorf("no migration files found in directory")
		}
	}

	if err := dbManager.Setup(ctx); err != nil {
		return "", fmt.Errorf("failed to setup oracle: %w", err)
	}
	defer func() {
		if err := dbManager.Close(ctx); err != nil {
			slog.Error("failed to cleanup database", "error", err)
		}
	}()

	if len(migrations) > 0 {
		if err := dbManager.RunMigrations(ctx, migrations); err != nil {
			return "", fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	db := dbManager.GetDB()
	if db == nil {
		return "", fmt.Errorf("database connection is not available")
	}

	result, err := provider.ExtractSchema(ctx, providers.ExtractParams{
		DB:     db,
		Format: format,
	})
	if err != nil {
		return "", fmt.Errorf("failed to extract schema: %w", err)
	}

	return result.Rendered, nil
}

// handleCanonicalizeType processes the canonicalize_type tool request
func handleCanonicalizeType(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	vendorType, err := request.RequireString("type")
	if err != nil {
		return mcp.NewToolResultError("type parameter is required"), nil
	}

	output, err := canonicalizeTypeCore(vendorType)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(output), nil
}

func canonicalizeTypeCore(vendorType string) (string, error) {
	description := DescribeType(vendorType)
	if !description.Known {
		slog.Warn("unknown column type", "type", vendorType)
	}

	jsonOutput, err := json.MarshalIndent(description, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result to JSON: %w", err)
	}
	return string(jsonOutput), nil
}

// handleValidateMigrations processes the validate_migrations tool request
func handleValidateMigrations(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	migrationDir, err := request.RequireString("migration_directory")
	if err != nil {
		return mcp.NewToolResultError("migration_directory parameter is required"), nil
	}

	output, err := validateMigrationsCore(migrationDir)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("migration validation completed:\n\n%s", output)), nil
}

// validateMigrationsCore contains the core logic for migration validation, separated for testing
func validateMigrationsCore(migrationDir string) (string, error) {
	if _, err := os.Stat(migrationDir); os.IsNotExist(err) {
		return "", fmt.Errorf("migration directory does not exist: %s", migrationDir)
	}

	migrations, err := ParseMigrations(migrationDir)
	if err != nil {
		return "", fmt.Errorf("failed to parse migrations: %w", err)
	}

	valid := true
	migrationInfos := make([]map[string]interface{}, len(migrations))
	for i, migration := range migrations {
		migrationInfo := map[string]interface{}{
			"name":          migration.Name,
			"up_file":       migration.UpFile,
			"has_down_file": migration.DownFile != "",
		}
		if migration.DownFile != "" {
			migrationInfo["down_file"] = migration.DownFile
		}

		statements, err := migration.ReadStatements()
		if err != nil {
			valid = false
			migrationInfo["error"] = err.Error()
		} else {
			migrationInfo["statement_count"] = len(statements)
			if len(statements) == 0 {
				valid = false
				migrationInfo["error"] = "migration contains no statements"
			}
		}
		migrationInfos[i] = migrationInfo
	}

	result := map[string]interface{}{
		"valid":           valid,
		"migration_count": len(migrations),
		"migrations":      migrationInfos,
	}

	jsonOutput, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result to JSON: %w", err)
	}

	return string(jsonOutput), nil
}
