package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/godror/godror" // Oracle driver
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	oraclePort        = "1521/tcp"
	oracleService     = "FREEPDB1"
	oracleAppUser     = "ORA2SCHEMA"
	oracleAppPassword = "ora2schema"
)

type Database struct {
	Container testcontainers.Container
	DB        *sql.DB
	DSN       string
}

// SetupOracle starts a disposable Oracle Free container and connects to its pluggable
// database as a freshly created application user.
func SetupOracle(ctx context.Context, image string) (*Database, error) {
	slog.Debug("starting oracle container", "image", image)
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{oraclePort},
			Env: map[string]string{
				"ORACLE_PASSWORD":   oracleAppPassword,
				"APP_USER":          oracleAppUser,
				"APP_USER_PASSWORD": oracleAppPassword,
			},
			WaitingFor: wait.ForLog("DATABASE IS READY TO USE!").
				WithStartupTimeout(10 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, oraclePort)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}

	dsn := fmt.Sprintf("%s/%s@%s:%s/%s", oracleAppUser, oracleAppPassword, host, port.Port(), oracleService)
	slog.Debug("got database connection string", "host", host, "port", port.Port(), "service", oracleService)

	db, err := OpenOracle(ctx, dsn)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	slog.Info("oracle container ready")
	return &Database{
		Container: container,
		DB:        db,
		DSN:       dsn,
	}, nil
}

// OpenOracle opens a godror pool for dsn and checks that it answers
func OpenOracle(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("godror", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

func (d *Database) Close(ctx context.Context) error {
	if d.DB != nil {
		d.DB.Close()
	}
	if d.Container != nil {
		return d.Container.Terminate(ctx)
	}
	return nil
}

func (d *Database) RunMigrations(ctx context.Context, migrations []Migration) error {
	return runMigrations(ctx, d.DB, migrations)
}

// runMigrations executes every statement of every migration, in order, stopping at the first failure
func runMigrations(ctx context.Context, db *sql.DB, migrations []Migration) error {
	if db == nil {
		return fmt.Errorf("database is not set up")
	}

	for _, migration := range migrations {
		slog.Info("running migration", "name", migration.Name, "file", migration.UpFile)

		statements, err := migration.ReadStatements()
		if err != nil {
			return err
		}

		for i, stmt := range statements {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("failed to execute migration %s (statement %d): %w", migration.Name, i+1, err)
			}
		}

		slog.Debug("migration completed successfully", "name", migration.Name, "statements", len(statements))
	}

	slog.Info("all migrations completed successfully", "count", len(migrations))
	return nil
}
