package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

// integrationEnabled gates tests that start an Oracle container
func integrationEnabled() bool {
	return os.Getenv("ORA2SCHEMA_INTEGRATION") == "1"
}

func skipUnlessIntegration(t *testing.T) {
	t.Helper()
	if testing.Short() || !integrationEnabled() {
		t.Skip("set ORA2SCHEMA_INTEGRATION=1 to run tests against an oracle container")
	}
}

func writeMigrations(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for filename, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, filename), []byte(content), 0644))
	}
}

func newSQLMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	mock.MatchExpectationsInOrder(false)
	return db, mock
}

// expectUsersCatalog answers the four catalog queries with a single USERS table
func expectUsersCatalog(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("FROM all_tables").WillReturnRows(
		sqlmock.NewRows([]string{"TABLE_SCHEMA", "TABLE_NAME", "DB_NAME"}).
			AddRow(nil, "USERS", nil))
	mock.ExpectQuery("FROM USER_TAB_COLUMNS utc").WillReturnRows(
		sqlmock.NewRows([]string{"TABLE_NAME", "COLUMN_NAME", "DATA_TYPE", "DATA_LENGTH", "DATA_PRECISION",
			"DATA_SCALE", "NULLABLE", "DATA_DEFAULT", "IDENTITY_COLUMN", "IS_UNIQUE"}).
			AddRow("USERS", "ID", "NUMBER", int64(22), int64(10), int64(0), "N", nil, "YES", int64(0)).
			AddRow("USERS", "EMAIL", "VARCHAR2", int64(255), nil, nil, "N", nil, "NO", int64(1)))
	mock.ExpectQuery("JOIN USER_IND_COLUMNS col").WillReturnRows(
		sqlmock.NewRows([]string{"TABLE_NAME", "INDEX_NAME", "COLUMN_NAME", "UNIQUENESS", "ISPRIMARYKEY"}).
			AddRow("USERS", "PK_USERS", "ID", "UNIQUE", int64(1)))
	mock.ExpectQuery("from user_constraints owner").WillReturnRows(
		sqlmock.NewRows([]string{"OWNER_TABLE_NAME", "OWNER_POSITION", "OWNER_COLUMN_NAME", "CHILD_TABLE_NAME",
			"CHILD_COLUMN_NAME", "DELETE_RULE", "CONSTRAINT_NAME"}))
}

// simulateError returns errors shaped like the ones the Oracle driver reports
func simulateError(errType string) error {
	switch errType {
	case "connection":
		return fmt.Errorf("ORA-12541: TNS:no listener")
	case "syntax":
		return fmt.Errorf("ORA-00922: missing or invalid option")
	case "permission":
		return fmt.Errorf("ORA-01031: insufficient privileges")
	default:
		return fmt.Errorf("simulated error: %s", errType)
	}
}

func resetCommand() {
	extractMode = false
	mcpMode = false
	cfgFile = ""
	rootCmd.ResetFlags()
	registerFlags()
}
