package providers

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// TableRow is one row of the table enumeration query
type TableRow struct {
	TableSchema sql.NullString
	TableName   string
	DBName      sql.NullString
}

// ColumnRow is one row of USER_TAB_COLUMNS joined with the unique-constraint count
type ColumnRow struct {
	TableName     string
	ColumnName    string
	DataDefault   sql.NullString
	Nullable      string
	DataType      string
	DataLength    sql.NullInt64
	DataPrecision sql.NullInt64
	DataScale     sql.NullInt64
	CharLength    sql.NullInt64
	// IdentityColumn is nil when the catalog predates identity columns
	IdentityColumn *sql.NullString
	IsUnique       int64
}

// IndexRow is one (index, column) pair of the index join
type IndexRow struct {
	TableName    string
	IndexName    string
	ColumnName   string
	Uniqueness   string
	IsPrimaryKey int64
}

// RelationRow is one column pair of a foreign key constraint
type RelationRow struct {
	OwnerTableName  string
	OwnerPosition   int64
	OwnerColumnName string
	ChildTableName  string
	ChildColumnName string
	DeleteRule      string
	ConstraintName  string
}

func bindTableRow(row *TableRow, column string) any {
	switch column {
	case "TABLE_SCHEMA":
		return &row.TableSchema
	case "TABLE_NAME":
		return &row.TableName
	case "DB_NAME":
		return &row.DBName
	}
	return nil
}

func bindColumnRow(row *ColumnRow, column string) any {
	switch column {
	case "TABLE_NAME":
		return &row.TableName
	case "COLUMN_NAME":
		return &row.ColumnName
	case "DATA_DEFAULT":
		return &row.DataDefault
	case "NULLABLE":
		return &row.Nullable
	case "DATA_TYPE":
		return &row.DataType
	case "DATA_LENGTH":
		return &row.DataLength
	case "DATA_PRECISION":
		return &row.DataPrecision
	case "DATA_SCALE":
		return &row.DataScale
	case "CHAR_LENGTH":
		return &row.CharLength
	case "IDENTITY_COLUMN":
		row.IdentityColumn = &sql.NullString{}
		return row.IdentityColumn
	case "IS_UNIQUE":
		return &row.IsUnique
	}
	return nil
}

func bindIndexRow(row *IndexRow, column string) any {
	switch column {
	case "TABLE_NAME":
		return &row.TableName
	case "INDEX_NAME":
		return &row.IndexName
	case "COLUMN_NAME":
		return &row.ColumnName
	case "UNIQUENESS":
		return &row.Uniqueness
	case "ISPRIMARYKEY":
		return &row.IsPrimaryKey
	}
	return nil
}

func bindRelationRow(row *RelationRow, column string) any {
	switch column {
	case "OWNER_TABLE_NAME":
		return &row.OwnerTableName
	case "OWNER_POSITION":
		return &row.OwnerPosition
	case "OWNER_COLUMN_NAME":
		return &row.OwnerColumnName
	case "CHILD_TABLE_NAME":
		return &row.ChildTableName
	case "CHILD_COLUMN_NAME":
		return &row.ChildColumnName
	case "DELETE_RULE":
		return &row.DeleteRule
	case "CONSTRAINT_NAME":
		return &row.ConstraintName
	}
	return nil
}

// runQuery executes query and scans every row into a T by column name.
// Columns that bind returns nil for are read and discarded.
func runQuery[T any](ctx context.Context, db Querier, query string, bind func(*T, string) any, args ...any) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	var result []T
	for rows.Next() {
		var row T
		dest := make([]any, len(columns))
		for i, column := range columns {
			if target := bind(&row, strings.ToUpper(column)); target != nil {
				dest[i] = target
			} else {
				dest[i] = new(any)
			}
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}
