package providers

import (
	"database/sql"
)

// AssembleColumns appends to each entity the columns of the rows whose table name matches it,
// in row order
func AssembleColumns(entities []*Entity, rows []ColumnRow, mapper *TypeMapper) {
	for _, entity := range entities {
		for _, row := range rows {
			if row.TableName != entity.Name {
				continue
			}
			entity.Columns = append(entity.Columns, buildColumn(row, mapper))
		}
	}
}

func buildColumn(row ColumnRow, mapper *TypeMapper) Column {
	tscType, canonical := mapper.Canonicalize(row.DataType)

	return Column{
		TscName:   row.ColumnName,
		TscType:   tscType,
		Type:      canonical,
		Default:   TranslateDefault(row.DataDefault),
		Generated: identityFlag(row.IdentityColumn),
		Options:   columnOptions(row, canonical),
	}
}

func columnOptions(row ColumnRow, canonical string) ColumnOptions {
	options := ColumnOptions{
		Name:     row.ColumnName,
		Nullable: row.Nullable == "Y",
		Unique:   row.IsUnique > 0,
	}

	if HasPrecision(canonical) {
		options.Precision = intOption(row.DataPrecision, false)
		options.Scale = intOption(row.DataScale, false)
	}
	if HasLength(canonical) {
		options.Length = intOption(row.DataLength, true)
		options.CharLength = intOption(row.CharLength, true)
	}

	return options
}

// intOption returns nil for NULL values and, when positive is set, for values <= 0
func intOption(v sql.NullInt64, positive bool) *int {
	if !v.Valid || (positive && v.Int64 <= 0) {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func identityFlag(identity *sql.NullString) *bool {
	if identity == nil {
		return nil
	}
	generated := identity.Valid && identity.String == "YES"
	return &generated
}
