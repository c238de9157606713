package providers

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Render formats entities in the given format
func Render(entities []*Entity, format SchemaFormat) (string, error) {
	switch format {
	case FormatInfo, "":
		return FormatSchemaInfo(entities), nil
	case FormatSQL:
		return FormatSchemaSQL(entities), nil
	case FormatJSON:
		return FormatSchemaJSON(entities)
	case FormatYAML:
		return FormatSchemaYAML(entities)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// FormatSchemaInfo formats schema as human-readable text
func FormatSchemaInfo(entities []*Entity) string {
	var sb strings.Builder

	for _, entity := range entities {
		sb.WriteString(fmt.Sprintf("Table: %s\n", entity.Name))
		sb.WriteString("Columns:\n")

		for _, col := range entity.Columns {
			nullable := "NOT NULL"
			if col.Options.Nullable {
				nullable = "NULL"
			}

			extra := ""
			if col.Options.Unique {
				extra += " (UNIQUE)"
			}
			if col.Generated != nil && *col.Generated {
				extra += " (IDENTITY)"
			}

			defaultVal := ""
			if literal, ok := col.Default.Get(); ok {
				defaultVal = fmt.Sprintf(" DEFAULT %s", literal)
			}

			sb.WriteString(fmt.Sprintf("  - %s %s %s%s%s [%s]\n",
				col.TscName, mapDataType(col), nullable, defaultVal, extra, col.TscType))
		}

		if len(entity.Indices) > 0 {
			sb.WriteString("Indexes:\n")
			for _, idx := range entity.Indices {
				flags := ""
				if idx.Primary {
					flags += " (PRIMARY KEY)"
				}
				if idx.Options.Unique {
					flags += " (UNIQUE)"
				}
				sb.WriteString(fmt.Sprintf("  - %s on (%s)%s\n",
					idx.Name, strings.Join(idx.Columns, ", "), flags))
			}
		}

		if len(entity.Relations) > 0 {
			sb.WriteString("Relations:\n")
			for _, rel := range entity.Relations {
				sb.WriteString(fmt.Sprintf("  - %s %s %s", rel.FieldName, rel.RelationType, rel.RelatedTable))
				if len(rel.JoinColumns) > 0 {
					pairs := make([]string, len(rel.JoinColumns))
					for i, jc := range rel.JoinColumns {
						pairs[i] = fmt.Sprintf("%s -> %s", jc.Name, jc.ReferencedColumnName)
					}
					sb.WriteString(fmt.Sprintf(" (%s)", strings.Join(pairs, ", ")))
				}
				sb.WriteString("\n")
			}
		}

		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatSchemaSQL formats schema as Oracle DDL statements
func FormatSchemaSQL(entities []*Entity) string {
	var sb strings.Builder
	var foreignKeys []string

	for _, entity := range entities {
		sb.WriteString(fmt.Sprintf("create table %s (\n", entity.Name))
		constraints := tableConstraints(entity)

		var columnDefs []string
		for _, col := range entity.Columns {
			var colDef strings.Builder
			colDef.WriteString(fmt.Sprintf("    %s %s", col.TscName, strings.ToLower(mapDataType(col))))

			if col.Generated != nil && *col.Generated {
				colDef.WriteString(" generated by default as identity")
			}
			if literal, ok := col.Default.Get(); ok {
				colDef.WriteString(fmt.Sprintf(" default %s", literal))
			}
			if !col.Options.Nullable {
				colDef.WriteString(" not null")
			}
			if col.Options.Unique && !constraints.uniqueColumns[col.TscName] {
				colDef.WriteString(" unique")
			}

			columnDefs = append(columnDefs, colDef.String())
		}
		columnDefs = append(columnDefs, constraints.defs...)

		sb.WriteString(strings.Join(columnDefs, ",\n"))
		sb.WriteString("\n);\n\n")

		wroteIndex := false
		for _, idx := range entity.Indices {
			if idx.Primary {
				continue
			}
			unique := ""
			if idx.Options.Unique {
				unique = "unique "
			}
			sb.WriteString(fmt.Sprintf("create %sindex %s on %s (%s);\n",
				unique, idx.Name, entity.Name, strings.Join(idx.Columns, ", ")))
			wroteIndex = true
		}
		if wroteIndex {
			sb.WriteString("\n")
		}

		for _, rel := range entity.Relations {
			if len(rel.JoinColumns) == 0 {
				continue
			}
			owned := make([]string, len(rel.JoinColumns))
			referenced := make([]string, len(rel.JoinColumns))
			for i, jc := range rel.JoinColumns {
				owned[i] = jc.Name
				referenced[i] = jc.ReferencedColumnName
			}
			onDelete := ""
			switch rel.OnDelete {
			case "CASCADE", "SET NULL":
				onDelete = " on delete " + strings.ToLower(rel.OnDelete)
			}
			foreignKeys = append(foreignKeys, fmt.Sprintf("alter table %s add foreign key (%s) references %s (%s)%s;\n",
				entity.Name, strings.Join(owned, ", "), rel.RelatedTable, strings.Join(referenced, ", "), onDelete))
		}
	}

	for _, fk := range foreignKeys {
		sb.WriteString(fk)
	}

	return sb.String()
}

type constraintSet struct {
	defs          []string
	uniqueColumns map[string]bool
}

// tableConstraints renders the out-of-line constraints of entity. The index query flags
// every constraint-backed index as primary, so a single-column index over a column with a
// unique constraint is rendered as unique, and only the first remaining one as the key.
func tableConstraints(entity *Entity) constraintSet {
	set := constraintSet{uniqueColumns: make(map[string]bool)}
	uniqueColumn := make(map[string]bool)
	for _, col := range entity.Columns {
		if col.Options.Unique {
			uniqueColumn[col.TscName] = true
		}
	}

	hasKey := false
	for _, idx := range entity.Indices {
		if !idx.Primary {
			continue
		}
		columns := strings.Join(idx.Columns, ", ")
		switch {
		case len(idx.Columns) == 1 && uniqueColumn[idx.Columns[0]]:
			set.uniqueColumns[idx.Columns[0]] = true
			set.defs = append(set.defs, fmt.Sprintf("    constraint %s unique (%s)", idx.Name, columns))
		case hasKey:
			set.defs = append(set.defs, fmt.Sprintf("    constraint %s unique (%s)", idx.Name, columns))
		default:
			hasKey = true
			set.defs = append(set.defs, fmt.Sprintf("    constraint %s primary key (%s)", idx.Name, columns))
		}
	}
	return set
}

// FormatSchemaJSON formats schema as indented JSON
func FormatSchemaJSON(entities []*Entity) (string, error) {
	out, err := json.MarshalIndent(entities, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal schema to JSON: %w", err)
	}
	return string(out) + "\n", nil
}

// FormatSchemaYAML formats schema as YAML
func FormatSchemaYAML(entities []*Entity) (string, error) {
	out, err := yaml.Marshal(entities)
	if err != nil {
		return "", fmt.Errorf("failed to marshal schema to YAML: %w", err)
	}
	return string(out), nil
}

func mapDataType(col Column) string {
	name := strings.ToUpper(col.Type)
	opts := col.Options

	switch {
	case opts.Length != nil:
		length := *opts.Length
		// national character types are declared in characters
		if (col.Type == "nchar" || col.Type == "nvarchar2") && opts.CharLength != nil {
			length = *opts.CharLength
		}
		return fmt.Sprintf("%s(%d)", name, length)
	case strings.HasPrefix(col.Type, "timestamp") && opts.Scale != nil:
		return strings.Replace(name, "TIMESTAMP", fmt.Sprintf("TIMESTAMP(%d)", *opts.Scale), 1)
	case opts.Precision != nil && opts.Scale != nil:
		return fmt.Sprintf("%s(%d,%d)", name, *opts.Precision, *opts.Scale)
	case opts.Precision != nil:
		return fmt.Sprintf("%s(%d)", name, *opts.Precision)
	default:
		return name
	}
}
