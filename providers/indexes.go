package providers

// GroupIndexes appends one Index per distinct index name found among each entity's rows.
// Rows are expected ordered by column position within an index; that order is kept.
func GroupIndexes(entities []*Entity, rows []IndexRow) {
	for _, entity := range entities {
		var order []string
		groups := make(map[string][]IndexRow)
		for _, row := range rows {
			if row.TableName != entity.Name {
				continue
			}
			if _, seen := groups[row.IndexName]; !seen {
				order = append(order, row.IndexName)
			}
			groups[row.IndexName] = append(groups[row.IndexName], row)
		}

		for _, name := range order {
			entity.Indices = append(entity.Indices, buildIndex(name, groups[name]))
		}
	}
}

func buildIndex(name string, records []IndexRow) Index {
	index := Index{
		Name:    name,
		Columns: make([]string, 0, len(records)),
		Options: IndexOptions{Unique: records[0].Uniqueness == "UNIQUE"},
	}
	for _, record := range records {
		if record.IsPrimaryKey == 1 {
			index.Primary = true
		}
		index.Columns = append(index.Columns, record.ColumnName)
	}
	return index
}
