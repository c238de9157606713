package providers

import (
	"fmt"
	"strings"
)

// LinkRelations groups foreign key rows by constraint name and resolves both endpoints
// in entities. Groups whose owner or referenced table is not an entity are reported and
// skipped.
func LinkRelations(entities []*Entity, rows []RelationRow, reporter Reporter) []RelationInternal {
	var order []string
	groups := make(map[string][]RelationRow)
	for _, row := range rows {
		if _, seen := groups[row.ConstraintName]; !seen {
			order = append(order, row.ConstraintName)
		}
		groups[row.ConstraintName] = append(groups[row.ConstraintName], row)
	}

	var relations []RelationInternal
	for _, name := range order {
		records := groups[name]
		ownerTable := FindEntity(entities, records[0].OwnerTableName)
		relatedTable := FindEntity(entities, records[0].ChildTableName)
		if ownerTable == nil || relatedTable == nil {
			reporter.Warn("relation endpoint not found in entity model",
				"constraint", name,
				"ownerTable", records[0].OwnerTableName,
				"relatedTable", records[0].ChildTableName)
			continue
		}

		relation := RelationInternal{
			ConstraintName: name,
			OwnerTable:     ownerTable,
			RelatedTable:   relatedTable,
			OwnerColumns:   make([]string, 0, len(records)),
			RelatedColumns: make([]string, 0, len(records)),
			DeleteRule:     records[0].DeleteRule,
		}
		for _, record := range records {
			relation.OwnerColumns = append(relation.OwnerColumns, record.OwnerColumnName)
			relation.RelatedColumns = append(relation.RelatedColumns, record.ChildColumnName)
		}
		relations = append(relations, relation)
	}

	return relations
}

// FinalizeRelations decides the cardinality of each relation and attaches it to both
// entities. It must run after columns and indices are assembled.
func FinalizeRelations(relations []RelationInternal) {
	for _, rel := range relations {
		owner, related := rel.OwnerTable, rel.RelatedTable

		ownerType, relatedType := ManyToOne, OneToMany
		if isUniqueKey(owner, rel.OwnerColumns) {
			ownerType, relatedType = OneToOne, OneToOne
		}

		var fieldName string
		if len(rel.OwnerColumns) == 1 {
			fieldName = uniqueFieldName(owner, rel.OwnerColumns[0], rel.OwnerColumns[0])
		} else {
			fieldName = uniqueFieldName(owner, related.Name, "")
		}

		joinColumns := make([]JoinColumn, len(rel.OwnerColumns))
		for i := range rel.OwnerColumns {
			joinColumns[i] = JoinColumn{
				Name:                 rel.OwnerColumns[i],
				ReferencedColumnName: rel.RelatedColumns[i],
			}
		}

		// the owner side is attached first so a self reference cannot reuse its name
		owner.Relations = append(owner.Relations, Relation{
			FieldName:    fieldName,
			RelatedTable: related.Name,
			RelationType: ownerType,
			JoinColumns:  joinColumns,
			OnDelete:     rel.DeleteRule,
		})
		ownerSide := &owner.Relations[len(owner.Relations)-1]
		relatedField := uniqueFieldName(related, owner.Name, "")
		ownerSide.RelatedField = relatedField

		related.Relations = append(related.Relations, Relation{
			FieldName:    relatedField,
			RelatedField: fieldName,
			RelatedTable: owner.Name,
			RelationType: relatedType,
		})

		if len(rel.OwnerColumns) == 1 {
			owner.RelationIDs = append(owner.RelationIDs, RelationID{
				FieldName:     uniqueFieldName(owner, fieldName+"Id", ""),
				RelationField: fieldName,
				RelationType:  ownerType,
			})
		}
	}
}

// isUniqueKey reports whether columns form a unique key of entity
func isUniqueKey(entity *Entity, columns []string) bool {
	if len(columns) == 1 {
		for _, column := range entity.Columns {
			if column.TscName == columns[0] && column.Options.Unique {
				return true
			}
		}
	}

	for _, index := range entity.Indices {
		if !index.Options.Unique && !index.Primary {
			continue
		}
		if len(index.Columns) == len(columns) && containsAll(index.Columns, columns) {
			return true
		}
	}
	return false
}

func containsAll(haystack, needles []string) bool {
	for _, needle := range needles {
		found := false
		for _, v := range haystack {
			if v == needle {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// uniqueFieldName returns base, or base with a numeric suffix, so that it does not clash
// with a column or relation field of entity. The column named replaces does not count.
func uniqueFieldName(entity *Entity, base, replaces string) string {
	taken := func(name string) bool {
		for _, column := range entity.Columns {
			if column.TscName == replaces {
				continue
			}
			if strings.EqualFold(column.TscName, name) {
				return true
			}
		}
		for _, relation := range entity.Relations {
			if strings.EqualFold(relation.FieldName, name) {
				return true
			}
		}
		for _, relationID := range entity.RelationIDs {
			if strings.EqualFold(relationID.FieldName, name) {
				return true
			}
		}
		return false
	}

	name := base
	for i := 2; taken(name); i++ {
		name = fmt.Sprintf("%s_%d", base, i)
	}
	return name
}
