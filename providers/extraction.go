package providers

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Introspector reads the Oracle catalog of the connected user and assembles entities
type Introspector struct {
	db       Querier
	reporter Reporter
	mapper   *TypeMapper
}

// NewIntrospector creates an introspector. If reporter is nil, the default slog logger is used.
func NewIntrospector(db Querier, reporter Reporter) *Introspector {
	if reporter == nil {
		reporter = slog.Default()
	}
	return &Introspector{
		db:       db,
		reporter: reporter,
		mapper:   NewTypeMapper(reporter),
	}
}

// ExtractEntities runs the four catalog queries and returns the assembled schema graph
func (i *Introspector) ExtractEntities(ctx context.Context) ([]*Entity, error) {
	slog.Debug("starting schema extraction")
	entities, err := i.GetAllTables(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("found database tables", "count", len(entities))

	var (
		columns   []ColumnRow
		indexes   []IndexRow
		relations []RelationRow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		columns, err = i.fetchColumns(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		indexes, err = i.fetchIndexes(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		relations, err = i.fetchRelations(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	AssembleColumns(entities, columns, i.mapper)
	GroupIndexes(entities, indexes)
	linked := LinkRelations(entities, relations, i.reporter)
	FinalizeRelations(linked)

	slog.Info("schema extraction completed",
		"tables", len(entities),
		"columns", len(columns),
		"indexColumns", len(indexes),
		"relations", len(linked))
	return entities, nil
}

// GetAllTables seeds one empty entity per table owned by the current user
func (i *Introspector) GetAllTables(ctx context.Context) ([]*Entity, error) {
	rows, err := runQuery(ctx, i.db, tablesQuery, bindTableRow)
	if err != nil {
		return nil, fmt.Errorf("failed to get tables: %w", err)
	}

	entities := make([]*Entity, 0, len(rows))
	for _, row := range rows {
		entities = append(entities, &Entity{
			Name:   row.TableName,
			Schema: row.TableSchema.String,
		})
	}
	return entities, nil
}

// GetColumnsFromEntity fetches column metadata and appends it to entities
func (i *Introspector) GetColumnsFromEntity(ctx context.Context, entities []*Entity) error {
	rows, err := i.fetchColumns(ctx)
	if err != nil {
		return err
	}
	AssembleColumns(entities, rows, i.mapper)
	return nil
}

// GetIndexesFromEntity fetches index metadata and appends it to entities
func (i *Introspector) GetIndexesFromEntity(ctx context.Context, entities []*Entity) error {
	rows, err := i.fetchIndexes(ctx)
	if err != nil {
		return err
	}
	GroupIndexes(entities, rows)
	return nil
}

// GetRelations fetches foreign keys and attaches the resolved relations to entities.
// Columns and indices should already be assembled so cardinality can be decided.
func (i *Introspector) GetRelations(ctx context.Context, entities []*Entity) error {
	rows, err := i.fetchRelations(ctx)
	if err != nil {
		return err
	}
	FinalizeRelations(LinkRelations(entities, rows, i.reporter))
	return nil
}

// CheckIfDBExists reports whether a database user (schema) named name exists
func (i *Introspector) CheckIfDBExists(ctx context.Context, name string) (bool, error) {
	type countRow struct{ Count int64 }
	bind := func(row *countRow, column string) any {
		if column == "CNT" {
			return &row.Count
		}
		return nil
	}

	username := cases.Upper(language.Und).String(name)
	rows, err := runQuery(ctx, i.db, userExistsQuery, bind, username)
	if err != nil {
		return false, fmt.Errorf("failed to check user %s: %w", username, err)
	}
	if len(rows) == 0 {
		return false, nil
	}
	return rows[0].Count > 0, nil
}

func (i *Introspector) fetchColumns(ctx context.Context) ([]ColumnRow, error) {
	rows, err := runQuery(ctx, i.db, columnsQuery, bindColumnRow)
	if err != nil {
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}
	slog.Debug("fetched column metadata", "rows", len(rows))
	return rows, nil
}

func (i *Introspector) fetchIndexes(ctx context.Context) ([]IndexRow, error) {
	rows, err := runQuery(ctx, i.db, indexesQuery, bindIndexRow)
	if err != nil {
		return nil, fmt.Errorf("failed to get indexes: %w", err)
	}
	slog.Debug("fetched index metadata", "rows", len(rows))
	return rows, nil
}

func (i *Introspector) fetchRelations(ctx context.Context) ([]RelationRow, error) {
	rows, err := runQuery(ctx, i.db, relationsQuery, bindRelationRow)
	if err != nil {
		return nil, fmt.Errorf("failed to get relations: %w", err)
	}
	slog.Debug("fetched foreign key metadata", "rows", len(rows))
	return rows, nil
}
