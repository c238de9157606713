package providers

import (
	"encoding/json"
)

// LogicalType is the cross-dialect category a vendor column type maps to
type LogicalType string

const (
	TypeString  LogicalType = "string"
	TypeNumber  LogicalType = "number"
	TypeDate    LogicalType = "date"
	TypeBinary  LogicalType = "binary"
	TypeUnknown LogicalType = "unknown"
)

// Entity represents a database table with its columns, indices and relations
type Entity struct {
	Name        string       `json:"name" yaml:"name"`
	Schema      string       `json:"schema,omitempty" yaml:"schema,omitempty"`
	Columns     []Column     `json:"columns" yaml:"columns"`
	Indices     []Index      `json:"indices" yaml:"indices"`
	Relations   []Relation   `json:"relations" yaml:"relations"`
	RelationIDs []RelationID `json:"relationIds" yaml:"relationIds"`
}

// Column represents a database column
type Column struct {
	TscName   string        `json:"tscName" yaml:"tscName"`
	TscType   LogicalType   `json:"tscType" yaml:"tscType"`
	Type      string        `json:"type" yaml:"type"`
	Default   DefaultValue  `json:"default" yaml:"default"`
	Generated *bool         `json:"generated,omitempty" yaml:"generated,omitempty"`
	Options   ColumnOptions `json:"options" yaml:"options"`
}

// ColumnOptions holds the per-column options; numeric fields are nil when not applicable
type ColumnOptions struct {
	Name      string `json:"name" yaml:"name"`
	Nullable  bool   `json:"nullable,omitempty" yaml:"nullable,omitempty"`
	Unique    bool   `json:"unique,omitempty" yaml:"unique,omitempty"`
	Length    *int   `json:"length,omitempty" yaml:"length,omitempty"`
	Precision *int   `json:"precision,omitempty" yaml:"precision,omitempty"`
	Scale     *int   `json:"scale,omitempty" yaml:"scale,omitempty"`
	// CharLength is the declared length in characters; Length is in bytes
	CharLength *int `json:"charLength,omitempty" yaml:"charLength,omitempty"`
}

// Index represents a database index
type Index struct {
	Name    string       `json:"name" yaml:"name"`
	Columns []string     `json:"columns" yaml:"columns"`
	Primary bool         `json:"primary,omitempty" yaml:"primary,omitempty"`
	Options IndexOptions `json:"options" yaml:"options"`
}

type IndexOptions struct {
	Unique bool `json:"unique,omitempty" yaml:"unique,omitempty"`
}

// RelationType is the cardinality of one side of a relation
type RelationType string

const (
	OneToOne  RelationType = "OneToOne"
	ManyToOne RelationType = "ManyToOne"
	OneToMany RelationType = "OneToMany"
)

// Relation is a finalized relation attached to one side of a foreign key
type Relation struct {
	FieldName    string       `json:"fieldName" yaml:"fieldName"`
	RelatedField string       `json:"relatedField" yaml:"relatedField"`
	RelatedTable string       `json:"relatedTable" yaml:"relatedTable"`
	RelationType RelationType `json:"relationType" yaml:"relationType"`
	JoinColumns  []JoinColumn `json:"joinColumns,omitempty" yaml:"joinColumns,omitempty"`
	OnDelete     string       `json:"onDelete,omitempty" yaml:"onDelete,omitempty"`
}

// JoinColumn pairs an owner column with the referenced column
type JoinColumn struct {
	Name                 string `json:"name" yaml:"name"`
	ReferencedColumnName string `json:"referencedColumnName" yaml:"referencedColumnName"`
}

// RelationID exposes the raw key of a single-column owner relation
type RelationID struct {
	FieldName     string       `json:"fieldName" yaml:"fieldName"`
	RelationField string       `json:"relationField" yaml:"relationField"`
	RelationType  RelationType `json:"relationType" yaml:"relationType"`
}

// RelationInternal links two entities before cardinality is known.
// OwnerColumns[i] references RelatedColumns[i].
type RelationInternal struct {
	ConstraintName string
	OwnerTable     *Entity
	RelatedTable   *Entity
	OwnerColumns   []string
	RelatedColumns []string
	DeleteRule     string
}

// DefaultValue is either absent or a literal that code generation emits lazily
type DefaultValue struct {
	literal string
	present bool
}

// Literal wraps s as a deferred default value
func Literal(s string) DefaultValue {
	return DefaultValue{literal: s, present: true}
}

// Get returns the literal and whether one is present
func (d DefaultValue) Get() (string, bool) {
	return d.literal, d.present
}

func (d DefaultValue) IsAbsent() bool {
	return !d.present
}

func (d DefaultValue) MarshalJSON() ([]byte, error) {
	if !d.present {
		return []byte("null"), nil
	}
	return json.Marshal(d.literal)
}

func (d DefaultValue) MarshalYAML() (interface{}, error) {
	if !d.present {
		return nil, nil
	}
	return d.literal, nil
}

// FindEntity returns the entity with the exact given name
func FindEntity(entities []*Entity, name string) *Entity {
	for _, entity := range entities {
		if entity.Name == name {
			return entity
		}
	}
	return nil
}
