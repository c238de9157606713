package providers

import (
	"log/slog"
	"regexp"
	"strings"
)

// oracleTypes maps canonical Oracle type names to logical types
var oracleTypes = map[string]LogicalType{
	"char":                           TypeString,
	"nchar":                          TypeString,
	"nvarchar2":                      TypeString,
	"varchar2":                       TypeString,
	"long":                           TypeString,
	"clob":                           TypeString,
	"nclob":                          TypeString,
	"interval year to month":         TypeString,
	"interval day to second":         TypeString,
	"raw":                            TypeBinary,
	"long raw":                       TypeBinary,
	"bfile":                          TypeBinary,
	"blob":                           TypeBinary,
	"number":                         TypeNumber,
	"numeric":                        TypeNumber,
	"float":                          TypeNumber,
	"dec":                            TypeNumber,
	"decimal":                        TypeNumber,
	"integer":                        TypeNumber,
	"int":                            TypeNumber,
	"smallint":                       TypeNumber,
	"real":                           TypeNumber,
	"double precision":               TypeNumber,
	"rowid":                          TypeNumber,
	"urowid":                         TypeNumber,
	"date":                           TypeDate,
	"timestamp":                      TypeDate,
	"timestamp with time zone":       TypeDate,
	"timestamp with local time zone": TypeDate,
}

// columnTypesWithLength lists the type names whose length option is meaningful
var columnTypesWithLength = setOf(
	"character varying", "varying character", "char varying", "nvarchar",
	"national varchar", "character", "native character", "varchar", "char",
	"nchar", "national char", "varchar2", "nvarchar2", "raw", "binary",
	"varbinary", "string",
)

// columnTypesWithPrecision lists the type names whose precision and scale options are meaningful
var columnTypesWithPrecision = setOf(
	"float", "double", "dec", "decimal", "numeric", "real", "double precision",
	"number", "datetime", "datetime2", "datetimeoffset", "time",
	"time with time zone", "time without time zone", "timestamp",
	"timestamp without time zone", "timestamp with time zone",
	"timestamp with local time zone",
)

var (
	sizeSuffix = regexp.MustCompile(`\(\s*\d+\s*(,\s*\d+\s*)?\)`)
	whitespace = regexp.MustCompile(`\s+`)
)

func setOf(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// CanonicalTypeName lower-cases a vendor type name and strips its length/precision suffixes,
// e.g. "TIMESTAMP(6) WITH TIME ZONE" -> "timestamp with time zone"
func CanonicalTypeName(vendorType string) string {
	name := sizeSuffix.ReplaceAllString(strings.ToLower(vendorType), "")
	return strings.TrimSpace(whitespace.ReplaceAllString(name, " "))
}

// HasLength reports whether canonical type name carries a length option
func HasLength(canonical string) bool {
	_, ok := columnTypesWithLength[canonical]
	return ok
}

// HasPrecision reports whether canonical type name carries precision and scale options
func HasPrecision(canonical string) bool {
	_, ok := columnTypesWithPrecision[canonical]
	return ok
}

// TypeMapper turns vendor column types into logical types
type TypeMapper struct {
	types    map[string]LogicalType
	reporter Reporter
}

// NewTypeMapper creates a mapper over the Oracle type table.
// If reporter is nil, the default slog logger is used.
func NewTypeMapper(reporter Reporter) *TypeMapper {
	if reporter == nil {
		reporter = slog.Default()
	}
	return &TypeMapper{
		types:    oracleTypes,
		reporter: reporter,
	}
}

// Canonicalize returns the logical type and canonical name of vendorType.
// Unknown types map to TypeUnknown and are reported once per call.
func (m *TypeMapper) Canonicalize(vendorType string) (LogicalType, string) {
	canonical := CanonicalTypeName(vendorType)
	logical, ok := m.types[canonical]
	if !ok {
		m.reporter.Warn("unknown column type", "type", vendorType)
		return TypeUnknown, canonical
	}
	return logical, canonical
}

// Lookup is Canonicalize without the warning
func (m *TypeMapper) Lookup(vendorType string) (LogicalType, bool) {
	logical, ok := m.types[CanonicalTypeName(vendorType)]
	if !ok {
		return TypeUnknown, false
	}
	return logical, true
}
