package main

import (
	"context"

	"github.com/alc6/ora2schema/providers"
)

// TypeDescription is what the type table knows about a vendor column type
type TypeDescription struct {
	VendorType    string                `json:"vendorType"`
	CanonicalName string                `json:"canonicalName"`
	LogicalType   providers.LogicalType `json:"logicalType"`
	Known         bool                  `json:"known"`
	HasLength     bool                  `json:"hasLength"`
	HasPrecision  bool                  `json:"hasPrecision"`
}

func DescribeType(vendorType string) TypeDescription {
	canonical := providers.CanonicalTypeName(vendorType)
	logical, known := providers.NewTypeMapper(nil).Lookup(vendorType)
	return TypeDescription{
		VendorType:    vendorType,
		CanonicalName: canonical,
		LogicalType:   logical,
		Known:         known,
		HasLength:     providers.HasLength(canonical),
		HasPrecision:  providers.HasPrecision(canonical),
	}
}

// SchemaExists reports whether an Oracle user (and so a schema) named name exists
func SchemaExists(ctx context.Context, db providers.Querier, name string) (bool, error) {
	return providers.NewIntrospector(db, nil).CheckIfDBExists(ctx, name)
}
