// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package destination

import (
	"context"
	"errors"

	"github.com/mia-platform/atlanctl/internal/typedef"
)

// ErrNotFound is returned by the lookup operations when the definition does not exist.
var ErrNotFound = errors.New("definition not found")

// Destination reads and writes type definitions of a catalog tenant.
type Destination interface {
	// GetCustomMetadataDef returns the custom metadata definition with the given display name.
	GetCustomMetadataDef(ctx context.Context, displayName string) (*typedef.CustomMetadataDef, error)
	// GetEnumDef returns the enumeration with the given name.
	GetEnumDef(ctx context.Context, name string) (*typedef.EnumDef, error)
	// CreateTypeDefs creates every definition in typeDefs.
	CreateTypeDefs(ctx context.Context, typeDefs *typedef.TypeDefs) error
	// UpdateTypeDefs overwrites every definition in typeDefs.
	UpdateTypeDefs(ctx context.Context, typeDefs *typedef.TypeDefs) error
	// SearchQualifiedNames returns the qualified names of the active assets of typeName.
	SearchQualifiedNames(ctx context.Context, typeName string) ([]string, error)
}
