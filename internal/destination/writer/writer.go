// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package writer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/mia-platform/atlanctl/internal/destination"
	"github.com/mia-platform/atlanctl/internal/typedef"
)

var _ destination.Destination = &writerDestination{}

type writerDestination struct {
	writer io.Writer

	lock sync.Mutex
}

func NewDestination(w io.Writer) destination.Destination {
	return &writerDestination{
		writer: w,
	}
}

// GetCustomMetadataDef always reports the definition as missing.
func (d *writerDestination) GetCustomMetadataDef(_ context.Context, displayName string) (*typedef.CustomMetadataDef, error) {
	return nil, fmt.Errorf("custom metadata %q: %w", displayName, destination.ErrNotFound)
}

// GetEnumDef always reports the enumeration as missing.
func (d *writerDestination) GetEnumDef(_ context.Context, name string) (*typedef.EnumDef, error) {
	return nil, fmt.Errorf("enumeration %q: %w", name, destination.ErrNotFound)
}

func (d *writerDestination) CreateTypeDefs(_ context.Context, typeDefs *typedef.TypeDefs) error {
	return d.write("Create", typeDefs)
}

func (d *writerDestination) UpdateTypeDefs(_ context.Context, typeDefs *typedef.TypeDefs) error {
	return d.write("Update", typeDefs)
}

// SearchQualifiedNames always returns an empty result.
func (d *writerDestination) SearchQualifiedNames(_ context.Context, _ string) ([]string, error) {
	return []string{}, nil
}

func (d *writerDestination) write(operation string, typeDefs *typedef.TypeDefs) error {
	builder := new(strings.Builder)

	builder.WriteString(operation + " type definitions:\n")
	builder.WriteString("\tNames: " + strings.Join(typeDefs.Names(), ", ") + "\n")
	builder.WriteString("\tSpec: ")

	encoder := json.NewEncoder(builder)
	encoder.SetIndent("\t", "\t")
	if err := encoder.Encode(typeDefs); err != nil {
		return err
	}
	builder.WriteString("\n")

	d.lock.Lock()
	defer d.lock.Unlock()
	_, err := fmt.Fprint(d.writer, builder.String())
	return err
}
