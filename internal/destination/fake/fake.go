// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package fake

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/mia-platform/atlanctl/internal/destination"
	"github.com/mia-platform/atlanctl/internal/typedef"
)

var _ destination.Destination = &FakeDestination{}

// FakeDestination is an in-memory catalog. Created definitions become visible to
// the following lookups, and creating a definition twice fails like the real service.
type FakeDestination struct {
	tb testing.TB

	CustomMetadataDefs map[string]*typedef.CustomMetadataDef
	EnumDefs           map[string]*typedef.EnumDef
	TagDefs            map[string]*typedef.TagDef
	SearchResults      map[string][]string

	// WriteErrors makes create and update fail for payloads containing the keyed name.
	WriteErrors map[string]error
	LookupError error
	SearchError error

	Created  []*typedef.TypeDefs
	Updated  []*typedef.TypeDefs
	Searches []string

	lock sync.Mutex
}

func NewFakeDestination(tb testing.TB) *FakeDestination {
	tb.Helper()
	return &FakeDestination{
		tb:                 tb,
		CustomMetadataDefs: make(map[string]*typedef.CustomMetadataDef),
		EnumDefs:           make(map[string]*typedef.EnumDef),
		TagDefs:            make(map[string]*typedef.TagDef),
		SearchResults:      make(map[string][]string),
		WriteErrors:        make(map[string]error),
	}
}

func (f *FakeDestination) GetCustomMetadataDef(_ context.Context, displayName string) (*typedef.CustomMetadataDef, error) {
	f.tb.Helper()
	f.lock.Lock()
	defer f.lock.Unlock()

	if f.LookupError != nil {
		return nil, f.LookupError
	}

	def, found := f.CustomMetadataDefs[displayName]
	if !found {
		return nil, fmt.Errorf("custom metadata %q: %w", displayName, destination.ErrNotFound)
	}

	return def, nil
}

func (f *FakeDestination) GetEnumDef(_ context.Context, name string) (*typedef.EnumDef, error) {
	f.tb.Helper()
	f.lock.Lock()
	defer f.lock.Unlock()

	if f.LookupError != nil {
		return nil, f.LookupError
	}

	def, found := f.EnumDefs[name]
	if !found {
		return nil, fmt.Errorf("enumeration %q: %w", name, destination.ErrNotFound)
	}

	return def, nil
}

func (f *FakeDestination) CreateTypeDefs(_ context.Context, typeDefs *typedef.TypeDefs) error {
	f.tb.Helper()
	f.lock.Lock()
	defer f.lock.Unlock()

	if err := f.writeError(typeDefs); err != nil {
		return err
	}

	for _, def := range typeDefs.TagDefs {
		if _, found := f.TagDefs[def.DisplayName]; found {
			return fmt.Errorf("tag %q already exists", def.DisplayName)
		}
	}
	for _, def := range typeDefs.CustomMetadataDefs {
		if _, found := f.CustomMetadataDefs[def.DisplayName]; found {
			return fmt.Errorf("custom metadata %q already exists", def.DisplayName)
		}
	}
	for _, def := range typeDefs.EnumDefs {
		if _, found := f.EnumDefs[def.Name]; found {
			return fmt.Errorf("enumeration %q already exists", def.Name)
		}
	}

	f.Created = append(f.Created, typeDefs)
	f.store(typeDefs)
	return nil
}

func (f *FakeDestination) UpdateTypeDefs(_ context.Context, typeDefs *typedef.TypeDefs) error {
	f.tb.Helper()
	f.lock.Lock()
	defer f.lock.Unlock()

	if err := f.writeError(typeDefs); err != nil {
		return err
	}

	f.Updated = append(f.Updated, typeDefs)
	f.store(typeDefs)
	return nil
}

func (f *FakeDestination) SearchQualifiedNames(_ context.Context, typeName string) ([]string, error) {
	f.tb.Helper()
	f.lock.Lock()
	defer f.lock.Unlock()

	f.Searches = append(f.Searches, typeName)
	if f.SearchError != nil {
		return nil, f.SearchError
	}

	return f.SearchResults[typeName], nil
}

func (f *FakeDestination) writeError(typeDefs *typedef.TypeDefs) error {
	for _, name := range typeDefs.Names() {
		if err, found := f.WriteErrors[name]; found {
			return err
		}
	}

	return nil
}

func (f *FakeDestination) store(typeDefs *typedef.TypeDefs) {
	for _, def := range typeDefs.TagDefs {
		f.TagDefs[def.DisplayName] = def
	}
	for _, def := range typeDefs.CustomMetadataDefs {
		f.CustomMetadataDefs[def.DisplayName] = def
	}
	for _, def := range typeDefs.EnumDefs {
		f.EnumDefs[def.Name] = def
	}
}
