// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package fake

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-platform/atlanctl/internal/destination"
	"github.com/mia-platform/atlanctl/internal/typedef"
)

func TestFakeDestination(t *testing.T) {
	t.Parallel()

	fakeDestination := NewFakeDestination(t)
	assert.Empty(t, fakeDestination.Created)
	assert.Empty(t, fakeDestination.Updated)

	_, err := fakeDestination.GetEnumDef(t.Context(), "Tier")
	assert.ErrorIs(t, err, destination.ErrNotFound)

	created := &typedef.TypeDefs{EnumDefs: []*typedef.EnumDef{typedef.NewEnumDef("Tier", []string{"Gold"})}}
	require.NoError(t, fakeDestination.CreateTypeDefs(t.Context(), created))
	assert.Equal(t, []*typedef.TypeDefs{created}, fakeDestination.Created)
	assert.ErrorContains(t, fakeDestination.CreateTypeDefs(t.Context(), created), "already exists")

	enumDef, err := fakeDestination.GetEnumDef(t.Context(), "Tier")
	require.NoError(t, err)
	assert.Equal(t, []string{"Gold"}, enumDef.Values())

	updated := &typedef.TypeDefs{EnumDefs: []*typedef.EnumDef{typedef.NewEnumDef("Tier", []string{"Gold", "Silver"})}}
	require.NoError(t, fakeDestination.UpdateTypeDefs(t.Context(), updated))
	assert.Equal(t, []*typedef.TypeDefs{updated}, fakeDestination.Updated)

	customMetadata := &typedef.TypeDefs{CustomMetadataDefs: []*typedef.CustomMetadataDef{typedef.NewCustomMetadataDef("Governance", nil)}}
	require.NoError(t, fakeDestination.CreateTypeDefs(t.Context(), customMetadata))
	def, err := fakeDestination.GetCustomMetadataDef(t.Context(), "Governance")
	require.NoError(t, err)
	assert.Same(t, customMetadata.CustomMetadataDefs[0], def)

	writeErr := errors.New("forbidden")
	fakeDestination.WriteErrors["Critical"] = writeErr
	tags := &typedef.TypeDefs{TagDefs: []*typedef.TagDef{typedef.NewColorTag("Critical", "", typedef.TagColorRed)}}
	assert.ErrorIs(t, fakeDestination.CreateTypeDefs(t.Context(), tags), writeErr)

	fakeDestination.SearchResults["Connection"] = []string{"default/snowflake/1"}
	names, err := fakeDestination.SearchQualifiedNames(t.Context(), "Connection")
	require.NoError(t, err)
	assert.Equal(t, []string{"default/snowflake/1"}, names)
	assert.Equal(t, []string{"Connection"}, fakeDestination.Searches)
}
