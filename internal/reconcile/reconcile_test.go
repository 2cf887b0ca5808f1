// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-platform/atlanctl/internal/config"
	"github.com/mia-platform/atlanctl/internal/typedef"
)

type countingSearcher struct {
	results map[string][]string
	err     error
	calls   []string
}

func (s *countingSearcher) SearchQualifiedNames(_ context.Context, typeName string) ([]string, error) {
	s.calls = append(s.calls, typeName)
	if s.err != nil {
		return nil, s.err
	}

	return s.results[typeName], nil
}

func attributeNames(attributes []*typedef.AttributeDef) []string {
	names := make([]string, 0, len(attributes))
	for _, attribute := range attributes {
		names = append(names, attribute.DisplayName)
	}

	return names
}

func existingAttribute(name string, assetTypes ...string) *typedef.AttributeDef {
	return typedef.NewAttributeDef(name, typedef.PrimitiveString, "", false, typedef.Scopes{AssetTypes: assetTypes})
}

func TestReconcileNewDefinition(t *testing.T) {
	t.Parallel()

	desired := config.Attributes{
		{DisplayName: "Owner", Type: "Users", MultiValue: true, Description: "who owns it", ApplicableAssetTypes: []string{"View", "Table"}},
		{DisplayName: "Criticality", Type: "Enum", Options: "Criticality", ApplicableAssetTypes: []string{All}},
		{DisplayName: "Documentation", Type: "URL"},
	}

	searcher := &countingSearcher{}
	attributes, err := New(searcher).Reconcile(t.Context(), "Data Governance", nil, desired)
	require.NoError(t, err)
	require.Equal(t, []string{"Owner", "Criticality", "Documentation"}, attributeNames(attributes))
	assert.Empty(t, searcher.calls)

	owner := attributes[0]
	assert.Equal(t, "array<string>", owner.TypeName)
	assert.Equal(t, "who owns it", owner.Description)
	assert.Equal(t, "users", owner.Options.CustomType)
	assert.Equal(t, typedef.StringSet{"Table", "View"}, owner.Options.ApplicableAssetTypes)
	assert.Equal(t, typedef.StringSet{}, owner.Options.ApplicableConnections)

	criticality := attributes[1]
	assert.Equal(t, "Criticality", criticality.TypeName)
	assert.True(t, bool(criticality.Options.IsEnum))
	assert.Equal(t, AssetTypes(), criticality.Options.ApplicableAssetTypes)

	documentation := attributes[2]
	assert.Equal(t, "string", documentation.TypeName)
	assert.Equal(t, "url", documentation.Options.CustomType)
	assert.Empty(t, documentation.Options.ApplicableAssetTypes)
}

func TestReconcileExistingDefinition(t *testing.T) {
	t.Parallel()

	attributeA := existingAttribute("A", "Table")
	existing := &typedef.CustomMetadataDef{
		DisplayName:   "Governance",
		AttributeDefs: []*typedef.AttributeDef{attributeA, existingAttribute("B", "View")},
	}
	desired := config.Attributes{
		{DisplayName: "B", Type: "Text", ApplicableAssetTypes: []string{"Column"}},
		{DisplayName: "C", Type: "Int", ApplicableDomains: []string{All}},
	}

	attributes, err := New(&countingSearcher{}).Reconcile(t.Context(), "Governance", existing, desired)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, attributeNames(attributes))

	assert.Same(t, attributeA, attributes[0])
	assert.Equal(t, typedef.StringSet{"Table"}, attributes[0].Options.ApplicableAssetTypes)
	assert.Equal(t, typedef.StringSet{"Column"}, attributes[1].Options.ApplicableAssetTypes)
	assert.Equal(t, "string", attributes[1].TypeName)
	assert.Equal(t, typedef.StringSet{"*/super"}, attributes[2].Options.ApplicableDomains)
	assert.Equal(t, "int", attributes[2].TypeName)
}

func TestReconcileOneAttributePerName(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		existing      []string
		desired       []string
		expectedNames []string
	}{
		"no existing definition": {
			desired:       []string{"x", "y"},
			expectedNames: []string{"x", "y"},
		},
		"disjoint": {
			existing:      []string{"a"},
			desired:       []string{"b", "c"},
			expectedNames: []string{"a", "b", "c"},
		},
		"overlapping": {
			existing:      []string{"a", "b", "c"},
			desired:       []string{"c", "d", "a"},
			expectedNames: []string{"a", "b", "c", "d"},
		},
		"empty desired": {
			existing:      []string{"a", "b"},
			expectedNames: []string{"a", "b"},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var existing *typedef.CustomMetadataDef
			if tc.existing != nil {
				existing = &typedef.CustomMetadataDef{}
				for _, attributeName := range tc.existing {
					existing.AttributeDefs = append(existing.AttributeDefs, existingAttribute(attributeName))
				}
			}

			desired := config.Attributes{}
			for _, attributeName := range tc.desired {
				desired = append(desired, &config.AttributeConfig{DisplayName: attributeName, Type: "Boolean"})
			}

			attributes, err := New(nil).Reconcile(t.Context(), name, existing, desired)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedNames, attributeNames(attributes))
		})
	}
}

func TestReconcileIsIdempotent(t *testing.T) {
	t.Parallel()

	desired := config.Attributes{
		{DisplayName: "A", Type: "Text", ApplicableAssetTypes: []string{All}, ApplicableConnections: []string{All}},
		{DisplayName: "B", Type: "Date", ApplicableGlossaryTypes: []string{"AtlasGlossaryTerm"}},
	}
	searcher := &countingSearcher{results: map[string][]string{
		ConnectionTypeName: {"default/snowflake/1", "default/bigquery/2"},
	}}
	reconciler := New(searcher)

	first, err := reconciler.Reconcile(t.Context(), "Governance", nil, desired)
	require.NoError(t, err)

	firstScopes := make([]typedef.Scopes, 0, len(first))
	for _, attribute := range first {
		firstScopes = append(firstScopes, attribute.Scopes())
	}

	second, err := reconciler.Reconcile(t.Context(), "Governance", &typedef.CustomMetadataDef{AttributeDefs: first}, desired)
	require.NoError(t, err)
	require.Equal(t, attributeNames(first), attributeNames(second))
	for i, attribute := range second {
		assert.Equal(t, firstScopes[i], attribute.Scopes())
	}
}

func TestScopeExpansion(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		assetTypes []string
		expected   typedef.StringSet
	}{
		"all": {
			assetTypes: []string{All},
			expected:   AssetTypes(),
		},
		"literal": {
			assetTypes: []string{"Table", "View"},
			expected:   typedef.StringSet{"Table", "View"},
		},
		"literal with duplicates": {
			assetTypes: []string{"View", "Table", "View"},
			expected:   typedef.StringSet{"Table", "View"},
		},
		"all mixed with literal is literal": {
			assetTypes: []string{All, "Table"},
			expected:   typedef.StringSet{"Table", All},
		},
		"empty": {
			assetTypes: []string{},
			expected:   typedef.StringSet{},
		},
		"absent": {
			expected: typedef.StringSet{},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			desired := config.Attributes{{DisplayName: "A", Type: "Text", ApplicableAssetTypes: tc.assetTypes}}
			attributes, err := New(nil).Reconcile(t.Context(), "Governance", nil, desired)
			require.NoError(t, err)
			require.Len(t, attributes, 1)
			assert.Equal(t, tc.expected, attributes[0].Options.ApplicableAssetTypes)
		})
	}
}

func TestStaticUniverses(t *testing.T) {
	t.Parallel()

	desired := config.Attributes{{
		DisplayName:               "A",
		Type:                      "Text",
		ApplicableGlossaryTypes:   []string{All},
		ApplicableDomains:         []string{All},
		ApplicableDomainTypes:     []string{All},
		ApplicableOtherAssetTypes: []string{All},
	}}

	attributes, err := New(nil).Reconcile(t.Context(), "Governance", nil, desired)
	require.NoError(t, err)

	scopes := attributes[0].Scopes()
	assert.Equal(t, typedef.StringSet{"AtlasGlossary", "AtlasGlossaryCategory", "AtlasGlossaryTerm"}, scopes.GlossaryTypes)
	assert.Equal(t, typedef.StringSet{"*/super"}, scopes.Domains)
	assert.Equal(t, typedef.StringSet{"DataDomain", "DataProduct"}, scopes.DomainTypes)
	assert.Equal(t, typedef.StringSet{"File"}, scopes.OtherAssetTypes)

	universe := AssetTypes()
	assert.Len(t, universe, 136)
	assert.True(t, universe.Contains("Table"))
	assert.True(t, universe.Contains("ADLSAccount"))

	universe[0] = "changed"
	assert.False(t, AssetTypes().Contains("changed"))
}

func TestReconcileInvalidConfiguration(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		desired        config.Attributes
		errorSubstring string
	}{
		"unknown type": {
			desired: config.Attributes{
				{DisplayName: "Valid", Type: "Text", ApplicableConnections: []string{All}},
				{DisplayName: "Broken", Type: "unknown", ApplicableConnections: []string{All}},
			},
			errorSubstring: "attribute 'Broken': unknown type 'unknown'",
		},
		"missing name": {
			desired:        config.Attributes{{Type: "Text"}},
			errorSubstring: "attribute with empty name",
		},
		"enum without options": {
			desired:        config.Attributes{{DisplayName: "Level", Type: "Enum"}},
			errorSubstring: "requires the 'options' enumeration name",
		},
		"duplicate name": {
			desired: config.Attributes{
				{DisplayName: "A", Type: "Text"},
				{DisplayName: "A", Type: "Int"},
			},
			errorSubstring: "duplicate attribute 'A'",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			existing := &typedef.CustomMetadataDef{AttributeDefs: []*typedef.AttributeDef{existingAttribute("Valid", "Table")}}
			searcher := &countingSearcher{}

			attributes, err := New(searcher).Reconcile(t.Context(), "Governance", existing, tc.desired)
			var configErr *config.ConfigError
			require.ErrorAs(t, err, &configErr)
			assert.Equal(t, "Governance", configErr.Item)
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
			assert.ErrorContains(t, err, tc.errorSubstring)
			assert.Nil(t, attributes)
			assert.Empty(t, searcher.calls)
			assert.Equal(t, typedef.StringSet{"Table"}, existing.AttributeDefs[0].Options.ApplicableAssetTypes)
		})
	}
}

func TestLiveScopeLookup(t *testing.T) {
	t.Parallel()

	t.Run("all connections uses exactly one lookup", func(t *testing.T) {
		t.Parallel()

		connections := []string{"default/snowflake/1700000000", "default/bigquery/1700000001"}
		searcher := &countingSearcher{results: map[string][]string{ConnectionTypeName: connections}}
		desired := config.Attributes{{DisplayName: "A", Type: "Text", ApplicableConnections: []string{All}}}

		attributes, err := New(searcher).Reconcile(t.Context(), "Governance", nil, desired)
		require.NoError(t, err)
		assert.Equal(t, []string{ConnectionTypeName}, searcher.calls)
		assert.Equal(t, typedef.NewStringSet(connections...), attributes[0].Options.ApplicableConnections)
	})

	t.Run("all glossaries searches glossaries", func(t *testing.T) {
		t.Parallel()

		searcher := &countingSearcher{results: map[string][]string{GlossaryTypeName: {"glossary-1"}}}
		desired := config.Attributes{{DisplayName: "A", Type: "Text", ApplicableGlossaries: []string{All}}}

		attributes, err := New(searcher).Reconcile(t.Context(), "Governance", nil, desired)
		require.NoError(t, err)
		assert.Equal(t, []string{GlossaryTypeName}, searcher.calls)
		assert.Equal(t, typedef.StringSet{"glossary-1"}, attributes[0].Options.ApplicableGlossaries)
	})

	t.Run("literal connections do not search", func(t *testing.T) {
		t.Parallel()

		searcher := &countingSearcher{}
		desired := config.Attributes{{DisplayName: "A", Type: "Text", ApplicableConnections: []string{"default/snowflake/1"}}}

		attributes, err := New(searcher).Reconcile(t.Context(), "Governance", nil, desired)
		require.NoError(t, err)
		assert.Empty(t, searcher.calls)
		assert.Equal(t, typedef.StringSet{"default/snowflake/1"}, attributes[0].Options.ApplicableConnections)
	})

	t.Run("lookup failure", func(t *testing.T) {
		t.Parallel()

		lookupErr := errors.New("service unavailable")
		searcher := &countingSearcher{err: lookupErr}
		existing := &typedef.CustomMetadataDef{AttributeDefs: []*typedef.AttributeDef{existingAttribute("A")}}
		desired := config.Attributes{{DisplayName: "A", Type: "Text", ApplicableConnections: []string{All}}}

		attributes, err := New(searcher).Reconcile(t.Context(), "Governance", existing, desired)
		assert.ErrorIs(t, err, ErrScopeLookup)
		assert.ErrorIs(t, err, lookupErr)
		assert.Nil(t, attributes)
	})

	t.Run("missing searcher", func(t *testing.T) {
		t.Parallel()

		desired := config.Attributes{{DisplayName: "A", Type: "Text", ApplicableGlossaries: []string{All}}}
		_, err := New(nil).Reconcile(t.Context(), "Governance", nil, desired)
		assert.ErrorIs(t, err, ErrScopeLookup)
	})
}
