// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package typedef

import (
	"maps"
	"slices"
)

// PrimitiveType is the value type of a custom metadata attribute.
type PrimitiveType string

const (
	PrimitiveString  PrimitiveType = "string"
	PrimitiveInteger PrimitiveType = "int"
	PrimitiveDecimal PrimitiveType = "float"
	PrimitiveBoolean PrimitiveType = "boolean"
	PrimitiveDate    PrimitiveType = "date"
	PrimitiveOptions PrimitiveType = "enum"
	PrimitiveUsers   PrimitiveType = "users"
	PrimitiveGroups  PrimitiveType = "groups"
	PrimitiveURL     PrimitiveType = "url"
	PrimitiveSQL     PrimitiveType = "SQL"
)

// configPrimitiveTypes maps the type names accepted in configuration files.
var configPrimitiveTypes = map[string]PrimitiveType{
	"Text":    PrimitiveString,
	"URL":     PrimitiveURL,
	"Enum":    PrimitiveOptions,
	"Users":   PrimitiveUsers,
	"Groups":  PrimitiveGroups,
	"Boolean": PrimitiveBoolean,
	"Int":     PrimitiveInteger,
	"SQL":     PrimitiveSQL,
	"Date":    PrimitiveDate,
	"Decimal": PrimitiveDecimal,
}

// ParsePrimitiveType resolves a configuration type name such as "Text" or "Enum".
func ParsePrimitiveType(name string) (PrimitiveType, bool) {
	primitive, ok := configPrimitiveTypes[name]
	return primitive, ok
}

// ConfigTypeNames returns the sorted list of type names accepted in configuration files.
func ConfigTypeNames() []string {
	return slices.Sorted(maps.Keys(configPrimitiveTypes))
}

// storedAsString lists the primitives persisted as strings and told apart by customType.
var storedAsString = map[PrimitiveType]bool{
	PrimitiveUsers:  true,
	PrimitiveGroups: true,
	PrimitiveURL:    true,
	PrimitiveSQL:    true,
}

// Scopes groups the applicability sets of an attribute by category.
type Scopes struct {
	Connections     StringSet
	AssetTypes      StringSet
	Glossaries      StringSet
	GlossaryTypes   StringSet
	Domains         StringSet
	DomainTypes     StringSet
	OtherAssetTypes StringSet
}

// NewAttributeDef builds a new attribute. enumName is only used for PrimitiveOptions.
func NewAttributeDef(displayName string, primitive PrimitiveType, enumName string, multiValued bool, scopes Scopes) *AttributeDef {
	options := &AttributeOptions{
		PrimitiveType:         string(primitive),
		MultiValueSelect:      Bool(multiValued),
		ApplicableEntityTypes: NewStringSet("Asset"),
	}

	typeName := string(primitive)
	switch {
	case storedAsString[primitive]:
		typeName = string(PrimitiveString)
		options.CustomType = string(primitive)
	case primitive == PrimitiveOptions:
		typeName = enumName
		options.IsEnum = true
		options.EnumType = enumName
	}

	cardinality := CardinalitySingle
	if multiValued {
		typeName = "array<" + typeName + ">"
		cardinality = CardinalitySet
	}

	attribute := &AttributeDef{
		Name:           displayName,
		DisplayName:    displayName,
		TypeName:       typeName,
		Cardinality:    cardinality,
		IsOptional:     true,
		IsIndexable:    true,
		ValuesMinCount: 0,
		ValuesMaxCount: 1,
		Options:        options,
	}
	attribute.SetScopes(scopes)
	return attribute
}

// SetScopes overwrites every applicability set of the attribute.
func (a *AttributeDef) SetScopes(scopes Scopes) {
	if a.Options == nil {
		a.Options = &AttributeOptions{}
	}

	a.Options.ApplicableConnections = NewStringSet(scopes.Connections...)
	a.Options.ApplicableAssetTypes = NewStringSet(scopes.AssetTypes...)
	a.Options.ApplicableGlossaries = NewStringSet(scopes.Glossaries...)
	a.Options.ApplicableGlossaryTypes = NewStringSet(scopes.GlossaryTypes...)
	a.Options.ApplicableDomains = NewStringSet(scopes.Domains...)
	a.Options.ApplicableDomainTypes = NewStringSet(scopes.DomainTypes...)
	a.Options.ApplicableOtherAssetTypes = NewStringSet(scopes.OtherAssetTypes...)
}

// Scopes returns the applicability sets currently set on the attribute.
func (a *AttributeDef) Scopes() Scopes {
	if a.Options == nil {
		return Scopes{}
	}

	return Scopes{
		Connections:     a.Options.ApplicableConnections,
		AssetTypes:      a.Options.ApplicableAssetTypes,
		Glossaries:      a.Options.ApplicableGlossaries,
		GlossaryTypes:   a.Options.ApplicableGlossaryTypes,
		Domains:         a.Options.ApplicableDomains,
		DomainTypes:     a.Options.ApplicableDomainTypes,
		OtherAssetTypes: a.Options.ApplicableOtherAssetTypes,
	}
}
