// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package typedef

import (
	"cmp"
	"slices"
)

const (
	// CategoryCustomMetadata is the typedef category of custom metadata definitions.
	CategoryCustomMetadata = "BUSINESS_METADATA"
	// CategoryTag is the typedef category of tags.
	CategoryTag = "CLASSIFICATION"
	// CategoryEnum is the typedef category of enumerations.
	CategoryEnum = "ENUM"

	// CardinalitySingle marks single valued attributes.
	CardinalitySingle = "SINGLE"
	// CardinalitySet marks multi valued attributes.
	CardinalitySet = "SET"

	// DefaultLogoIcon is the icon assigned to new custom metadata definitions.
	DefaultLogoIcon = "PhBagSimple"
	// LogoTypeIcon selects an icon as the logo of a custom metadata definition.
	LogoTypeIcon = "icon"
)

// TypeDefs is the envelope accepted and returned by the typedef endpoints.
type TypeDefs struct {
	TagDefs            []*TagDef            `json:"classificationDefs,omitempty"`
	CustomMetadataDefs []*CustomMetadataDef `json:"businessMetadataDefs,omitempty"`
	EnumDefs           []*EnumDef           `json:"enumDefs,omitempty"`
}

// Names returns the display names of every definition in the envelope.
func (t *TypeDefs) Names() []string {
	names := make([]string, 0, len(t.TagDefs)+len(t.CustomMetadataDefs)+len(t.EnumDefs))
	for _, def := range t.TagDefs {
		names = append(names, def.DisplayName)
	}
	for _, def := range t.CustomMetadataDefs {
		names = append(names, def.DisplayName)
	}
	for _, def := range t.EnumDefs {
		names = append(names, def.Name)
	}

	return names
}

// TagDef is a tag (classification) definition.
type TagDef struct {
	GUID        string      `json:"guid,omitempty"`
	Category    string      `json:"category"`
	Name        string      `json:"name"`
	DisplayName string      `json:"displayName"`
	Description string      `json:"description,omitempty"`
	Options     *TagOptions `json:"options,omitempty"`
}

// TagOptions carries the visual settings of a tag.
type TagOptions struct {
	Color    string `json:"color,omitempty"`
	IconType string `json:"iconType,omitempty"`
	IconName string `json:"iconName,omitempty"`
	Emoji    string `json:"emoji,omitempty"`
}

// CustomMetadataDef is a custom metadata (business metadata) definition.
// When fetched from the catalog Name holds the internal hashed name, while
// DisplayName holds the human readable one used as lookup key.
type CustomMetadataDef struct {
	GUID          string                 `json:"guid,omitempty"`
	Category      string                 `json:"category"`
	Name          string                 `json:"name"`
	DisplayName   string                 `json:"displayName"`
	Description   string                 `json:"description,omitempty"`
	AttributeDefs []*AttributeDef        `json:"attributeDefs"`
	Options       *CustomMetadataOptions `json:"options,omitempty"`

	extra extraFields
}

type customMetadataDefFields CustomMetadataDef

// UnmarshalJSON decodes the definition keeping the members it does not model.
func (d *CustomMetadataDef) UnmarshalJSON(data []byte) error {
	extra, err := unmarshalWithExtra(data, (*customMetadataDefFields)(d))
	d.extra = extra
	return err
}

// MarshalJSON encodes the definition together with the members kept by UnmarshalJSON.
func (d CustomMetadataDef) MarshalJSON() ([]byte, error) {
	return marshalWithExtra(customMetadataDefFields(d), d.extra)
}

// CustomMetadataOptions carries the logo settings of a custom metadata definition.
type CustomMetadataOptions struct {
	LogoType  string `json:"logoType,omitempty"`
	IconName  string `json:"iconName,omitempty"`
	IconColor string `json:"iconColor,omitempty"`
	Emoji     string `json:"emoji,omitempty"`

	extra extraFields
}

type customMetadataOptionsFields CustomMetadataOptions

func (o *CustomMetadataOptions) UnmarshalJSON(data []byte) error {
	extra, err := unmarshalWithExtra(data, (*customMetadataOptionsFields)(o))
	o.extra = extra
	return err
}

func (o CustomMetadataOptions) MarshalJSON() ([]byte, error) {
	return marshalWithExtra(customMetadataOptionsFields(o), o.extra)
}

// NewCustomMetadataDef returns a definition ready to be created, carrying the default logo.
func NewCustomMetadataDef(displayName string, attributes []*AttributeDef) *CustomMetadataDef {
	return &CustomMetadataDef{
		Category:      CategoryCustomMetadata,
		Name:          displayName,
		DisplayName:   displayName,
		AttributeDefs: attributes,
		Options: &CustomMetadataOptions{
			LogoType:  LogoTypeIcon,
			IconName:  DefaultLogoIcon,
			IconColor: string(TagColorYellow),
		},
	}
}

// AttributeDef is a single attribute of a custom metadata definition.
type AttributeDef struct {
	Name           string            `json:"name,omitempty"`
	DisplayName    string            `json:"displayName"`
	Description    string            `json:"description,omitempty"`
	TypeName       string            `json:"typeName"`
	Cardinality    string            `json:"cardinality"`
	IsOptional     bool              `json:"isOptional"`
	IsUnique       bool              `json:"isUnique"`
	IsIndexable    bool              `json:"isIndexable"`
	ValuesMinCount int               `json:"valuesMinCount"`
	ValuesMaxCount int               `json:"valuesMaxCount"`
	Options        *AttributeOptions `json:"options"`

	extra extraFields
}

type attributeDefFields AttributeDef

func (a *AttributeDef) UnmarshalJSON(data []byte) error {
	extra, err := unmarshalWithExtra(data, (*attributeDefFields)(a))
	a.extra = extra
	return err
}

func (a AttributeDef) MarshalJSON() ([]byte, error) {
	return marshalWithExtra(attributeDefFields(a), a.extra)
}

// AttributeOptions holds type details and the applicability scopes of an attribute.
// The catalog stores options as a map of strings: flags are Bool values and sets
// are StringSet values. A nil set is left out of the encoded options.
type AttributeOptions struct {
	PrimitiveType    string `json:"primitiveType,omitempty"`
	CustomType       string `json:"customType,omitempty"`
	IsEnum           Bool   `json:"isEnum"`
	EnumType         string `json:"enumType,omitempty"`
	MultiValueSelect Bool   `json:"multiValueSelect"`

	ApplicableEntityTypes     StringSet `json:"applicableEntityTypes,omitzero"`
	ApplicableConnections     StringSet `json:"applicableConnections,omitzero"`
	ApplicableAssetTypes      StringSet `json:"applicableAssetTypes,omitzero"`
	ApplicableGlossaries      StringSet `json:"applicableGlossaries,omitzero"`
	ApplicableGlossaryTypes   StringSet `json:"applicableGlossaryTypes,omitzero"`
	ApplicableDomains         StringSet `json:"applicableDomains,omitzero"`
	ApplicableDomainTypes     StringSet `json:"applicableDomainTypes,omitzero"`
	ApplicableOtherAssetTypes StringSet `json:"applicableOtherAssetTypes,omitzero"`

	extra extraFields
}

type attributeOptionsFields AttributeOptions

func (o *AttributeOptions) UnmarshalJSON(data []byte) error {
	extra, err := unmarshalWithExtra(data, (*attributeOptionsFields)(o))
	o.extra = extra
	return err
}

func (o AttributeOptions) MarshalJSON() ([]byte, error) {
	return marshalWithExtra(attributeOptionsFields(o), o.extra)
}

// EnumDef is an enumeration definition.
type EnumDef struct {
	GUID        string            `json:"guid,omitempty"`
	Category    string            `json:"category"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	ElementDefs []*EnumElementDef `json:"elementDefs"`

	extra extraFields
}

type enumDefFields EnumDef

func (e *EnumDef) UnmarshalJSON(data []byte) error {
	extra, err := unmarshalWithExtra(data, (*enumDefFields)(e))
	e.extra = extra
	return err
}

func (e EnumDef) MarshalJSON() ([]byte, error) {
	return marshalWithExtra(enumDefFields(e), e.extra)
}

// EnumElementDef is one allowed value of an enumeration.
type EnumElementDef struct {
	Value   string `json:"value"`
	Ordinal int    `json:"ordinal"`
}

// NewEnumDef builds an enumeration whose ordinals follow the order of values.
func NewEnumDef(name string, values []string) *EnumDef {
	elements := make([]*EnumElementDef, 0, len(values))
	for ordinal, value := range values {
		elements = append(elements, &EnumElementDef{Value: value, Ordinal: ordinal})
	}

	return &EnumDef{
		Category:    CategoryEnum,
		Name:        name,
		ElementDefs: elements,
	}
}

// Values returns the element values ordered by ordinal.
func (e *EnumDef) Values() []string {
	elements := slices.Clone(e.ElementDefs)
	slices.SortStableFunc(elements, func(a, b *EnumElementDef) int {
		return cmp.Compare(a.Ordinal, b.Ordinal)
	})

	values := make([]string, len(elements))
	for i, element := range elements {
		values[i] = element.Value
	}

	return values
}
