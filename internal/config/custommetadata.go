// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package config

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mia-platform/atlanctl/internal/typedef"
)

// CustomMetadataConfig describes a custom metadata definition in the JSON configuration file.
type CustomMetadataConfig struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Attributes  Attributes      `json:"attributes"`
	Icon        json.RawMessage `json:"icon,omitempty"`
	Emoji       json.RawMessage `json:"emoji,omitempty"`
}

// HasCustomLogo reports whether the definition asks for an icon or emoji logo.
func (c *CustomMetadataConfig) HasCustomLogo() bool {
	return len(c.Icon) > 0 || len(c.Emoji) > 0
}

// Validate checks the definition name and every attribute.
func (c *CustomMetadataConfig) Validate() error {
	reasons := []string{}
	if c.Name == "" {
		reasons = append(reasons, "missing field 'name'")
	}

	var attributesErr *ConfigError
	if errors.As(c.Attributes.Validate(c.Name), &attributesErr) {
		reasons = append(reasons, attributesErr.Reasons...)
	}

	if len(reasons) > 0 {
		return newConfigError(c.Name, reasons...)
	}

	return nil
}

// AttributeConfig describes one attribute of a custom metadata definition.
// DisplayName is filled from the key of the attributes object.
type AttributeConfig struct {
	DisplayName string `json:"-"`

	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Options     string `json:"options,omitempty"`
	MultiValue  bool   `json:"multivalue,omitempty"`

	ApplicableConnections     []string `json:"applicable_connections,omitempty"`
	ApplicableAssetTypes      []string `json:"applicable_asset_types,omitempty"`
	ApplicableGlossaries      []string `json:"applicable_glossaries,omitempty"`
	ApplicableGlossaryTypes   []string `json:"applicable_glossary_types,omitempty"`
	ApplicableDomains         []string `json:"applicable_domains,omitempty"`
	ApplicableDomainTypes     []string `json:"applicable_domain_types,omitempty"`
	ApplicableOtherAssetTypes []string `json:"applicable_other_asset_types,omitempty"`
}

// PrimitiveType returns the catalog primitive of the configured type.
func (a *AttributeConfig) PrimitiveType() (typedef.PrimitiveType, bool) {
	return typedef.ParsePrimitiveType(a.Type)
}

// Validate reports the problems of a single attribute.
func (a *AttributeConfig) Validate() error {
	if reasons := a.validate(); len(reasons) > 0 {
		return newConfigError(a.DisplayName, reasons...)
	}

	return nil
}

func (a *AttributeConfig) validate() []string {
	reasons := []string{}
	if a.DisplayName == "" {
		reasons = append(reasons, "attribute with empty name")
	}

	primitive, ok := a.PrimitiveType()
	switch {
	case a.Type == "":
		reasons = append(reasons, fmt.Sprintf("attribute '%s': missing field 'type'", a.DisplayName))
	case !ok:
		reasons = append(reasons, fmt.Sprintf("attribute '%s': unknown type '%s' (allowed: %s)", a.DisplayName, a.Type, strings.Join(typedef.ConfigTypeNames(), ", ")))
	case primitive == typedef.PrimitiveOptions && a.Options == "":
		reasons = append(reasons, fmt.Sprintf("attribute '%s': type 'Enum' requires the 'options' enumeration name", a.DisplayName))
	}

	return reasons
}

// Attributes is the ordered list of attributes declared in a JSON object.
// The order of the object keys is preserved.
type Attributes []*AttributeConfig

// Names returns the display names in declaration order.
func (a Attributes) Names() []string {
	names := make([]string, len(a))
	for i, attribute := range a {
		names[i] = attribute.DisplayName
	}

	return names
}

// Validate checks every attribute and the uniqueness of the display names.
// item names the owning definition in the returned *ConfigError.
func (a Attributes) Validate(item string) error {
	reasons := []string{}
	seen := make(map[string]bool, len(a))
	for _, attribute := range a {
		if attribute == nil {
			reasons = append(reasons, "attribute with empty definition")
			continue
		}

		if seen[attribute.DisplayName] {
			reasons = append(reasons, fmt.Sprintf("duplicate attribute '%s'", attribute.DisplayName))
		}
		seen[attribute.DisplayName] = true
		reasons = append(reasons, attribute.validate()...)
	}

	if len(reasons) > 0 {
		return newConfigError(item, reasons...)
	}

	return nil
}

// UnmarshalJSON decodes a JSON object keeping the key order and rejecting duplicated names.
func (a *Attributes) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	token, err := decoder.Token()
	if err != nil {
		return err
	}

	if token == nil {
		*a = Attributes{}
		return nil
	}

	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return errors.New("attributes must be a JSON object keyed by display name")
	}

	attributes := Attributes{}
	seen := make(map[string]bool)
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		name, _ := token.(string)
		if seen[name] {
			return fmt.Errorf("duplicate attribute '%s'", name)
		}
		seen[name] = true

		attribute := new(AttributeConfig)
		if err := decoder.Decode(attribute); err != nil {
			return fmt.Errorf("attribute '%s': %w", name, err)
		}

		attribute.DisplayName = name
		attributes = append(attributes, attribute)
	}

	if _, err := decoder.Token(); err != nil {
		return err
	}

	*a = attributes
	return nil
}

// MarshalJSON encodes the attributes back into a JSON object in declaration order.
func (a Attributes) MarshalJSON() ([]byte, error) {
	buffer := new(bytes.Buffer)
	buffer.WriteByte('{')
	for i, attribute := range a {
		if i > 0 {
			buffer.WriteByte(',')
		}

		key, err := json.Marshal(attribute.DisplayName)
		if err != nil {
			return nil, err
		}

		value, err := json.Marshal(attribute)
		if err != nil {
			return nil, err
		}

		buffer.Write(key)
		buffer.WriteByte(':')
		buffer.Write(value)
	}
	buffer.WriteByte('}')

	return buffer.Bytes(), nil
}

// LoadCustomMetadata reads the custom metadata definitions from a JSON file.
func LoadCustomMetadata(ctx context.Context, path string) ([]*CustomMetadataConfig, error) {
	data, err := readInputFile(ctx, path, ".json")
	if err != nil {
		return nil, err
	}

	definitions := make([]*CustomMetadataConfig, 0)
	if err := decodeJSONFile(path, data, customMetadataSchema, &definitions); err != nil {
		return nil, err
	}

	var validationErrors []error
	for _, definition := range definitions {
		if err := definition.Validate(); err != nil {
			validationErrors = append(validationErrors, err)
		}
	}

	if len(validationErrors) > 0 {
		return nil, fmt.Errorf("%w %q: %w", ErrParsing, path, errors.Join(validationErrors...))
	}

	return definitions, nil
}
