// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package config

import (
	"context"
	"errors"
	"fmt"
)

// EnumConfig describes an enumeration in the JSON configuration file.
type EnumConfig struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Values      []string `json:"values"`
}

// Validate checks that the enumeration has a name and a non-empty list of unique values.
func (c *EnumConfig) Validate() error {
	reasons := []string{}
	if c.Name == "" {
		reasons = append(reasons, "missing field 'name'")
	}

	if len(c.Values) == 0 {
		reasons = append(reasons, "missing field 'values'")
	}

	seen := make(map[string]bool, len(c.Values))
	for _, value := range c.Values {
		if seen[value] {
			reasons = append(reasons, fmt.Sprintf("duplicate value '%s'", value))
		}
		seen[value] = true
	}

	if len(reasons) > 0 {
		return newConfigError(c.Name, reasons...)
	}

	return nil
}

// LoadEnums reads the enumeration definitions from a JSON file.
func LoadEnums(ctx context.Context, path string) ([]*EnumConfig, error) {
	data, err := readInputFile(ctx, path, ".json")
	if err != nil {
		return nil, err
	}

	enums := make([]*EnumConfig, 0)
	if err := decodeJSONFile(path, data, enumsSchema, &enums); err != nil {
		return nil, err
	}

	var validationErrors []error
	for _, enum := range enums {
		if err := enum.Validate(); err != nil {
			validationErrors = append(validationErrors, err)
		}
	}

	if len(validationErrors) > 0 {
		return nil, fmt.Errorf("%w %q: %w", ErrParsing, path, errors.Join(validationErrors...))
	}

	return enums, nil
}
