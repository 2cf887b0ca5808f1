// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package typedef

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"

	"github.com/samber/lo"
)

// StringSet is an unordered set of identifiers kept sorted and deduplicated.
// On the wire it is a JSON array encoded inside a JSON string, e.g.
// "[\"Table\",\"View\"]"; decoding also accepts a plain array.
type StringSet []string

// NewStringSet returns the sorted, deduplicated set of values. The result is never nil.
func NewStringSet(values ...string) StringSet {
	set := lo.Uniq(values)
	slices.Sort(set)
	if set == nil {
		set = []string{}
	}

	return StringSet(set)
}

// Contains reports whether value belongs to the set.
func (s StringSet) Contains(value string) bool {
	_, found := slices.BinarySearch(s, value)
	return found
}

// MarshalJSON encodes the set as a string holding a JSON array.
func (s StringSet) MarshalJSON() ([]byte, error) {
	inner, err := json.Marshal([]string(NewStringSet(s...)))
	if err != nil {
		return nil, err
	}

	return json.Marshal(string(inner))
}

// UnmarshalJSON decodes either a string holding a JSON array or a plain JSON array.
func (s *StringSet) UnmarshalJSON(data []byte) error {
	var values []string
	if err := json.Unmarshal(data, &values); err == nil {
		*s = NewStringSet(values...)
		return nil
	}

	var encoded string
	if err := json.Unmarshal(data, &encoded); err != nil {
		return fmt.Errorf("string set: %w", err)
	}

	if encoded == "" {
		*s = NewStringSet()
		return nil
	}

	if err := json.Unmarshal([]byte(encoded), &values); err != nil {
		return fmt.Errorf("string set %q: %w", encoded, err)
	}

	*s = NewStringSet(values...)
	return nil
}

// Bool is a flag stored in the string valued option maps of the catalog.
// It encodes as "true" or "false" and decodes both strings and JSON booleans.
type Bool bool

// MarshalJSON encodes the flag as a string.
func (b Bool) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatBool(bool(b)))
}

// UnmarshalJSON decodes a JSON boolean or a string holding one; an empty string is false.
func (b *Bool) UnmarshalJSON(data []byte) error {
	var value bool
	if err := json.Unmarshal(data, &value); err == nil {
		*b = Bool(value)
		return nil
	}

	var encoded string
	if err := json.Unmarshal(data, &encoded); err != nil {
		return fmt.Errorf("bool: %w", err)
	}

	if encoded == "" {
		*b = false
		return nil
	}

	value, err := strconv.ParseBool(encoded)
	if err != nil {
		return fmt.Errorf("bool %q: %w", encoded, err)
	}

	*b = Bool(value)
	return nil
}
