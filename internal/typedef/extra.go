// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package typedef

import (
	"encoding/json"
	"reflect"
	"strings"
)

// extraFields holds the members of a catalog object that its Go type does not
// declare. They are sent back as received when the object is updated.
type extraFields map[string]json.RawMessage

// unmarshalWithExtra decodes data into target, a pointer to a struct, and
// returns the members target has no field for.
func unmarshalWithExtra(data []byte, target any) (extraFields, error) {
	if err := json.Unmarshal(data, target); err != nil {
		return nil, err
	}

	members := make(extraFields)
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, err
	}

	for _, name := range jsonNames(reflect.TypeOf(target).Elem()) {
		delete(members, name)
	}

	if len(members) == 0 {
		return nil, nil
	}

	return members, nil
}

// marshalWithExtra encodes value and adds back the extra members. Declared
// fields take precedence.
func marshalWithExtra(value any, extra extraFields) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil || len(extra) == 0 {
		return data, err
	}

	members := make(map[string]json.RawMessage, len(extra))
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, err
	}

	for name, raw := range extra {
		if _, declared := members[name]; !declared {
			members[name] = raw
		}
	}

	return json.Marshal(members)
}

// jsonNames returns the member names of the exported fields of a struct type.
func jsonNames(structType reflect.Type) []string {
	names := make([]string, 0, structType.NumField())
	for i := range structType.NumField() {
		field := structType.Field(i)
		if !field.IsExported() {
			continue
		}

		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		switch name {
		case "-":
			continue
		case "":
			name = field.Name
		}

		names = append(names, name)
	}

	return names
}
