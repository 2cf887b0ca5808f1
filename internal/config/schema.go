// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package config

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const (
	customMetadataSchema = "custom-metadata.schema.json"
	enumsSchema          = "enums.schema.json"
)

//go:embed schemas/*.json
var schemaFiles embed.FS

var (
	compiledSchemas   = make(map[string]*jsonschema.Schema)
	compiledSchemasMu sync.Mutex
)

// schema returns the compiled embedded schema, compiling it on first use.
func schema(name string) (*jsonschema.Schema, error) {
	compiledSchemasMu.Lock()
	defer compiledSchemasMu.Unlock()

	if compiled, ok := compiledSchemas[name]; ok {
		return compiled, nil
	}

	content, err := schemaFiles.ReadFile("schemas/" + name)
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(name, bytes.NewReader(content)); err != nil {
		return nil, err
	}

	compiled, err := compiler.Compile(name)
	if err != nil {
		return nil, err
	}

	compiledSchemas[name] = compiled
	return compiled, nil
}

// validateSchema checks a decoded JSON document against the named schema.
func validateSchema(name string, document any) error {
	compiled, err := schema(name)
	if err != nil {
		return fmt.Errorf("loading schema %s: %w", name, err)
	}

	err = compiled.Validate(document)
	if err == nil {
		return nil
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return err
	}

	return errors.New(strings.Join(flattenValidationError(validationErr), "; "))
}

// flattenValidationError collects the leaf causes of a validation error as
// "location: message" strings.
func flattenValidationError(err *jsonschema.ValidationError) []string {
	if len(err.Causes) == 0 {
		location := err.InstanceLocation
		if location == "" {
			location = "/"
		}
		return []string{location + ": " + err.Message}
	}

	messages := make([]string, 0, len(err.Causes))
	for _, cause := range err.Causes {
		messages = append(messages, flattenValidationError(cause)...)
	}

	return messages
}
