// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mia-platform/atlanctl/internal/logger"
)

const loggerName = "atlanctl:config"

// readInputFile checks that path is a regular file and returns its content.
// A file whose extension is not in extensions is still read, but a warning is logged.
func readInputFile(ctx context.Context, path string, extensions ...string) ([]byte, error) {
	log := logger.FromContext(ctx).WithName(loggerName)

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("input file not found at %q: %w", path, fs.ErrNotExist)
	case err != nil:
		return nil, fmt.Errorf("input file %q: %w", path, unwrappedError(err))
	case info.IsDir():
		return nil, fmt.Errorf("input path %q is a directory: %w", path, ErrNotAFile)
	}

	extension := strings.ToLower(filepath.Ext(path))
	if len(extensions) > 0 && !slices.Contains(extensions, extension) {
		log.Warn("input file has an unexpected extension", "path", path, "expected", strings.Join(extensions, ", "))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("input file %q: %w", path, unwrappedError(err))
	}

	log.Debug("input file loaded", "path", path, "bytes", len(data))
	return data, nil
}

// decodeJSONFile validates data against the named schema and then decodes it into target.
func decodeJSONFile(path string, data []byte, schemaName string, target any) error {
	var document any
	if err := json.Unmarshal(data, &document); err != nil {
		return fmt.Errorf("%w %q: invalid JSON format: %w", ErrParsing, path, err)
	}

	if err := validateSchema(schemaName, document); err != nil {
		return fmt.Errorf("%w %q: %w", ErrParsing, path, err)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w %q: %w", ErrParsing, path, err)
	}

	return nil
}

// unwrappedError returns the unwrapped error if available, otherwise it returns the original error.
func unwrappedError(err error) error {
	if unwrapped := errors.Unwrap(err); unwrapped != nil {
		return unwrapped
	}

	return err
}
