// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrParsing reports failures that occur while decoding configuration files.
	ErrParsing = errors.New("error parsing")
	// ErrNotAFile is returned when the input path points to a directory.
	ErrNotAFile = errors.New("not a file")
	// ErrInvalidConfig is matched by every *ConfigError.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ConfigError lists the problems found in a single configuration item.
type ConfigError struct {
	Item    string
	Reasons []string
}

func newConfigError(item string, reasons ...string) *ConfigError {
	return &ConfigError{Item: item, Reasons: reasons}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s for %q: %s", ErrInvalidConfig, e.Item, strings.Join(e.Reasons, "; "))
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}
