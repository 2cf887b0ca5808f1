// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mia-platform/atlanctl/internal/typedef"
)

const (
	// TagTypeColor is a tag rendered with a color only.
	TagTypeColor = "color"
	// TagTypeEmoji is a tag rendered with a color and an emoji.
	TagTypeEmoji = "emoji"
	// TagTypeIcon is a tag rendered with a built-in icon.
	TagTypeIcon = "icon"

	tagsField = "tags"
)

// TagConfig describes a single tag in the YAML configuration file.
type TagConfig struct {
	Type        string `yaml:"type"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Color       string `yaml:"color,omitempty"`
	Emoji       string `yaml:"emoji,omitempty"`
	IconName    string `yaml:"icon_name,omitempty"`
}

// tagsDocument is the original template layout, with tags under a top-level key.
type tagsDocument struct {
	Tags []*TagConfig `yaml:"tags"`
}

// Validate reports missing or invalid fields for the declared tag type.
func (c *TagConfig) Validate() error {
	reasons := []string{}
	if c.Name == "" {
		reasons = append(reasons, "missing field 'name'")
	}

	switch c.Type {
	case TagTypeColor:
		reasons = append(reasons, validateTagColor(c.Color, true)...)
	case TagTypeEmoji:
		reasons = append(reasons, validateTagColor(c.Color, true)...)
		if c.Emoji == "" {
			reasons = append(reasons, "missing field 'emoji' for emoji tag")
		}
	case TagTypeIcon:
		reasons = append(reasons, validateTagColor(c.Color, false)...)
		if c.IconName == "" {
			reasons = append(reasons, "missing field 'icon_name' for icon tag")
		}
	case "":
		reasons = append(reasons, "missing field 'type'")
	default:
		reasons = append(reasons, fmt.Sprintf("unknown tag type '%s' (allowed: %s, %s, %s)", c.Type, TagTypeColor, TagTypeEmoji, TagTypeIcon))
	}

	if len(reasons) > 0 {
		return newConfigError(c.Name, reasons...)
	}

	return nil
}

func validateTagColor(color string, required bool) []string {
	if color == "" {
		if required {
			return []string{"missing field 'color'"}
		}
		return nil
	}

	if _, ok := typedef.ParseTagColor(color); !ok {
		return []string{fmt.Sprintf("unknown color '%s'", color)}
	}

	return nil
}

// LoadTags reads the tag definitions from a YAML file. The file can either
// hold a sequence of tags or a mapping with the sequence under the "tags" key.
func LoadTags(ctx context.Context, path string) ([]*TagConfig, error) {
	data, err := readInputFile(ctx, path, ".yaml", ".yml")
	if err != nil {
		return nil, err
	}

	tags, err := decodeTags(data)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrParsing, path, err)
	}

	var validationErrors []error
	for _, tag := range tags {
		if err := tag.Validate(); err != nil {
			validationErrors = append(validationErrors, err)
		}
	}

	if len(validationErrors) > 0 {
		return nil, fmt.Errorf("%w %q: %w", ErrParsing, path, errors.Join(validationErrors...))
	}

	return tags, nil
}

func decodeTags(data []byte) ([]*TagConfig, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	if len(root.Content) == 0 {
		return nil, errors.New("empty tag file")
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	switch root.Content[0].Kind {
	case yaml.SequenceNode:
		tags := make([]*TagConfig, 0)
		if err := decoder.Decode(&tags); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		return withoutNilTags(tags), nil
	case yaml.MappingNode:
		if !hasKey(root.Content[0], tagsField) {
			return nil, fmt.Errorf("YAML file must contain a '%s' list", tagsField)
		}
		document := new(tagsDocument)
		if err := decoder.Decode(document); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		return withoutNilTags(document.Tags), nil
	default:
		return nil, fmt.Errorf("unexpected YAML content %s, expected a list of tags", strings.TrimPrefix(root.Content[0].Tag, "!!"))
	}
}

// hasKey reports whether the mapping node contains key.
func hasKey(mapping *yaml.Node, key string) bool {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return true
		}
	}

	return false
}

func withoutNilTags(tags []*TagConfig) []*TagConfig {
	filtered := make([]*TagConfig, 0, len(tags))
	for _, tag := range tags {
		if tag != nil {
			filtered = append(filtered, tag)
		}
	}

	return filtered
}
