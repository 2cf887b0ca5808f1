// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package typedef

import "strings"

// TagColor is one of the colors the catalog accepts for tags and logos.
type TagColor string

const (
	TagColorGreen  TagColor = "Green"
	TagColorYellow TagColor = "Yellow"
	TagColorRed    TagColor = "Red"
	TagColorGray   TagColor = "Gray"

	iconTypeIcon  = "icon"
	iconTypeEmoji = "emoji"
)

var tagColors = map[string]TagColor{
	"GREEN":  TagColorGreen,
	"YELLOW": TagColorYellow,
	"RED":    TagColorRed,
	"GRAY":   TagColorGray,
}

// ParseTagColor resolves a configuration color name such as "RED", ignoring case.
func ParseTagColor(name string) (TagColor, bool) {
	color, ok := tagColors[strings.ToUpper(name)]
	return color, ok
}

func newTagDef(name, description string, options *TagOptions) *TagDef {
	return &TagDef{
		Category:    CategoryTag,
		Name:        name,
		DisplayName: name,
		Description: description,
		Options:     options,
	}
}

// NewColorTag builds a tag rendered only with a color.
func NewColorTag(name, description string, color TagColor) *TagDef {
	return newTagDef(name, description, &TagOptions{Color: string(color)})
}

// NewEmojiTag builds a tag rendered with a color and an emoji.
func NewEmojiTag(name, description string, color TagColor, emoji string) *TagDef {
	return newTagDef(name, description, &TagOptions{
		Color:    string(color),
		IconType: iconTypeEmoji,
		Emoji:    emoji,
	})
}

// NewIconTag builds a tag rendered with one of the catalog built-in icons.
// Icon tags are gray unless a color is provided.
func NewIconTag(name, description, iconName string, color TagColor) *TagDef {
	if color == "" {
		color = TagColorGray
	}

	return newTagDef(name, description, &TagOptions{
		Color:    string(color),
		IconType: iconTypeIcon,
		IconName: iconName,
	})
}
