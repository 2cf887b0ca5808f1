// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package pipeline

import (
	"context"
	"fmt"

	"github.com/mia-platform/atlanctl/internal/config"
	"github.com/mia-platform/atlanctl/internal/logger"
	"github.com/mia-platform/atlanctl/internal/typedef"
)

// ProvisionTags creates every tag. Tags are never updated: a tag that already
// exists is reported as failed by the destination.
func (p *Pipeline) ProvisionTags(ctx context.Context, tags []*config.TagConfig) (*Summary, error) {
	log := logger.FromContext(ctx).WithName(loggerName)
	summary := new(Summary)

	for _, tag := range tags {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		def, err := newTagDef(tag)
		if err != nil {
			if err := p.fail(ctx, summary, "tag", tag.Name, err); err != nil {
				return summary, err
			}
			continue
		}

		p.printProgress("Creating %s tag '%s'", tag.Type, tag.Name)
		if err := p.destination.CreateTypeDefs(ctx, &typedef.TypeDefs{TagDefs: []*typedef.TagDef{def}}); err != nil {
			if err := p.fail(ctx, summary, "tag", tag.Name, err); err != nil {
				return summary, err
			}
			continue
		}

		log.Debug("tag created", "name", tag.Name, "type", tag.Type)
		summary.add(tag.Name, ResultCreated, nil)
	}

	return summary, nil
}

// newTagDef builds the tag definition for a validated configuration item.
func newTagDef(tag *config.TagConfig) (*typedef.TagDef, error) {
	if err := tag.Validate(); err != nil {
		return nil, err
	}

	// color is validated above, an empty one is only allowed for icon tags
	color, _ := typedef.ParseTagColor(tag.Color)
	switch tag.Type {
	case config.TagTypeColor:
		return typedef.NewColorTag(tag.Name, tag.Description, color), nil
	case config.TagTypeEmoji:
		return typedef.NewEmojiTag(tag.Name, tag.Description, color, tag.Emoji), nil
	case config.TagTypeIcon:
		return typedef.NewIconTag(tag.Name, tag.Description, tag.IconName, color), nil
	default:
		return nil, fmt.Errorf("unknown tag type '%s'", tag.Type)
	}
}
