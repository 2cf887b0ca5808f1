// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package pipeline

import (
	"context"
	"errors"

	"github.com/mia-platform/atlanctl/internal/config"
	"github.com/mia-platform/atlanctl/internal/destination"
	"github.com/mia-platform/atlanctl/internal/logger"
	"github.com/mia-platform/atlanctl/internal/typedef"
)

// ProvisionCustomMetadata creates the missing custom metadata definitions and
// reconciles the attributes of the existing ones.
// New definitions asking for an icon or emoji logo are skipped.
func (p *Pipeline) ProvisionCustomMetadata(ctx context.Context, definitions []*config.CustomMetadataConfig) (*Summary, error) {
	log := logger.FromContext(ctx).WithName(loggerName)
	summary := new(Summary)

	for _, definition := range definitions {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		result, err := p.provisionCustomMetadata(ctx, definition)
		if err != nil {
			if err := p.fail(ctx, summary, "custom metadata", definition.Name, err); err != nil {
				return summary, err
			}
			continue
		}

		log.Debug("custom metadata provisioned", "name", definition.Name, "result", string(result))
		summary.add(definition.Name, result, nil)
	}

	return summary, nil
}

func (p *Pipeline) provisionCustomMetadata(ctx context.Context, definition *config.CustomMetadataConfig) (Result, error) {
	log := logger.FromContext(ctx).WithName(loggerName)

	if err := definition.Validate(); err != nil {
		return "", err
	}

	existing, err := p.destination.GetCustomMetadataDef(ctx, definition.Name)
	switch {
	case errors.Is(err, destination.ErrNotFound):
		existing = nil
	case err != nil:
		return "", err
	}

	if existing == nil && definition.HasCustomLogo() {
		log.Warn("icon and emoji logos are not supported for custom metadata, skipping", "name", definition.Name)
		return ResultSkipped, nil
	}

	attributes, err := p.reconciler.Reconcile(ctx, definition.Name, existing, definition.Attributes)
	if err != nil {
		return "", err
	}

	if existing == nil {
		p.printProgress("Creating %s", definition.Name)
		def := typedef.NewCustomMetadataDef(definition.Name, attributes)
		def.Description = definition.Description
		if err := p.destination.CreateTypeDefs(ctx, &typedef.TypeDefs{CustomMetadataDefs: []*typedef.CustomMetadataDef{def}}); err != nil {
			return "", err
		}
		return ResultCreated, nil
	}

	p.printProgress("Updating %s", existing.DisplayName)
	existing.AttributeDefs = attributes
	if definition.Description != "" {
		existing.Description = definition.Description
	}

	if err := p.destination.UpdateTypeDefs(ctx, &typedef.TypeDefs{CustomMetadataDefs: []*typedef.CustomMetadataDef{existing}}); err != nil {
		return "", err
	}

	return ResultUpdated, nil
}
