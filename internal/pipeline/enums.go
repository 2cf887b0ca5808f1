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

// ProvisionEnums creates the missing enumerations and replaces the values of
// the existing ones.
func (p *Pipeline) ProvisionEnums(ctx context.Context, enums []*config.EnumConfig) (*Summary, error) {
	log := logger.FromContext(ctx).WithName(loggerName)
	summary := new(Summary)

	for _, enum := range enums {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		result, err := p.provisionEnum(ctx, enum)
		if err != nil {
			if err := p.fail(ctx, summary, "enumeration", enum.Name, err); err != nil {
				return summary, err
			}
			continue
		}

		log.Debug("enumeration provisioned", "name", enum.Name, "result", string(result))
		summary.add(enum.Name, result, nil)
	}

	return summary, nil
}

func (p *Pipeline) provisionEnum(ctx context.Context, enum *config.EnumConfig) (Result, error) {
	if err := enum.Validate(); err != nil {
		return "", err
	}

	existing, err := p.destination.GetEnumDef(ctx, enum.Name)
	switch {
	case errors.Is(err, destination.ErrNotFound):
		p.printProgress("Creating %s", enum.Name)
		def := typedef.NewEnumDef(enum.Name, enum.Values)
		def.Description = enum.Description
		if err := p.destination.CreateTypeDefs(ctx, &typedef.TypeDefs{EnumDefs: []*typedef.EnumDef{def}}); err != nil {
			return "", err
		}
		return ResultCreated, nil
	case err != nil:
		return "", err
	}

	p.printProgress("Updating %s", existing.Name)
	existing.ElementDefs = typedef.NewEnumDef(existing.Name, enum.Values).ElementDefs
	if enum.Description != "" {
		existing.Description = enum.Description
	}

	if err := p.destination.UpdateTypeDefs(ctx, &typedef.TypeDefs{EnumDefs: []*typedef.EnumDef{existing}}); err != nil {
		return "", err
	}

	return ResultUpdated, nil
}
