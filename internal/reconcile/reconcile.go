// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package reconcile

import (
	"context"
	"errors"
	"fmt"

	"github.com/mia-platform/atlanctl/internal/config"
	"github.com/mia-platform/atlanctl/internal/logger"
	"github.com/mia-platform/atlanctl/internal/typedef"
)

const (
	loggerName = "atlanctl:reconcile"

	// All is the scope value that selects every known identifier of a category.
	All = "all"

	// ConnectionTypeName is the asset type searched to expand "all" connections.
	ConnectionTypeName = "Connection"
	// GlossaryTypeName is the asset type searched to expand "all" glossaries.
	GlossaryTypeName = "AtlasGlossary"
)

var (
	// ErrScopeLookup wraps failures of the remote search used to expand "all".
	ErrScopeLookup = errors.New("scope lookup failed")
	errNoSearcher  = errors.New("no searcher configured")
)

// Searcher returns the qualified names of every active asset of a type.
type Searcher interface {
	SearchQualifiedNames(ctx context.Context, typeName string) ([]string, error)
}

// Reconciler merges the attributes declared in configuration into an existing
// custom metadata definition.
type Reconciler struct {
	searcher Searcher
}

// New returns a Reconciler that expands "all" connections and glossaries with searcher.
func New(searcher Searcher) *Reconciler {
	return &Reconciler{searcher: searcher}
}

// Reconcile returns the attribute list to persist for a definition.
// With a nil existing definition every desired attribute is built from scratch,
// in declaration order. Otherwise existing attributes named in desired get their
// scopes overwritten, the others are kept as they are, and the desired
// attributes not found are appended in declaration order.
// desired is validated before any lookup; a failure is a *config.ConfigError.
func (r *Reconciler) Reconcile(ctx context.Context, name string, existing *typedef.CustomMetadataDef, desired config.Attributes) ([]*typedef.AttributeDef, error) {
	log := logger.FromContext(ctx).WithName(loggerName).With("definition", name)

	if err := desired.Validate(name); err != nil {
		return nil, err
	}

	pending := make(map[string]*config.AttributeConfig, len(desired))
	for _, attribute := range desired {
		pending[attribute.DisplayName] = attribute
	}

	result := make([]*typedef.AttributeDef, 0, len(desired))
	if existing != nil {
		for _, current := range existing.AttributeDefs {
			if current == nil {
				continue
			}

			attribute, found := pending[current.DisplayName]
			if !found {
				log.Trace("keeping attribute not in configuration", "attribute", current.DisplayName)
				result = append(result, current)
				continue
			}

			scopes, err := r.resolveScopes(ctx, attribute)
			if err != nil {
				return nil, err
			}

			log.Debug("updating attribute scopes", "attribute", current.DisplayName)
			current.SetScopes(scopes)
			delete(pending, current.DisplayName)
			result = append(result, current)
		}
	}

	for _, attribute := range desired {
		if _, found := pending[attribute.DisplayName]; !found {
			continue
		}

		scopes, err := r.resolveScopes(ctx, attribute)
		if err != nil {
			return nil, err
		}

		// validated above, the primitive is always known here
		primitive, _ := attribute.PrimitiveType()
		created := typedef.NewAttributeDef(attribute.DisplayName, primitive, attribute.Options, attribute.MultiValue, scopes)
		created.Description = attribute.Description

		log.Debug("adding attribute", "attribute", attribute.DisplayName, "type", attribute.Type)
		result = append(result, created)
	}

	return result, nil
}

func (r *Reconciler) resolveScopes(ctx context.Context, attribute *config.AttributeConfig) (typedef.Scopes, error) {
	connections, err := r.resolveLive(ctx, attribute.ApplicableConnections, ConnectionTypeName)
	if err != nil {
		return typedef.Scopes{}, err
	}

	glossaries, err := r.resolveLive(ctx, attribute.ApplicableGlossaries, GlossaryTypeName)
	if err != nil {
		return typedef.Scopes{}, err
	}

	return typedef.Scopes{
		Connections:     connections,
		AssetTypes:      resolveStatic(attribute.ApplicableAssetTypes, AssetTypes),
		Glossaries:      glossaries,
		GlossaryTypes:   resolveStatic(attribute.ApplicableGlossaryTypes, GlossaryTypes),
		Domains:         resolveStatic(attribute.ApplicableDomains, Domains),
		DomainTypes:     resolveStatic(attribute.ApplicableDomainTypes, DomainTypes),
		OtherAssetTypes: resolveStatic(attribute.ApplicableOtherAssetTypes, OtherAssetTypes),
	}, nil
}

func (r *Reconciler) resolveLive(ctx context.Context, values []string, typeName string) (typedef.StringSet, error) {
	if !selectsAll(values) {
		return typedef.NewStringSet(values...), nil
	}

	if r.searcher == nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrScopeLookup, typeName, errNoSearcher)
	}

	names, err := r.searcher.SearchQualifiedNames(ctx, typeName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrScopeLookup, typeName, err)
	}

	return typedef.NewStringSet(names...), nil
}

func resolveStatic(values []string, universe func() typedef.StringSet) typedef.StringSet {
	if selectsAll(values) {
		return universe()
	}

	return typedef.NewStringSet(values...)
}

// selectsAll reports whether values is exactly the "all" sentinel.
func selectsAll(values []string) bool {
	return len(values) == 1 && values[0] == All
}
