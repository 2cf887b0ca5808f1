// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mia-platform/atlanctl/internal/config"
	"github.com/mia-platform/atlanctl/internal/destination"
	"github.com/mia-platform/atlanctl/internal/pipeline"
)

// options configures a provisioning run for a single input file.
type options struct {
	kind        itemKind
	path        string
	destination destination.Destination
	out         io.Writer
}

// validate checks the configured values and reports invalid setups.
func (o *options) validate() error {
	if strings.TrimSpace(o.path) == "" {
		return errNoArguments
	}

	if _, ok := fileExtensions[o.kind]; !ok {
		return fmt.Errorf("%w: %s", errUnknownItemKind, o.kind)
	}

	return nil
}

// execute loads the input file, provisions its items and prints the summary.
// Items that fail are listed in the summary and do not change the exit code.
func (o *options) execute(ctx context.Context) error {
	summary, err := o.provision(ctx)
	if summary != nil {
		if printErr := printSummary(o.out, summary); printErr != nil {
			return printErr
		}
	}

	return err
}

func (o *options) provision(ctx context.Context) (*pipeline.Summary, error) {
	provisioner := pipeline.New(o.destination, o.out)

	switch o.kind {
	case kindTags:
		tags, err := config.LoadTags(ctx, o.path)
		if err != nil {
			return nil, err
		}
		return provisioner.ProvisionTags(ctx, tags)
	case kindCustomMetadata:
		definitions, err := config.LoadCustomMetadata(ctx, o.path)
		if err != nil {
			return nil, err
		}
		return provisioner.ProvisionCustomMetadata(ctx, definitions)
	case kindEnums:
		enums, err := config.LoadEnums(ctx, o.path)
		if err != nil {
			return nil, err
		}
		return provisioner.ProvisionEnums(ctx, enums)
	default:
		return nil, fmt.Errorf("%w: %s", errUnknownItemKind, o.kind)
	}
}
