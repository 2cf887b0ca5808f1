// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mia-platform/atlanctl/internal/destination"
	"github.com/mia-platform/atlanctl/internal/destination/catalog"
	"github.com/mia-platform/atlanctl/internal/destination/writer"
)

const (
	localOutputFlagName  = "local-output"
	localOutputFlagUsage = "If set, writes the type definitions to stdout instead of sending them to the tenant"
	defaultLocalOutput   = false
)

// flags collects the CLI options shared by the provisioning commands.
type flags struct {
	localOutput bool
}

// addFlags registers the CLI flags on cmd.
func (f *flags) addFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.localOutput, localOutputFlagName, defaultLocalOutput, localOutputFlagUsage)
}

// toOptions builds an options instance from the parsed flags and CLI arguments.
// The destination is configured before anything else so that a missing tenant
// configuration stops the command before reading the input file.
func (f *flags) toOptions(cmd *cobra.Command, args []string, kind itemKind) (*options, error) {
	switch {
	case len(args) == 0:
		return nil, errNoArguments
	case len(args) > 1:
		return nil, errTooManyArguments
	}

	var destination destination.Destination
	if f.localOutput {
		destination = writer.NewDestination(cmd.OutOrStdout())
	} else {
		var err error
		destination, err = catalog.NewDestination()
		if err != nil {
			return nil, err
		}
	}

	return &options{
		kind:        kind,
		path:        args[0],
		destination: destination,
		out:         cmd.OutOrStdout(),
	}, nil
}
