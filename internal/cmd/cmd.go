// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

const (
	tagsCmdUsage = "tags FILE"
	tagsCmdShort = "create the tags described in a YAML file"
	tagsCmdLong  = `Create the tags described in a YAML file.
	Every tag has a type between color, emoji and icon, a name, an optional
	description and the fields required by its type. Tags that already exist
	are reported as failed and the remaining ones are still created.`

	tagsCmdExample = `# Create the tags of the template file
	atlanctl tags tag_template.yaml

	# Print the tag definitions without contacting the tenant
	atlanctl tags tag_template.yaml --local-output`

	customMetadataCmdUsage = "custom-metadata FILE"
	customMetadataCmdShort = "create or update the custom metadata described in a JSON file"
	customMetadataCmdLong  = `Create or update the custom metadata described in a JSON file.
	Missing definitions are created with the default logo. For existing definitions
	the attributes listed in the file get their applicability overwritten, new
	attributes are appended and the attributes not listed are kept as they are.

	The value ["all"] selects every known item of an applicability category;
	connections and glossaries are looked up on the tenant.`

	customMetadataCmdExample = `# Reconcile the custom metadata definitions
	atlanctl custom-metadata custom_metadata.json`

	enumsCmdUsage = "enums FILE"
	enumsCmdShort = "create or replace the enumerations described in a JSON file"
	enumsCmdLong  = `Create or replace the enumerations described in a JSON file.
	The values of an existing enumeration are replaced with the ones in the file.`

	enumsCmdExample = `# Create or replace the enumerations
	atlanctl enums options.json`
)

// TagsCmd returns the Cobra command that creates tags.
func TagsCmd() *cobra.Command {
	return provisionCmd(kindTags, tagsCmdUsage, tagsCmdShort, tagsCmdLong, tagsCmdExample)
}

// CustomMetadataCmd returns the Cobra command that creates or updates custom metadata.
func CustomMetadataCmd() *cobra.Command {
	return provisionCmd(kindCustomMetadata, customMetadataCmdUsage, customMetadataCmdShort, customMetadataCmdLong, customMetadataCmdExample)
}

// EnumsCmd returns the Cobra command that creates or replaces enumerations.
func EnumsCmd() *cobra.Command {
	return provisionCmd(kindEnums, enumsCmdUsage, enumsCmdShort, enumsCmdLong, enumsCmdExample)
}

func provisionCmd(kind itemKind, use, short, long, example string) *cobra.Command {
	flags := &flags{}
	cmd := &cobra.Command{
		Use:     use,
		Short:   heredoc.Doc(short),
		Long:    heredoc.Doc(long),
		Example: heredoc.Doc(example),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: validArgsFunc(kind),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.toOptions(cmd, args, kind)
			if err != nil {
				return handleError(cmd, err)
			}

			if err := opts.validate(); err != nil {
				return handleError(cmd, err)
			}

			if err := opts.execute(cmd.Context()); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}
