// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

// itemKind is the kind of definitions handled by a command.
type itemKind string

const (
	kindTags           itemKind = "tags"
	kindCustomMetadata itemKind = "custom metadata"
	kindEnums          itemKind = "enumerations"
)

var (
	errNoArguments      = errors.New("no input file provided")
	errTooManyArguments = errors.New("only one input file can be provided")
	errUnknownItemKind  = errors.New("unknown item kind")

	// fileExtensions lists the extensions proposed by the shell completion for each kind.
	fileExtensions = map[itemKind][]string{
		kindTags:           {"yaml", "yml"},
		kindCustomMetadata: {"json"},
		kindEnums:          {"json"},
	}
)

// handleError will do custom print error handling based on the type of error received.
// it will return nil if the command must return 0 exit code, otherwise it will return
// the original error.
func handleError(cmd *cobra.Command, err error) error {
	switch {
	case errors.Is(err, errNoArguments):
		_ = cmd.Usage() // do not check error as we cannot do much about it
		return nil
	case errors.Is(err, errTooManyArguments):
		cmd.PrintErrln(err)
		_ = cmd.Usage() // do not check error as we cannot do much about it
		return err
	case errors.Is(err, context.Canceled):
		return nil
	default:
		cmd.PrintErrln(err)
		return err
	}
}

func validArgsFunc(kind itemKind) cobra.CompletionFunc {
	return func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		return fileExtensions[kind], cobra.ShellCompDirectiveFilterFileExt
	}
}
