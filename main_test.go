// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package main

import (
	"bytes"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-platform/atlanctl/internal/logger"
)

func TestRootCommand(t *testing.T) {
	t.Parallel()

	Version = "test"
	BuildDate = "2024-06-01"

	cmd := rootCmd()
	buffer := new(bytes.Buffer)
	cmd.SetOut(buffer)

	log := logger.NewLogger(cmd.ErrOrStderr())
	ctx := logger.WithContext(t.Context(), log)

	cmd.SetArgs([]string{"--log-level", "WARN", "version"})
	err := cmd.ExecuteContext(ctx)
	require.NoError(t, err)

	log.Info("ignored line for set log level")
	lines := strings.Split(buffer.String(), "\n")
	assert.Len(t, lines, 2) // version output + empty line
	assert.Equal(t, versionString(Version, BuildDate, runtime.Version())+"\n", buffer.String())

	buffer.Reset()
	BuildDate = ""
	cmd.SetArgs([]string{"--log-level", "WARN", "version"})
	err = cmd.ExecuteContext(ctx)
	require.NoError(t, err)
	assert.Len(t, lines, 2) // version output + empty line
	assert.Equal(t, versionString(Version, "", runtime.Version())+"\n", buffer.String())
}

func TestSubcommands(t *testing.T) {
	t.Parallel()

	cmd := rootCmd()
	names := make([]string, 0)
	for _, subcommand := range cmd.Commands() {
		names = append(names, subcommand.Name())
	}

	assert.Subset(t, names, []string{"tags", "custom-metadata", "enums", "version"})
}

func TestLogFormat(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		args          []string
		expectJSON    bool
		expectMessage bool
	}{
		"json logs by default": {
			args:          []string{"--log-level", "DEBUG"},
			expectJSON:    true,
			expectMessage: true,
		},
		"text logs": {
			args:          []string{"--log-level", "DEBUG", "--log-format", "text"},
			expectMessage: true,
		},
		"level filters text logs": {
			args: []string{"--log-level", "ERROR", "--log-format", "TEXT"},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cmd := rootCmd()
			outBuffer := new(bytes.Buffer)
			errBuffer := new(bytes.Buffer)
			cmd.SetOut(outBuffer)
			cmd.SetErr(errBuffer)

			ctx := logger.WithContext(t.Context(), logger.NewLogger(cmd.ErrOrStderr()))
			cmd.SetArgs(slices.Concat(tc.args, []string{"enums", filepath.Join("internal", "cmd", "testdata", "enums.json"), "--local-output"}))

			require.NoError(t, cmd.ExecuteContext(ctx))
			assert.Contains(t, outBuffer.String(), "Successfully processed 2 items\n")

			logs := errBuffer.String()
			if !tc.expectMessage {
				assert.Empty(t, logs)
				return
			}

			assert.Contains(t, logs, "enumeration provisioned")
			assert.Equal(t, tc.expectJSON, strings.HasPrefix(logs, "{"))
		})
	}
}
