// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/mia-platform/atlanctl/internal/pipeline"
)

// printSummary writes one row per processed item followed by the number of
// items created or updated. Skipped and failed rows are listed for reference
// only and are not part of the processed count.
func printSummary(w io.Writer, summary *pipeline.Summary) error {
	if len(summary.Items) > 0 {
		fmt.Fprintln(w)

		table := tablewriter.NewTable(w)
		table.Header("Item", "Result")
		for _, item := range summary.Items {
			if err := table.Append(item.Name, string(item.Result)); err != nil {
				return err
			}
		}

		if err := table.Render(); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\nSuccessfully processed %d items\n", summary.Processed()); err != nil {
		return err
	}

	if notProcessed := len(summary.Skipped) + len(summary.Failed); notProcessed > 0 {
		_, err := fmt.Fprintf(w, "%d items skipped or failed are listed above for reference only\n", notProcessed)
		return err
	}

	return nil
}
