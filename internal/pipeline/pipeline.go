// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/mia-platform/atlanctl/internal/destination"
	"github.com/mia-platform/atlanctl/internal/logger"
	"github.com/mia-platform/atlanctl/internal/reconcile"
)

const (
	loggerName = "atlanctl:pipeline"
)

// Pipeline creates or updates type definitions in a destination.
type Pipeline struct {
	destination destination.Destination
	reconciler  *reconcile.Reconciler
	progress    io.Writer
}

// New returns a Pipeline writing to destination. Human readable progress lines
// are printed to progress.
func New(destination destination.Destination, progress io.Writer) *Pipeline {
	if progress == nil {
		progress = io.Discard
	}

	return &Pipeline{
		destination: destination,
		reconciler:  reconcile.New(destination),
		progress:    progress,
	}
}

func (p *Pipeline) printProgress(format string, args ...any) {
	fmt.Fprintf(p.progress, format+"\n", args...)
}

// fail records err for the item and logs it. Context cancellation is returned
// to stop the run.
func (p *Pipeline) fail(ctx context.Context, summary *Summary, kind, name string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	logger.FromContext(ctx).WithName(loggerName).Error("error provisioning "+kind, "name", name, "error", err.Error())
	summary.add(name, ResultFailed, err)
	return nil
}
