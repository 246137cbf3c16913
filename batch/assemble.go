package batch

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/batchaug/imagery"
	"github.com/katalvlaran/batchaug/parallel"
)

// assemble turns the ordered per-item results of one action into the named
// component.
//
// Contract (in order):
//  1. Any captured per-item failure aborts with *AssembleError carrying the
//     full set of failures; the batch keeps its previous component value.
//  2. Otherwise the items are stacked into one Volume.
//  3. A typed shape mismatch degrades to the common-crop policy: every item
//     is cropped (top-left) to the elementwise minimum rows/cols and the
//     stack is retried — which succeeds by construction unless channel
//     counts disagree.
//  4. Any other stacking failure propagates unchanged.
//  5. On success the volume replaces the component and the batch is
//     returned to the caller.
func (b *Batch) assemble(name string, results []parallel.Result[*imagery.Image]) error {
	if parallel.AnyFailed(results) {
		return &AssembleError{Component: name, Errs: parallel.Errors(results)}
	}

	items := parallel.Values(results)
	vol, err := imagery.Stack(items)

	var mismatch *imagery.ShapeMismatchError
	if errors.As(err, &mismatch) {
		rows, cols := imagery.MinShape(items)
		cropped := make([]*imagery.Image, len(items))
		for i, it := range items {
			c, cerr := it.Crop(0, 0, rows, cols)
			if cerr != nil {
				return fmt.Errorf("batch: reconcile %q: %w", name, cerr)
			}
			cropped[i] = c
		}
		vol, err = imagery.Stack(cropped)
	}
	if err != nil {
		// Non-mismatch failures (and channel disagreement on retry) are fatal.
		return fmt.Errorf("batch: stack %q: %w", name, err)
	}

	return b.SetComponent(name, vol)
}
