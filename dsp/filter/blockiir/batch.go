package blockiir

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-blockiir/dsp/buffer"
)

// ApplyAll filters every grid in place, at most [WithBatchConcurrency] at a
// time. All grids are validated before any is filtered. Cancellation is
// checked between grids; a grid that has started is always completed.
func (f *Filter[T]) ApplyAll(ctx context.Context, grids ...*buffer.Grid[T]) error {
	for i, g := range grids {
		if err := f.check(g); err != nil {
			return fmt.Errorf("grid %d: %w", i, err)
		}
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(f.cfg.batchConcurrency)

	for i, g := range grids {
		if egCtx.Err() != nil {
			break
		}

		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			if err := f.Apply(g); err != nil {
				return fmt.Errorf("grid %d: %w", i, err)
			}

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}
