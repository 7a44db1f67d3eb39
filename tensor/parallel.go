package tensor

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// forEachChunk runs f(worker, i) for every chunk index i in [0, n), fanning
// the indices out over at most degree workers. Each worker processes a
// strided subset of the indices, so f may hold per-worker state (such as a
// ShallowCopy of a lattigo object) keyed by the worker index. Workers stop
// scheduling new chunks after the first failure, and the first error is
// returned.
//
// Each invocation writes only to its own output slot, so results are in
// chunk order regardless of completion order.
func forEachChunk(n, degree int, f func(worker, i int) error) error {
	if n == 0 {
		return nil
	}
	if degree > n {
		degree = n
	}
	if degree <= 1 {
		for i := 0; i < n; i++ {
			if err := f(0, i); err != nil {
				return err
			}
		}
		return nil
	}

	g, ctx := errgroup.WithContext(context.Background())
	for w := 0; w < degree; w++ {
		w := w
		g.Go(func() error {
			for i := w; i < n; i += degree {
				if ctx.Err() != nil {
					return nil // another worker failed, abandon the remaining chunks
				}
				if err := f(w, i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
