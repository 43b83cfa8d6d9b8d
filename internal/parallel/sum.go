// Package parallel spreads independent per-item work across goroutines and
// reduces the results. Reductions are sums, so the answer does not depend
// on scheduling.
package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Sum applies fn to every item and adds the results.
// Items are split into at most workers contiguous chunks; workers <= 1 runs
// everything on the calling goroutine. The first error cancels the rest.
func Sum[T any](ctx context.Context, items []T, workers int, fn func(T) (int, error)) (int, error) {
	if workers <= 1 || len(items) < 2 {
		return sumChunk(ctx, items, fn)
	}
	workers = min(workers, len(items))

	g, gctx := errgroup.WithContext(ctx)
	partials := make([]int, workers)
	size := (len(items) + workers - 1) / workers

	for w := 0; w < workers; w++ {
		lo := w * size
		if lo >= len(items) {
			break
		}
		hi := min(lo+size, len(items))
		g.Go(func() error {
			total, err := sumChunk(gctx, items[lo:hi], fn)
			if err != nil {
				return err
			}
			partials[w] = total
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := 0
	for _, p := range partials {
		total += p
	}
	return total, nil
}

// Count returns how many items satisfy pred.
func Count[T any](ctx context.Context, items []T, workers int, pred func(T) (bool, error)) (int, error) {
	return Sum(ctx, items, workers, func(item T) (int, error) {
		ok, err := pred(item)
		if err != nil || !ok {
			return 0, err
		}
		return 1, nil
	})
}

func sumChunk[T any](ctx context.Context, items []T, fn func(T) (int, error)) (int, error) {
	total := 0
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		v, err := fn(item)
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}
