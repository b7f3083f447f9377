// Package workerpool fans work items out over a bounded set of
// goroutines.
package workerpool

import (
	"context"
	"sync"
	"sync/atomic"
)

// Process runs process over every item with at most workers goroutines.
// The first error cancels the remaining work and is returned; a
// canceled context surfaces as its context error.
func Process[T any](ctx context.Context, workers int, items []T, process func(context.Context, T) error) error {
	if len(items) == 0 {
		return ctx.Err()
	}
	if workers < 1 {
		workers = 1
	}
	if workers > len(items) {
		workers = len(items)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		next     atomic.Int64
		firstErr error
		once     sync.Once
		wg       sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1)) - 1
				if i >= len(items) || ctx.Err() != nil {
					return
				}
				if err := process(ctx, items[i]); err != nil {
					once.Do(func() { firstErr = err })
					cancel()
					return
				}
			}
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}
