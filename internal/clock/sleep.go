// Package clock provides context-aware time helpers.
package clock

import (
	"context"
	"time"
)

// Sleep waits for the duration or returns early with the context error
// if the context ends first. A non-positive duration only checks the
// context.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
