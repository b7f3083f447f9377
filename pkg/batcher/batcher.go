// Package batcher buffers items and flushes them in rate-limited
// batches.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned by Add after Stop.
var ErrStopped = errors.New("batcher stopped")

// Config bounds a Batcher. A batch is flushed when it reaches FlushSize
// or when FlushInterval elapses, whichever comes first, with at most
// RPS flushes per second.
type Config struct {
	FlushSize     int
	FlushInterval time.Duration
	RPS           int
}

// Batcher collects items of one kind and hands them to the flush
// callback in batches.
type Batcher[T any] struct {
	flush    func(context.Context, []T) error
	cfg      Config
	incoming chan T
	limiter  ratelimit.Limiter
	logger   *zap.Logger

	wg   sync.WaitGroup
	stop chan struct{}
}

// New constructs a Batcher over the flush callback. Call Start before
// adding items.
func New[T any](logger *zap.Logger, flush func(context.Context, []T) error, cfg Config) *Batcher[T] {
	return &Batcher[T]{
		flush:    flush,
		cfg:      cfg,
		incoming: make(chan T, cfg.FlushSize*2),
		limiter:  ratelimit.New(cfg.RPS),
		logger:   logger,
		stop:     make(chan struct{}),
	}
}

// Start begins the background flush loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes queued items and stops the loop.
func (b *Batcher[T]) Stop() {
	close(b.stop)
	b.wg.Wait()
}

// Add queues an item, blocking while the buffer is full.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return ErrStopped
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case b.incoming <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.cfg.FlushInterval)
	defer ticker.Stop()

	batch := make([]T, 0, b.cfg.FlushSize)

	emit := func() {
		if len(batch) == 0 {
			return
		}
		b.limiter.Take()
		if err := b.flush(ctx, batch); err != nil {
			b.logger.Error("batch not flushed", zap.Error(err), zap.Int("size", len(batch)))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(batch)))
		}
		batch = batch[:0]
	}

	// Items already queued when Stop is called still get flushed;
	// cancellation of the context drops them.
	drain := func() {
		for {
			select {
			case item := <-b.incoming:
				batch = append(batch, item)
				if len(batch) >= b.cfg.FlushSize {
					emit()
				}
			default:
				emit()
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			emit()
			return

		case <-b.stop:
			drain()
			return

		case item := <-b.incoming:
			batch = append(batch, item)
			if len(batch) >= b.cfg.FlushSize {
				emit()
			}

		case <-ticker.C:
			emit()
		}
	}
}
