// Package redis publishes derived marketplace state and registered
// content to a Redis instance that fronts the public read path.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/dingocoin/nft-marketplace-backend/internal/nft/model"
	"github.com/dingocoin/nft-marketplace-backend/pkg/batcher"
)

// Key prefixes of the published namespaces.
const (
	stateKeyPrefix      = "nft:state:"
	metaKeyPrefix       = "nft:meta:"
	contentKeyPrefix    = "nft:content:"
	previewKeyPrefix    = "nft:preview:"
	profileKeyPrefix    = "nft:profile:"
	collectionKeyPrefix = "nft:collection:"
)

const (
	stateFlushSize     = 128
	stateFlushInterval = time.Second
	stateFlushRPS      = 10
)

// ErrNotFound is returned when a requested entry was never published.
var ErrNotFound = errors.New("not published")

// Metrics observes publisher operations.
type Metrics interface {
	Observe(operation string, err error, started time.Time)
}

type stateEntry struct {
	address string
	payload []byte
}

// Publisher writes the published namespaces. Asset state changes are
// frequent during catch-up indexing, so they are batched and
// rate-limited; everything else is written through directly.
type Publisher struct {
	client  *redis.Client
	metrics Metrics
	logger  *zap.Logger
	states  *batcher.Batcher[stateEntry]
}

func NewPublisher(client *redis.Client, metrics Metrics, logger *zap.Logger) *Publisher {
	p := &Publisher{
		client:  client,
		metrics: metrics,
		logger:  logger,
	}
	p.states = batcher.New(logger.Named("stateBatcher"), p.flushStates, batcher.Config{
		FlushSize:     stateFlushSize,
		FlushInterval: stateFlushInterval,
		RPS:           stateFlushRPS,
	})
	return p
}

// Start begins the background state flushing loop.
func (p *Publisher) Start(ctx context.Context) {
	p.states.Start(ctx)
}

// Stop flushes pending state writes and stops the loop.
func (p *Publisher) Stop() {
	p.states.Stop()
}

func (p *Publisher) observe(operation string, err error, started time.Time) {
	if p.metrics != nil {
		p.metrics.Observe(operation, err, started)
	}
}

func (p *Publisher) flushStates(ctx context.Context, entries []stateEntry) (err error) {
	started := time.Now()
	defer func() {
		p.observe("flush_states", err, started)
	}()

	pipe := p.client.Pipeline()
	for _, entry := range entries {
		pipe.Set(ctx, stateKeyPrefix+entry.address, entry.payload, 0)
	}
	_, err = pipe.Exec(ctx)
	return err
}

// PublishState queues the published snapshot of an asset.
func (p *Publisher) PublishState(ctx context.Context, address string, state model.AssetState) error {
	payload, err := json.Marshal(newStatePayload(state))
	if err != nil {
		return err
	}
	return p.states.Add(ctx, stateEntry{address: address, payload: payload})
}

func (p *Publisher) PublishMeta(ctx context.Context, address string, meta model.AssetMeta) (err error) {
	started := time.Now()
	defer func() {
		p.observe("publish_meta", err, started)
	}()

	payload, err := json.Marshal(metaPayload{
		Name:        meta.Name,
		Description: meta.Description,
		Tags:        meta.Tags,
	})
	if err != nil {
		return err
	}
	return p.client.Set(ctx, metaKeyPrefix+address, payload, 0).Err()
}

func (p *Publisher) PublishContent(ctx context.Context, address string, content []byte) (err error) {
	started := time.Now()
	defer func() {
		p.observe("publish_content", err, started)
	}()
	return p.client.Set(ctx, contentKeyPrefix+address, content, 0).Err()
}

func (p *Publisher) PublishPreview(ctx context.Context, address string, preview []byte) (err error) {
	started := time.Now()
	defer func() {
		p.observe("publish_preview", err, started)
	}()
	return p.client.Set(ctx, previewKeyPrefix+address, preview, 0).Err()
}

func (p *Publisher) PublishProfile(ctx context.Context, owner string, profile model.Profile) (err error) {
	started := time.Now()
	defer func() {
		p.observe("publish_profile", err, started)
	}()

	payload, err := json.Marshal(profilePayload{
		Owner:     profile.Owner,
		Name:      profile.Name,
		Thumbnail: profile.Thumbnail,
	})
	if err != nil {
		return err
	}
	return p.client.Set(ctx, profileKeyPrefix+owner, payload, 0).Err()
}

func (p *Publisher) PublishCollection(ctx context.Context, handle string, collection model.Collection) (err error) {
	started := time.Now()
	defer func() {
		p.observe("publish_collection", err, started)
	}()

	payload, err := json.Marshal(collectionPayload{
		Handle:      collection.Handle,
		Owner:       collection.Owner,
		Name:        collection.Name,
		Thumbnail:   collection.Thumbnail,
		Description: collection.Description,
	})
	if err != nil {
		return err
	}
	return p.client.Set(ctx, collectionKeyPrefix+handle, payload, 0).Err()
}

// Content returns previously registered asset content.
func (p *Publisher) Content(ctx context.Context, address string) (content []byte, err error) {
	started := time.Now()
	defer func() {
		p.observe("get_content", err, started)
	}()

	content, err = p.client.Get(ctx, contentKeyPrefix+address).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("content of %s: %w", address, ErrNotFound)
	}
	return content, err
}
