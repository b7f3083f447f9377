package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dingocoin/nft-marketplace-backend/internal/nft/model"
)

// collectionRankKeys whitelists the nft_stats columns the
// activity-ranked collection queries may aggregate.
var collectionRankKeys = map[string]struct{}{
	"trade_count_scaled":  {},
	"trade_volume_scaled": {},
	"trade_volume":        {},
}

// Collection returns a collection by handle, or nil when unknown.
func (q queries) Collection(ctx context.Context, handle string) (collection *model.Collection, err error) {
	started := time.Now()
	defer func() {
		q.observe("collection", err, started)
	}()

	row := q.ex.QueryRowContext(ctx,
		`SELECT handle, owner, name, thumbnail, description FROM collections WHERE handle = ?`, handle)
	var c model.Collection
	var thumbnail sql.NullString
	if err = row.Scan(&c.Handle, &c.Owner, &c.Name, &thumbnail, &c.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = nil
			return nil, nil
		}
		return nil, fmt.Errorf("scan collection %s: %w", handle, err)
	}
	if thumbnail.Valid {
		c.Thumbnail = &thumbnail.String
	}
	return &c, nil
}

// Collections returns every collection.
func (q queries) Collections(ctx context.Context) (collections []model.Collection, err error) {
	started := time.Now()
	defer func() {
		q.observe("collections", err, started)
	}()

	rows, err := q.ex.QueryContext(ctx,
		`SELECT handle, owner, name, thumbnail, description FROM collections ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query collections: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c model.Collection
		var thumbnail sql.NullString
		if err = rows.Scan(&c.Handle, &c.Owner, &c.Name, &thumbnail, &c.Description); err != nil {
			return nil, fmt.Errorf("scan collection: %w", err)
		}
		if thumbnail.Valid {
			c.Thumbnail = &thumbnail.String
		}
		collections = append(collections, c)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return collections, nil
}

// SetCollection upserts a collection. The owner of an existing
// collection is never changed.
func (q queries) SetCollection(ctx context.Context, collection model.Collection) (err error) {
	started := time.Now()
	defer func() {
		q.observe("set_collection", err, started)
	}()

	var thumbnail any
	if collection.Thumbnail != nil {
		thumbnail = *collection.Thumbnail
	}
	_, err = q.ex.ExecContext(ctx,
		`INSERT INTO collections (handle, owner, name, thumbnail, description)
		 VALUES (?, COALESCE(?, ''), ?, ?, ?)
		 ON CONFLICT (handle) DO UPDATE SET
		     name = excluded.name,
		     thumbnail = excluded.thumbnail,
		     description = excluded.description`,
		collection.Handle, collection.Owner, collection.Name, thumbnail, collection.Description,
	)
	if err != nil {
		return fmt.Errorf("upsert collection %s: %w", collection.Handle, err)
	}
	return nil
}

// CollectionsByOwner returns the handles owned by owner, oldest first.
func (q queries) CollectionsByOwner(ctx context.Context, owner string) (handles []string, err error) {
	started := time.Now()
	defer func() {
		q.observe("collections_by_owner", err, started)
	}()

	rows, err := q.ex.QueryContext(ctx,
		`SELECT handle FROM collections WHERE owner = ? ORDER BY id ASC`, owner)
	if err != nil {
		return nil, fmt.Errorf("query collections of %s: %w", owner, err)
	}
	return scanStrings(rows)
}

// CollectionCount returns the number of collections owned by owner.
func (q queries) CollectionCount(ctx context.Context, owner string) (count uint64, err error) {
	started := time.Now()
	defer func() {
		q.observe("collection_count", err, started)
	}()

	var n int64
	err = q.ex.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM collections WHERE owner = ?`, owner,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count collections of %s: %w", owner, err)
	}
	return uint64(n), nil
}

// SearchCollections returns collections whose handle, name or
// description contains every term.
func (q queries) SearchCollections(ctx context.Context, terms []string) (handles []string, err error) {
	started := time.Now()
	defer func() {
		q.observe("search_collections", err, started)
	}()

	where, args := likeAllClause("handle || ' ' || name || ' ' || description", terms)
	rows, err := q.ex.QueryContext(ctx,
		`SELECT handle FROM collections WHERE `+where+` LIMIT 50`, args...)
	if err != nil {
		return nil, fmt.Errorf("search collections: %w", err)
	}
	return scanStrings(rows)
}

// CollectionStats aggregates the assets assigned to a collection.
func (q queries) CollectionStats(ctx context.Context, handle string) (stats model.CollectionStats, err error) {
	started := time.Now()
	defer func() {
		q.observe("collection_stats", err, started)
	}()

	row := q.ex.QueryRowContext(ctx,
		`SELECT COUNT(1),
		        COALESCE(SUM(nft_stats.trade_count), 0),
		        COALESCE(SUM(CAST(nft_stats.trade_volume AS REAL) / 100000000.0), 0)
		 FROM assets
		 INNER JOIN nft_stats ON assets.address = nft_stats.address
		 WHERE assets.collection = ?`,
		handle,
	)
	var count, tradeCount int64
	var tradeVolume float64
	if err = row.Scan(&count, &tradeCount, &tradeVolume); err != nil {
		return model.CollectionStats{}, fmt.Errorf("scan collection stats of %s: %w", handle, err)
	}
	return model.CollectionStats{
		Count:       uint64(count),
		TradeCount:  uint64(tradeCount),
		TradeVolume: uint64(tradeVolume),
	}, nil
}

// CollectionsByActivity ranks collections by a decayed nft_stats
// aggregate. The stored scaled counters are valued as of each asset's
// last trade; the decay factor raised to the height difference brings
// them to the current height. Pass decay 1 for undecayed aggregation.
func (q queries) CollectionsByActivity(ctx context.Context, key string, decay float64, height uint64, limit int) (handles []string, err error) {
	started := time.Now()
	defer func() {
		q.observe("collections_by_activity", err, started)
	}()

	if _, ok := collectionRankKeys[key]; !ok {
		return nil, fmt.Errorf("unsupported activity key %q", key)
	}
	if limit < 0 || limit > 100 {
		return nil, fmt.Errorf("limit %d out of range", limit)
	}

	rows, err := q.ex.QueryContext(ctx,
		`SELECT assets.collection,
		        COALESCE(SUM(CAST(nft_stats.`+key+` AS REAL) * pow(?, ? - nft_stats.trade_height)), 0) AS activity
		 FROM nft_stats
		 INNER JOIN assets ON nft_stats.address = assets.address
		 WHERE assets.collection IS NOT NULL
		 GROUP BY assets.collection
		 ORDER BY activity DESC LIMIT ?`,
		decay, int64(height), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("rank collections by %s: %w", key, err)
	}
	defer rows.Close()

	for rows.Next() {
		var handle string
		var activity float64
		if err = rows.Scan(&handle, &activity); err != nil {
			return nil, fmt.Errorf("scan collection activity: %w", err)
		}
		handles = append(handles, handle)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return handles, nil
}

// CollectionsByValuable ranks collections by mean price per trade.
func (q queries) CollectionsByValuable(ctx context.Context) (handles []string, err error) {
	started := time.Now()
	defer func() {
		q.observe("collections_by_valuable", err, started)
	}()

	rows, err := q.ex.QueryContext(ctx,
		`SELECT handle FROM (
		     SELECT assets.collection AS handle,
		            SUM(nft_stats.trade_count) AS trade_count,
		            SUM(CAST(nft_stats.trade_volume AS REAL)) AS trade_volume
		     FROM nft_stats
		     INNER JOIN assets ON nft_stats.address = assets.address
		     WHERE assets.collection IS NOT NULL
		     GROUP BY assets.collection
		 ) WHERE trade_count > 0
		 ORDER BY trade_volume / trade_count DESC LIMIT 100`)
	if err != nil {
		return nil, fmt.Errorf("rank collections by value: %w", err)
	}
	return scanStrings(rows)
}
