package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dingocoin/nft-marketplace-backend/internal/nft/model"
)

// nftRankKeys whitelists the sortable nft_stats columns exposed to the
// query API.
var nftRankKeys = map[string]struct{}{
	"list_height":  {},
	"trade_height": {},
	"trade_count":  {},
	"trade_volume": {},
	"price":        {},
}

// NftStats returns an asset's aggregate, or a zero-valued aggregate
// when the asset has none yet.
func (q queries) NftStats(ctx context.Context, address string) (stats model.NftStats, err error) {
	started := time.Now()
	defer func() {
		q.observe("nft_stats", err, started)
	}()

	stats = model.NftStats{Address: address}

	row := q.ex.QueryRowContext(ctx,
		`SELECT creator, owner, list_height, trade_height, trade_count, trade_volume, price,
		        trade_count_scaled, trade_volume_scaled
		 FROM nft_stats WHERE address = ?`,
		address,
	)
	var (
		listHeight, tradeHeight sql.NullInt64
		tradeCount              int64
		tradeVolume             string
		price                   sql.NullString
	)
	err = row.Scan(&stats.Creator, &stats.Owner, &listHeight, &tradeHeight, &tradeCount,
		&tradeVolume, &price, &stats.TradeCountScaled, &stats.TradeVolumeScaled)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = nil
			return stats, nil
		}
		return model.NftStats{}, fmt.Errorf("scan nft stats of %s: %w", address, err)
	}

	stats.ListHeight = heightFromNullInt(listHeight)
	stats.TradeHeight = heightFromNullInt(tradeHeight)
	stats.TradeCount = uint64(tradeCount)
	if stats.TradeVolume, err = amountFromText(tradeVolume); err != nil {
		return model.NftStats{}, err
	}
	if stats.Price, err = amountFromNullText(price); err != nil {
		return model.NftStats{}, err
	}
	return stats, nil
}

// SetNftStats upserts an asset's aggregate.
func (q queries) SetNftStats(ctx context.Context, stats model.NftStats) (err error) {
	started := time.Now()
	defer func() {
		q.observe("set_nft_stats", err, started)
	}()

	_, err = q.ex.ExecContext(ctx,
		`INSERT INTO nft_stats (address, creator, owner, list_height, trade_height, trade_count,
		                        trade_volume, price, trade_count_scaled, trade_volume_scaled)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (address) DO UPDATE SET
		     creator = excluded.creator,
		     owner = excluded.owner,
		     list_height = excluded.list_height,
		     trade_height = excluded.trade_height,
		     trade_count = excluded.trade_count,
		     trade_volume = excluded.trade_volume,
		     price = excluded.price,
		     trade_count_scaled = excluded.trade_count_scaled,
		     trade_volume_scaled = excluded.trade_volume_scaled`,
		stats.Address, stats.Creator, stats.Owner,
		nullableHeight(stats.ListHeight), nullableHeight(stats.TradeHeight),
		int64(stats.TradeCount), amountText(stats.TradeVolume), nullableAmount(stats.Price),
		stats.TradeCountScaled, stats.TradeVolumeScaled,
	)
	if err != nil {
		return fmt.Errorf("upsert nft stats of %s: %w", stats.Address, err)
	}
	return nil
}

// RankedAssets returns asset addresses ordered by a whitelisted stats
// key. Rows where the key is unset are excluded.
func (q queries) RankedAssets(ctx context.Context, key string, descending bool, offset, limit int) (addresses []string, err error) {
	started := time.Now()
	defer func() {
		q.observe("ranked_assets", err, started)
	}()

	if _, ok := nftRankKeys[key]; !ok {
		return nil, fmt.Errorf("unsupported ranking key %q", key)
	}
	if limit < 0 || limit > 100 {
		return nil, fmt.Errorf("limit %d out of range", limit)
	}
	if offset < 0 {
		return nil, fmt.Errorf("offset %d out of range", offset)
	}
	direction := "ASC"
	if descending {
		direction = "DESC"
	}

	rows, err := q.ex.QueryContext(ctx,
		`SELECT address FROM nft_stats WHERE `+key+` IS NOT NULL
		 ORDER BY CAST(`+key+` AS REAL) `+direction+` LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("rank assets by %s: %w", key, err)
	}
	return scanStrings(rows)
}

// CreatedAssets returns the assets created by owner, oldest first.
func (q queries) CreatedAssets(ctx context.Context, owner string) (addresses []string, err error) {
	started := time.Now()
	defer func() {
		q.observe("created_assets", err, started)
	}()

	rows, err := q.ex.QueryContext(ctx,
		`SELECT address FROM nft_stats WHERE creator = ? ORDER BY id ASC`, owner)
	if err != nil {
		return nil, fmt.Errorf("query created assets of %s: %w", owner, err)
	}
	return scanStrings(rows)
}

// OwnedAssets returns the assets currently held by owner, oldest first.
func (q queries) OwnedAssets(ctx context.Context, owner string) (addresses []string, err error) {
	started := time.Now()
	defer func() {
		q.observe("owned_assets", err, started)
	}()

	rows, err := q.ex.QueryContext(ctx,
		`SELECT address FROM nft_stats WHERE owner = ? ORDER BY id ASC`, owner)
	if err != nil {
		return nil, fmt.Errorf("query owned assets of %s: %w", owner, err)
	}
	return scanStrings(rows)
}

// CreatedAssetCount returns the number of assets created by owner.
func (q queries) CreatedAssetCount(ctx context.Context, owner string) (count uint64, err error) {
	started := time.Now()
	defer func() {
		q.observe("created_asset_count", err, started)
	}()

	var n int64
	err = q.ex.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM nft_stats WHERE creator = ?`, owner,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count created assets of %s: %w", owner, err)
	}
	return uint64(n), nil
}

// PlatformStats aggregates trade volume across all assets, in whole
// coins.
func (q queries) PlatformStats(ctx context.Context) (stats model.PlatformStats, err error) {
	started := time.Now()
	defer func() {
		q.observe("platform_stats", err, started)
	}()

	var total sql.NullFloat64
	err = q.ex.QueryRowContext(ctx,
		`SELECT SUM(CAST(trade_volume AS REAL) / 100000000.0) FROM nft_stats`,
	).Scan(&total)
	if err != nil {
		return model.PlatformStats{}, fmt.Errorf("query platform stats: %w", err)
	}
	if total.Valid {
		stats.TotalVolume = uint64(total.Float64)
	}
	return stats, nil
}
