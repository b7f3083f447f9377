package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dingocoin/nft-marketplace-backend/internal/nft/model"
)

// ProfileStats returns a wallet's aggregate, or a zero-valued aggregate
// when none exists yet.
func (q queries) ProfileStats(ctx context.Context, owner string) (stats model.ProfileStats, err error) {
	started := time.Now()
	defer func() {
		q.observe("profile_stats", err, started)
	}()

	stats = model.ProfileStats{Owner: owner}

	row := q.ex.QueryRowContext(ctx,
		`SELECT first_list_height, last_list_height, list_count, trade_height, trade_count,
		        sell_volume, buy_volume, list_sold_count, royalty_volume
		 FROM profile_stats WHERE owner = ?`,
		owner,
	)
	var (
		firstList, lastList, tradeHeight     sql.NullInt64
		listCount, tradeCount, listSoldCount int64
		sellVolume, buyVolume, royaltyVolume string
	)
	err = row.Scan(&firstList, &lastList, &listCount, &tradeHeight, &tradeCount,
		&sellVolume, &buyVolume, &listSoldCount, &royaltyVolume)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = nil
			return stats, nil
		}
		return model.ProfileStats{}, fmt.Errorf("scan profile stats of %s: %w", owner, err)
	}

	stats.FirstListHeight = heightFromNullInt(firstList)
	stats.LastListHeight = heightFromNullInt(lastList)
	stats.TradeHeight = heightFromNullInt(tradeHeight)
	stats.ListCount = uint64(listCount)
	stats.TradeCount = uint64(tradeCount)
	stats.ListSoldCount = uint64(listSoldCount)
	if stats.SellVolume, err = amountFromText(sellVolume); err != nil {
		return model.ProfileStats{}, err
	}
	if stats.BuyVolume, err = amountFromText(buyVolume); err != nil {
		return model.ProfileStats{}, err
	}
	if stats.RoyaltyVolume, err = amountFromText(royaltyVolume); err != nil {
		return model.ProfileStats{}, err
	}
	return stats, nil
}

// SetProfileStats upserts a wallet's aggregate.
func (q queries) SetProfileStats(ctx context.Context, stats model.ProfileStats) (err error) {
	started := time.Now()
	defer func() {
		q.observe("set_profile_stats", err, started)
	}()

	_, err = q.ex.ExecContext(ctx,
		`INSERT INTO profile_stats (owner, first_list_height, last_list_height, list_count,
		                            trade_height, trade_count, sell_volume, buy_volume,
		                            list_sold_count, royalty_volume)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (owner) DO UPDATE SET
		     first_list_height = excluded.first_list_height,
		     last_list_height = excluded.last_list_height,
		     list_count = excluded.list_count,
		     trade_height = excluded.trade_height,
		     trade_count = excluded.trade_count,
		     sell_volume = excluded.sell_volume,
		     buy_volume = excluded.buy_volume,
		     list_sold_count = excluded.list_sold_count,
		     royalty_volume = excluded.royalty_volume`,
		stats.Owner,
		nullableHeight(stats.FirstListHeight), nullableHeight(stats.LastListHeight),
		int64(stats.ListCount), nullableHeight(stats.TradeHeight), int64(stats.TradeCount),
		amountText(stats.SellVolume), amountText(stats.BuyVolume),
		int64(stats.ListSoldCount), amountText(stats.RoyaltyVolume),
	)
	if err != nil {
		return fmt.Errorf("upsert profile stats of %s: %w", stats.Owner, err)
	}
	return nil
}

// ProfilesByTradeCount ranks wallets that have a profile by trade
// count.
func (q queries) ProfilesByTradeCount(ctx context.Context) (owners []string, err error) {
	started := time.Now()
	defer func() {
		q.observe("profiles_by_trade_count", err, started)
	}()

	rows, err := q.ex.QueryContext(ctx,
		`SELECT profile_stats.owner FROM profile_stats
		 INNER JOIN profiles ON profile_stats.owner = profiles.owner
		 ORDER BY profile_stats.trade_count DESC LIMIT 50`)
	if err != nil {
		return nil, fmt.Errorf("rank profiles by trade count: %w", err)
	}
	return scanStrings(rows)
}

// ProfilesByEarnings ranks wallets that have a profile by net earnings
// (royalties plus sales minus purchases).
func (q queries) ProfilesByEarnings(ctx context.Context) (owners []string, err error) {
	started := time.Now()
	defer func() {
		q.observe("profiles_by_earnings", err, started)
	}()

	rows, err := q.ex.QueryContext(ctx,
		`SELECT profile_stats.owner FROM profile_stats
		 INNER JOIN profiles ON profile_stats.owner = profiles.owner
		 ORDER BY CAST(royalty_volume AS REAL) + CAST(sell_volume AS REAL) - CAST(buy_volume AS REAL) DESC
		 LIMIT 100`)
	if err != nil {
		return nil, fmt.Errorf("rank profiles by earnings: %w", err)
	}
	return scanStrings(rows)
}
