package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dingocoin/nft-marketplace-backend/internal/nft/model"
)

// AddTransaction appends a verified protocol transaction to an asset's
// ledger.
func (q queries) AddTransaction(ctx context.Context, rec model.TransactionRecord) (err error) {
	started := time.Now()
	defer func() {
		q.observe("add_transaction", err, started)
	}()

	_, err = q.ex.ExecContext(ctx,
		`INSERT INTO transactions (address, owner, txid, height) VALUES (?, ?, ?, ?)`,
		rec.Address, rec.Owner, rec.TxID, int64(rec.Height),
	)
	if err != nil {
		return fmt.Errorf("insert transaction %s: %w", rec.TxID, err)
	}
	return nil
}

// Transactions returns an asset's ledger in insertion order.
func (q queries) Transactions(ctx context.Context, address string) (recs []model.TransactionRecord, err error) {
	started := time.Now()
	defer func() {
		q.observe("transactions", err, started)
	}()

	rows, err := q.ex.QueryContext(ctx,
		`SELECT address, owner, txid, height FROM transactions WHERE address = ? ORDER BY id ASC`,
		address,
	)
	if err != nil {
		return nil, fmt.Errorf("query transactions of %s: %w", address, err)
	}
	defer rows.Close()

	for rows.Next() {
		var rec model.TransactionRecord
		var height int64
		if err = rows.Scan(&rec.Address, &rec.Owner, &rec.TxID, &height); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		rec.Height = uint64(height)
		recs = append(recs, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}

// FirstTransaction returns the asset's listing record, or nil when the
// asset has no ledger.
func (q queries) FirstTransaction(ctx context.Context, address string) (*model.TransactionRecord, error) {
	return q.edgeTransaction(ctx, "first_transaction", address, "ASC")
}

// LastTransaction returns the asset's most recent record, or nil.
func (q queries) LastTransaction(ctx context.Context, address string) (*model.TransactionRecord, error) {
	return q.edgeTransaction(ctx, "last_transaction", address, "DESC")
}

func (q queries) edgeTransaction(ctx context.Context, operation, address, direction string) (rec *model.TransactionRecord, err error) {
	started := time.Now()
	defer func() {
		q.observe(operation, err, started)
	}()

	row := q.ex.QueryRowContext(ctx,
		`SELECT address, owner, txid, height FROM transactions WHERE address = ? ORDER BY id `+direction+` LIMIT 1`,
		address,
	)
	var r model.TransactionRecord
	var height int64
	if err = row.Scan(&r.Address, &r.Owner, &r.TxID, &height); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = nil
			return nil, nil
		}
		return nil, fmt.Errorf("scan transaction of %s: %w", address, err)
	}
	r.Height = uint64(height)
	return &r, nil
}

// AssetNonce returns the number of ledger records of an asset, which is
// the nonce its next protocol transaction must carry.
func (q queries) AssetNonce(ctx context.Context, address string) (nonce uint64, err error) {
	started := time.Now()
	defer func() {
		q.observe("asset_nonce", err, started)
	}()

	var count int64
	err = q.ex.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM transactions WHERE address = ?`, address,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count transactions of %s: %w", address, err)
	}
	return uint64(count), nil
}

// MaxTransactionHeight returns the greatest height in the ledger, or
// nil when the ledger is empty. The indexer resumes from the block
// after it.
func (q queries) MaxTransactionHeight(ctx context.Context) (height *uint64, err error) {
	started := time.Now()
	defer func() {
		q.observe("max_transaction_height", err, started)
	}()

	var max sql.NullInt64
	err = q.ex.QueryRowContext(ctx, `SELECT MAX(height) FROM transactions`).Scan(&max)
	if err != nil {
		return nil, fmt.Errorf("query max transaction height: %w", err)
	}
	return heightFromNullInt(max), nil
}

// HistoricalAssets returns the assets an owner has ever held, ordered
// by first appearance in the ledger.
func (q queries) HistoricalAssets(ctx context.Context, owner string) (addresses []string, err error) {
	started := time.Now()
	defer func() {
		q.observe("historical_assets", err, started)
	}()

	rows, err := q.ex.QueryContext(ctx,
		`SELECT address FROM transactions WHERE owner = ? GROUP BY address ORDER BY MIN(id) ASC`,
		owner,
	)
	if err != nil {
		return nil, fmt.Errorf("query historical assets of %s: %w", owner, err)
	}
	return scanStrings(rows)
}

// IsHistoricalAsset reports whether owner appears in the asset's
// ledger.
func (q queries) IsHistoricalAsset(ctx context.Context, owner, address string) (ok bool, err error) {
	started := time.Now()
	defer func() {
		q.observe("is_historical_asset", err, started)
	}()

	var count int64
	err = q.ex.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM transactions WHERE owner = ? AND address = ?`,
		owner, address,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("query historical asset %s of %s: %w", address, owner, err)
	}
	return count > 0, nil
}

// HistoricalAssetCount returns the number of distinct assets an owner
// has ever held.
func (q queries) HistoricalAssetCount(ctx context.Context, owner string) (count uint64, err error) {
	started := time.Now()
	defer func() {
		q.observe("historical_asset_count", err, started)
	}()

	var n int64
	err = q.ex.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT address) FROM transactions WHERE owner = ?`, owner,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count historical assets of %s: %w", owner, err)
	}
	return uint64(n), nil
}

func scanStrings(rows *sql.Rows) ([]string, error) {
	defer rows.Close()
	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
