package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dingocoin/nft-marketplace-backend/internal/nft/model"
)

// AddAsset registers a newly listed asset.
func (q queries) AddAsset(ctx context.Context, asset model.Asset) (err error) {
	started := time.Now()
	defer func() {
		q.observe("add_asset", err, started)
	}()

	_, err = q.ex.ExecContext(ctx,
		`INSERT INTO assets (content_hash, address, name, tags, description) VALUES (?, ?, ?, ?, ?)`,
		asset.ContentHash, asset.Address, asset.Name, asset.Tags, asset.Description,
	)
	if err != nil {
		return fmt.Errorf("insert asset %s: %w", asset.Address, err)
	}
	return nil
}

// HasAsset reports whether an asset address is registered.
func (q queries) HasAsset(ctx context.Context, address string) (ok bool, err error) {
	started := time.Now()
	defer func() {
		q.observe("has_asset", err, started)
	}()

	var count int64
	err = q.ex.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM assets WHERE address = ?`, address,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("query asset %s: %w", address, err)
	}
	return count > 0, nil
}

// Asset returns a registered asset, or nil when unknown.
func (q queries) Asset(ctx context.Context, address string) (asset *model.Asset, err error) {
	started := time.Now()
	defer func() {
		q.observe("asset", err, started)
	}()

	row := q.ex.QueryRowContext(ctx,
		`SELECT id, content_hash, address, name, tags, description, collection FROM assets WHERE address = ? LIMIT 1`,
		address,
	)
	var a model.Asset
	var collection sql.NullString
	if err = row.Scan(&a.ID, &a.ContentHash, &a.Address, &a.Name, &a.Tags, &a.Description, &collection); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = nil
			return nil, nil
		}
		return nil, fmt.Errorf("scan asset %s: %w", address, err)
	}
	if collection.Valid {
		a.Collection = &collection.String
	}
	return &a, nil
}

// NewestAssets pages through registered assets from newest to oldest.
// A nil beforeID starts at the newest.
func (q queries) NewestAssets(ctx context.Context, beforeID *int64) (assets []model.Asset, err error) {
	started := time.Now()
	defer func() {
		q.observe("newest_assets", err, started)
	}()

	var rows *sql.Rows
	if beforeID == nil {
		rows, err = q.ex.QueryContext(ctx,
			`SELECT id, address FROM assets ORDER BY id DESC LIMIT 100`)
	} else {
		rows, err = q.ex.QueryContext(ctx,
			`SELECT id, address FROM assets WHERE id < ? ORDER BY id DESC LIMIT 100`, *beforeID)
	}
	if err != nil {
		return nil, fmt.Errorf("query newest assets: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a model.Asset
		if err = rows.Scan(&a.ID, &a.Address); err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		assets = append(assets, a)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return assets, nil
}

// SearchAssets returns assets whose textual fields contain every term.
func (q queries) SearchAssets(ctx context.Context, terms []string) (addresses []string, err error) {
	started := time.Now()
	defer func() {
		q.observe("search_assets", err, started)
	}()

	where, args := likeAllClause("address || ' ' || name || ' ' || tags || ' ' || description", terms)
	rows, err := q.ex.QueryContext(ctx,
		`SELECT address FROM assets WHERE `+where+` ORDER BY id ASC LIMIT 50`, args...)
	if err != nil {
		return nil, fmt.Errorf("search assets: %w", err)
	}
	return scanStrings(rows)
}

// SetAssetCollection assigns an asset to a collection.
func (q queries) SetAssetCollection(ctx context.Context, address, handle string) (err error) {
	started := time.Now()
	defer func() {
		q.observe("set_asset_collection", err, started)
	}()

	_, err = q.ex.ExecContext(ctx,
		`UPDATE assets SET collection = ? WHERE address = ?`, handle, address)
	if err != nil {
		return fmt.Errorf("assign asset %s to %s: %w", address, handle, err)
	}
	return nil
}

// CollectionItems returns the asset addresses assigned to a collection,
// in registration order.
func (q queries) CollectionItems(ctx context.Context, handle string) (addresses []string, err error) {
	started := time.Now()
	defer func() {
		q.observe("collection_items", err, started)
	}()

	rows, err := q.ex.QueryContext(ctx,
		`SELECT address FROM assets WHERE collection = ? ORDER BY id ASC`, handle)
	if err != nil {
		return nil, fmt.Errorf("query items of %s: %w", handle, err)
	}
	return scanStrings(rows)
}

// ItemCollection returns the handle an asset is assigned to, or nil.
func (q queries) ItemCollection(ctx context.Context, address string) (handle *string, err error) {
	started := time.Now()
	defer func() {
		q.observe("item_collection", err, started)
	}()

	var collection sql.NullString
	err = q.ex.QueryRowContext(ctx,
		`SELECT collection FROM assets WHERE address = ?`, address,
	).Scan(&collection)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = nil
			return nil, nil
		}
		return nil, fmt.Errorf("query collection of %s: %w", address, err)
	}
	if !collection.Valid {
		return nil, nil
	}
	return &collection.String, nil
}

// UnassignedAssetsByCreator returns a creator's assets that are not in
// any collection yet.
func (q queries) UnassignedAssetsByCreator(ctx context.Context, owner string) (addresses []string, err error) {
	started := time.Now()
	defer func() {
		q.observe("unassigned_assets_by_creator", err, started)
	}()

	rows, err := q.ex.QueryContext(ctx,
		`SELECT nft_stats.address FROM nft_stats
		 INNER JOIN assets ON nft_stats.address = assets.address
		 WHERE nft_stats.creator = ? AND assets.collection IS NULL
		 ORDER BY assets.id ASC`,
		owner)
	if err != nil {
		return nil, fmt.Errorf("query unassigned assets of %s: %w", owner, err)
	}
	return scanStrings(rows)
}

// likeAllClause builds a conjunction of case-insensitive substring
// matches of every term against expr.
func likeAllClause(expr string, terms []string) (string, []any) {
	if len(terms) == 0 {
		return "1 = 0", nil
	}
	where := ""
	args := make([]any, 0, len(terms))
	for i, term := range terms {
		if i > 0 {
			where += " AND "
		}
		where += expr + ` LIKE ? ESCAPE '\'`
		args = append(args, "%"+escapeLike(term)+"%")
	}
	return where, args
}

func escapeLike(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%', '_', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
