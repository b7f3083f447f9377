package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dingocoin/nft-marketplace-backend/internal/nft/model"
)

// Profile returns a wallet's display profile, or nil when none is set.
func (q queries) Profile(ctx context.Context, owner string) (profile *model.Profile, err error) {
	started := time.Now()
	defer func() {
		q.observe("profile", err, started)
	}()

	row := q.ex.QueryRowContext(ctx,
		`SELECT owner, name, thumbnail FROM profiles WHERE owner = ? LIMIT 1`, owner)
	var p model.Profile
	var thumbnail sql.NullString
	if err = row.Scan(&p.Owner, &p.Name, &thumbnail); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = nil
			return nil, nil
		}
		return nil, fmt.Errorf("scan profile %s: %w", owner, err)
	}
	if thumbnail.Valid {
		p.Thumbnail = &thumbnail.String
	}
	return &p, nil
}

// SetProfile upserts a wallet's display profile.
func (q queries) SetProfile(ctx context.Context, profile model.Profile) (err error) {
	started := time.Now()
	defer func() {
		q.observe("set_profile", err, started)
	}()

	var thumbnail any
	if profile.Thumbnail != nil {
		thumbnail = *profile.Thumbnail
	}
	_, err = q.ex.ExecContext(ctx,
		`INSERT INTO profiles (owner, name, thumbnail) VALUES (?, ?, ?)
		 ON CONFLICT (owner) DO UPDATE SET name = excluded.name, thumbnail = excluded.thumbnail`,
		profile.Owner, profile.Name, thumbnail,
	)
	if err != nil {
		return fmt.Errorf("upsert profile %s: %w", profile.Owner, err)
	}
	return nil
}

// SearchProfiles returns profiles whose owner or name contains every
// term.
func (q queries) SearchProfiles(ctx context.Context, terms []string) (owners []string, err error) {
	started := time.Now()
	defer func() {
		q.observe("search_profiles", err, started)
	}()

	where, args := likeAllClause("owner || ' ' || name", terms)
	rows, err := q.ex.QueryContext(ctx,
		`SELECT owner FROM profiles WHERE `+where+` LIMIT 50`, args...)
	if err != nil {
		return nil, fmt.Errorf("search profiles: %w", err)
	}
	return scanStrings(rows)
}
