package sqlite

import (
	"database/sql"
	"fmt"

	"lukechampine.com/uint128"
)

func amountText(v uint128.Uint128) string {
	return v.String()
}

func amountFromText(s string) (uint128.Uint128, error) {
	v, err := uint128.FromString(s)
	if err != nil {
		return uint128.Zero, fmt.Errorf("stored amount %q: %w", s, err)
	}
	return v, nil
}

func nullableAmount(v *uint128.Uint128) any {
	if v == nil {
		return nil
	}
	return v.String()
}

func amountFromNullText(s sql.NullString) (*uint128.Uint128, error) {
	if !s.Valid {
		return nil, nil
	}
	v, err := amountFromText(s.String)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func nullableHeight(v *uint64) any {
	if v == nil {
		return nil
	}
	return int64(*v)
}

func heightFromNullInt(v sql.NullInt64) *uint64 {
	if !v.Valid {
		return nil
	}
	h := uint64(v.Int64)
	return &h
}
