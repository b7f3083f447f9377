// Package sqlite persists the marketplace ledger and aggregates in an
// embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"
)

//go:embed migration/*
var migrations embed.FS

// Metrics records metrics for repository queries.
type Metrics interface {
	Observe(operation string, err error, started time.Time)
}

// executor is the subset of database/sql shared by *sql.DB and *sql.Tx.
type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type queries struct {
	ex      executor
	metrics Metrics
}

// Repository provides access to the marketplace database. Writes that
// must land together go through Begin.
type Repository struct {
	queries
	db *sql.DB
}

// NewRepository opens (or creates) the database at dsn and applies
// pending migrations. Use ":memory:" for an ephemeral database.
func NewRepository(dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("sqlite dsn is required")
	}

	db, err := sql.Open("sqlite", dsn+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// The modernc driver serializes writes; a single connection avoids
	// table-lock errors under concurrent use.
	db.SetMaxOpenConns(1)

	if err := migrateUp(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Repository{
		queries: queries{ex: db, metrics: metrics},
		db:      db,
	}, nil
}

func migrateUp(db *sql.DB) error {
	driver, err := sqlitemigrate.WithInstance(db, &sqlitemigrate.Config{})
	if err != nil {
		return fmt.Errorf("init migration driver: %w", err)
	}
	source, err := iofs.New(migrations, "migration")
	if err != nil {
		return fmt.Errorf("load embedded migrations: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "nftdb", driver)
	if err != nil {
		return fmt.Errorf("create migration instance: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// Close releases the underlying database.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Tx is an open database transaction exposing the same query surface
// as the repository.
type Tx struct {
	queries
	tx *sql.Tx
}

// Begin opens a transaction.
func (r *Repository) Begin(ctx context.Context) (*Tx, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return &Tx{
		queries: queries{ex: tx, metrics: r.metrics},
		tx:      tx,
	}, nil
}

// Commit commits the transaction.
func (t *Tx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction. Safe to call after Commit.
func (t *Tx) Rollback() error {
	if err := t.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}
	return nil
}

func (q queries) observe(operation string, err error, started time.Time) {
	if q.metrics != nil {
		q.metrics.Observe(operation, err, started)
	}
}
