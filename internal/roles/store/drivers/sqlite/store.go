package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/clubhouse/internal/roles/store"

	_ "modernc.org/sqlite"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx so the repository works
// inside and outside transactions.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db *sql.DB
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) RoleDefinitions() store.RoleDefinitions {
	return &definitionsRepo{db: s.db}
}

// WithTx executes fn within a transaction, handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	tx := &Tx{store: s, tx: sqlTx}

	// Rollback after commit is a no-op, so this also covers panics and
	// early error returns.
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// Tx is a transaction-scoped view of the store.
type Tx struct {
	store *Store
	tx    *sql.Tx
}

func (t *Tx) RoleDefinitions() store.RoleDefinitions {
	return &definitionsRepo{db: t.tx}
}

func (t *Tx) Commit() error   { return t.tx.Commit() }
func (t *Tx) Rollback() error { return t.tx.Rollback() }

func (t *Tx) ApplyMigrations() error         { return t.store.ApplyMigrations() }
func (t *Tx) Close() error                   { return nil }
func (t *Tx) Ping(ctx context.Context) error { return t.store.Ping(ctx) }

// WithTx on a Tx runs fn against the same transaction; sqlite has no nested
// transactions, so commit/rollback stay with the outermost caller.
func (t *Tx) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return fn(t)
}
