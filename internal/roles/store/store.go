package store

import (
	"context"

	"github.com/aussiebroadwan/clubhouse/internal/roles/domain"
)

// Store is the data access interface for persisted role definitions.
// Concrete drivers (sqlite today) implement it. The registry itself never
// touches a Store: at startup the app lists the definitions once and hands
// them to domain.NewRegistry, which is also where all validation lives.
type Store interface {
	RoleDefinitions() RoleDefinitions

	ApplyMigrations() error

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Use it for
	// multi-step operations that must be atomic, like replacing the whole
	// definition set.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the underlying database handle.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transaction-scoped Store with explicit commit/rollback. Prefer
// WithTx over using this directly.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type RoleDefinitions interface {
	// ListDefinitions returns every stored definition ordered by position,
	// which is the order the registry will iterate in.
	ListDefinitions(ctx context.Context) ([]domain.RoleDefinition, error)

	// CreateDefinition inserts a definition at the given position.
	CreateDefinition(ctx context.Context, position int, def domain.RoleDefinition) error

	// DeleteAllDefinitions clears the table. Combine with CreateDefinition
	// inside WithTx to replace the definition set atomically.
	DeleteAllDefinitions(ctx context.Context) error

	// IsEmpty reports whether no definitions are stored.
	IsEmpty(ctx context.Context) (bool, error)
}

// Replace swaps the stored definition set for defs in one transaction,
// assigning positions from slice order.
func Replace(ctx context.Context, st Store, defs []domain.RoleDefinition) error {
	return st.WithTx(ctx, func(tx Tx) error {
		repo := tx.RoleDefinitions()
		if err := repo.DeleteAllDefinitions(ctx); err != nil {
			return err
		}
		for i, def := range defs {
			if err := repo.CreateDefinition(ctx, i, def); err != nil {
				return err
			}
		}
		return nil
	})
}
