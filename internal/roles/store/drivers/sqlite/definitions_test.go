package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/clubhouse/internal/roles/domain"
	"github.com/aussiebroadwan/clubhouse/internal/roles/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedDefs() []domain.RoleDefinition {
	return []domain.RoleDefinition{
		{Name: "reader", Title: "Reader", Description: "Can read records."},
		{Name: "curator", Title: "Curator", CanManage: []string{"reader"}},
		{Name: "owner", Title: "Owner", CanManage: []string{"reader", "curator", "owner"}, IsOwner: true},
	}
}

func TestDefinitionsRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	empty, err := st.RoleDefinitions().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	require.NoError(t, store.Replace(ctx, st, seedDefs()))

	defs, err := st.RoleDefinitions().ListDefinitions(ctx)
	require.NoError(t, err)
	require.Equal(t, seedDefs(), defs, "list must return definitions in seeded order with all fields intact")

	empty, err = st.RoleDefinitions().IsEmpty(ctx)
	require.NoError(t, err)
	require.False(t, empty)

	// Stored definitions feed straight into the registry.
	reg, err := domain.NewRegistry(defs)
	require.NoError(t, err)
	require.Equal(t, "owner", reg.OwnerRole().Name())
}

func TestCanManagePreservesNamesWithSpaces(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	defs := []domain.RoleDefinition{
		{Name: "community reader", Title: "Reader"},
		{Name: "owner", Title: "Owner", CanManage: []string{"community reader", "owner"}, IsOwner: true},
	}
	require.NoError(t, store.Replace(ctx, st, defs))

	got, err := st.RoleDefinitions().ListDefinitions(ctx)
	require.NoError(t, err)
	require.Equal(t, defs, got, "round trip must be lossless")
}

func TestReplaceIsAtomic(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	require.NoError(t, store.Replace(ctx, st, seedDefs()))

	// Duplicate name violates the primary key mid-replace; the original set
	// must survive the rollback.
	bad := []domain.RoleDefinition{
		{Name: "admin", IsOwner: true},
		{Name: "admin"},
	}
	require.Error(t, store.Replace(ctx, st, bad))

	defs, err := st.RoleDefinitions().ListDefinitions(ctx)
	require.NoError(t, err)
	require.Equal(t, seedDefs(), defs)
}

func TestReplaceOverwrites(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	require.NoError(t, store.Replace(ctx, st, seedDefs()))

	next := []domain.RoleDefinition{
		{Name: "member", Title: "Member"},
		{Name: "admin", Title: "Admin", CanManage: []string{"member", "admin"}, IsOwner: true},
	}
	require.NoError(t, store.Replace(ctx, st, next))

	defs, err := st.RoleDefinitions().ListDefinitions(ctx)
	require.NoError(t, err)
	require.Equal(t, next, defs)
}
