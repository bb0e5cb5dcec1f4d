package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/clubhouse/internal/roles/domain"
)

func mustRegistry(t *testing.T, defs []domain.RoleDefinition) *domain.Registry {
	t.Helper()
	reg, err := domain.NewRegistry(defs)
	require.NoError(t, err)
	return reg
}

func testDefs() []domain.RoleDefinition {
	return []domain.RoleDefinition{
		{Name: "reader", Title: "Reader"},
		{Name: "curator", Title: "Curator", CanManage: []string{"reader"}},
		{Name: "owner", Title: "Owner", CanManage: []string{"reader", "curator", "owner"}, IsOwner: true},
	}
}

func TestRolesServiceQueries(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := &RolesService{Provider: NewRegistryProvider(mustRegistry(t, testDefs()))}

	t.Run("list all in registry order", func(t *testing.T) {
		roles := svc.ListAll(ctx)
		require.Len(t, roles, 3)
		require.Equal(t, "reader", roles[0].Name())
		require.Equal(t, "owner", roles[2].Name())
	})

	t.Run("get role", func(t *testing.T) {
		role, err := svc.GetRole(ctx, "curator")
		require.NoError(t, err)
		require.Equal(t, "Curator", role.Title())

		_, err = svc.GetRole(ctx, "nonexistent")
		require.ErrorIs(t, err, domain.ErrRoleNotFound)
	})

	t.Run("contains", func(t *testing.T) {
		require.True(t, svc.Contains(ctx, "reader"))
		require.False(t, svc.Contains(ctx, "nonexistent"))
	})

	t.Run("owner role", func(t *testing.T) {
		require.Equal(t, "owner", svc.OwnerRole(ctx).Name())
	})

	t.Run("manager roles", func(t *testing.T) {
		managers := svc.ManagerRoles(ctx, "reader")
		require.Len(t, managers, 2)
		require.Equal(t, "curator", managers[0].Name())
		require.Equal(t, "owner", managers[1].Name())

		require.Empty(t, svc.ManagerRoles(ctx, "nonexistent"))
	})
}

func TestRegistryProviderSwap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	provider := NewRegistryProvider(mustRegistry(t, testDefs()))
	svc := &RolesService{Provider: provider}
	require.Equal(t, "owner", svc.OwnerRole(ctx).Name())

	next := mustRegistry(t, []domain.RoleDefinition{
		{Name: "member", Title: "Member"},
		{Name: "admin", Title: "Admin", CanManage: []string{"member", "admin"}, IsOwner: true},
	})
	provider.Swap(next)

	require.Equal(t, "admin", svc.OwnerRole(ctx).Name())
	require.False(t, svc.Contains(ctx, "reader"))

	t.Run("nil swap keeps current registry", func(t *testing.T) {
		provider.Swap(nil)
		require.Equal(t, "admin", svc.OwnerRole(ctx).Name())
	})
}
