package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// communityDefs is the canonical four-role setup used across the registry
// tests: readers at the bottom, an owner that manages everyone including
// itself at the top.
func communityDefs() []RoleDefinition {
	return []RoleDefinition{
		{Name: "reader", Title: "Reader", Description: "Can read records."},
		{Name: "curator", Title: "Curator", Description: "Can curate records.", CanManage: []string{"reader"}},
		{Name: "manager", Title: "Manager", Description: "Can manage members.", CanManage: []string{"reader", "curator"}},
		{Name: "owner", Title: "Owner", Description: "Full administrative access.", CanManage: []string{"reader", "curator", "manager", "owner"}, IsOwner: true},
	}
}

func roleNames(roles []Role) []string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = r.Name()
	}
	return names
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	t.Run("succeeds with exactly one owner", func(t *testing.T) {
		reg, err := NewRegistry(communityDefs())
		require.NoError(t, err)
		require.Equal(t, "owner", reg.OwnerRole().Name())
		require.True(t, reg.OwnerRole().IsOwner())
	})

	t.Run("fails without an owner", func(t *testing.T) {
		defs := []RoleDefinition{
			{Name: "reader"},
			{Name: "curator", CanManage: []string{"reader"}},
		}
		_, err := NewRegistry(defs)
		require.ErrorIs(t, err, ErrNoOwnerRole)
	})

	t.Run("fails with two owners", func(t *testing.T) {
		defs := []RoleDefinition{
			{Name: "owner", IsOwner: true},
			{Name: "co-owner", IsOwner: true},
		}
		_, err := NewRegistry(defs)
		require.ErrorIs(t, err, ErrMultipleOwnerRoles)
		require.ErrorContains(t, err, "owner")
		require.ErrorContains(t, err, "co-owner")
	})

	t.Run("fails on empty definitions", func(t *testing.T) {
		_, err := NewRegistry(nil)
		require.ErrorIs(t, err, ErrNoOwnerRole)
	})

	t.Run("fails on duplicate names", func(t *testing.T) {
		defs := []RoleDefinition{
			{Name: "reader"},
			{Name: "reader"},
			{Name: "owner", IsOwner: true},
		}
		_, err := NewRegistry(defs)
		require.ErrorIs(t, err, ErrDuplicateRole)
	})

	t.Run("injects definition name into the role", func(t *testing.T) {
		reg, err := NewRegistry([]RoleDefinition{{Name: "owner", Title: "Owner", IsOwner: true}})
		require.NoError(t, err)

		role, err := reg.Get("owner")
		require.NoError(t, err)
		require.Equal(t, "owner", role.Name())
		require.Equal(t, "Owner", role.Title())
	})

	t.Run("unknown can_manage entries are accepted", func(t *testing.T) {
		defs := []RoleDefinition{
			{Name: "owner", CanManage: []string{"owner", "ghost"}, IsOwner: true},
		}
		reg, err := NewRegistry(defs)
		require.NoError(t, err)
		require.True(t, reg.OwnerRole().CanManage("ghost"))
	})
}

func TestRegistryLookups(t *testing.T) {
	t.Parallel()

	reg, err := NewRegistry(communityDefs())
	require.NoError(t, err)

	t.Run("contains and get agree", func(t *testing.T) {
		for _, name := range []string{"reader", "curator", "manager", "owner", "nonexistent", ""} {
			role, err := reg.Get(name)
			if reg.Contains(name) {
				require.NoError(t, err)
				require.Equal(t, name, role.Name())
			} else {
				require.ErrorIs(t, err, ErrRoleNotFound)
			}
		}
	})

	t.Run("get on missing name reports which one", func(t *testing.T) {
		_, err := reg.Get("nonexistent")
		require.ErrorIs(t, err, ErrRoleNotFound)
		require.ErrorContains(t, err, "nonexistent")
	})
}

func TestRegistryRoles(t *testing.T) {
	t.Parallel()

	reg, err := NewRegistry(communityDefs())
	require.NoError(t, err)

	t.Run("definition order preserved", func(t *testing.T) {
		require.Equal(t, []string{"reader", "curator", "manager", "owner"}, roleNames(reg.Roles()))
		require.Equal(t, 4, reg.Len())
	})

	t.Run("restartable", func(t *testing.T) {
		require.Equal(t, roleNames(reg.Roles()), roleNames(reg.Roles()))
	})

	t.Run("callers cannot reach registry internals", func(t *testing.T) {
		roles := reg.Roles()
		roles[0] = NewRole("intruder", "", "", nil, false)
		require.Equal(t, "reader", reg.Roles()[0].Name())
	})
}

func TestRegistryManagerRoles(t *testing.T) {
	t.Parallel()

	reg, err := NewRegistry(communityDefs())
	require.NoError(t, err)

	t.Run("managers of reader in registry order", func(t *testing.T) {
		require.Equal(t, []string{"curator", "manager", "owner"}, roleNames(reg.ManagerRoles("reader")))
	})

	t.Run("only the owner manages owner", func(t *testing.T) {
		require.Equal(t, []string{"owner"}, roleNames(reg.ManagerRoles("owner")))
	})

	t.Run("only the owner manages manager", func(t *testing.T) {
		require.Equal(t, []string{"owner"}, roleNames(reg.ManagerRoles("manager")))
	})

	t.Run("unknown role has no managers", func(t *testing.T) {
		require.Empty(t, reg.ManagerRoles("nonexistent"))
	})

	t.Run("matches a scan over Roles", func(t *testing.T) {
		for _, name := range []string{"reader", "curator", "manager", "owner", "nonexistent"} {
			var want []Role
			for _, role := range reg.Roles() {
				if role.CanManage(name) {
					want = append(want, role)
				}
			}
			require.Equal(t, want, reg.ManagerRoles(name))
		}
	})
}
