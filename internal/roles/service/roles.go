package service

import (
	"context"

	"github.com/aussiebroadwan/clubhouse/internal/roles/domain"
)

// RolesService answers role queries for the HTTP layer against whichever
// registry is currently active. All queries are reads over an immutable
// registry; none of them block or touch I/O.
type RolesService struct {
	Provider *RegistryProvider
}

// ListAll returns all roles in registry order.
func (s *RolesService) ListAll(ctx context.Context) []domain.Role {
	return s.Provider.Current().Roles()
}

// GetRole fetches a role by name. Returns domain.ErrRoleNotFound when the
// name is unknown.
func (s *RolesService) GetRole(ctx context.Context, name string) (domain.Role, error) {
	return s.Provider.Current().Get(name)
}

// Contains reports whether name identifies a known role.
func (s *RolesService) Contains(ctx context.Context, name string) bool {
	return s.Provider.Current().Contains(name)
}

// OwnerRole returns the registry's owner role.
func (s *RolesService) OwnerRole(ctx context.Context) domain.Role {
	return s.Provider.Current().OwnerRole()
}

// ManagerRoles returns the roles permitted to manage name, in registry
// order. Unknown names yield an empty result.
func (s *RolesService) ManagerRoles(ctx context.Context, name string) []domain.Role {
	return s.Provider.Current().ManagerRoles(name)
}
