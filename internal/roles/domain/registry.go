package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrRoleNotFound is returned by Get for names absent from the registry.
	ErrRoleNotFound = errors.New("roles: role not found")

	// ErrNoOwnerRole reports a configuration with no owner role.
	ErrNoOwnerRole = errors.New("roles: no owner role defined")

	// ErrMultipleOwnerRoles reports a configuration with more than one owner role.
	ErrMultipleOwnerRoles = errors.New("roles: multiple owner roles defined")

	// ErrDuplicateRole reports two definitions sharing the same name.
	ErrDuplicateRole = errors.New("roles: duplicate role name")
)

// Registry is the validated, immutable set of all roles for a deployment.
// It is built once from configuration at startup and only ever read after
// that, so it is safe to share across goroutines without locks. Picking up
// changed configuration means building a new Registry and swapping the
// reference, never mutating a live one.
type Registry struct {
	roles  []Role // definition order
	byName map[string]Role
	owner  Role
}

// NewRegistry builds a Registry from ordered role definitions, injecting each
// definition's name as its Role's name.
//
// Construction fails when a name appears twice, when no definition is marked
// as owner, or when more than one is. These are startup configuration errors:
// callers are expected to abort rather than continue with a partial registry.
// Names listed under CanManage are deliberately not checked against the
// definitions, matching the permissiveness of the configurations this
// registry has always accepted.
func NewRegistry(defs []RoleDefinition) (*Registry, error) {
	reg := &Registry{
		roles:  make([]Role, 0, len(defs)),
		byName: make(map[string]Role, len(defs)),
	}

	var haveOwner bool
	for _, def := range defs {
		if _, exists := reg.byName[def.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRole, def.Name)
		}

		role := NewRole(def.Name, def.Title, def.Description, def.CanManage, def.IsOwner)
		reg.roles = append(reg.roles, role)
		reg.byName[def.Name] = role

		if role.IsOwner() {
			if haveOwner {
				return nil, fmt.Errorf("%w: %q and %q", ErrMultipleOwnerRoles, reg.owner.Name(), role.Name())
			}
			reg.owner = role
			haveOwner = true
		}
	}

	if !haveOwner {
		return nil, ErrNoOwnerRole
	}
	return reg, nil
}

// Contains reports whether name identifies a role in the registry.
func (reg *Registry) Contains(name string) bool {
	_, ok := reg.byName[name]
	return ok
}

// Get returns the role with the given name, or ErrRoleNotFound.
func (reg *Registry) Get(name string) (Role, error) {
	role, ok := reg.byName[name]
	if !ok {
		return Role{}, fmt.Errorf("%w: %q", ErrRoleNotFound, name)
	}
	return role, nil
}

// Roles returns all roles in definition order. The returned slice is a fresh
// copy on every call; callers never get a handle into the registry itself.
func (reg *Registry) Roles() []Role {
	roles := make([]Role, len(reg.roles))
	copy(roles, reg.roles)
	return roles
}

// Len returns the number of roles in the registry.
func (reg *Registry) Len() int { return len(reg.roles) }

// OwnerRole returns the single owner role. It always exists once the
// registry has been constructed.
func (reg *Registry) OwnerRole() Role { return reg.owner }

// ManagerRoles returns every role permitted to manage roleName, in registry
// order. This is the privilege escalation guard: a caller granting or
// revoking roleName must hold one of the returned roles, so e.g. a manager
// cannot hand out owner access unless the configuration says so. Unknown
// names yield an empty result rather than an error.
func (reg *Registry) ManagerRoles(roleName string) []Role {
	var managers []Role
	for _, role := range reg.roles {
		if role.CanManage(roleName) {
			managers = append(managers, role)
		}
	}
	return managers
}
