package domain

import "slices"

// Role describes one named membership role: display metadata, the names of
// the roles it is allowed to manage, and whether it is the owner role.
//
// A Role is immutable once constructed. Its identity is its name alone: two
// Roles with the same name are the same role no matter what their other
// fields say, which is why Equal compares nothing else and the registry keys
// everything on Name().
type Role struct {
	name        string
	title       string
	description string
	canManage   []string
	isOwner     bool
}

// NewRole constructs a Role. No validation happens here; registry-wide
// invariants like owner uniqueness are NewRegistry's job, so construction
// always succeeds.
func NewRole(name, title, description string, canManage []string, isOwner bool) Role {
	cm := make([]string, len(canManage))
	copy(cm, canManage)
	return Role{
		name:        name,
		title:       title,
		description: description,
		canManage:   cm,
		isOwner:     isOwner,
	}
}

// Name returns the unique identifier of the role.
func (r Role) Name() string { return r.name }

// Title returns the display title of the role.
func (r Role) Title() string { return r.title }

// Description returns the display description of the role.
func (r Role) Description() string { return r.description }

// CanManageRoles returns the names of the roles this role may manage, in
// configuration order. The returned slice is a copy.
func (r Role) CanManageRoles() []string {
	cm := make([]string, len(r.canManage))
	copy(cm, r.canManage)
	return cm
}

// IsOwner reports whether this is the owner role.
func (r Role) IsOwner() bool { return r.isOwner }

// CanManage reports whether this role is permitted to manage roleName.
// Unknown names simply return false; no registry membership is checked.
func (r Role) CanManage(roleName string) bool {
	return slices.Contains(r.canManage, roleName)
}

// Equal reports whether other is the same role, by name only.
func (r Role) Equal(other Role) bool { return r.name == other.name }
