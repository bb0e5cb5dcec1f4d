package domain

// RoleDefinition is one entry of the role configuration handed to
// NewRegistry. Definitions arrive as an ordered slice rather than a map
// because slice order becomes the registry's iteration order.
type RoleDefinition struct {
	Name        string
	Title       string
	Description string
	CanManage   []string
	IsOwner     bool
}
