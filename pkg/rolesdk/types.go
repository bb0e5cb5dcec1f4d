package rolesdk

// RoleInfo describes a single role as returned by the roles API.
type RoleInfo struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	CanManage   []string `json:"can_manage"`
	IsOwner     bool     `json:"is_owner"`
}

// ListRolesResponse is the payload of GET /v1/roles. Roles appear in
// registry order.
type ListRolesResponse struct {
	Roles []RoleInfo `json:"roles"`
}

// ManagerRolesResponse is the payload of GET /v1/roles/{name}/managers.
// Managers appear in registry order; the list is empty when no role manages
// the queried name, including when the name is unknown.
type ManagerRolesResponse struct {
	Role     string     `json:"role"`
	Managers []RoleInfo `json:"managers"`
}

// ErrorResponse is the JSON error payload used by all endpoints.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// HealthResponse is the payload of the livez/readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks breaks down readiness by dependency.
type HealthChecks struct {
	Registry string `json:"registry"`
	Database string `json:"database,omitempty"`
}
