package http

import (
	"net/http"

	"github.com/aussiebroadwan/clubhouse/internal/roles/service"
	"github.com/aussiebroadwan/clubhouse/pkg/httpx"
	"github.com/aussiebroadwan/clubhouse/pkg/rolesdk"
)

type ManagerRolesHandler struct {
	RolesService *service.RolesService
}

// ServeHTTP handles the manager roles endpoint
//
//	@Summary		List roles that may manage a role
//	@Description	Returns every role whose can_manage includes the named role, in registry order.
//	@Description	Callers use this to stop privilege escalation: only the returned roles may grant or revoke the named role.
//	@Description	Unknown names yield an empty list, not an error.
//	@Tags			Roles
//	@Produce		json
//	@Param			name	path		string							true	"Role name"
//	@Success		200		{object}	rolesdk.ManagerRolesResponse	"Manager roles"
//	@Security		BearerAuth
//	@Router			/v1/roles/{name}/managers [get].
func (h *ManagerRolesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	managers := h.RolesService.ManagerRoles(r.Context(), name)

	response := rolesdk.ManagerRolesResponse{
		Role:     name,
		Managers: make([]rolesdk.RoleInfo, len(managers)),
	}
	for i, role := range managers {
		response.Managers[i] = roleInfo(role)
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}
