package http

import (
	"net/http"

	"github.com/aussiebroadwan/clubhouse/internal/roles/domain"
	"github.com/aussiebroadwan/clubhouse/internal/roles/service"
	"github.com/aussiebroadwan/clubhouse/pkg/httpx"
	"github.com/aussiebroadwan/clubhouse/pkg/rolesdk"
)

type RolesHandler struct {
	RolesService *service.RolesService
}

// ServeHTTP handles the list roles endpoint
//
//	@Summary		List all roles
//	@Description	Returns every configured role in registry order. The owner role carries is_owner=true.
//	@Tags			Roles
//	@Produce		json
//	@Success		200	{object}	rolesdk.ListRolesResponse	"List of roles"
//	@Failure		401	{object}	rolesdk.ErrorResponse		"Unauthorized - missing or invalid token"
//	@Failure		403	{object}	rolesdk.ErrorResponse		"Forbidden - missing required scope"
//	@Security		BearerAuth
//	@Router			/v1/roles [get].
func (h *RolesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	roles := h.RolesService.ListAll(r.Context())

	response := rolesdk.ListRolesResponse{
		Roles: make([]rolesdk.RoleInfo, len(roles)),
	}
	for i, role := range roles {
		response.Roles[i] = roleInfo(role)
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}

func roleInfo(role domain.Role) rolesdk.RoleInfo {
	return rolesdk.RoleInfo{
		Name:        role.Name(),
		Title:       role.Title(),
		Description: role.Description(),
		CanManage:   role.CanManageRoles(),
		IsOwner:     role.IsOwner(),
	}
}
