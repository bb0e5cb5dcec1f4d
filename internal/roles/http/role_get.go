package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/clubhouse/internal/roles/domain"
	"github.com/aussiebroadwan/clubhouse/internal/roles/service"
	"github.com/aussiebroadwan/clubhouse/pkg/httpx"
	"github.com/aussiebroadwan/clubhouse/pkg/rolesdk"
	"github.com/aussiebroadwan/clubhouse/pkg/slogx"
)

type RoleGetHandler struct {
	RolesService *service.RolesService
}

// ServeHTTP handles the get role endpoint
//
//	@Summary		Get a role by name
//	@Description	Returns a single role. Unknown names produce a 404 with the not_found error code.
//	@Tags			Roles
//	@Produce		json
//	@Param			name	path		string						true	"Role name"
//	@Success		200		{object}	rolesdk.RoleInfo			"The role"
//	@Failure		404		{object}	rolesdk.ErrorResponse		"Unknown role name"
//	@Security		BearerAuth
//	@Router			/v1/roles/{name} [get].
func (h *RoleGetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := r.PathValue("name")

	role, err := h.RolesService.GetRole(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			httpx.WriteJSON(w, http.StatusNotFound, rolesdk.ErrorResponse{
				Error:            rolesdk.ErrorCodeNotFound,
				ErrorDescription: "no role named " + name,
			})
			return
		}

		slogx.FromContext(ctx).Error("failed to get role", "role", name, "error", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, rolesdk.ErrorResponse{
			Error:            rolesdk.ErrorCodeServerError,
			ErrorDescription: "failed to retrieve role",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, roleInfo(role))
}
