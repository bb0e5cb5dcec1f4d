package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/clubhouse/internal/roles/service"
	"github.com/aussiebroadwan/clubhouse/internal/roles/store"
	"github.com/aussiebroadwan/clubhouse/pkg/httpx"
	"github.com/aussiebroadwan/clubhouse/pkg/rolesdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe covering the active role registry and, when definitions
//	@Description	come from sqlite, database connectivity.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	rolesdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	rolesdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	rolesService *service.RolesService,
	db store.Store,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &rolesdk.HealthChecks{Registry: "ok"}
		overallStatus := "ok"
		statusCode := http.StatusOK

		// The registry is built before the server starts, so this only
		// trips when wiring went wrong.
		if rolesService.Provider.Current() == nil {
			checks.Registry = "error: no registry loaded"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if db != nil {
			checks.Database = "ok"
			if err := db.Ping(r.Context()); err != nil {
				checks.Database = "error: " + err.Error()
				overallStatus = "degraded"
				statusCode = http.StatusServiceUnavailable
			}
		}

		httpx.WriteJSON(w, statusCode, rolesdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
