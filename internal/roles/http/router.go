package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/clubhouse/internal/roles/service"
	"github.com/aussiebroadwan/clubhouse/internal/roles/store"
	"github.com/aussiebroadwan/clubhouse/pkg/httpx"
	"github.com/aussiebroadwan/clubhouse/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	// authSecret guards the roles endpoints when non-empty. Empty means
	// the read API is open, which is fine for cluster-internal deploys.
	authSecret []byte

	// db is only set when role definitions come from sqlite; readyz pings
	// it when present.
	db store.Store

	RolesService *service.RolesService
}

func NewRouter(
	buildVersion string,
	rolesService *service.RolesService,
	db store.Store,
	authSecret []byte,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		authSecret:   authSecret,
		db:           db,
		RolesService: rolesService,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerRoles()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerRoles() {
	secure := func(h http.Handler) http.Handler {
		if len(r.authSecret) == 0 {
			return httpx.Chain(h, httpx.RateLimitByIP(httpx.LenientLimit))
		}
		return httpx.Chain(h,
			httpx.AuthnMiddleware(r.authSecret),
			httpx.RequireAnyScope("roles:read"),
			httpx.RateLimitBySubject(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("GET /v1/roles",
		secure(&RolesHandler{RolesService: r.RolesService}))
	r.Mux.Handle("GET /v1/roles/{name}",
		secure(&RoleGetHandler{RolesService: r.RolesService}))
	r.Mux.Handle("GET /v1/roles/{name}/managers",
		secure(&ManagerRolesHandler{RolesService: r.RolesService}))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.RolesService, r.db),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
