package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aussiebroadwan/clubhouse/internal/roles/config"
	"github.com/aussiebroadwan/clubhouse/internal/roles/domain"
	httpapi "github.com/aussiebroadwan/clubhouse/internal/roles/http"
	"github.com/aussiebroadwan/clubhouse/internal/roles/service"
	"github.com/aussiebroadwan/clubhouse/internal/roles/store"
	"github.com/aussiebroadwan/clubhouse/internal/roles/store/drivers/sqlite"
	"github.com/aussiebroadwan/clubhouse/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the roles service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// db is only set when definitions come from sqlite.
	db store.Store

	provider     *service.RegistryProvider
	rolesService *service.RolesService
	reloader     *service.Reloader

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized. An invalid
// role configuration (no owner, multiple owners, duplicate names) fails
// construction outright: a registry that violates its invariants must never
// start serving.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "roles-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initRegistry(); err != nil {
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	if app.reloader != nil {
		app.reloader.Start()
	}

	app.logger.Info("roles service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"definitions_source", app.cfg.DefinitionsSource,
		"roles", app.provider.Current().Len(),
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down roles service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if app.reloader != nil {
		if err := app.reloader.Stop(); err != nil {
			app.logger.Error("error stopping definitions watcher", "error", err)
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database", "error", err)
			return err
		}
	}

	app.logger.Info("roles service stopped")
	return nil
}

// initRegistry loads role definitions from the configured source, builds the
// initial registry, and wires the provider (plus the file watcher when hot
// reload is enabled).
func (app *Application) initRegistry() error {
	defs, err := app.loadDefinitions()
	if err != nil {
		return err
	}

	reg, err := domain.NewRegistry(defs)
	if err != nil {
		return fmt.Errorf("invalid role configuration: %w", err)
	}

	app.provider = service.NewRegistryProvider(reg)
	app.rolesService = &service.RolesService{Provider: app.provider}
	app.logger.Info("role registry built", "roles", reg.Len(), "owner", reg.OwnerRole().Name())

	if app.cfg.WatchDefinitions {
		if app.cfg.DefinitionsSource != "file" {
			app.logger.Warn("ROLES_WATCH_DEFINITIONS only applies to the file source, ignoring")
			return nil
		}

		path := app.cfg.DefinitionsFile
		reloader, err := service.NewReloader(path, app.provider,
			func() ([]domain.RoleDefinition, error) { return config.LoadDefinitions(path) },
			app.logger,
		)
		if err != nil {
			return fmt.Errorf("failed to watch role definitions: %w", err)
		}
		app.reloader = reloader
	}

	return nil
}

func (app *Application) loadDefinitions() ([]domain.RoleDefinition, error) {
	switch app.cfg.DefinitionsSource {
	case "file":
		return config.LoadDefinitions(app.cfg.DefinitionsFile)

	case "sqlite":
		dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
		db, err := sqlite.NewStore(dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		app.db = db

		if err := db.ApplyMigrations(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to apply database migrations: %w", err)
		}

		ctx := context.Background()
		if err := app.seedDatabase(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}

		return db.RoleDefinitions().ListDefinitions(ctx)

	default:
		return nil, fmt.Errorf("unknown definitions source %q", app.cfg.DefinitionsSource)
	}
}

// seedDatabase fills an empty database from the definitions file, so a fresh
// deployment with source=sqlite starts from the same YAML as the file source.
// A database that already holds definitions is left untouched.
func (app *Application) seedDatabase(ctx context.Context) error {
	empty, err := app.db.RoleDefinitions().IsEmpty(ctx)
	if err != nil {
		return fmt.Errorf("failed to inspect database: %w", err)
	}
	if !empty {
		return nil
	}

	defs, err := config.LoadDefinitions(app.cfg.DefinitionsFile)
	if err != nil {
		return fmt.Errorf("failed to seed empty database from %s: %w", app.cfg.DefinitionsFile, err)
	}
	if err := store.Replace(ctx, app.db, defs); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	app.logger.Info("seeded role definitions",
		"file", app.cfg.DefinitionsFile,
		"database", app.cfg.DatabaseFile,
		"roles", len(defs),
	)
	return nil
}

func (app *Application) initHTTP() {
	app.router = httpapi.NewRouter(
		BuildVersion,
		app.rolesService,
		app.db,
		[]byte(app.cfg.AuthSecret),
		app.logger,
	)
	app.router.ApplyRoutes()

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           app.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
