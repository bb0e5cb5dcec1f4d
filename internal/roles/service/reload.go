package service

import (
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/aussiebroadwan/clubhouse/internal/roles/domain"
)

// Reloader watches a role definitions file and swaps a freshly built
// registry into the provider whenever the file changes. A failed reload
// (unreadable file, invalid definitions) logs and keeps the last good
// registry; only startup misconfiguration is fatal, and that happens before
// a Reloader exists.
type Reloader struct {
	path     string
	provider *RegistryProvider
	load     func() ([]domain.RoleDefinition, error)
	logger   *slog.Logger

	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewReloader creates a Reloader for the definitions file at path. load is
// called on every change to produce the ordered definitions; it is a
// parameter so the watcher stays independent of the file format.
//
// The watch is registered on the parent directory rather than the file
// itself: editors and config management tools replace files via rename, and
// a watch on the old inode would go stale.
func NewReloader(path string, provider *RegistryProvider, load func() ([]domain.RoleDefinition, error), logger *slog.Logger) (*Reloader, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	return &Reloader{
		path:     path,
		provider: provider,
		load:     load,
		logger:   logger,
		watcher:  watcher,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching in a background goroutine.
func (r *Reloader) Start() {
	go r.run()
}

// Stop closes the watcher and waits for the background goroutine to exit.
func (r *Reloader) Stop() error {
	err := r.watcher.Close()
	<-r.done
	return err
}

func (r *Reloader) run() {
	defer close(r.done)

	for {
		select {
		case event, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(r.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			r.reload()

		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			r.logger.Error("role definitions watcher error", "error", err)
		}
	}
}

func (r *Reloader) reload() {
	defs, err := r.load()
	if err != nil {
		r.logger.Error("reload: reading role definitions failed, keeping current registry", "error", err)
		return
	}

	reg, err := domain.NewRegistry(defs)
	if err != nil {
		r.logger.Error("reload: invalid role definitions, keeping current registry", "error", err)
		return
	}

	r.provider.Swap(reg)
	r.logger.Info("role registry reloaded", "roles", reg.Len(), "owner", reg.OwnerRole().Name())
}
