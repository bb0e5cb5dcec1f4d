package service

import (
	"sync/atomic"

	"github.com/aussiebroadwan/clubhouse/internal/roles/domain"
)

// RegistryProvider holds the currently active role registry and supports
// atomically swapping in a replacement built from fresh configuration.
// Registries are immutable, so readers either see the old one or the new one
// whole, never anything in between.
type RegistryProvider struct {
	current atomic.Pointer[domain.Registry]
}

func NewRegistryProvider(reg *domain.Registry) *RegistryProvider {
	p := &RegistryProvider{}
	p.current.Store(reg)
	return p
}

// Current returns the active registry.
func (p *RegistryProvider) Current() *domain.Registry {
	return p.current.Load()
}

// Swap replaces the active registry. A nil registry is ignored; callers that
// failed to build a replacement keep serving the last good one.
func (p *RegistryProvider) Swap(reg *domain.Registry) {
	if reg == nil {
		return
	}
	p.current.Store(reg)
}
