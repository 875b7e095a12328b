// Package extensions provides the built-in tree extensions and the
// registry used to construct them from configuration.
package extensions

import (
	"fmt"
	"sort"
	"sync"

	"github.com/aksara-labs/lexitree-cli/internal/core/domain"
)

// BuilderFunc creates an extension from an options map. Builders are
// expected to tolerate a nil map and fall back to their defaults.
type BuilderFunc func(options map[string]any) (domain.Extension, error)

// Registry maps extension IDs to builder functions.
type Registry struct {
	mu       sync.RWMutex
	builders map[string]BuilderFunc
}

// NewRegistry creates an empty extension builder registry.
func NewRegistry() *Registry {
	return &Registry{builders: make(map[string]BuilderFunc)}
}

// Register adds a builder for the given ID, replacing any existing entry.
func (r *Registry) Register(id string, builder BuilderFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.builders[id] = builder
}

// Build creates an extension by ID with the given options.
func (r *Registry) Build(id string, options map[string]any) (domain.Extension, error) {
	r.mu.RLock()
	builder, ok := r.builders[id]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no builder for extension %q: %w", id, domain.ErrNotFound)
	}
	return builder(options)
}

// Has reports whether a builder is registered for the given ID.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.builders[id]
	return ok
}

// IDs returns the registered extension IDs in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.builders))
	for id := range r.builders {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
