package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aksara-labs/lexitree-cli/internal/core/domain"
	"github.com/aksara-labs/lexitree-cli/internal/core/ports/driven"
	"github.com/aksara-labs/lexitree-cli/internal/core/ports/driving"
)

// Compile-time check that Registry implements the driving port.
var _ driving.RegistryService = (*Registry)(nil)

// Registry is the catalogue of known extensions, backed by an
// extension store.
type Registry struct {
	store driven.ExtensionStore
}

// NewRegistry creates a registry service over the given store.
func NewRegistry(store driven.ExtensionStore) *Registry {
	return &Registry{store: store}
}

// Register validates the extension's identity and adds it to the
// catalogue. A taken id yields domain.ErrAlreadyExists.
func (r *Registry) Register(ctx context.Context, ext domain.Extension) error {
	if ext == nil {
		return fmt.Errorf("nil extension: %w", domain.ErrInvalidInput)
	}
	if err := ext.Info().Validate(); err != nil {
		return err
	}
	if err := r.store.Put(ctx, ext); err != nil {
		return fmt.Errorf("register extension %q: %w", ext.Info().ID, err)
	}
	return nil
}

// Deregister removes an extension by id. Unknown ids are ignored.
func (r *Registry) Deregister(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("deregister extension %q: %w", id, err)
	}
	return nil
}

// Get retrieves an extension by id. An unknown id yields a
// domain.UnknownExtensionError carrying the nearest known id as a
// suggestion, when one is close enough to be worth offering.
func (r *Registry) Get(ctx context.Context, id string) (domain.Extension, error) {
	ext, err := r.store.Get(ctx, id)
	if err == nil {
		return ext, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get extension %q: %w", id, err)
	}
	return nil, &domain.UnknownExtensionError{ID: id, Suggestion: r.nearestID(ctx, id)}
}

// List returns all registered extensions sorted by id.
func (r *Registry) List(ctx context.Context) ([]domain.Extension, error) {
	exts, err := r.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list extensions: %w", err)
	}
	return exts, nil
}

// Find returns registered extensions matching the filter, sorted by id.
func (r *Registry) Find(ctx context.Context, filter driving.ExtensionFilter) ([]domain.Extension, error) {
	exts, err := r.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list extensions: %w", err)
	}

	var matched []domain.Extension
	for _, ext := range exts {
		if matchFilter(ext.Info(), filter) {
			matched = append(matched, ext)
		}
	}
	return matched, nil
}

// ResolveAll maps ids to extensions preserving caller order. The first
// unknown id fails the whole resolution.
func (r *Registry) ResolveAll(ctx context.Context, ids []string) ([]domain.Extension, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	exts := make([]domain.Extension, 0, len(ids))
	for _, id := range ids {
		ext, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		exts = append(exts, ext)
	}
	return exts, nil
}

// nearestID picks the registered id most plausibly meant by the given
// unknown id: a case-insensitive match beats a prefix match beats a
// substring match. Returns "" when nothing is close.
func (r *Registry) nearestID(ctx context.Context, id string) string {
	exts, err := r.store.List(ctx)
	if err != nil {
		return ""
	}

	lower := strings.ToLower(id)
	var prefix, substring string
	for _, ext := range exts {
		known := ext.Info().ID
		knownLower := strings.ToLower(known)
		switch {
		case knownLower == lower:
			return known
		case prefix == "" && (strings.HasPrefix(knownLower, lower) || strings.HasPrefix(lower, knownLower)):
			prefix = known
		case substring == "" && lower != "" && strings.Contains(knownLower, lower):
			substring = known
		}
	}
	if prefix != "" {
		return prefix
	}
	return substring
}

func matchFilter(info domain.ExtensionInfo, filter driving.ExtensionFilter) bool {
	if filter.ProvidesExtra != "" && !containsString(info.Provides.Extras, filter.ProvidesExtra) {
		return false
	}
	if filter.ProvidesMetadata != "" && !containsString(info.Provides.Metadata, filter.ProvidesMetadata) {
		return false
	}
	if filter.DependsOn != "" && !containsString(info.Dependencies, filter.DependsOn) {
		return false
	}
	return true
}

func containsString(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}
