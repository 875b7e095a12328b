package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aksara-labs/lexitree-cli/internal/core/domain"
	"github.com/aksara-labs/lexitree-cli/internal/core/ports/driven"
)

// Ensure ExtensionStore implements the interface.
var _ driven.ExtensionStore = (*ExtensionStore)(nil)

// ExtensionStore is an in-memory implementation of driven.ExtensionStore.
// Extensions carry behaviour, so in-process storage is the canonical
// form; there is no serialised representation to persist.
type ExtensionStore struct {
	mu         sync.RWMutex
	extensions map[string]domain.Extension
}

// NewExtensionStore creates a new in-memory extension store.
func NewExtensionStore() *ExtensionStore {
	return &ExtensionStore{
		extensions: make(map[string]domain.Extension),
	}
}

// Put stores an extension under its id.
func (s *ExtensionStore) Put(_ context.Context, ext domain.Extension) error {
	id := ext.Info().ID
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.extensions[id]; ok {
		return domain.ErrAlreadyExists
	}
	s.extensions[id] = ext
	return nil
}

// Get retrieves an extension by id.
func (s *ExtensionStore) Get(_ context.Context, id string) (domain.Extension, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ext, ok := s.extensions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return ext, nil
}

// Delete removes an extension by id. Absent ids are ignored.
func (s *ExtensionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.extensions, id)
	return nil
}

// List returns all stored extensions sorted by id.
func (s *ExtensionStore) List(_ context.Context) ([]domain.Extension, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	exts := make([]domain.Extension, 0, len(s.extensions))
	for _, ext := range s.extensions {
		exts = append(exts, ext)
	}
	sort.Slice(exts, func(i, j int) bool {
		return exts[i].Info().ID < exts[j].Info().ID
	})
	return exts, nil
}
