package driven

import (
	"context"

	"github.com/aksara-labs/lexitree-cli/internal/core/domain"
)

// ExtensionStore persists registered extensions for id-based lookup.
// Extensions carry behaviour (function values), so implementations are
// process-local; the in-memory adapter is the canonical one.
type ExtensionStore interface {
	// Put stores an extension under its id.
	// Returns domain.ErrAlreadyExists when the id is taken.
	Put(ctx context.Context, ext domain.Extension) error

	// Get retrieves an extension by id.
	// Returns domain.ErrNotFound when absent.
	Get(ctx context.Context, id string) (domain.Extension, error)

	// Delete removes an extension by id. Deleting an absent id is not
	// an error.
	Delete(ctx context.Context, id string) error

	// List returns all stored extensions sorted by id.
	List(ctx context.Context) ([]domain.Extension, error)
}
