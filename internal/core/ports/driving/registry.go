package driving

import (
	"context"

	"github.com/aksara-labs/lexitree-cli/internal/core/domain"
)

// RegistryService manages the catalogue of known extensions and
// resolves id strings to extension values for the pipeline.
type RegistryService interface {
	// Register adds an extension to the catalogue.
	// Returns domain.ErrAlreadyExists when the id is taken.
	Register(ctx context.Context, ext domain.Extension) error

	// Deregister removes an extension by id.
	Deregister(ctx context.Context, id string) error

	// Get retrieves an extension by id. An unknown id yields a
	// domain.UnknownExtensionError carrying a nearest-id suggestion.
	Get(ctx context.Context, id string) (domain.Extension, error)

	// List returns all registered extensions sorted by id.
	List(ctx context.Context) ([]domain.Extension, error)

	// Find returns registered extensions matching the filter, sorted
	// by id.
	Find(ctx context.Context, filter ExtensionFilter) ([]domain.Extension, error)

	// ResolveAll maps ids to extensions preserving caller order.
	// The first unknown id fails the whole resolution.
	ResolveAll(ctx context.Context, ids []string) ([]domain.Extension, error)
}

// ExtensionFilter selects extensions by what they declare.
// Zero-value fields are ignored; set fields must all match.
type ExtensionFilter struct {
	// ProvidesExtra matches extensions declaring the extras key.
	ProvidesExtra string

	// ProvidesMetadata matches extensions declaring the metadata key.
	ProvidesMetadata string

	// DependsOn matches extensions declaring a dependency on the id.
	DependsOn string
}
