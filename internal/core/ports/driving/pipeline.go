package driving

import (
	"context"

	"github.com/aksara-labs/lexitree-cli/internal/core/domain"
)

// PipelineService runs enrichment pipelines over document trees.
//
// A run is strictly sequential: extensions execute one after another in
// dependency order, and within an extension no two callbacks overlap.
// Callers wanting asynchrony run Process in their own goroutine;
// concurrent calls on different trees are safe because all per-run
// state is allocated per call.
type PipelineService interface {
	// Process runs the extensions over the document and returns the
	// enriched tree plus run metadata. Extension failures are reported
	// inside the result; the returned error is non-nil only when no
	// partial order exists (nil document, dependency cycle, duplicate
	// ids), in which case nothing ran.
	Process(ctx context.Context, doc *domain.Root, exts []domain.Extension, opts domain.Options) (*domain.ProcessingResult, error)

	// ProcessIDs resolves extension ids through the registry, then
	// processes. Unknown ids fail before anything runs.
	ProcessIDs(ctx context.Context, doc *domain.Root, ids []string, opts domain.Options) (*domain.ProcessingResult, error)

	// ProcessSimple runs with default options and discards run
	// metadata, returning only the enriched tree.
	ProcessSimple(ctx context.Context, doc *domain.Root, exts []domain.Extension) (*domain.Root, error)
}
