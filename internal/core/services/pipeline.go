package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/aksara-labs/lexitree-cli/internal/core/domain"
	"github.com/aksara-labs/lexitree-cli/internal/core/ports/driving"
	"github.com/aksara-labs/lexitree-cli/internal/logger"
)

// Compile-time check that Pipeline implements the driving port.
var _ driving.PipelineService = (*Pipeline)(nil)

// Pipeline orchestrates extension runs over document trees. Each call
// allocates its own ordering, conflict tracker and result, so a single
// Pipeline value is safe for concurrent use on different trees.
type Pipeline struct {
	registry driving.RegistryService
}

// NewPipeline creates the orchestrator. The registry is optional: with
// a nil registry, extensions can only be passed as values and ProcessIDs
// fails. When present, run extensions are mirrored into it for the
// duration of the run.
func NewPipeline(registry driving.RegistryService) *Pipeline {
	return &Pipeline{registry: registry}
}

// Process runs the extensions over the document in dependency order.
//
// Failures inside the run are recorded on the result, not returned:
// strict mode (the default) stops at the first failing extension and
// returns what was applied so far, lenient mode records a skip and
// carries on. The returned error is non-nil only when nothing could
// run at all: nil document, invalid or duplicate extension ids, a
// dependency cycle, or context cancellation.
func (p *Pipeline) Process(ctx context.Context, doc *domain.Root, exts []domain.Extension, opts domain.Options) (*domain.ProcessingResult, error) {
	start := time.Now()

	// 1. Validate input
	if doc == nil {
		return nil, domain.ErrNilDocument
	}
	for _, ext := range exts {
		if err := ext.Info().Validate(); err != nil {
			return nil, err
		}
	}

	// 2. Resolve execution order
	ordered, err := ResolveOrder(exts)
	if err != nil {
		return nil, err
	}

	result := &domain.ProcessingResult{Document: doc}
	if len(ordered) == 0 {
		result.Metadata.Duration = time.Since(start)
		return result, nil
	}

	// 3. Mirror run extensions into the registry for the run's lifetime
	cleanup, err := p.registerForRun(ctx, ordered)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	logger.Info("Pipeline run: %d extensions", len(ordered))

	// 4. Apply extensions sequentially
	tracker := newFieldTracker()
	strategy := opts.ConflictStrategy.OrDefault()
	total := len(ordered)

	for i, ext := range ordered {
		id := ext.Info().ID

		if err := ctx.Err(); err != nil {
			result.Metadata.Duration = time.Since(start)
			return result, err
		}

		if opts.Hooks.Before != nil {
			opts.Hooks.Before(id)
		}

		runErr := p.applyExtension(ctx, result, ext, tracker, strategy, opts.Debug)
		if runErr != nil {
			// Cancellation mid-extension aborts the run without
			// blaming the extension.
			if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(runErr, ctxErr) {
				result.Metadata.Duration = time.Since(start)
				return result, runErr
			}

			if opts.Hooks.OnError != nil {
				opts.Hooks.OnError(runErr, id)
			}
			record := domain.ClassifyError(id, runErr)
			result.Metadata.Errors = append(result.Metadata.Errors, record)

			if !opts.Lenient {
				logger.Warn("Extension %q failed, aborting run: %v", id, runErr)
				p.reportProgress(opts.Hooks, i+1, total, id)
				break
			}

			logger.Warn("Extension %q failed, skipping: %v", id, runErr)
			result.Metadata.SkippedExtensions = append(result.Metadata.SkippedExtensions, id)
			if opts.Hooks.OnSkip != nil {
				opts.Hooks.OnSkip(id, record.Message)
			}
			p.reportProgress(opts.Hooks, i+1, total, id)
			continue
		}

		result.Metadata.AppliedExtensions = append(result.Metadata.AppliedExtensions, id)
		if opts.Hooks.After != nil {
			opts.Hooks.After(id)
		}
		p.reportProgress(opts.Hooks, i+1, total, id)
	}

	result.Metadata.Duration = time.Since(start)
	logger.Info("Pipeline run done: %d applied, %d skipped, %d errors",
		len(result.Metadata.AppliedExtensions),
		len(result.Metadata.SkippedExtensions),
		len(result.Metadata.Errors))
	return result, nil
}

// ProcessIDs resolves extension ids through the registry, then runs
// Process. The first unknown id fails the call before anything runs.
func (p *Pipeline) ProcessIDs(ctx context.Context, doc *domain.Root, ids []string, opts domain.Options) (*domain.ProcessingResult, error) {
	if p.registry == nil {
		return nil, fmt.Errorf("no extension registry configured: %w", domain.ErrInvalidInput)
	}
	exts, err := p.registry.ResolveAll(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve extensions: %w", err)
	}
	return p.Process(ctx, doc, exts, opts)
}

// ProcessSimple runs with default options and returns only the tree.
// Because the metadata is discarded, the first recorded extension
// failure is promoted to the returned error alongside the partial tree.
func (p *Pipeline) ProcessSimple(ctx context.Context, doc *domain.Root, exts []domain.Extension) (*domain.Root, error) {
	result, err := p.Process(ctx, doc, exts, domain.DefaultOptions())
	if err != nil {
		return nil, err
	}
	if len(result.Metadata.Errors) > 0 {
		first := result.Metadata.Errors[0]
		return result.Document, &first
	}
	return result.Document, nil
}

// applyExtension runs one extension's phases in order: transform,
// visits, then word enhancement. The first failing phase stops the
// extension; mutations from completed work stay in the document.
func (p *Pipeline) applyExtension(ctx context.Context, result *domain.ProcessingResult, ext domain.Extension, tracker *fieldTracker, strategy domain.ConflictStrategy, debug bool) error {
	id := ext.Info().ID

	// 1. Transform phase: the returned tree replaces the working tree
	if tr, ok := ext.(domain.Transformer); ok {
		if debug {
			logger.Debug("Extension %q: transform phase", id)
		}
		newDoc, err := tr.Transform(ctx, result.Document)
		if err != nil {
			return fmt.Errorf("transform: %w", err)
		}
		if newDoc == nil {
			return fmt.Errorf("transform returned nil tree: %w", domain.ErrInvalidInput)
		}
		result.Document = newDoc
	}

	// 2. Visit phase: pre-order walk over the (possibly new) tree
	walker := newTreeWalker(ext, tracker, strategy, &result.Metadata.Warnings)
	if walker.hasVisitors() {
		if debug {
			logger.Debug("Extension %q: visit phase", id)
		}
		if err := walker.walk(ctx, result.Document); err != nil {
			return err
		}
	}

	// 3. Enhancement phase: derived fields merge through the tracker
	if enh, ok := ext.(domain.WordEnhancer); ok {
		if debug {
			logger.Debug("Extension %q: enhancement phase", id)
		}
		if err := p.enhanceWords(ctx, result, enh, id, tracker, strategy); err != nil {
			return err
		}
	}

	return nil
}

// enhanceWords merges each word's enhancement map into its extras.
// Keys merge in sorted order so a conflicting key surfaces the same way
// on every run. A word whose merge is rejected keeps the keys already
// merged; there is no rollback.
func (p *Pipeline) enhanceWords(ctx context.Context, result *domain.ProcessingResult, enh domain.WordEnhancer, id string, tracker *fieldTracker, strategy domain.ConflictStrategy) error {
	for _, word := range result.Document.Words() {
		if err := ctx.Err(); err != nil {
			return err
		}

		fields, err := enh.EnhanceWord(ctx, word)
		if err != nil {
			return fmt.Errorf("enhance word: %w", err)
		}
		if len(fields) == 0 {
			continue
		}

		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			warning, err := tracker.Record(word.ID, extrasField(k), id, fields[k], strategy)
			if err != nil {
				return err
			}
			if warning != nil {
				result.Metadata.Warnings = append(result.Metadata.Warnings, *warning)
			}
			if word.Extras == nil {
				word.Extras = make(map[string]any, len(fields))
			}
			word.Extras[k] = fields[k]
		}
	}
	return nil
}

// registerForRun mirrors the run's extensions into the registry so id
// lookups during the run resolve them. Only ids not already registered
// are added, and exactly those are removed when the run returns. The
// cleanup runs under a detached context so deregistration survives the
// cancellation that may have ended the run.
func (p *Pipeline) registerForRun(ctx context.Context, exts []domain.Extension) (func(), error) {
	if p.registry == nil {
		return func() {}, nil
	}

	added := make([]string, 0, len(exts))
	undo := func(ids []string) {
		dctx := context.WithoutCancel(ctx)
		for _, id := range ids {
			_ = p.registry.Deregister(dctx, id)
		}
	}

	for _, ext := range exts {
		err := p.registry.Register(ctx, ext)
		if errors.Is(err, domain.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			undo(added)
			return nil, fmt.Errorf("register extension for run: %w", err)
		}
		added = append(added, ext.Info().ID)
	}

	return func() { undo(added) }, nil
}

func (p *Pipeline) reportProgress(hooks domain.Hooks, completed, total int, id string) {
	if hooks.OnProgress != nil {
		hooks.OnProgress(domain.Progress{Completed: completed, Total: total, CurrentID: id})
	}
}
