// Package translit adds romanised transcriptions to words.
package translit

import (
	"context"
	"fmt"

	"github.com/aksara-labs/lexitree-cli/internal/core/domain"
	"github.com/aksara-labs/lexitree-cli/internal/langdata"
)

// ID is the extension identifier.
const ID = "translit"

// Extension writes a transcription per word under the scheme chosen for
// the word's script. With an explicit scheme it is applied to every
// word instead.
type Extension struct {
	scheme string
}

var (
	_ domain.RootVisitor = (*Extension)(nil)
	_ domain.WordVisitor = (*Extension)(nil)
)

// Option configures the extension.
type Option func(*Extension)

// WithScheme forces a transliteration scheme instead of picking one per
// word script.
func WithScheme(scheme string) Option {
	return func(e *Extension) {
		e.scheme = scheme
	}
}

// New creates a transliteration extension with the given options.
func New(opts ...Option) *Extension {
	e := &Extension{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Info returns the extension metadata.
func (e *Extension) Info() domain.ExtensionInfo {
	return domain.ExtensionInfo{
		ID:          ID,
		Name:        "Transliteration",
		Description: "Adds romanised transcriptions to words in non-Latin scripts",
		Options: map[string]any{
			"scheme": e.scheme,
		},
	}
}

// VisitRoot validates the run: the configured scheme must be bundled
// and the tree must contain words to transcribe.
func (e *Extension) VisitRoot(_ context.Context, root *domain.Root) error {
	if e.scheme != "" && !langdata.HasScheme(e.scheme) {
		return fmt.Errorf("scheme %q: %w", e.scheme, domain.ErrUnsupportedScheme)
	}
	if len(root.Words()) == 0 {
		return &domain.MissingNodeTypeError{
			ExtensionID: ID,
			NodeType:    domain.KindWord,
		}
	}
	return nil
}

// VisitWord records a transcription for the word unless it already has
// one under the target scheme.
func (e *Extension) VisitWord(_ context.Context, word *domain.Word) error {
	text := word.Text()
	if text == "" {
		return nil
	}
	scheme := e.scheme
	if scheme == "" {
		script := word.Script
		if script == "" {
			script, _ = langdata.DetectScript(text)
		}
		var ok bool
		scheme, ok = langdata.SchemeForScript(script)
		if !ok {
			return nil
		}
	}
	if _, ok := word.Transcriptions[scheme]; ok {
		return nil
	}
	value, ok := langdata.Transliterate(scheme, text)
	if !ok {
		return nil
	}
	if word.Transcriptions == nil {
		word.Transcriptions = make(map[string]domain.Transcription, 1)
	}
	word.Transcriptions[scheme] = domain.Transcription{
		Scheme: scheme,
		Value:  value,
		Source: ID,
	}
	return nil
}
