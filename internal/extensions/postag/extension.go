// Package postag tags words with their part of speech.
package postag

import (
	"context"

	"github.com/aksara-labs/lexitree-cli/internal/core/domain"
	"github.com/aksara-labs/lexitree-cli/internal/langdata"
)

// ID is the extension identifier.
const ID = "postag"

// FieldPartOfSpeech is the meta key written by the extension.
const FieldPartOfSpeech = "partOfSpeech"

// DefaultSkipExisting controls whether already-tagged words are left
// untouched.
const DefaultSkipExisting = true

// Extension looks each word up in a per-language lexicon and records
// its Universal Dependencies tag under the word's metadata. Words the
// lexicon does not know stay untagged.
type Extension struct {
	skipExisting bool
}

var _ domain.WordVisitor = (*Extension)(nil)

// Option configures the extension.
type Option func(*Extension)

// WithSkipExisting controls whether words that already carry a tag are
// skipped.
func WithSkipExisting(skip bool) Option {
	return func(e *Extension) {
		e.skipExisting = skip
	}
}

// New creates a part-of-speech extension with the given options.
func New(opts ...Option) *Extension {
	e := &Extension{skipExisting: DefaultSkipExisting}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Info returns the extension metadata.
func (e *Extension) Info() domain.ExtensionInfo {
	return domain.ExtensionInfo{
		ID:          ID,
		Name:        "Part-of-speech tagger",
		Description: "Tags words with Universal Dependencies part-of-speech labels",
		Provides: domain.FieldSet{
			Metadata: []string{FieldPartOfSpeech},
		},
		Options: map[string]any{
			"skip_existing": e.skipExisting,
		},
	}
}

// VisitWord tags the word when the lexicon knows it.
func (e *Extension) VisitWord(_ context.Context, word *domain.Word) error {
	if e.skipExisting {
		if _, ok := word.Meta[FieldPartOfSpeech]; ok {
			return nil
		}
	}
	text := word.Text()
	if text == "" {
		return nil
	}
	code, ok := langdata.MatchLang(word.Lang)
	if !ok {
		return nil
	}
	pos, ok := langdata.PartOfSpeech(code, text)
	if !ok {
		return nil
	}
	if word.Meta == nil {
		word.Meta = make(map[string]any, 1)
	}
	word.Meta[FieldPartOfSpeech] = pos
	return nil
}
