// Package gloss attaches dictionary translations to words.
package gloss

import (
	"context"

	"github.com/aksara-labs/lexitree-cli/internal/core/domain"
	"github.com/aksara-labs/lexitree-cli/internal/langdata"
)

// ID is the extension identifier.
const ID = "gloss"

// FieldTranslation is the extras key written by the extension.
const FieldTranslation = "translation"

// Defaults.
const (
	DefaultTargetLang   = "en"
	DefaultSkipExisting = true
)

// Extension glosses each word into the target language using the
// bundled glossaries. Words already in the target language, or absent
// from the glossary, are left alone.
type Extension struct {
	targetLang   string
	skipExisting bool
}

var _ domain.WordEnhancer = (*Extension)(nil)

// Option configures the extension.
type Option func(*Extension)

// WithTargetLang sets the language to gloss into.
func WithTargetLang(lang string) Option {
	return func(e *Extension) {
		if lang != "" {
			e.targetLang = lang
		}
	}
}

// WithSkipExisting controls whether words that already carry a
// translation are skipped.
func WithSkipExisting(skip bool) Option {
	return func(e *Extension) {
		e.skipExisting = skip
	}
}

// New creates a gloss extension with the given options.
func New(opts ...Option) *Extension {
	e := &Extension{
		targetLang:   DefaultTargetLang,
		skipExisting: DefaultSkipExisting,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Info returns the extension metadata.
func (e *Extension) Info() domain.ExtensionInfo {
	return domain.ExtensionInfo{
		ID:          ID,
		Name:        "Glossing",
		Description: "Attaches dictionary translations to words",
		Provides: domain.FieldSet{
			Extras: []string{FieldTranslation},
		},
		Options: map[string]any{
			"target_lang":   e.targetLang,
			"skip_existing": e.skipExisting,
		},
	}
}

// EnhanceWord returns the translation field for the word, or nothing
// when no gloss applies.
func (e *Extension) EnhanceWord(_ context.Context, word *domain.Word) (map[string]any, error) {
	if e.skipExisting {
		if _, ok := word.Extras[FieldTranslation]; ok {
			return nil, nil
		}
	}
	text := word.Text()
	if text == "" {
		return nil, nil
	}
	from, ok := langdata.MatchLang(word.Lang)
	if !ok {
		return nil, nil
	}
	to, ok := langdata.MatchLang(e.targetLang)
	if !ok || from == to {
		return nil, nil
	}
	translation, ok := langdata.Gloss(from, to, text)
	if !ok {
		return nil, nil
	}
	return map[string]any{FieldTranslation: translation}, nil
}
