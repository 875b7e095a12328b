// Package frequency annotates words with corpus frequency ranks.
package frequency

import (
	"context"

	"github.com/aksara-labs/lexitree-cli/internal/core/domain"
	"github.com/aksara-labs/lexitree-cli/internal/langdata"
)

// ID is the extension identifier.
const ID = "frequency"

// Extras keys written by the extension.
const (
	FieldFrequency = "frequency"
	FieldBand      = "frequencyBand"
)

// DefaultSkipExisting controls whether already-ranked words are left
// untouched.
const DefaultSkipExisting = true

// Extension ranks each word against a per-language frequency list and
// buckets the rank into a band. Unranked words get rank 0 and the rare
// band.
type Extension struct {
	skipExisting bool
	corpus       string
}

var _ domain.WordEnhancer = (*Extension)(nil)

// Option configures the extension.
type Option func(*Extension)

// WithSkipExisting controls whether words that already carry a
// frequency rank are skipped.
func WithSkipExisting(skip bool) Option {
	return func(e *Extension) {
		e.skipExisting = skip
	}
}

// WithCorpus forces the frequency list of the given language instead of
// following each word's own language.
func WithCorpus(lang string) Option {
	return func(e *Extension) {
		if lang != "" {
			e.corpus = lang
		}
	}
}

// New creates a frequency extension with the given options.
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
		Name:        "Word frequency",
		Description: "Annotates words with their corpus frequency rank and band",
		Provides: domain.FieldSet{
			Extras: []string{FieldFrequency, FieldBand},
		},
		Options: map[string]any{
			"skip_existing": e.skipExisting,
			"corpus":        e.corpus,
		},
	}
}

// EnhanceWord returns the frequency fields for the word, or nothing
// when the word is empty, its language has no list, or it is already
// ranked and skipping is on.
func (e *Extension) EnhanceWord(_ context.Context, word *domain.Word) (map[string]any, error) {
	if e.skipExisting {
		if _, ok := word.Extras[FieldFrequency]; ok {
			return nil, nil
		}
	}
	text := word.Text()
	if text == "" {
		return nil, nil
	}
	lang := word.Lang
	if e.corpus != "" {
		lang = e.corpus
	}
	code, ok := langdata.MatchLang(lang)
	if !ok {
		return nil, nil
	}
	rank, _ := langdata.Rank(code, text)
	return map[string]any{
		FieldFrequency: rank,
		FieldBand:      langdata.Band(rank),
	}, nil
}
