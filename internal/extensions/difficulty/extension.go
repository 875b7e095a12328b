// Package difficulty scores words for learners from their corpus
// frequency.
package difficulty

import (
	"context"

	"github.com/aksara-labs/lexitree-cli/internal/core/domain"
	"github.com/aksara-labs/lexitree-cli/internal/extensions/frequency"
	"github.com/aksara-labs/lexitree-cli/internal/langdata"
)

// ID is the extension identifier.
const ID = "difficulty"

// FieldDifficulty is the extras key written by the extension.
const FieldDifficulty = "difficulty"

// Difficulty levels, easiest first.
const (
	LevelBeginner     = "beginner"
	LevelElementary   = "elementary"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// DefaultSkipExisting controls whether already-scored words are left
// untouched.
const DefaultSkipExisting = true

// Extension derives a difficulty level from the frequency rank written
// by the frequency extension. Words without a rank are a dependency
// error, so the pipeline can point the user at the missing extension.
type Extension struct {
	skipExisting bool
}

var _ domain.WordEnhancer = (*Extension)(nil)

// Option configures the extension.
type Option func(*Extension)

// WithSkipExisting controls whether words that already carry a
// difficulty level are skipped.
func WithSkipExisting(skip bool) Option {
	return func(e *Extension) {
		e.skipExisting = skip
	}
}

// New creates a difficulty extension with the given options.
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
		ID:           ID,
		Name:         "Difficulty scoring",
		Description:  "Scores words for learners from their corpus frequency rank",
		Dependencies: []string{frequency.ID},
		Requires: domain.FieldSet{
			Extras: []string{frequency.FieldFrequency},
		},
		Provides: domain.FieldSet{
			Extras: []string{FieldDifficulty},
		},
		Options: map[string]any{
			"skip_existing": e.skipExisting,
		},
	}
}

// EnhanceWord returns the difficulty field for the word. A word without
// a frequency rank reports a dependency error naming the frequency
// extension.
func (e *Extension) EnhanceWord(_ context.Context, word *domain.Word) (map[string]any, error) {
	if e.skipExisting {
		if _, ok := word.Extras[FieldDifficulty]; ok {
			return nil, nil
		}
	}
	if word.Text() == "" {
		return nil, nil
	}
	raw, ok := word.Extras[frequency.FieldFrequency]
	if !ok {
		return nil, &domain.ExtensionDependencyError{
			ExtensionID:  ID,
			DependencyID: frequency.ID,
			MissingField: "extras." + frequency.FieldFrequency,
			Suggestion:   "run the frequency extension first",
		}
	}
	rank, ok := asInt(raw)
	if !ok {
		return nil, &domain.ExtensionDependencyError{
			ExtensionID:  ID,
			DependencyID: frequency.ID,
			MissingField: "extras." + frequency.FieldFrequency,
			Suggestion:   "frequency rank is not numeric; re-run the frequency extension",
		}
	}
	return map[string]any{FieldDifficulty: levelFor(rank)}, nil
}

// levelFor maps a frequency band to a difficulty level.
func levelFor(rank int) string {
	switch langdata.Band(rank) {
	case langdata.BandTop100:
		return LevelBeginner
	case langdata.BandTop1000:
		return LevelElementary
	case langdata.BandTop5000:
		return LevelIntermediate
	default:
		return LevelAdvanced
	}
}

// asInt coerces a rank that may have round-tripped through YAML or
// JSON, where numbers come back as int, int64 or float64.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
