// Package nodes builds document tree nodes with generated identifiers.
// Factories allocate the mutable maps up front so extensions can write
// to any word without nil checks.
package nodes

import (
	"github.com/google/uuid"

	"github.com/aksara-labs/lexitree-cli/internal/core/domain"
)

// Option configures a created node's common attributes.
type Option func(*attrs)

type attrs struct {
	id     string
	lang   string
	script string
}

// WithID overrides the generated identifier.
func WithID(id string) Option {
	return func(a *attrs) {
		if id != "" {
			a.id = id
		}
	}
}

// WithLang sets the language tag (BCP 47, e.g. "ru", "el", "en-GB").
func WithLang(lang string) Option {
	return func(a *attrs) {
		a.lang = lang
	}
}

// WithScript sets the writing-script tag (ISO 15924, e.g. "Cyrl").
func WithScript(script string) Option {
	return func(a *attrs) {
		a.script = script
	}
}

func build(opts []Option) attrs {
	a := attrs{id: uuid.New().String()}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// NewDocument creates an empty document root.
func NewDocument(opts ...Option) *domain.Root {
	a := build(opts)
	return &domain.Root{ID: a.id, Lang: a.lang, Script: a.script}
}

// NewParagraph creates an empty paragraph.
func NewParagraph(opts ...Option) *domain.Paragraph {
	a := build(opts)
	return &domain.Paragraph{ID: a.id, Lang: a.lang, Script: a.script}
}

// NewSentence creates an empty sentence.
func NewSentence(opts ...Option) *domain.Sentence {
	a := build(opts)
	return &domain.Sentence{ID: a.id, Lang: a.lang, Script: a.script}
}

// NewWord creates a word holding the given leaves.
func NewWord(leaves []*domain.Leaf, opts ...Option) *domain.Word {
	a := build(opts)
	return &domain.Word{
		ID:             a.id,
		Lang:           a.lang,
		Script:         a.script,
		Leaves:         leaves,
		Transcriptions: make(map[string]domain.Transcription),
		Meta:           make(map[string]any),
		Extras:         make(map[string]any),
	}
}

// NewWordText creates a word over a single text leaf. This wraps an
// already-tokenised word; it does no splitting.
func NewWordText(text string, opts ...Option) *domain.Word {
	return NewWord([]*domain.Leaf{NewText(text)}, opts...)
}

// NewText creates a text leaf.
func NewText(value string, opts ...Option) *domain.Leaf {
	a := build(opts)
	return &domain.Leaf{ID: a.id, Kind: domain.KindText, Value: value}
}

// NewPunctuation creates a punctuation leaf.
func NewPunctuation(value string, opts ...Option) *domain.Leaf {
	a := build(opts)
	return &domain.Leaf{ID: a.id, Kind: domain.KindPunctuation, Value: value}
}

// NewWhitespace creates a whitespace leaf.
func NewWhitespace(value string, opts ...Option) *domain.Leaf {
	a := build(opts)
	return &domain.Leaf{ID: a.id, Kind: domain.KindWhitespace, Value: value}
}

// NewSymbol creates a symbol leaf.
func NewSymbol(value string, opts ...Option) *domain.Leaf {
	a := build(opts)
	return &domain.Leaf{ID: a.id, Kind: domain.KindSymbol, Value: value}
}
