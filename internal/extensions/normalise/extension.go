// Package normalise tidies document trees before enrichment.
package normalise

import (
	"context"

	"github.com/aksara-labs/lexitree-cli/internal/core/domain"
)

// ID is the extension identifier.
const ID = "normalise"

// Defaults.
const (
	DefaultCollapseWhitespace = true
	DefaultDropEmpty          = true
)

// Extension rewrites the tree: runs of whitespace leaves collapse into
// a single space, sentences without content are dropped, and paragraphs
// left empty are dropped with them. Words and the remaining leaves are
// carried over by pointer, so annotations survive the rewrite.
type Extension struct {
	collapseWhitespace bool
	dropEmpty          bool
}

var _ domain.Transformer = (*Extension)(nil)

// Option configures the extension.
type Option func(*Extension)

// WithCollapseWhitespace controls collapsing whitespace-leaf runs.
func WithCollapseWhitespace(collapse bool) Option {
	return func(e *Extension) {
		e.collapseWhitespace = collapse
	}
}

// WithDropEmpty controls dropping empty sentences and paragraphs.
func WithDropEmpty(drop bool) Option {
	return func(e *Extension) {
		e.dropEmpty = drop
	}
}

// New creates a normalise extension with the given options.
func New(opts ...Option) *Extension {
	e := &Extension{
		collapseWhitespace: DefaultCollapseWhitespace,
		dropEmpty:          DefaultDropEmpty,
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
		Name:        "Tree normalisation",
		Description: "Collapses whitespace runs and drops empty sentences and paragraphs",
		Options: map[string]any{
			"collapse_whitespace": e.collapseWhitespace,
			"drop_empty":          e.dropEmpty,
		},
	}
}

// Transform returns the normalised tree.
func (e *Extension) Transform(_ context.Context, doc *domain.Root) (*domain.Root, error) {
	out := &domain.Root{
		ID:     doc.ID,
		Lang:   doc.Lang,
		Script: doc.Script,
	}
	for _, para := range doc.Paragraphs {
		next := e.normaliseParagraph(para)
		if next != nil {
			out.Paragraphs = append(out.Paragraphs, next)
		}
	}
	return out, nil
}

func (e *Extension) normaliseParagraph(para *domain.Paragraph) *domain.Paragraph {
	out := &domain.Paragraph{
		ID:     para.ID,
		Lang:   para.Lang,
		Script: para.Script,
	}
	for _, sent := range para.Sentences {
		next := e.normaliseSentence(sent)
		if next != nil {
			out.Sentences = append(out.Sentences, next)
		}
	}
	if e.dropEmpty && len(out.Sentences) == 0 {
		return nil
	}
	return out
}

func (e *Extension) normaliseSentence(sent *domain.Sentence) *domain.Sentence {
	out := &domain.Sentence{
		ID:     sent.ID,
		Lang:   sent.Lang,
		Script: sent.Script,
	}
	for _, child := range sent.Children {
		leaf, ok := child.(*domain.Leaf)
		if !ok || leaf.Kind != domain.KindWhitespace || !e.collapseWhitespace {
			out.Children = append(out.Children, child)
			continue
		}
		// Whitespace runs fold into the previous whitespace leaf.
		if n := len(out.Children); n > 0 {
			if prev, ok := out.Children[n-1].(*domain.Leaf); ok && prev.Kind == domain.KindWhitespace {
				continue
			}
		}
		if leaf.Value == " " {
			out.Children = append(out.Children, leaf)
			continue
		}
		out.Children = append(out.Children, &domain.Leaf{
			ID:    leaf.ID,
			Kind:  domain.KindWhitespace,
			Value: " ",
		})
	}
	if e.dropEmpty && isEmpty(out) {
		return nil
	}
	return out
}

// isEmpty reports whether the sentence holds no words and no leaves
// other than whitespace.
func isEmpty(sent *domain.Sentence) bool {
	for _, child := range sent.Children {
		switch c := child.(type) {
		case *domain.Word:
			return false
		case *domain.Leaf:
			if c.Kind != domain.KindWhitespace {
				return false
			}
		}
	}
	return true
}
