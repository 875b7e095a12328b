package extensions

import (
	"context"

	"github.com/aksara-labs/lexitree-cli/internal/core/domain"
)

// Spec is a declarative extension built from plain functions. It
// implements every capability interface; capabilities whose function is
// nil behave as no-ops, so a Spec only participates in the phases it
// actually defines. It is the quickest way to assemble an extension
// without declaring a new type, e.g. in tests or one-off pipelines.
type Spec struct {
	ID           string
	Name         string
	Description  string
	Dependencies []string
	Requires     domain.FieldSet
	Provides     domain.FieldSet
	Options      map[string]any

	TransformFunc func(ctx context.Context, doc *domain.Root) (*domain.Root, error)
	RootFunc      func(ctx context.Context, root *domain.Root) error
	ParagraphFunc func(ctx context.Context, para *domain.Paragraph) error
	SentenceFunc  func(ctx context.Context, sent *domain.Sentence) error
	WordFunc      func(ctx context.Context, word *domain.Word) error
	EnhanceFunc   func(ctx context.Context, word *domain.Word) (map[string]any, error)
}

var (
	_ domain.Extension        = Spec{}
	_ domain.Transformer      = Spec{}
	_ domain.RootVisitor      = Spec{}
	_ domain.ParagraphVisitor = Spec{}
	_ domain.SentenceVisitor  = Spec{}
	_ domain.WordVisitor      = Spec{}
	_ domain.WordEnhancer     = Spec{}
)

// Info returns the extension metadata declared on the Spec.
func (s Spec) Info() domain.ExtensionInfo {
	return domain.ExtensionInfo{
		ID:           s.ID,
		Name:         s.Name,
		Description:  s.Description,
		Dependencies: s.Dependencies,
		Requires:     s.Requires,
		Provides:     s.Provides,
		Options:      s.Options,
	}
}

// Transform applies TransformFunc, or returns the document unchanged
// when none is set.
func (s Spec) Transform(ctx context.Context, doc *domain.Root) (*domain.Root, error) {
	if s.TransformFunc == nil {
		return doc, nil
	}
	return s.TransformFunc(ctx, doc)
}

// VisitRoot applies RootFunc if set.
func (s Spec) VisitRoot(ctx context.Context, root *domain.Root) error {
	if s.RootFunc == nil {
		return nil
	}
	return s.RootFunc(ctx, root)
}

// VisitParagraph applies ParagraphFunc if set.
func (s Spec) VisitParagraph(ctx context.Context, para *domain.Paragraph) error {
	if s.ParagraphFunc == nil {
		return nil
	}
	return s.ParagraphFunc(ctx, para)
}

// VisitSentence applies SentenceFunc if set.
func (s Spec) VisitSentence(ctx context.Context, sent *domain.Sentence) error {
	if s.SentenceFunc == nil {
		return nil
	}
	return s.SentenceFunc(ctx, sent)
}

// VisitWord applies WordFunc if set.
func (s Spec) VisitWord(ctx context.Context, word *domain.Word) error {
	if s.WordFunc == nil {
		return nil
	}
	return s.WordFunc(ctx, word)
}

// EnhanceWord applies EnhanceFunc, or reports no fields when none is set.
func (s Spec) EnhanceWord(ctx context.Context, word *domain.Word) (map[string]any, error) {
	if s.EnhanceFunc == nil {
		return nil, nil
	}
	return s.EnhanceFunc(ctx, word)
}
