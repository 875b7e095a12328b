package domain

import (
	"context"
	"fmt"
)

// ExtensionInfo is the declarative identity of an enrichment extension.
// Behaviour lives on the extension value itself through the capability
// interfaces below; this record is what the resolver, registry and
// result reporting see.
type ExtensionInfo struct {
	// ID uniquely identifies the extension within a run.
	ID string

	// Name is the human-readable display name.
	Name string

	// Description provides a brief explanation of the extension.
	Description string

	// Dependencies lists extension ids that must run first.
	// A declared id absent from the run is treated as satisfied.
	Dependencies []string

	// Requires declares fields the extension reads. The pipeline does
	// not verify them up front; the extension reports a dependency
	// error itself when a required field is missing at run time.
	Requires FieldSet

	// Provides declares fields the extension writes.
	Provides FieldSet

	// Options holds extension-specific configuration.
	Options map[string]any
}

// FieldSet names top-level keys under a word's extras and meta maps.
type FieldSet struct {
	// Extras are keys under Word.Extras.
	Extras []string

	// Metadata are keys under Word.Meta.
	Metadata []string
}

// Validate checks that the info is usable as a unit of work.
func (i ExtensionInfo) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("extension id is empty: %w", ErrInvalidInput)
	}
	return nil
}

// Extension is the unit of document enrichment. Behaviour is declared
// through the optional capability interfaces below; the pipeline
// dispatches with type assertions. An extension implementing none of
// them is a no-op, not an error.
type Extension interface {
	// Info returns the extension's declarative identity.
	Info() ExtensionInfo
}

// Transformer is the whole-tree rewrite capability, run once per
// extension before any visits. The returned tree replaces the working
// tree; returning the received pointer after in-place mutation is legal.
type Transformer interface {
	Extension

	// Transform rewrites the tree and returns the authoritative result.
	Transform(ctx context.Context, doc *Root) (*Root, error)
}

// RootVisitor is the capability to visit the document root.
type RootVisitor interface {
	Extension

	// VisitRoot is called once, before any descendants.
	VisitRoot(ctx context.Context, root *Root) error
}

// ParagraphVisitor is the capability to visit paragraphs.
type ParagraphVisitor interface {
	Extension

	// VisitParagraph is called per paragraph, parent before children.
	VisitParagraph(ctx context.Context, paragraph *Paragraph) error
}

// SentenceVisitor is the capability to visit sentences.
type SentenceVisitor interface {
	Extension

	// VisitSentence is called per sentence, parent before children.
	VisitSentence(ctx context.Context, sentence *Sentence) error
}

// WordVisitor is the capability to visit words.
type WordVisitor interface {
	Extension

	// VisitWord is called per word in document order. Writes to the
	// word's tracked fields are routed through conflict detection.
	VisitWord(ctx context.Context, word *Word) error
}

// WordEnhancer is the capability to derive per-word metadata. It runs
// after the visit phase, over every word of the (possibly transformed)
// tree.
type WordEnhancer interface {
	Extension

	// EnhanceWord returns fields to merge into the word's extras
	// through conflict detection. A nil or empty map is a no-op.
	EnhanceWord(ctx context.Context, word *Word) (map[string]any, error)
}
