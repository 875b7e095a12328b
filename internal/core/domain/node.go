package domain

import "strings"

// NodeKind identifies the kind of a document tree node.
type NodeKind string

const (
	// KindRoot is the document root.
	KindRoot NodeKind = "root"
	// KindParagraph groups sentences.
	KindParagraph NodeKind = "paragraph"
	// KindSentence groups words and the leaf tokens between them.
	KindSentence NodeKind = "sentence"
	// KindWord carries text leaves plus annotation maps.
	KindWord NodeKind = "word"
	// KindText is a leaf holding word text.
	KindText NodeKind = "text"
	// KindPunctuation is a leaf holding a punctuation token.
	KindPunctuation NodeKind = "punctuation"
	// KindWhitespace is a leaf holding inter-word whitespace.
	KindWhitespace NodeKind = "whitespace"
	// KindSymbol is a leaf holding a non-linguistic symbol.
	KindSymbol NodeKind = "symbol"
)

// IsLeaf reports whether the kind is a traversal terminal.
func (k NodeKind) IsLeaf() bool {
	switch k {
	case KindText, KindPunctuation, KindWhitespace, KindSymbol:
		return true
	}
	return false
}

// Valid reports whether the kind is one of the known node kinds.
func (k NodeKind) Valid() bool {
	switch k {
	case KindRoot, KindParagraph, KindSentence, KindWord:
		return true
	}
	return k.IsLeaf()
}

// Node is the common view over every tree node type.
// The concrete types form a closed set; the pipeline dispatches on them
// with type switches rather than through this interface.
type Node interface {
	// NodeID returns the node's unique identifier.
	NodeID() string

	// NodeKind returns the node's kind tag.
	NodeKind() NodeKind
}

// SentenceChild is a node that may appear directly under a sentence:
// a *Word, or a *Leaf for the punctuation and whitespace between words.
type SentenceChild interface {
	Node
	sentenceChild()
}

// Root is the document node. It owns its paragraphs exclusively:
// no subtree is shared between documents and no node appears twice.
type Root struct {
	// ID is the unique identifier for the document.
	ID string

	// Lang is the document's BCP 47 language tag, if known.
	// Descendants inherit it unless they set their own.
	Lang string

	// Script is the document's ISO 15924 script code, if known.
	Script string

	// Paragraphs are the ordered child paragraphs.
	Paragraphs []*Paragraph
}

// NodeID returns the document id.
func (r *Root) NodeID() string { return r.ID }

// NodeKind returns KindRoot.
func (r *Root) NodeKind() NodeKind { return KindRoot }

// Words returns every word in the document in document order.
func (r *Root) Words() []*Word {
	var words []*Word
	for _, p := range r.Paragraphs {
		for _, s := range p.Sentences {
			words = append(words, s.Words()...)
		}
	}
	return words
}

// Paragraph groups sentences.
type Paragraph struct {
	// ID is the unique identifier for the paragraph.
	ID string

	// Lang overrides the inherited language tag when set.
	Lang string

	// Script overrides the inherited script code when set.
	Script string

	// Sentences are the ordered child sentences.
	Sentences []*Sentence
}

// NodeID returns the paragraph id.
func (p *Paragraph) NodeID() string { return p.ID }

// NodeKind returns KindParagraph.
func (p *Paragraph) NodeKind() NodeKind { return KindParagraph }

// Sentence groups words and the leaf tokens between them.
type Sentence struct {
	// ID is the unique identifier for the sentence.
	ID string

	// Lang overrides the inherited language tag when set.
	Lang string

	// Script overrides the inherited script code when set.
	Script string

	// Children are the ordered words and inter-word leaves.
	Children []SentenceChild
}

// NodeID returns the sentence id.
func (s *Sentence) NodeID() string { return s.ID }

// NodeKind returns KindSentence.
func (s *Sentence) NodeKind() NodeKind { return KindSentence }

// Words returns the sentence's words in order, skipping leaf tokens.
func (s *Sentence) Words() []*Word {
	var words []*Word
	for _, c := range s.Children {
		if w, ok := c.(*Word); ok {
			words = append(words, w)
		}
	}
	return words
}

// Word is the unit extensions annotate. Its text lives in leaf children;
// enrichment accumulates in Transcriptions, Meta and Extras.
type Word struct {
	// ID is the unique identifier for the word.
	ID string

	// Lang overrides the inherited language tag when set.
	Lang string

	// Script overrides the inherited script code when set.
	Script string

	// Leaves are the ordered leaf tokens forming the word.
	Leaves []*Leaf

	// Transcriptions maps a scheme name to its transcription record.
	Transcriptions map[string]Transcription

	// Meta holds linguistic metadata (part of speech, lemma, ...).
	// Top-level keys are conflict-tracked during a pipeline run.
	Meta map[string]any

	// Extras is the extension scratchpad. Extensions write under their
	// own or a well-known key. Top-level keys are conflict-tracked
	// during a pipeline run.
	Extras map[string]any
}

// NodeID returns the word id.
func (w *Word) NodeID() string { return w.ID }

// NodeKind returns KindWord.
func (w *Word) NodeKind() NodeKind { return KindWord }

func (w *Word) sentenceChild() {}

// Text returns the word's surface text: the concatenated values of its
// text leaves, in order.
func (w *Word) Text() string {
	var b strings.Builder
	for _, l := range w.Leaves {
		if l.Kind == KindText {
			b.WriteString(l.Value)
		}
	}
	return b.String()
}

// Leaf is a traversal terminal holding a single token.
type Leaf struct {
	// ID is the unique identifier for the leaf.
	ID string

	// Kind is one of the leaf kinds (text, punctuation, whitespace,
	// symbol).
	Kind NodeKind

	// Value is the token's literal text.
	Value string
}

// NodeID returns the leaf id.
func (l *Leaf) NodeID() string { return l.ID }

// NodeKind returns the leaf's kind tag.
func (l *Leaf) NodeKind() NodeKind { return l.Kind }

func (l *Leaf) sentenceChild() {}

// Transcription is one rendering of a word under a named scheme.
type Transcription struct {
	// Scheme names the transcription scheme (e.g., "cyrillic-latin").
	Scheme string

	// Value is the transcribed text.
	Value string

	// Source is the id of the extension that produced the record.
	Source string
}
