// Package treeio reads and writes annotated document trees. Files are
// YAML; JSON works too since yaml.v3 parses it as a subset. This is CLI
// glue for moving trees in and out of the pipeline, not a storage
// layer.
package treeio

import (
	"fmt"

	"github.com/aksara-labs/lexitree-cli/internal/core/domain"
	"github.com/aksara-labs/lexitree-cli/internal/nodes"
)

// documentDTO is the on-disk shape of a document tree. IDs are optional
// everywhere; missing ones are assigned on decode.
type documentDTO struct {
	ID         string         `yaml:"id,omitempty"`
	Lang       string         `yaml:"lang,omitempty"`
	Script     string         `yaml:"script,omitempty"`
	Paragraphs []paragraphDTO `yaml:"paragraphs,omitempty"`
}

type paragraphDTO struct {
	ID        string        `yaml:"id,omitempty"`
	Lang      string        `yaml:"lang,omitempty"`
	Script    string        `yaml:"script,omitempty"`
	Sentences []sentenceDTO `yaml:"sentences,omitempty"`
}

type sentenceDTO struct {
	ID     string     `yaml:"id,omitempty"`
	Lang   string     `yaml:"lang,omitempty"`
	Script string     `yaml:"script,omitempty"`
	Tokens []tokenDTO `yaml:"tokens,omitempty"`
}

// tokenDTO is a sentence child: a word, or a leaf between words. Kind
// selects the shape; a word may give value as shorthand for a single
// text leaf.
type tokenDTO struct {
	Kind           string                      `yaml:"kind"`
	ID             string                      `yaml:"id,omitempty"`
	Value          string                      `yaml:"value,omitempty"`
	Lang           string                      `yaml:"lang,omitempty"`
	Script         string                      `yaml:"script,omitempty"`
	Leaves         []leafDTO                   `yaml:"leaves,omitempty"`
	Transcriptions map[string]transcriptionDTO `yaml:"transcriptions,omitempty"`
	Meta           map[string]any              `yaml:"meta,omitempty"`
	Extras         map[string]any              `yaml:"extras,omitempty"`
}

type leafDTO struct {
	Kind  string `yaml:"kind"`
	ID    string `yaml:"id,omitempty"`
	Value string `yaml:"value"`
}

// transcriptionDTO is keyed by scheme in the word's transcriptions map.
type transcriptionDTO struct {
	Value  string `yaml:"value"`
	Source string `yaml:"source,omitempty"`
}

func (d documentDTO) validate() error {
	for pi, para := range d.Paragraphs {
		for si, sent := range para.Sentences {
			for ti, tok := range sent.Tokens {
				if err := tok.validate(); err != nil {
					return fmt.Errorf("document: paragraph[%d] sentence[%d] token[%d]: %w", pi, si, ti, err)
				}
			}
		}
	}
	return nil
}

func (t tokenDTO) validate() error {
	if t.Kind == "" {
		return fmt.Errorf("token kind is required")
	}
	kind := domain.NodeKind(t.Kind)
	switch {
	case kind == domain.KindWord:
		if t.Value != "" && len(t.Leaves) > 0 {
			return fmt.Errorf("word carries both value and leaves")
		}
		for li, leaf := range t.Leaves {
			if err := leaf.validate(); err != nil {
				return fmt.Errorf("leaf[%d]: %w", li, err)
			}
		}
		return nil
	case kind.IsLeaf():
		if len(t.Leaves) > 0 {
			return fmt.Errorf("%s token cannot carry leaves", t.Kind)
		}
		if len(t.Transcriptions) > 0 || len(t.Meta) > 0 || len(t.Extras) > 0 {
			return fmt.Errorf("%s token cannot carry word annotations", t.Kind)
		}
		if t.Value == "" {
			return fmt.Errorf("%s token value is required", t.Kind)
		}
		return nil
	default:
		return fmt.Errorf("unknown kind %q", t.Kind)
	}
}

func (l leafDTO) validate() error {
	if l.Kind == "" {
		return fmt.Errorf("leaf kind is required")
	}
	if !domain.NodeKind(l.Kind).IsLeaf() {
		return fmt.Errorf("%q is not a leaf kind", l.Kind)
	}
	if l.Value == "" {
		return fmt.Errorf("leaf value is required")
	}
	return nil
}

// toDomain builds the domain tree, minting ids where the file had none.
func (d documentDTO) toDomain() *domain.Root {
	doc := nodes.NewDocument(attrOpts(d.ID, d.Lang, d.Script)...)
	for _, para := range d.Paragraphs {
		doc.Paragraphs = append(doc.Paragraphs, para.toDomain())
	}
	return doc
}

func (p paragraphDTO) toDomain() *domain.Paragraph {
	para := nodes.NewParagraph(attrOpts(p.ID, p.Lang, p.Script)...)
	for _, sent := range p.Sentences {
		para.Sentences = append(para.Sentences, sent.toDomain())
	}
	return para
}

func (s sentenceDTO) toDomain() *domain.Sentence {
	sent := nodes.NewSentence(attrOpts(s.ID, s.Lang, s.Script)...)
	for _, tok := range s.Tokens {
		sent.Children = append(sent.Children, tok.toDomain())
	}
	return sent
}

func (t tokenDTO) toDomain() domain.SentenceChild {
	kind := domain.NodeKind(t.Kind)
	if kind != domain.KindWord {
		leaf := nodes.NewText(t.Value, attrOpts(t.ID, "", "")...)
		leaf.Kind = kind
		return leaf
	}

	leaves := make([]*domain.Leaf, 0, len(t.Leaves))
	if t.Value != "" {
		leaves = append(leaves, nodes.NewText(t.Value))
	}
	for _, l := range t.Leaves {
		leaf := nodes.NewText(l.Value, attrOpts(l.ID, "", "")...)
		leaf.Kind = domain.NodeKind(l.Kind)
		leaves = append(leaves, leaf)
	}
	word := nodes.NewWord(leaves, attrOpts(t.ID, t.Lang, t.Script)...)
	for scheme, tr := range t.Transcriptions {
		word.Transcriptions[scheme] = domain.Transcription{
			Scheme: scheme,
			Value:  tr.Value,
			Source: tr.Source,
		}
	}
	for k, v := range t.Meta {
		word.Meta[k] = v
	}
	for k, v := range t.Extras {
		word.Extras[k] = v
	}
	return word
}

func attrOpts(id, lang, script string) []nodes.Option {
	var opts []nodes.Option
	if id != "" {
		opts = append(opts, nodes.WithID(id))
	}
	if lang != "" {
		opts = append(opts, nodes.WithLang(lang))
	}
	if script != "" {
		opts = append(opts, nodes.WithScript(script))
	}
	return opts
}

// fromDomain flattens the tree back into its on-disk shape. All ids are
// written out so a round trip is stable.
func fromDomain(doc *domain.Root) documentDTO {
	d := documentDTO{ID: doc.ID, Lang: doc.Lang, Script: doc.Script}
	for _, para := range doc.Paragraphs {
		p := paragraphDTO{ID: para.ID, Lang: para.Lang, Script: para.Script}
		for _, sent := range para.Sentences {
			s := sentenceDTO{ID: sent.ID, Lang: sent.Lang, Script: sent.Script}
			for _, child := range sent.Children {
				s.Tokens = append(s.Tokens, tokenFromDomain(child))
			}
			p.Sentences = append(p.Sentences, s)
		}
		d.Paragraphs = append(d.Paragraphs, p)
	}
	return d
}

func tokenFromDomain(child domain.SentenceChild) tokenDTO {
	switch c := child.(type) {
	case *domain.Word:
		tok := tokenDTO{
			Kind:   string(domain.KindWord),
			ID:     c.ID,
			Lang:   c.Lang,
			Script: c.Script,
		}
		for _, leaf := range c.Leaves {
			tok.Leaves = append(tok.Leaves, leafDTO{
				Kind:  string(leaf.Kind),
				ID:    leaf.ID,
				Value: leaf.Value,
			})
		}
		if len(c.Transcriptions) > 0 {
			tok.Transcriptions = make(map[string]transcriptionDTO, len(c.Transcriptions))
			for scheme, tr := range c.Transcriptions {
				tok.Transcriptions[scheme] = transcriptionDTO{Value: tr.Value, Source: tr.Source}
			}
		}
		if len(c.Meta) > 0 {
			tok.Meta = c.Meta
		}
		if len(c.Extras) > 0 {
			tok.Extras = c.Extras
		}
		return tok
	case *domain.Leaf:
		return tokenDTO{Kind: string(c.Kind), ID: c.ID, Value: c.Value}
	default:
		return tokenDTO{}
	}
}
