package nodes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aksara-labs/lexitree-cli/internal/core/domain"
)

func TestNewDocument_GeneratesID(t *testing.T) {
	doc := NewDocument()

	require.NotNil(t, doc)
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, domain.KindRoot, doc.NodeKind())
}

func TestNewDocument_DistinctIDs(t *testing.T) {
	a := NewDocument()
	b := NewDocument()
	assert.NotEqual(t, a.ID, b.ID)
}

func TestNewDocument_WithOptions(t *testing.T) {
	doc := NewDocument(WithID("doc-1"), WithLang("ru"), WithScript("Cyrl"))

	assert.Equal(t, "doc-1", doc.ID)
	assert.Equal(t, "ru", doc.Lang)
	assert.Equal(t, "Cyrl", doc.Script)
}

func TestWithID_EmptyKeepsGenerated(t *testing.T) {
	doc := NewDocument(WithID(""))
	assert.NotEmpty(t, doc.ID)
}

func TestNewWord_AllocatesMaps(t *testing.T) {
	word := NewWord(nil)

	require.NotNil(t, word)
	assert.NotNil(t, word.Extras)
	assert.NotNil(t, word.Meta)
	assert.NotNil(t, word.Transcriptions)
}

func TestNewWordText(t *testing.T) {
	word := NewWordText("hello", WithLang("en"))

	require.Len(t, word.Leaves, 1)
	assert.Equal(t, domain.KindText, word.Leaves[0].Kind)
	assert.Equal(t, "hello", word.Leaves[0].Value)
	assert.Equal(t, "hello", word.Text())
	assert.Equal(t, "en", word.Lang)
}

func TestLeafFactories_Kinds(t *testing.T) {
	tests := []struct {
		name     string
		leaf     *domain.Leaf
		wantKind domain.NodeKind
	}{
		{name: "text", leaf: NewText("hello"), wantKind: domain.KindText},
		{name: "punctuation", leaf: NewPunctuation("."), wantKind: domain.KindPunctuation},
		{name: "whitespace", leaf: NewWhitespace(" "), wantKind: domain.KindWhitespace},
		{name: "symbol", leaf: NewSymbol("€"), wantKind: domain.KindSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, tt.leaf.Kind)
			assert.NotEmpty(t, tt.leaf.ID)
		})
	}
}

func TestPropagateLang_FillsFromAncestors(t *testing.T) {
	word := NewWordText("слово")
	sentence := NewSentence()
	sentence.Children = []domain.SentenceChild{word}
	paragraph := NewParagraph()
	paragraph.Sentences = []*domain.Sentence{sentence}
	doc := NewDocument(WithLang("ru"), WithScript("Cyrl"))
	doc.Paragraphs = []*domain.Paragraph{paragraph}

	PropagateLang(doc)

	assert.Equal(t, "ru", paragraph.Lang)
	assert.Equal(t, "ru", sentence.Lang)
	assert.Equal(t, "ru", word.Lang)
	assert.Equal(t, "Cyrl", word.Script)
}

func TestPropagateLang_KeepsOverrides(t *testing.T) {
	word := NewWordText("kosmos", WithLang("el"), WithScript("Latn"))
	sentence := NewSentence()
	sentence.Children = []domain.SentenceChild{word}
	paragraph := NewParagraph()
	paragraph.Sentences = []*domain.Sentence{sentence}
	doc := NewDocument(WithLang("ru"), WithScript("Cyrl"))
	doc.Paragraphs = []*domain.Paragraph{paragraph}

	PropagateLang(doc)

	assert.Equal(t, "el", word.Lang)
	assert.Equal(t, "Latn", word.Script)
	assert.Equal(t, "ru", sentence.Lang)
}

func TestPropagateLang_NilDocument(t *testing.T) {
	assert.NotPanics(t, func() { PropagateLang(nil) })
}
