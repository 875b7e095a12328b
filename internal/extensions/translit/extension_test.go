package translit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aksara-labs/lexitree-cli/internal/core/domain"
	"github.com/aksara-labs/lexitree-cli/internal/langdata"
	"github.com/aksara-labs/lexitree-cli/internal/nodes"
)

func TestNew_Defaults(t *testing.T) {
	ext := New()

	assert.Empty(t, ext.scheme)
}

func TestInfo(t *testing.T) {
	info := New().Info()

	assert.Equal(t, ID, info.ID)
	assert.Empty(t, info.Dependencies)
}

func TestVisitRoot_RejectsUnknownScheme(t *testing.T) {
	doc := docWithWord("мир", "ru")

	err := New(WithScheme("klingon-latin")).VisitRoot(context.Background(), doc)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedScheme)
}

func TestVisitRoot_RejectsTreeWithoutWords(t *testing.T) {
	doc := nodes.NewDocument()
	para := nodes.NewParagraph()
	para.Sentences = append(para.Sentences, nodes.NewSentence())
	doc.Paragraphs = append(doc.Paragraphs, para)

	err := New().VisitRoot(context.Background(), doc)

	require.Error(t, err)
	var missing *domain.MissingNodeTypeError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, ID, missing.ExtensionID)
	assert.Equal(t, domain.KindWord, missing.NodeType)
}

func TestVisitRoot_AcceptsTreeWithWords(t *testing.T) {
	doc := docWithWord("мир", "ru")

	err := New().VisitRoot(context.Background(), doc)

	assert.NoError(t, err)
}

func TestVisitWord(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		script         string
		expectedScheme string
		expectedValue  string
	}{
		{
			name:           "Cyrillic by script",
			text:           "мир",
			script:         "Cyrl",
			expectedScheme: langdata.SchemeCyrillicLatin,
			expectedValue:  "mir",
		},
		{
			name:           "Cyrillic by detection",
			text:           "привет",
			expectedScheme: langdata.SchemeCyrillicLatin,
			expectedValue:  "privet",
		},
		{
			name:           "Greek by detection",
			text:           "γεια",
			expectedScheme: langdata.SchemeGreekLatin,
			expectedValue:  "geia",
		},
		{
			name:           "Capitalisation preserved",
			text:           "Привет",
			expectedScheme: langdata.SchemeCyrillicLatin,
			expectedValue:  "Privet",
		},
	}

	ext := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := []nodes.Option{}
			if tt.script != "" {
				opts = append(opts, nodes.WithScript(tt.script))
			}
			word := nodes.NewWordText(tt.text, opts...)

			err := ext.VisitWord(context.Background(), word)

			require.NoError(t, err)
			tr, ok := word.Transcriptions[tt.expectedScheme]
			require.True(t, ok)
			assert.Equal(t, tt.expectedValue, tr.Value)
			assert.Equal(t, tt.expectedScheme, tr.Scheme)
			assert.Equal(t, ID, tr.Source)
		})
	}
}

func TestVisitWord_SkipsLatinWords(t *testing.T) {
	word := nodes.NewWordText("hello")

	err := New().VisitWord(context.Background(), word)

	require.NoError(t, err)
	assert.Empty(t, word.Transcriptions)
}

func TestVisitWord_SkipsEmptyWord(t *testing.T) {
	word := nodes.NewWord(nil)

	err := New().VisitWord(context.Background(), word)

	require.NoError(t, err)
	assert.Empty(t, word.Transcriptions)
}

func TestVisitWord_KeepsExistingTranscription(t *testing.T) {
	word := nodes.NewWordText("мир")
	word.Transcriptions[langdata.SchemeCyrillicLatin] = domain.Transcription{
		Scheme: langdata.SchemeCyrillicLatin,
		Value:  "handmade",
		Source: "annotator",
	}

	err := New().VisitWord(context.Background(), word)

	require.NoError(t, err)
	assert.Equal(t, "handmade", word.Transcriptions[langdata.SchemeCyrillicLatin].Value)
	assert.Equal(t, "annotator", word.Transcriptions[langdata.SchemeCyrillicLatin].Source)
}

func TestVisitWord_ForcedSchemeAppliesEverywhere(t *testing.T) {
	word := nodes.NewWordText("мир", nodes.WithScript("Cyrl"))

	err := New(WithScheme(langdata.SchemeCyrillicLatin)).VisitWord(context.Background(), word)

	require.NoError(t, err)
	assert.Equal(t, "mir", word.Transcriptions[langdata.SchemeCyrillicLatin].Value)
}

func docWithWord(text, lang string) *domain.Root {
	doc := nodes.NewDocument(nodes.WithLang(lang))
	para := nodes.NewParagraph()
	sent := nodes.NewSentence()
	sent.Children = append(sent.Children, nodes.NewWordText(text, nodes.WithLang(lang)))
	para.Sentences = append(para.Sentences, sent)
	doc.Paragraphs = append(doc.Paragraphs, para)
	return doc
}
