package postag

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aksara-labs/lexitree-cli/internal/langdata"
	"github.com/aksara-labs/lexitree-cli/internal/nodes"
)

func TestNew_Defaults(t *testing.T) {
	ext := New()

	assert.True(t, ext.skipExisting)
}

func TestInfo(t *testing.T) {
	info := New().Info()

	assert.Equal(t, ID, info.ID)
	assert.Equal(t, []string{FieldPartOfSpeech}, info.Provides.Metadata)
}

func TestVisitWord(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		lang     string
		expected string
	}{
		{
			name:     "English interjection",
			text:     "hello",
			lang:     "en",
			expected: langdata.POSIntj,
		},
		{
			name:     "English noun",
			text:     "world",
			lang:     "en",
			expected: langdata.POSNoun,
		},
		{
			name:     "Russian verb",
			text:     "знать",
			lang:     "ru",
			expected: langdata.POSVerb,
		},
		{
			name:     "Case insensitive lookup",
			text:     "Hello",
			lang:     "en",
			expected: langdata.POSIntj,
		},
	}

	ext := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word := nodes.NewWordText(tt.text, nodes.WithLang(tt.lang))

			err := ext.VisitWord(context.Background(), word)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, word.Meta[FieldPartOfSpeech])
		})
	}
}

func TestVisitWord_LeavesUnknownWordUntagged(t *testing.T) {
	word := nodes.NewWordText("zymurgy", nodes.WithLang("en"))

	err := New().VisitWord(context.Background(), word)

	require.NoError(t, err)
	assert.NotContains(t, word.Meta, FieldPartOfSpeech)
}

func TestVisitWord_SkipsUnknownLanguage(t *testing.T) {
	word := nodes.NewWordText("bonjour", nodes.WithLang("fr"))

	err := New().VisitWord(context.Background(), word)

	require.NoError(t, err)
	assert.NotContains(t, word.Meta, FieldPartOfSpeech)
}

func TestVisitWord_SkipsAlreadyTagged(t *testing.T) {
	word := nodes.NewWordText("hello", nodes.WithLang("en"))
	word.Meta[FieldPartOfSpeech] = langdata.POSNoun

	err := New().VisitWord(context.Background(), word)

	require.NoError(t, err)
	assert.Equal(t, langdata.POSNoun, word.Meta[FieldPartOfSpeech])
}

func TestVisitWord_RetagsWhenSkipDisabled(t *testing.T) {
	word := nodes.NewWordText("hello", nodes.WithLang("en"))
	word.Meta[FieldPartOfSpeech] = langdata.POSNoun

	err := New(WithSkipExisting(false)).VisitWord(context.Background(), word)

	require.NoError(t, err)
	assert.Equal(t, langdata.POSIntj, word.Meta[FieldPartOfSpeech])
}
