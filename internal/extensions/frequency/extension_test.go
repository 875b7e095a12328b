package frequency

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
	assert.Empty(t, ext.corpus)
}

func TestNew_WithOptions(t *testing.T) {
	ext := New(WithSkipExisting(false), WithCorpus("ru"))

	assert.False(t, ext.skipExisting)
	assert.Equal(t, "ru", ext.corpus)
}

func TestWithCorpus_IgnoresEmpty(t *testing.T) {
	ext := New(WithCorpus(""))

	assert.Empty(t, ext.corpus)
}

func TestInfo(t *testing.T) {
	info := New().Info()

	assert.Equal(t, ID, info.ID)
	assert.Equal(t, []string{FieldFrequency, FieldBand}, info.Provides.Extras)
	assert.Empty(t, info.Dependencies)
}

func TestEnhanceWord(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		lang         string
		expectedRank int
		expectedBand string
	}{
		{
			name:         "Top 100 English word",
			text:         "the",
			lang:         "en",
			expectedRank: 1,
			expectedBand: langdata.BandTop100,
		},
		{
			name:         "Mid-frequency English word",
			text:         "hello",
			lang:         "en",
			expectedRank: 870,
			expectedBand: langdata.BandTop1000,
		},
		{
			name:         "Russian word",
			text:         "мир",
			lang:         "ru",
			expectedRank: 187,
			expectedBand: langdata.BandTop1000,
		},
		{
			name:         "Unranked word",
			text:         "zymurgy",
			lang:         "en",
			expectedRank: 0,
			expectedBand: langdata.BandRare,
		},
		{
			name:         "Case insensitive lookup",
			text:         "Hello",
			lang:         "en",
			expectedRank: 870,
			expectedBand: langdata.BandTop1000,
		},
	}

	ext := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word := nodes.NewWordText(tt.text, nodes.WithLang(tt.lang))

			fields, err := ext.EnhanceWord(context.Background(), word)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedRank, fields[FieldFrequency])
			assert.Equal(t, tt.expectedBand, fields[FieldBand])
		})
	}
}

func TestEnhanceWord_SkipsEmptyWord(t *testing.T) {
	word := nodes.NewWord(nil, nodes.WithLang("en"))

	fields, err := New().EnhanceWord(context.Background(), word)

	require.NoError(t, err)
	assert.Nil(t, fields)
}

func TestEnhanceWord_SkipsUnknownLanguage(t *testing.T) {
	word := nodes.NewWordText("bonjour", nodes.WithLang("fr"))

	fields, err := New().EnhanceWord(context.Background(), word)

	require.NoError(t, err)
	assert.Nil(t, fields)
}

func TestEnhanceWord_SkipsAlreadyRanked(t *testing.T) {
	word := nodes.NewWordText("hello", nodes.WithLang("en"))
	word.Extras[FieldFrequency] = 870

	fields, err := New().EnhanceWord(context.Background(), word)

	require.NoError(t, err)
	assert.Nil(t, fields)
}

func TestEnhanceWord_RewritesWhenSkipDisabled(t *testing.T) {
	word := nodes.NewWordText("hello", nodes.WithLang("en"))
	word.Extras[FieldFrequency] = 5

	fields, err := New(WithSkipExisting(false)).EnhanceWord(context.Background(), word)

	require.NoError(t, err)
	assert.Equal(t, 870, fields[FieldFrequency])
}

func TestEnhanceWord_CorpusOverridesWordLanguage(t *testing.T) {
	word := nodes.NewWordText("hello", nodes.WithLang("de"))

	fields, err := New(WithCorpus("en")).EnhanceWord(context.Background(), word)

	require.NoError(t, err)
	assert.Equal(t, 870, fields[FieldFrequency])
}
