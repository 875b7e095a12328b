package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aksara-labs/lexitree-cli/internal/core/domain"
)

const sampleManifest = `
id: learner-pass
name: Learner annotations
extensions:
  - id: normalise
  - id: frequency
    options:
      skip_existing: false
  - id: difficulty
options:
  lenient: true
  conflictStrategy: warn
`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(sampleManifest))

	require.NoError(t, err)
	assert.Equal(t, "learner-pass", m.ID)
	assert.Equal(t, "Learner annotations", m.Name)
	require.Len(t, m.Extensions, 3)
	assert.Equal(t, "normalise", m.Extensions[0].ID)
	assert.Equal(t, "frequency", m.Extensions[1].ID)
	assert.Equal(t, false, m.Extensions[1].Options["skip_existing"])
	assert.Nil(t, m.Extensions[0].Options)
	assert.True(t, m.Options.Lenient)
	assert.Equal(t, "warn", m.Options.ConflictStrategy)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected string
	}{
		{
			name:     "Empty payload",
			data:     "\n\t ",
			expected: "payload is empty",
		},
		{
			name:     "Malformed YAML",
			data:     "extensions: [",
			expected: "decode manifest",
		},
		{
			name:     "Missing id",
			data:     "extensions:\n  - id: frequency\n",
			expected: "id is required",
		},
		{
			name:     "No extensions",
			data:     "id: empty-pass\n",
			expected: "at least one extension is required",
		},
		{
			name:     "Blank extension id",
			data:     "id: p\nextensions:\n  - options: {}\n",
			expected: "extension[0]: id is required",
		},
		{
			name:     "Duplicate extension ids",
			data:     "id: p\nextensions:\n  - id: frequency\n  - id: frequency\n",
			expected: "duplicate extension id frequency",
		},
		{
			name:     "Unknown conflict strategy",
			data:     "id: p\nextensions:\n  - id: frequency\noptions:\n  conflictStrategy: panic\n",
			expected: `unknown conflict strategy "panic"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expected)
		})
	}
}

func TestPipelineOptions(t *testing.T) {
	m, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)

	opts := m.PipelineOptions()

	assert.True(t, opts.Lenient)
	assert.False(t, opts.Debug)
	assert.Equal(t, domain.ConflictWarn, opts.ConflictStrategy)
}

func TestPipelineOptions_DefaultStrategy(t *testing.T) {
	m, err := Parse([]byte("id: p\nextensions:\n  - id: frequency\n"))
	require.NoError(t, err)

	opts := m.PipelineOptions()

	assert.Equal(t, domain.DefaultOptions().ConflictStrategy, opts.ConflictStrategy)
	assert.False(t, opts.Lenient)
}

func TestLoadReader(t *testing.T) {
	m, err := LoadReader(strings.NewReader(sampleManifest))

	require.NoError(t, err)
	assert.Equal(t, "learner-pass", m.ID)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pipeline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0644))

	m, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "learner-pass", m.ID)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_WrapsPathInValidationErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("id: p\n"), 0644))

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.Contains(t, err.Error(), "at least one extension")
}
