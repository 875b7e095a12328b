package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aksara-labs/lexitree-cli/internal/treeio"
)

const processTestDoc = `id: doc-1
lang: ru
script: Cyrl
paragraphs:
  - id: p1
    sentences:
      - id: s1
        tokens:
          - kind: word
            id: w1
            value: "привет"
          - kind: whitespace
            id: ws1
            value: " "
          - kind: word
            id: w2
            value: "мир"
          - kind: punctuation
            id: pn1
            value: "!"
`

// writeTestDoc drops a small Russian document tree into dir.
func writeTestDoc(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(processTestDoc), 0644))
	return path
}

func TestProcessCmd_Use(t *testing.T) {
	assert.Equal(t, "process [file...]", processCmd.Use)
}

func TestProcessCmd_Short(t *testing.T) {
	assert.Equal(t, "Run extensions over document trees", processCmd.Short)
}

func TestProcessCmd_Long(t *testing.T) {
	assert.Contains(t, processCmd.Long, "dependency order")
	assert.Contains(t, processCmd.Long, "--pipeline")
}

func TestProcessCmd_RequiresFileArgument(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetProcessFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"process"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
}

func TestProcessCmd_NoPipelineService(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetProcessFlags()
	pipelineService = nil

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"process", "tree.yaml"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "pipeline service not configured")
}

func TestProcessCmd_NoExtensionsRequested(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetProcessFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"process", "tree.yaml"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no extensions requested")
}

func TestProcessCmd_EnrichesFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetProcessFlags()

	dir := t.TempDir()
	path := writeTestDoc(t, dir, "tree.yaml")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"process", "--ext", "normalise", "--ext", "frequency", path})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Processed "+path)
	assert.Contains(t, buf.String(), "applied: normalise, frequency")

	enriched := filepath.Join(dir, "tree.enriched.yaml")
	doc, err := treeio.Load(enriched)
	require.NoError(t, err)

	words := doc.Words()
	require.Len(t, words, 2)
	assert.EqualValues(t, 2870, words[0].Extras["frequency"])
	assert.Equal(t, "top5000", words[0].Extras["frequencyBand"])
	assert.EqualValues(t, 187, words[1].Extras["frequency"])
	assert.Equal(t, "top1000", words[1].Extras["frequencyBand"])
}

func TestProcessCmd_OutputDirectory(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetProcessFlags()

	dir := t.TempDir()
	path := writeTestDoc(t, dir, "tree.yaml")
	outDir := filepath.Join(dir, "out")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"process", "--ext", "frequency", "--output", outDir, path})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	dest := filepath.Join(outDir, "tree.yaml")
	assert.FileExists(t, dest)
	assert.Contains(t, buf.String(), dest)
}

func TestProcessCmd_OutputStdout(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetProcessFlags()

	dir := t.TempDir()
	path := writeTestDoc(t, dir, "tree.yaml")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"process", "--ext", "frequency", "--output", "-", path})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "paragraphs:")
	assert.Contains(t, buf.String(), "привет")
	assert.NotContains(t, buf.String(), "Processed")
}

func TestProcessCmd_StdoutSeparatesMultipleFiles(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetProcessFlags()

	dir := t.TempDir()
	first := writeTestDoc(t, dir, "a.yaml")
	second := writeTestDoc(t, dir, "b.yaml")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"process", "--ext", "frequency", "--output", "-", first, second})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "---\n")
	assert.Equal(t, 2, strings.Count(buf.String(), "id: doc-1"))
}

func TestProcessCmd_PipelineManifest(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetProcessFlags()

	dir := t.TempDir()
	path := writeTestDoc(t, dir, "tree.yaml")
	manifestPath := filepath.Join(dir, "pipeline.yaml")
	manifestYAML := `id: learner-pass
extensions:
  - id: normalise
  - id: frequency
    options:
      skip_existing: false
  - id: difficulty
`
	require.NoError(t, os.WriteFile(manifestPath, []byte(manifestYAML), 0644))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"process", "--pipeline", manifestPath, path})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "applied: normalise, frequency, difficulty")

	doc, err := treeio.Load(filepath.Join(dir, "tree.enriched.yaml"))
	require.NoError(t, err)
	words := doc.Words()
	require.Len(t, words, 2)
	assert.Equal(t, "intermediate", words[0].Extras["difficulty"])
	assert.Equal(t, "elementary", words[1].Extras["difficulty"])
}

func TestProcessCmd_ManifestOptionsOnRegistryExtension(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetProcessFlags()

	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "pipeline.yaml")
	manifestYAML := `id: custom-pass
extensions:
  - id: custom
    options:
      mode: fast
`
	require.NoError(t, os.WriteFile(manifestPath, []byte(manifestYAML), 0644))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"process", "--pipeline", manifestPath, "tree.yaml"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), `extension "custom" does not take options`)
}

func TestProcessCmd_StrictModeFailsOnExtensionError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetProcessFlags()

	dir := t.TempDir()
	path := writeTestDoc(t, dir, "tree.yaml")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"process", "--ext", "difficulty", path})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "1 extension error(s)")
	assert.Contains(t, buf.String(), `error: extension "difficulty"`)
}

func TestProcessCmd_LenientModeSkips(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetProcessFlags()

	dir := t.TempDir()
	path := writeTestDoc(t, dir, "tree.yaml")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"process", "--ext", "difficulty", "--lenient", path})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "skipped: difficulty")
}

func TestProcessCmd_UnknownConflictStrategy(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetProcessFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"process", "--ext", "frequency", "--conflict-strategy", "bogus", "tree.yaml"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), `unknown conflict strategy "bogus"`)
}

func TestProcessCmd_UnknownExtension(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetProcessFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"process", "--ext", "frequencyy", "tree.yaml"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), `unknown extension "frequencyy"`)
	assert.Contains(t, err.Error(), `did you mean "frequency"?`)
}

func TestProcessCmd_MissingFileDoesNotStopOthers(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetProcessFlags()

	dir := t.TempDir()
	good := writeTestDoc(t, dir, "good.yaml")
	missing := filepath.Join(dir, "missing.yaml")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"process", "--ext", "frequency", missing, good})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), missing)
	assert.FileExists(t, filepath.Join(dir, "good.enriched.yaml"))
	assert.Contains(t, buf.String(), "Processed "+good)
}

func TestDestinationFor(t *testing.T) {
	defer resetProcessFlags()

	tests := []struct {
		name   string
		output string
		path   string
		want   string
	}{
		{
			name:   "default adds enriched suffix",
			output: "",
			path:   filepath.Join("docs", "tree.yaml"),
			want:   filepath.Join("docs", "tree.enriched.yaml"),
		},
		{
			name:   "no extension",
			output: "",
			path:   "tree",
			want:   "tree.enriched",
		},
		{
			name:   "stdout",
			output: "-",
			path:   "tree.yaml",
			want:   "-",
		},
		{
			name:   "output directory",
			output: "out",
			path:   filepath.Join("docs", "tree.yaml"),
			want:   filepath.Join("out", "tree.yaml"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			processOutput = tt.output
			assert.Equal(t, tt.want, destinationFor(tt.path))
		})
	}
}
