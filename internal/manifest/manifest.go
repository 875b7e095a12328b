// Package manifest loads pipeline definitions: which extensions to run,
// with what options, under which failure policy.
package manifest

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aksara-labs/lexitree-cli/internal/core/domain"
)

// Manifest is a named, reusable pipeline definition.
type Manifest struct {
	ID          string         `yaml:"id"`
	Name        string         `yaml:"name,omitempty"`
	Description string         `yaml:"description,omitempty"`
	Extensions  []ExtensionRef `yaml:"extensions"`
	Options     RunOptions     `yaml:"options,omitempty"`
}

// ExtensionRef names one extension in the pipeline, with its options.
type ExtensionRef struct {
	ID      string         `yaml:"id"`
	Options map[string]any `yaml:"options,omitempty"`
}

// RunOptions carries the pipeline-level settings.
type RunOptions struct {
	Lenient          bool   `yaml:"lenient,omitempty"`
	ConflictStrategy string `yaml:"conflictStrategy,omitempty"`
	Debug            bool   `yaml:"debug,omitempty"`
}

// Validate checks the manifest is runnable.
func (m Manifest) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("pipeline: id is required")
	}
	if len(m.Extensions) == 0 {
		return fmt.Errorf("pipeline %s: at least one extension is required", m.ID)
	}
	seen := map[string]struct{}{}
	for idx, ref := range m.Extensions {
		if ref.ID == "" {
			return fmt.Errorf("pipeline %s extension[%d]: id is required", m.ID, idx)
		}
		if _, exists := seen[ref.ID]; exists {
			return fmt.Errorf("pipeline %s: duplicate extension id %s", m.ID, ref.ID)
		}
		seen[ref.ID] = struct{}{}
	}
	if s := m.Options.ConflictStrategy; s != "" {
		if !domain.ConflictStrategy(s).Valid() {
			return fmt.Errorf("pipeline %s: unknown conflict strategy %q", m.ID, s)
		}
	}
	return nil
}

// PipelineOptions converts the manifest settings into run options.
func (m Manifest) PipelineOptions() domain.Options {
	opts := domain.DefaultOptions()
	opts.Lenient = m.Options.Lenient
	opts.Debug = m.Options.Debug
	if m.Options.ConflictStrategy != "" {
		opts.ConflictStrategy = domain.ConflictStrategy(m.Options.ConflictStrategy)
	}
	return opts
}

// Parse decodes a pipeline manifest from YAML/JSON bytes.
func Parse(data []byte) (Manifest, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Manifest{}, fmt.Errorf("pipeline: manifest payload is empty")
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("pipeline: decode manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// LoadReader reads a pipeline manifest from an io.Reader.
func LoadReader(r io.Reader) (Manifest, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return Manifest{}, fmt.Errorf("pipeline: read manifest: %w", err)
	}
	return Parse(content)
}

// Load reads a pipeline manifest from a file.
func Load(path string) (Manifest, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("pipeline: read %s: %w", path, err)
	}
	m, parseErr := Parse(content)
	if parseErr != nil {
		return Manifest{}, fmt.Errorf("pipeline: %s: %w", path, parseErr)
	}
	return m, nil
}
