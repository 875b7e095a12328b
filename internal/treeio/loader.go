package treeio

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aksara-labs/lexitree-cli/internal/core/domain"
	"github.com/aksara-labs/lexitree-cli/internal/nodes"
)

// Parse decodes a document tree from YAML/JSON bytes. Inherited lang
// and script attributes are resolved onto every node, so extensions
// see each word's effective language without walking ancestors.
func Parse(data []byte) (*domain.Root, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("document: payload is empty")
	}
	var dto documentDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("document: decode: %w", err)
	}
	if err := dto.validate(); err != nil {
		return nil, err
	}
	doc := dto.toDomain()
	nodes.PropagateLang(doc)
	return doc, nil
}

// LoadReader reads a document tree from an io.Reader.
func LoadReader(r io.Reader) (*domain.Root, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("document: read: %w", err)
	}
	return Parse(content)
}

// Load reads a document tree from a file.
func Load(path string) (*domain.Root, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("document: read %s: %w", path, err)
	}
	doc, parseErr := Parse(content)
	if parseErr != nil {
		return nil, fmt.Errorf("document: %s: %w", path, parseErr)
	}
	return doc, nil
}

// Encode renders the tree as YAML.
func Encode(doc *domain.Root) ([]byte, error) {
	if doc == nil {
		return nil, domain.ErrNilDocument
	}
	data, err := yaml.Marshal(fromDomain(doc))
	if err != nil {
		return nil, fmt.Errorf("document: encode: %w", err)
	}
	return data, nil
}

// Save writes the tree to a file as YAML.
func Save(path string, doc *domain.Root) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("document: write %s: %w", path, err)
	}
	return nil
}
