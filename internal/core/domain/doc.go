// Package domain defines the core business entities for Lexitree.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Root, Paragraph, Sentence, Word, Leaf: the annotated document tree
//   - ExtensionInfo: the declarative identity of an enrichment extension
//   - Options, Hooks: per-run configuration for the pipeline
//   - ProcessingResult: what ran, what was skipped, and why
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
