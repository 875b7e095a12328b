package domain

import (
	"fmt"
	"time"
)

// ProcessingResult is what a pipeline run returns: the enriched tree and
// a record of what ran. Callers always receive one, even after an abort.
type ProcessingResult struct {
	// Document is the tree reflecting every applied extension.
	// After a strict-mode abort it reflects everything applied up to
	// the failure; there is no rollback.
	Document *Root

	// Metadata describes the run.
	Metadata RunMetadata
}

// RunMetadata describes one run's outcome. AppliedExtensions and
// SkippedExtensions partition the run's extension ids: every id lands in
// exactly one of the two, except ids never reached after a strict-mode
// abort.
type RunMetadata struct {
	// AppliedExtensions lists ids that completed all their phases.
	AppliedExtensions []string

	// SkippedExtensions lists ids that were skipped after a failure.
	SkippedExtensions []string

	// Errors holds one classified record per failed extension.
	Errors []ExtensionError

	// Warnings holds non-fatal findings (e.g., overwritten fields
	// under the warn conflict strategy).
	Warnings []Warning

	// Duration is the wall-clock time of the run.
	Duration time.Duration
}

// ErrorKind classifies an extension failure.
type ErrorKind string

const (
	// ErrorKindDependency is a missing required field at run time.
	ErrorKindDependency ErrorKind = "dependency"
	// ErrorKindConflict is a rejected tracked-field write.
	ErrorKindConflict ErrorKind = "conflict"
	// ErrorKindMissingNodeType is an absent expected node kind.
	ErrorKindMissingNodeType ErrorKind = "missing-node-type"
	// ErrorKindGeneric is any other extension failure.
	ErrorKindGeneric ErrorKind = "generic"
)

// ExtensionError is the classified record of one extension's failure as
// stored on the run result.
type ExtensionError struct {
	// ExtensionID names the failed extension.
	ExtensionID string

	// Kind classifies the failure.
	Kind ErrorKind

	// Message is the human-readable description.
	Message string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ExtensionError) Error() string {
	return fmt.Sprintf("extension %q: %s", e.ExtensionID, e.Message)
}

// Unwrap returns the underlying error for errors.Is and errors.As.
func (e *ExtensionError) Unwrap() error { return e.Err }

// Warning is a non-fatal finding recorded during a run.
type Warning struct {
	// ExtensionID names the extension the warning concerns.
	ExtensionID string

	// Field is the tracked field path involved, if any.
	Field string

	// Message is the human-readable description.
	Message string
}
