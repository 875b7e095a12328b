package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNilDocument indicates a pipeline call received no tree.
	ErrNilDocument = errors.New("nil document")

	// ErrUnsupportedScheme indicates an unknown transcription scheme.
	ErrUnsupportedScheme = errors.New("unsupported transcription scheme")
)

// DependencyCycleError is fatal: the declared dependencies contain a
// cycle, so no order exists and nothing runs.
type DependencyCycleError struct {
	// IDs are the extension ids involved in the cycle, in input order.
	IDs []string
}

// Error implements the error interface.
func (e *DependencyCycleError) Error() string {
	return fmt.Sprintf("dependency cycle involving extensions: %s", strings.Join(e.IDs, ", "))
}

// DuplicateExtensionError is fatal: two extensions in one run share an
// id, so their identity is ambiguous.
type DuplicateExtensionError struct {
	// ID is the duplicated extension id.
	ID string
}

// Error implements the error interface.
func (e *DuplicateExtensionError) Error() string {
	return fmt.Sprintf("duplicate extension id %q", e.ID)
}

// ExtensionDependencyError reports that a field an extension requires is
// absent at run time. Extensions raise it themselves; the pipeline only
// catches and classifies it.
type ExtensionDependencyError struct {
	// ExtensionID names the extension that needed the field.
	ExtensionID string

	// DependencyID names the extension expected to provide it.
	DependencyID string

	// MissingField is the absent field path (e.g., "extras.frequency").
	MissingField string

	// Suggestion is a remediation hint for the caller.
	Suggestion string
}

// Error implements the error interface.
func (e *ExtensionDependencyError) Error() string {
	msg := fmt.Sprintf("extension %q requires field %q", e.ExtensionID, e.MissingField)
	if e.DependencyID != "" {
		msg += fmt.Sprintf(" provided by %q", e.DependencyID)
	}
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (hint: %s)", e.Suggestion)
	}
	return msg
}

// ExtensionConflictError reports a rejected write: a second extension
// tried to set a tracked field a different extension already wrote.
type ExtensionConflictError struct {
	// Field is the tracked field path (e.g., "extras.priority").
	Field string

	// ExistingExtensionID wrote the field first.
	ExistingExtensionID string

	// IncomingExtensionID attempted the second write.
	IncomingExtensionID string

	// ExistingValue is the value already recorded.
	ExistingValue any

	// IncomingValue is the value that was rejected.
	IncomingValue any
}

// Error implements the error interface.
func (e *ExtensionConflictError) Error() string {
	return fmt.Sprintf("conflicting write to %q: %q already wrote %v, %q attempted %v",
		e.Field, e.ExistingExtensionID, e.ExistingValue, e.IncomingExtensionID, e.IncomingValue)
}

// MissingNodeTypeError reports that an extension expected nodes of a
// kind the tree does not contain.
type MissingNodeTypeError struct {
	// ExtensionID names the extension.
	ExtensionID string

	// NodeType is the absent node kind.
	NodeType NodeKind

	// SuggestedExtension names an extension that could produce such
	// nodes, if one is known.
	SuggestedExtension string
}

// Error implements the error interface.
func (e *MissingNodeTypeError) Error() string {
	msg := fmt.Sprintf("extension %q found no %s nodes", e.ExtensionID, e.NodeType)
	if e.SuggestedExtension != "" {
		msg += fmt.Sprintf(" (hint: run %q first)", e.SuggestedExtension)
	}
	return msg
}

// UnknownExtensionError reports an extension id the registry cannot
// resolve, with a nearest-id suggestion when one exists.
type UnknownExtensionError struct {
	// ID is the unresolved extension id.
	ID string

	// Suggestion is the closest registered id, if any.
	Suggestion string
}

// Error implements the error interface.
func (e *UnknownExtensionError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown extension %q (did you mean %q?)", e.ID, e.Suggestion)
	}
	return fmt.Sprintf("unknown extension %q", e.ID)
}

// Unwrap lets errors.Is treat the error as a not-found condition.
func (e *UnknownExtensionError) Unwrap() error { return ErrNotFound }

// ClassifyError turns any error raised during an extension's phases into
// the record stored on the run result.
func ClassifyError(extensionID string, err error) ExtensionError {
	kind := ErrorKindGeneric

	var depErr *ExtensionDependencyError
	var conflictErr *ExtensionConflictError
	var nodeErr *MissingNodeTypeError
	switch {
	case errors.As(err, &depErr):
		kind = ErrorKindDependency
	case errors.As(err, &conflictErr):
		kind = ErrorKindConflict
	case errors.As(err, &nodeErr):
		kind = ErrorKindMissingNodeType
	}

	return ExtensionError{
		ExtensionID: extensionID,
		Kind:        kind,
		Message:     err.Error(),
		Err:         err,
	}
}
