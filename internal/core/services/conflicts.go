package services

import (
	"fmt"

	"github.com/aksara-labs/lexitree-cli/internal/core/domain"
)

// extrasField returns the tracked path for a top-level extras key.
func extrasField(key string) string { return "extras." + key }

// metaField returns the tracked path for a top-level metadata key.
func metaField(key string) string { return "meta." + key }

// fieldKey identifies one tracked field on one node.
type fieldKey struct {
	nodeID string
	field  string
}

// fieldWrite is the last recorded write to a tracked field.
type fieldWrite struct {
	writerID string
	value    any
}

// fieldTracker records which extension last wrote each tracked field.
// Tracking covers top-level keys of a word's extras and meta maps only;
// nested structure inside a value is the owning extension's business.
// State lives for a single run and is discarded with it.
type fieldTracker struct {
	records map[fieldKey]fieldWrite
}

// newFieldTracker creates an empty tracker for one run.
func newFieldTracker() *fieldTracker {
	return &fieldTracker{records: make(map[fieldKey]fieldWrite)}
}

// Record registers a write to a tracked field and applies the conflict
// strategy. It returns a warning to append to the run (warn strategy),
// or an error when the write must be rejected (error strategy). The
// caller commits the value to the node only when the error is nil.
//
// An extension overwriting a field it wrote itself is never a conflict.
func (t *fieldTracker) Record(nodeID, field, writerID string, value any, strategy domain.ConflictStrategy) (*domain.Warning, error) {
	key := fieldKey{nodeID: nodeID, field: field}
	existing, written := t.records[key]

	if written && existing.writerID != writerID {
		switch strategy.OrDefault() {
		case domain.ConflictWarn:
			t.records[key] = fieldWrite{writerID: writerID, value: value}
			return &domain.Warning{
				ExtensionID: writerID,
				Field:       field,
				Message: fmt.Sprintf("field %q overwritten: %q replaced value from %q",
					field, writerID, existing.writerID),
			}, nil
		case domain.ConflictLastWins:
			t.records[key] = fieldWrite{writerID: writerID, value: value}
			return nil, nil
		default:
			return nil, &domain.ExtensionConflictError{
				Field:               field,
				ExistingExtensionID: existing.writerID,
				IncomingExtensionID: writerID,
				ExistingValue:       existing.value,
				IncomingValue:       value,
			}
		}
	}

	t.records[key] = fieldWrite{writerID: writerID, value: value}
	return nil, nil
}

// Writer returns the extension that last wrote the field, if any.
func (t *fieldTracker) Writer(nodeID, field string) (string, bool) {
	w, ok := t.records[fieldKey{nodeID: nodeID, field: field}]
	if !ok {
		return "", false
	}
	return w.writerID, true
}
