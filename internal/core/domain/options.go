package domain

// ConflictStrategy governs what happens when two extensions write the
// same tracked field on the same node.
type ConflictStrategy string

const (
	// ConflictError rejects the second write and fails the writing
	// extension. This is the default.
	ConflictError ConflictStrategy = "error"
	// ConflictWarn records a warning and lets the new value overwrite.
	ConflictWarn ConflictStrategy = "warn"
	// ConflictLastWins overwrites silently.
	ConflictLastWins ConflictStrategy = "lastWins"
)

// Valid reports whether the strategy is one of the known strategies.
func (s ConflictStrategy) Valid() bool {
	switch s {
	case ConflictError, ConflictWarn, ConflictLastWins:
		return true
	}
	return false
}

// OrDefault returns the strategy, or ConflictError when unset.
func (s ConflictStrategy) OrDefault() ConflictStrategy {
	if s == "" {
		return ConflictError
	}
	return s
}

// Options configures a single pipeline run.
// The zero value behaves as the documented defaults.
type Options struct {
	// Lenient makes a failing extension a skip instead of stopping
	// the run. Defaults to false (strict).
	Lenient bool

	// ConflictStrategy governs tracked-field conflicts.
	// Defaults to ConflictError.
	ConflictStrategy ConflictStrategy

	// Debug enables verbose per-phase logging for the run.
	Debug bool

	// Hooks are optional lifecycle callbacks. They are trusted caller
	// code: the pipeline never recovers from a hook panic.
	Hooks Hooks
}

// DefaultOptions returns the documented defaults: strict failure policy
// and the error conflict strategy.
func DefaultOptions() Options {
	return Options{ConflictStrategy: ConflictError}
}

// Hooks are lifecycle callbacks invoked synchronously around each
// extension. Nil fields are skipped.
type Hooks struct {
	// Before runs before an extension's first phase.
	Before func(extensionID string)

	// After runs after an extension applied successfully.
	After func(extensionID string)

	// OnError runs when an extension fails, before failure policy is
	// applied.
	OnError func(err error, extensionID string)

	// OnSkip runs when an extension is recorded as skipped.
	OnSkip func(extensionID, reason string)

	// OnProgress runs after each extension settles, applied or not.
	OnProgress func(progress Progress)
}

// Progress is a snapshot of how far a run has got.
type Progress struct {
	// Completed counts extensions that have settled (applied or
	// skipped).
	Completed int

	// Total is the number of extensions in the run.
	Total int

	// CurrentID is the id of the extension that just settled.
	CurrentID string
}
