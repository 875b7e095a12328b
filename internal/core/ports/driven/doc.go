// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - ExtensionStore: Registered-extension lookup between runs
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ConfigStore: File-backed pipeline defaults. Without it, the
//     documented option defaults apply.
//
// Extension behaviour itself (Transformer, the node visitors,
// WordEnhancer) is part of the domain data model, not a driven port:
// extensions are values supplied per run, not wired infrastructure.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or extension package
package driven
