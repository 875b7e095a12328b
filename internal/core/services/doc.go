// Package services implements the driving port interfaces.
// Services contain the core business logic: dependency ordering,
// tree traversal, conflict tracking and run orchestration, plus the
// extension registry over the driven store port.
//
// Services are pure Go with no CGO or external dependencies.
package services
