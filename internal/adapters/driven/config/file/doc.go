// Package file provides file-based implementations of driven port interfaces.
//
// Adapters:
//   - ConfigStore: TOML-based pipeline defaults, read from
//     ~/.lexitree/config.toml (or a caller-supplied directory)
package file
