// Package types defines the public API surface shared across enumkit
// packages: the typed error taxonomy, configuration flags, and size limits.
//
// Keeping these in a leaf package lets both the core enummap engine and
// higher-level consumers (typed wrappers, CLI tooling) agree on error
// semantics without importing the engine itself.
package types
