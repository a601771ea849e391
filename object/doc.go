// Package object implements a minimal dynamic object model.
//
// This package contains:
//   - Dynamic Value representation and the member-not-found marker
//   - Interned selectors for member names
//   - Per-instance ordered field stores
//   - Immutable per-class method tables
//   - The single dispatch entry point resolving fields before methods
package object
