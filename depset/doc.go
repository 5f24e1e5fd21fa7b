// Package depset implements the dependency-set encoding: a compact
// representation of "which base constructions this entity transitively
// descends from", supporting fast union, cardinality, and subset tests so
// the search driver can reject any extension that would push the
// transitive-dependency count past the action budget.
//
// A DepSet is a 64-bit word. The low 40 bits are a direct bitmask over
// base-construction ids 0..39 — the common case, a single bitwise OR.
// The upper 24 bits, when non-zero, index into an Interner's side table
// of sorted, deduplicated uint32 vectors holding member ids ≥ 40. The
// Interner interns each distinct overflow vector to a unique id via a
// (sum, sum-of-squares) hash of its sorted members, so equal overflow
// sets always resolve to the same id. An Interner is owned exclusively by
// whatever drives the search (see package search); it only ever grows.
package depset
