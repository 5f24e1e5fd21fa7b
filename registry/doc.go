// Package registry stores the solver's point and shape origins —
// append-only vectors, deduplicated via a double-hash dictionary (see
// package hashset2), indexed by plain integers rather than pointers so the
// origin graph can never form a reference cycle.
//
// Register a new point or shape via RegisterPoint/RegisterShape: each
// checks the dedup index first (so a numerically-equal entity is found
// regardless of which parent pair produced it), computes its dependency
// set and found-target propagation, and appends a new origin. In
// multi-match mode a duplicate registration is not dropped but chained
// via Next, so package search's §4.9 union search can later pick the
// cheapest coherent lineage across all origins of a target.
//
// Candidate-action enumeration, the priority oracle, and the search loop
// itself live in package search, which depends on registry — not the
// other way around — so a ShapeOrigin's construction record (Link) names
// its action type and parent indices without referencing package search's
// queue-facing Action type at all.
package registry
