// Package euclid (compasslab/euclid) is an automated solver for
// straightedge-and-compass construction problems in the plane.
//
// What is euclid?
//
//	Given a finite set of given points/shapes and a finite set of target
//	points/shapes, euclid searches for a sequence of at most N elementary
//	construction actions (line through two points, circle, perpendicular,
//	bisector, ...) whose resulting figure contains every target.
//
// How it works:
//
//	– Best-first expansion of candidate actions, ranked by a heuristic tied
//	  to the unfound targets (search + registry packages).
//	– Interval-arithmetic geometry with a double-hash equality structure so
//	  numerically-equal entities dedup reliably despite floating drift
//	  (fint + hashset2 + shape packages).
//	– A dependency-compression layer tracking which original actions are
//	  required for each derived entity, so infeasible branches prune early
//	  (depset package).
//	– A Monte-Carlo "random walk" completion phase that finishes a partial
//	  construction when exhaustive expansion would exceed memory
//	  (randomwalk package).
//
// Everything is organized under one-concern-per-package subpackages:
//
//	fint/        — verified-direction interval arithmetic
//	hashset2/    — double-hash dictionary
//	shape/       — Point/Line/Ray/Segment/Circle primitives
//	element/     — constructive recipes that yield shapes
//	depset/      — dependency-set encoding
//	problem/     — external problem input + closed action-type set
//	registry/    — point/shape origin store and target registry
//	search/      — action queue, priority oracle, search driver
//	randomwalk/  — Monte-Carlo completion phase
//	solver/      — top-level orchestration and result types
//
//	go get github.com/compasslab/euclid
package euclid
