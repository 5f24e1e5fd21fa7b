// Package solver is the top-level entry point: Solve wires package search
// (best-first exhaustive expansion) and package randomwalk (Monte-Carlo
// completion) together against a problem.Problem and reports the result
// as an opaque Handle, matching spec §6's "external interfaces" contract
// exactly — no rendering, no textual reporting, no file I/O.
//
// Solve always runs the exhaustive search first. If it finds every
// target, that solution is reported directly. Otherwise, if the problem
// configured a random-walk threshold (problem.WithRandomWalkAtNActions),
// every action the driver diverted to its frontier is tried in turn as a
// random-walk starting point until one succeeds or all are exhausted
// (spec §4.7 FALLBACK_TO_RANDOM). A Handle with Solved() == false means
// neither phase found a construction within budget — never an error.
package solver
