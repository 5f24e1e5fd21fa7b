// Package search implements the best-first construction search: the
// action priority queue, the four action-type element builders, candidate
// enumeration against the registry, and the main solve loop, including
// the multi-match minimal dependency-union search (spec §3-§4.9).
//
// Two reference behaviors are preserved exactly rather than "fixed" to
// match looser spec prose, per the source-fidelity rule spec §9 allows:
// the enumeration-time feasibility pre-filter (feasibleCandidate) uses a
// strict "greater than" cutoff on depsCount+reserved against the action
// budget, while the priority functions' own feasibility gate (infeasible)
// uses "greater than or equal" on the same quantity — one action tighter
// than the filter a candidate already had to survive to be built at all.
// Separately, with a random-walk threshold n configured, the PointAndLine
// group's priority function drops a candidate at depsCount >= n, while the
// other three groups drop at depsCount >= n-1; this asymmetry is preserved
// as observed rather than unified. The random-walk diversion itself is a
// separate pop-time check in Driver.Solve, at depsCount == n-2.
//
// candidatesThreePoint also preserves a reference quirk verbatim: its
// duplicate-point guard checks point1==point2 twice and never checks
// point1==point3, rather than checking all three pairs.
//
// The collinear-ray-reachability gate used by the TwoPointAndLine builders
// (shape.CollinearRayIntersects) and the random-walk point-pair sampling
// package randomwalk performs are both original_source-inspired
// simplifications, not literal ports of the reference's more obscure
// transmute- and modular-arithmetic-based versions of the same checks —
// see each package's doc comment for specifics.
package search
