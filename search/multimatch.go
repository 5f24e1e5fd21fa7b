package search

import (
	"math/bits"
	"sort"

	"github.com/compasslab/euclid/depset"
)

// targetDepsLists returns, for every target point then every target shape,
// the dependency set of each distinct origin recorded for it (its full
// Next chain) — the per-target candidate lists §4.9's union search draws
// from. Only meaningful once every target has been found at least once.
func (d *Driver) targetDepsLists() [][]depset.DepSet {
	var lists [][]depset.DepSet
	for _, p := range d.Store.FoundPoints.AsSlice() {
		idx, ok := d.Store.PointIndex(p)
		if !ok {
			continue
		}
		var deps []depset.DepSet
		for _, i := range d.Store.PointOriginChain(idx) {
			deps = append(deps, d.Store.PointOrigins[i].Deps)
		}
		lists = append(lists, deps)
	}
	for _, sh := range d.Store.FoundShapes.AsSlice() {
		idx, ok := d.Store.ShapeIndex(sh)
		if !ok {
			continue
		}
		var deps []depset.DepSet
		for _, i := range d.Store.ShapeOriginChain(idx) {
			deps = append(deps, d.Store.ShapeOrigins[i].Deps)
		}
		lists = append(lists, deps)
	}

	return lists
}

// buildUniverse collects every base-construction id appearing in any list,
// sorted and deduplicated, so each DepSet can be compressed to a single
// uint64 bitmask relative to it.
func (d *Driver) buildUniverse(lists [][]depset.DepSet) []uint32 {
	seen := make(map[uint32]struct{})
	for _, l := range lists {
		for _, ds := range l {
			for _, m := range d.Interner.Members(ds) {
				seen[m] = struct{}{}
			}
		}
	}
	universe := make([]uint32, 0, len(seen))
	for m := range seen {
		universe = append(universe, m)
	}
	sort.Slice(universe, func(i, j int) bool { return universe[i] < universe[j] })

	return universe
}

// findShortestUnion is the recursive brute-force search over the Cartesian
// product of per-target candidate lists, pruning any partial union whose
// cardinality has already exceeded actionCount (spec §4.9 "minimal
// dependency-union search").
func findShortestUnion(lists [][]uint64, idx int, acc uint64, actionCount int) (uint64, bool) {
	if idx == len(lists) {
		return acc, true
	}

	var best uint64
	found := false
	for _, opt := range lists[idx] {
		combined := acc | opt
		if bits.OnesCount64(combined) > actionCount {
			continue
		}
		res, ok := findShortestUnion(lists, idx+1, combined, actionCount)
		if !ok {
			continue
		}
		if !found || bits.OnesCount64(res) < bits.OnesCount64(best) {
			best, found = res, true
		}
	}

	return best, found
}

// checkMultimatchSolution looks for a choice of one origin per target
// (point or shape) whose combined dependency-set cardinality fits the
// action budget, returning its DepSet. ok is false when every target
// hasn't been found at least once yet, or no combination fits the budget.
func (d *Driver) checkMultimatchSolution() (depset.DepSet, bool) {
	if !d.Store.Solved() {
		return depset.Empty, false
	}

	lists := d.targetDepsLists()
	universe := d.buildUniverse(lists)

	compressed := make([][]uint64, len(lists))
	for i, l := range lists {
		for _, ds := range l {
			compressed[i] = append(compressed[i], d.Interner.Compress(ds, universe))
		}
	}

	best, ok := findShortestUnion(compressed, 0, 0, d.Problem.ActionCount)
	if !ok {
		return depset.Empty, false
	}

	return d.Interner.Decompress(best, universe), true
}
