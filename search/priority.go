package search

import (
	"math/bits"

	"github.com/compasslab/euclid/depset"
	"github.com/compasslab/euclid/shape"
)

// reservedFor returns how many target shapes remain unaccounted for by
// combinedMask — the number of "free" actions that must still be spent on
// other targets no matter what this candidate buys.
func (d *Driver) reservedFor(combinedMask uint64) int {
	return d.Store.TargetShapeCount() - bits.OnesCount64(combinedMask)
}

// infeasible reports whether spending depsCount actions already leaves no
// room for the reserved targets, using the ">=" cutoff the reference
// priority functions apply (one action tighter than the ">" pre-filter
// feasibleCandidate uses during enumeration — see package doc).
func (d *Driver) infeasible(depsCount, combinedMask int) bool {
	return depsCount+d.Store.TargetShapeCount()-bits.OnesCount64(uint64(combinedMask)) >= d.Problem.ActionCount
}

func (d *Driver) lowCountBonus(priority, depsCount int) int {
	if d.Problem.PrioritizeLowActionCountShapes && depsCount <= 2 {
		return priority + 50*(3-depsCount)
	}

	return priority
}

// pointBonus adds the per-parent-point bonuses shared by every group: +1
// if the point is already a found target, +5 for every unfound target
// shape it lies on.
func (d *Driver) pointBonus(priority int, p shape.Point) int {
	if d.Store.FoundPoints.Contains(p) {
		priority++
	}
	for _, target := range d.Store.ShapesToFind.AsSlice() {
		if target.Contains(p) {
			priority += 5
		}
	}

	return priority
}

// resultBonus adds the bonuses that depend on the shape this action would
// produce: +20 if it is (still) an unfound target shape, +5 for every
// unfound target point that would lie on it.
func (d *Driver) resultBonus(priority int, sh shape.Shape) int {
	if d.Store.ShapesToFind.Contains(sh) {
		priority += 20
	}
	for _, target := range d.Store.PointsToFind.AsSlice() {
		if sh.Contains(target) {
			priority += 5
		}
	}

	return priority
}

// findAllBonus adds the extra bonuses the TwoPoint group alone applies
// when FindAllSolutions is set: the same point/result bonuses again, but
// measured against the already-found sets rather than the remaining ones.
func (d *Driver) findAllBonus(priority int, p shape.Point, sh shape.Shape) int {
	if !d.Problem.FindAllSolutions {
		return priority
	}
	for _, target := range d.Store.FoundShapes.AsSlice() {
		if target.Contains(p) {
			priority += 5
		}
	}
	if d.Store.FoundShapes.Contains(sh) {
		priority += 20
	}
	for _, target := range d.Store.FoundPoints.AsSlice() {
		if sh.Contains(target) {
			priority += 5
		}
	}

	return priority
}

// priorityTwoPoint computes an action priority for the TwoPoint group.
// A negative return means the candidate is infeasible or has crossed the
// random-walk skip threshold and should not be expanded; the separate
// random-walk divert decision (spec §4.7 step 3) is made by the caller at
// pop time, not here.
func (d *Driver) priorityTwoPoint(p1, p2 shape.Point, depsCount int, combinedMask uint64, sh shape.Shape) int {
	if d.infeasible(depsCount, int(combinedMask)) {
		return -1
	}
	if n := d.Problem.RandomWalkAtNActions; n != nil && depsCount >= *n-1 {
		return -1
	}

	priority := d.lowCountBonus(2*(d.Problem.ActionCount-depsCount), depsCount)
	priority = d.pointBonus(priority, p1)
	priority = d.pointBonus(priority, p2)
	priority = d.resultBonus(priority, sh)
	priority = d.findAllBonus(priority, p1, sh)
	priority = d.findAllBonus(priority, p2, sh)

	return priority
}

// priorityPointAndLine computes an action priority for the PointAndLine
// group. Its random-walk skip threshold is deliberately n rather than n-1
// (see package doc), and unlike the other three groups it also awards a
// bonus for the parent *line* already being a found shape, in addition to
// pointBonus's found-point bonus. The random-walk divert decision itself is made by the caller at
// pop time, not here.
func (d *Driver) priorityPointAndLine(p shape.Point, line shape.Shape, lineDeps, pointDeps depset.DepSet, lineMask, pointMask uint64, depsCount int, sh shape.Shape) int {
	combinedMask := lineMask | pointMask
	if d.infeasible(depsCount, int(combinedMask)) {
		return -1
	}
	if n := d.Problem.RandomWalkAtNActions; n != nil && depsCount >= *n {
		return -1
	}

	priority := d.lowCountBonus(2*(d.Problem.ActionCount-depsCount), depsCount)
	priority = d.pointBonus(priority, p)
	if d.Store.FoundShapes.Contains(line) {
		priority++
	}
	priority = d.resultBonus(priority, sh)

	return priority
}

// priorityThreePoint computes an action priority for the ThreePoint group.
// The random-walk divert decision is made by the caller at pop time, not
// here.
func (d *Driver) priorityThreePoint(p1, p2, p3 shape.Point, depsCount int, combinedMask uint64, sh shape.Shape) int {
	if d.infeasible(depsCount, int(combinedMask)) {
		return -1
	}
	if n := d.Problem.RandomWalkAtNActions; n != nil && depsCount >= *n-1 {
		return -1
	}

	priority := d.lowCountBonus(2*(d.Problem.ActionCount-depsCount), depsCount)
	priority = d.pointBonus(priority, p1)
	priority = d.pointBonus(priority, p2)
	priority = d.pointBonus(priority, p3)
	priority = d.resultBonus(priority, sh)

	return priority
}

// priorityTwoPointAndLine computes an action priority for the
// TwoPointAndLine group. The random-walk divert decision is made by the
// caller at pop time, not here.
func (d *Driver) priorityTwoPointAndLine(p1, p2 shape.Point, line shape.Shape, depsCount int, combinedMask uint64, sh shape.Shape) int {
	if d.infeasible(depsCount, int(combinedMask)) {
		return -1
	}
	if n := d.Problem.RandomWalkAtNActions; n != nil && depsCount >= *n-1 {
		return -1
	}

	priority := d.lowCountBonus(2*(d.Problem.ActionCount-depsCount), depsCount)
	priority = d.pointBonus(priority, p1)
	priority = d.pointBonus(priority, p2)
	priority = d.resultBonus(priority, sh)

	return priority
}
