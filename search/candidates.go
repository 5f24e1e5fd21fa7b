package search

import (
	"github.com/compasslab/euclid/problem"
)

// feasibleCandidate is the enumeration-time pre-filter (spec §4.5): a
// candidate whose dependency count already leaves no room for the
// remaining unfound target shapes is dropped before it is ever built,
// using a strict ">" cutoff — one action looser than the ">=" the
// priority functions apply once a candidate has survived this filter.
func (d *Driver) feasibleCandidate(depsCount int, combinedMask uint64) bool {
	return depsCount+d.reservedFor(combinedMask) <= d.Problem.ActionCount
}

// candidatesTwoPoint enumerates every TwoPoint-group action buildable from
// the ordered point-origin pair (i1, i2).
func (d *Driver) candidatesTwoPoint(i1, i2 int) []Action {
	o1, o2 := d.Store.PointOrigins[i1], d.Store.PointOrigins[i2]
	combinedMask := o1.FoundShapeMask | o2.FoundShapeMask
	depsCount := d.Interner.CombinedCount(o1.Deps, o2.Deps)
	if !d.feasibleCandidate(depsCount, combinedMask) {
		return nil
	}

	var out []Action
	for _, t := range d.twoPointTypes {
		el := buildTwoPoint(t, o1.Point, o2.Point)
		sh, ok := el.GetShape()
		if !ok {
			continue
		}
		ownMask := combinedMask
		if mask, ok := d.Store.TargetMaskFor(sh); ok {
			ownMask |= mask
		}
		priority := d.priorityTwoPoint(o1.Point, o2.Point, depsCount, ownMask, sh)
		out = append(out, Action{
			Priority:    priority,
			DepsCount:   depsCount,
			Shape:       sh,
			ActionType:  problem.NewTwoPoint(t),
			PointIndex1: i1,
			PointIndex2: i2,
			ExtraIndex:  -1,
		})
	}

	return out
}

// candidatesPointAndLine enumerates every PointAndLine-group action
// buildable from point-origin pointIdx and shape-origin lineIdx. A point
// not incident to the line never yields a valid Perp/Par recipe (both
// anchor at point, so they trivially build, but we still gate on
// line.Contains to match the reference's "the point must lie on the line"
// precondition for this action family).
func (d *Driver) candidatesPointAndLine(pointIdx, lineIdx int) []Action {
	po := d.Store.PointOrigins[pointIdx]
	so := d.Store.ShapeOrigins[lineIdx]
	if !so.Shape.Contains(po.Point) {
		return nil
	}

	combinedMask := po.FoundShapeMask | so.FoundShapeMask
	depsCount := d.Interner.CombinedCount(po.Deps, so.Deps)
	if !d.feasibleCandidate(depsCount, combinedMask) {
		return nil
	}

	var out []Action
	for _, t := range d.pointAndLineTypes {
		el, ok := buildPointAndLine(t, po.Point, so.Shape)
		if !ok {
			continue
		}
		sh, ok := el.GetShape()
		if !ok {
			continue
		}
		lineMask, pointMask := so.FoundShapeMask, po.FoundShapeMask
		if mask, ok := d.Store.TargetMaskFor(sh); ok {
			pointMask |= mask
		}
		priority := d.priorityPointAndLine(po.Point, so.Shape, so.Deps, po.Deps, lineMask, pointMask, depsCount, sh)
		out = append(out, Action{
			Priority:    priority,
			DepsCount:   depsCount,
			Shape:       sh,
			ActionType:  problem.NewPointAndLine(t),
			PointIndex1: pointIdx,
			PointIndex2: lineIdx,
			ExtraIndex:  -1,
		})
	}

	return out
}

// candidatesThreePoint enumerates every ThreePoint-group action buildable
// from the ordered point-origin triple (i1, i2, i3).
func (d *Driver) candidatesThreePoint(i1, i2, i3 int) []Action {
	o1, o2, o3 := d.Store.PointOrigins[i1], d.Store.PointOrigins[i2], d.Store.PointOrigins[i3]
	// Reference quirk preserved verbatim: this rejects point1==point2
	// twice and never checks point1==point3 (see package doc).
	if o1.Point.EqualKey(o2.Point) || o2.Point.EqualKey(o3.Point) || o1.Point.EqualKey(o2.Point) {
		return nil
	}

	combinedMask := o1.FoundShapeMask | o2.FoundShapeMask | o3.FoundShapeMask
	deps12 := d.Interner.Combine(o1.Deps, o2.Deps, nil)
	depsCount := d.Interner.CombinedCount(deps12, o3.Deps)
	if !d.feasibleCandidate(depsCount, combinedMask) {
		return nil
	}

	var out []Action
	for _, t := range d.threePointTypes {
		el, ok := buildThreePoint(t, o1.Point, o2.Point, o3.Point)
		if !ok {
			continue
		}
		sh, ok := el.GetShape()
		if !ok {
			continue
		}
		ownMask := combinedMask
		if mask, ok := d.Store.TargetMaskFor(sh); ok {
			ownMask |= mask
		}
		priority := d.priorityThreePoint(o1.Point, o2.Point, o3.Point, depsCount, ownMask, sh)
		out = append(out, Action{
			Priority:    priority,
			DepsCount:   depsCount,
			Shape:       sh,
			ActionType:  problem.NewThreePoint(t),
			PointIndex1: i1,
			PointIndex2: i2,
			ExtraIndex:  i3,
		})
	}

	return out
}

// candidatesTwoPointAndLine enumerates every TwoPointAndLine-group action
// buildable from the ordered point-origin pair (i1, i2) and shape-origin
// lineIdx.
func (d *Driver) candidatesTwoPointAndLine(i1, i2, lineIdx int) []Action {
	o1, o2 := d.Store.PointOrigins[i1], d.Store.PointOrigins[i2]
	so := d.Store.ShapeOrigins[lineIdx]
	if o1.Point.EqualKey(o2.Point) {
		return nil
	}

	combinedMask := o1.FoundShapeMask | o2.FoundShapeMask | so.FoundShapeMask
	deps12 := d.Interner.Combine(o1.Deps, o2.Deps, nil)
	depsCount := d.Interner.CombinedCount(deps12, so.Deps)
	if !d.feasibleCandidate(depsCount, combinedMask) {
		return nil
	}

	var out []Action
	for _, t := range d.twoPointAndLineTypes {
		el, ok := buildTwoPointAndLine(t, o1.Point, o2.Point, so.Shape)
		if !ok {
			continue
		}
		sh, ok := el.GetShape()
		if !ok {
			continue
		}
		ownMask := combinedMask
		if mask, ok := d.Store.TargetMaskFor(sh); ok {
			ownMask |= mask
		}
		priority := d.priorityTwoPointAndLine(o1.Point, o2.Point, so.Shape, depsCount, ownMask, sh)
		out = append(out, Action{
			Priority:    priority,
			DepsCount:   depsCount,
			Shape:       sh,
			ActionType:  problem.NewTwoPointAndLine(t),
			PointIndex1: i1,
			PointIndex2: i2,
			ExtraIndex:  lineIdx,
		})
	}

	return out
}

// pushCandidates pushes every action in actions onto the frontier. It
// does no filtering of its own: the candidatesXxx builders already leave
// out any action whose recipe or shape failed to build.
func (d *Driver) pushCandidates(actions []Action) {
	for _, a := range actions {
		d.Queue.Push(a)
	}
}
