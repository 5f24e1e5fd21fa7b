package search

import (
	"github.com/compasslab/euclid/problem"
	"github.com/compasslab/euclid/shape"
)

// Action is a candidate elementary construction awaiting execution: the
// shape it would produce, the action type that builds it, the indices of
// its parent points/line (a line parent is a shape-origin index; point
// parents are point-origin indices), its pre-computed dependency count,
// and its priority (spec §3 "Action").
type Action struct {
	Priority    int
	DepsCount   int
	Shape       shape.Shape
	ActionType  problem.ActionType
	PointIndex1 int
	PointIndex2 int
	ExtraIndex  int

	// DivertToRandomWalk is set by the driver's pop loop, not at
	// enumeration time: when DepsCount equals the configured random-walk
	// handoff threshold minus two, the driver hands this action to the
	// random-walk frontier untouched instead of recomputing its priority
	// or expanding it (spec §4.7 step 3, §4.8 "random-walk diversion").
	DivertToRandomWalk bool
}

// actionTypeRank gives every ActionType a stable total order so the heap's
// tie-break (spec §3 "then by reverse lexicographic order of indices") has
// a deterministic last resort when priority and every index are equal.
func actionTypeRank(t problem.ActionType) int {
	switch t.Group {
	case problem.GroupTwoPoint:
		return 0*100 + int(t.TwoPoint)
	case problem.GroupPointAndLine:
		return 1*100 + int(t.PointAndLine)
	case problem.GroupThreePoint:
		return 2*100 + int(t.ThreePoint)
	case problem.GroupTwoPointAndLine:
		return 3*100 + int(t.TwoPointAndLine)
	default:
		return -1
	}
}

// less reports whether a should be popped from the queue before b: higher
// priority first, then ascending point/extra index, then ascending
// actionTypeRank — the fixed tie-break that makes heap order deterministic
// (spec §3 "Action ... Ordered by priority, then by reverse lexicographic
// order of indices to make the heap deterministic").
func less(a, b Action) bool {
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	if a.PointIndex1 != b.PointIndex1 {
		return a.PointIndex1 < b.PointIndex1
	}
	if a.PointIndex2 != b.PointIndex2 {
		return a.PointIndex2 < b.PointIndex2
	}
	if a.ExtraIndex != b.ExtraIndex {
		return a.ExtraIndex < b.ExtraIndex
	}

	return actionTypeRank(a.ActionType) < actionTypeRank(b.ActionType)
}
