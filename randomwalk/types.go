package randomwalk

import "github.com/compasslab/euclid/depset"

// Result is the outcome of a completion attempt: Solved reports whether
// any worker's walk reached the success criterion before the shared
// budget ran out, Solution is that walk's combined dependency set, and
// BuiltShapes lists the shapes the winning walk itself constructed beyond
// the starting Snapshot (keyed by the synthetic id Solution's members
// reference at or above the Snapshot's BaseShapeID), so a caller can
// render the complete construction, not just its dependency-id skeleton.
type Result struct {
	Solved      bool
	Solution    depset.DepSet
	BuiltShapes []ShapeState
}
