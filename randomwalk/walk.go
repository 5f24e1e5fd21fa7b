package randomwalk

import (
	"math/rand"

	"github.com/compasslab/euclid/depset"
	"github.com/compasslab/euclid/problem"
	"github.com/compasslab/euclid/search"
	"github.com/compasslab/euclid/shape"
)

// minSupportingShapes is how many chosen shapes must pass through a
// target point for the walk to count it found (spec §4.8 "random walk
// success criterion").
const minSupportingShapes = 2

// walker runs independent random completions against a shared Snapshot.
type walker struct {
	interner      *depset.Interner
	twoPointTypes []problem.TwoPointActionType
}

func newWalker(interner *depset.Interner, allowed []problem.ActionType) *walker {
	w := &walker{interner: interner}
	for _, t := range allowed {
		if t.Group == problem.GroupTwoPoint {
			w.twoPointTypes = append(w.twoPointTypes, t.TwoPoint)
		}
	}
	if len(w.twoPointTypes) == 0 {
		w.twoPointTypes = []problem.TwoPointActionType{problem.Line, problem.Circle12, problem.Circle21, problem.MidPerp}
	}

	return w
}

// walkResult is one successful walk's report: the combined dependency set
// and every shape the walk itself constructed (not already present in the
// starting Snapshot), keyed by the synthetic id it was assigned.
type walkResult struct {
	Deps  depset.DepSet
	Built []ShapeState
}

// run extends snap by at most budget randomly chosen TwoPoint shapes,
// stopping as soon as the success criterion is met, budget is exhausted,
// or stop reports true (checked once per step — the shared "solutionFound"
// flag or context cancellation, spec §4.8 "share ... coordinate via a
// single read/write lock"). ok is false if the walk stopped without
// succeeding. Each newly built shape that isn't a duplicate of one already
// present receives its own synthetic dependency id (snap.BaseShapeID plus
// the count of shapes already built this walk), exactly as a search-driven
// action adds its own shape-origin id (spec §4.6, mirrored in
// search.Driver.actionDepsAndMask).
func (w *walker) run(rng *rand.Rand, snap Snapshot, budget int, stop func() bool) (walkResult, bool) {
	points := append([]PointState(nil), snap.Points...)
	shapes := append([]ShapeState(nil), snap.Shapes...)
	var built []ShapeState

	if succeeds(shapes, snap.TargetShapes, snap.TargetPoints) {
		return walkResult{Deps: combinedDeps(w.interner, shapes), Built: built}, true
	}

	for step := 0; step < budget; step++ {
		if stop() {
			return walkResult{}, false
		}

		p1, p2, ok := samplePointPair(rng, points, shapes)
		if !ok {
			break
		}

		t := w.twoPointTypes[rng.Intn(len(w.twoPointTypes))]
		el := search.BuildTwoPoint(t, p1, p2)
		sh, ok := el.GetShape()
		if !ok {
			continue
		}
		if isDuplicateShape(shapes, sh) {
			continue
		}

		deps1 := depsOf(points, p1)
		deps2 := depsOf(points, p2)
		ownID := uint32(snap.BaseShapeID + len(built))
		deps := w.interner.Combine(deps1, deps2, &ownID)

		for _, prior := range shapes {
			for _, np := range shape.Intersect(prior.Shape, sh) {
				points = append(points, PointState{Point: np, Deps: w.interner.Combine(prior.Deps, deps, nil)})
			}
		}
		state := ShapeState{Shape: sh, Deps: deps}
		shapes = append(shapes, state)
		built = append(built, state)

		if succeeds(shapes, snap.TargetShapes, snap.TargetPoints) {
			return walkResult{Deps: combinedDeps(w.interner, shapes), Built: built}, true
		}
	}

	return walkResult{}, false
}

// isDuplicateShape reports whether sh already denotes one of shapes,
// mirroring the reference's "reject ... already-present shapes" rule.
func isDuplicateShape(shapes []ShapeState, sh shape.Shape) bool {
	for _, s := range shapes {
		if s.Shape.EqualKey(sh) {
			return true
		}
	}

	return false
}

// depsOf returns the dependency set recorded for p, or Empty if p isn't
// (for some reason) present — which never happens for a point this walk
// itself just sampled from points.
func depsOf(points []PointState, p shape.Point) depset.DepSet {
	for _, ps := range points {
		if ps.Point.EqualKey(p) {
			return ps.Deps
		}
	}

	return depset.Empty
}

// succeeds reports whether every target shape is present among shapes and
// every target point lies on at least minSupportingShapes of them.
func succeeds(shapes []ShapeState, targetShapes []shape.Shape, targetPoints []shape.Point) bool {
	for _, target := range targetShapes {
		found := false
		for _, s := range shapes {
			if s.Shape.EqualKey(target) {
				found = true

				break
			}
		}
		if !found {
			return false
		}
	}

	for _, target := range targetPoints {
		support := 0
		for _, s := range shapes {
			if s.Shape.Contains(target) {
				support++
			}
		}
		if support < minSupportingShapes {
			return false
		}
	}

	return true
}

// combinedDeps unions every shape's dependency set — the dependency set
// a successful walk reports as its solution.
func combinedDeps(interner *depset.Interner, shapes []ShapeState) depset.DepSet {
	acc := depset.Empty
	for _, s := range shapes {
		acc = interner.Combine(acc, s.Deps, nil)
	}

	return acc
}
