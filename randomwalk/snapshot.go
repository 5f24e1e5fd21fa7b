package randomwalk

import (
	"github.com/compasslab/euclid/depset"
	"github.com/compasslab/euclid/registry"
	"github.com/compasslab/euclid/shape"
)

// PointState is one point of a walk's working construction, paired with
// its dependency set.
type PointState struct {
	Point shape.Point
	Deps  depset.DepSet
}

// ShapeState is one shape of a walk's working construction, paired with
// its dependency set.
type ShapeState struct {
	Shape shape.Shape
	Deps  depset.DepSet
}

// Snapshot is an immutable starting point for a batch of random walks: a
// read-only copy of everything the best-first search had already
// registered, plus every target point/shape of the problem (those still
// to be found and those the search already found). Workers
// each take their own private copy to extend, so Snapshot itself is never
// mutated once built.
type Snapshot struct {
	Points       []PointState
	Shapes       []ShapeState
	TargetPoints []shape.Point
	TargetShapes []shape.Shape

	// BaseShapeID is the shape-origin id a walk's first newly built shape
	// receives (mirroring package search's ownShapeID: the index a shape
	// would occupy if appended to the registry). Every shape a walk builds
	// gets the next id after that, so a walk's reported dependency set
	// never collides with a real registered shape's id.
	BaseShapeID int
}

// BuildSnapshot copies every registered origin out of store (following
// multi-match chains, so every known lineage is available to sample from)
// into a Snapshot workers can safely share read-only.
func BuildSnapshot(store *registry.Store) Snapshot {
	snap := Snapshot{
		TargetPoints: append(store.PointsToFind.AsSlice(), store.FoundPoints.AsSlice()...),
		TargetShapes: append(store.ShapesToFind.AsSlice(), store.FoundShapes.AsSlice()...),
		BaseShapeID:  len(store.ShapeOrigins),
	}
	for i := range store.PointOrigins {
		o := store.PointOrigins[i]
		snap.Points = append(snap.Points, PointState{Point: o.Point, Deps: o.Deps})
	}
	for i := range store.ShapeOrigins {
		o := store.ShapeOrigins[i]
		snap.Shapes = append(snap.Shapes, ShapeState{Shape: o.Shape, Deps: o.Deps})
	}

	return snap
}
