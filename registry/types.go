package registry

import (
	"github.com/compasslab/euclid/depset"
	"github.com/compasslab/euclid/element"
	"github.com/compasslab/euclid/problem"
	"github.com/compasslab/euclid/shape"
)

// Given is the parent-index sentinel marking "this entity is a problem
// given, not the intersection of two earlier shapes".
const Given = -1

// Link records how a ShapeOrigin's shape was produced: either a problem
// given (GivenElement is then meaningful) or a construction action
// (ActionType + parent indices are then meaningful). It intentionally
// carries enough to describe the construction without referencing package
// search's queue-facing Action type — search depends on registry, never
// the other way around.
type Link struct {
	Given        bool
	GivenElement element.Element
	ActionType   problem.ActionType
	PointIndex1  int
	PointIndex2  int
	ExtraIndex   int
}

// PointOrigin is one lineage by which a point entered the registry: its
// coordinates, its dependency set, the two shape origins it was
// intersected from (Given, Given for a problem given), which target-shape
// masks have been seen along this lineage, and Next, the index of another
// origin for the same point (multi-match mode only; -1 otherwise).
type PointOrigin struct {
	Point              shape.Point
	Deps               depset.DepSet
	ParentShapeIndices [2]int
	FoundShapeMask     uint64
	Next               int
}

// ShapeOrigin is one lineage by which a shape entered the registry,
// mirroring PointOrigin.
type ShapeOrigin struct {
	Shape          shape.Shape
	Link           Link
	Deps           depset.DepSet
	FoundShapeMask uint64
	Next           int
}
