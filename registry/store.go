package registry

import (
	"fmt"

	"github.com/compasslab/euclid/depset"
	"github.com/compasslab/euclid/hashset2"
	"github.com/compasslab/euclid/shape"
)

// Store owns the append-only PointOrigin/ShapeOrigin vectors, the
// double-hash dedup indices over Point/Shape, and the target-tracking
// sets (spec §3 "Target registry", §4.6 "Register a new point/shape").
// All cross-references into PointOrigins/ShapeOrigins are plain int
// indices, never pointers, so the origin graph can never form a cycle.
type Store struct {
	Interner    *depset.Interner
	ActionCount int
	Multimatch  bool

	PointOrigins []PointOrigin
	ShapeOrigins []ShapeOrigin

	points *hashset2.HashMap2[shape.Point, int]
	shapes *hashset2.HashMap2[shape.Shape, int]

	PointsToFind    *hashset2.HashSet2[shape.Point]
	ShapesToFind    *hashset2.HashSet2[shape.Shape]
	FoundPoints     *hashset2.HashSet2[shape.Point]
	FoundShapes     *hashset2.HashSet2[shape.Shape]
	ShapeToFindMask *hashset2.HashMap2[shape.Shape, uint64]
}

// New returns an empty Store sharing interner (see package depset) and
// honoring the problem's action budget and multi-match mode.
func New(interner *depset.Interner, actionCount int, multimatch bool) *Store {
	return &Store{
		Interner:        interner,
		ActionCount:     actionCount,
		Multimatch:      multimatch,
		points:          hashset2.NewMap[shape.Point, int](),
		shapes:          hashset2.NewMap[shape.Shape, int](),
		PointsToFind:    hashset2.New[shape.Point](),
		ShapesToFind:    hashset2.New[shape.Shape](),
		FoundPoints:     hashset2.New[shape.Point](),
		FoundShapes:     hashset2.New[shape.Shape](),
		ShapeToFindMask: hashset2.NewMap[shape.Shape, uint64](),
	}
}

// AddPointTarget registers p as a target point.
func (s *Store) AddPointTarget(p shape.Point) {
	s.PointsToFind.Insert(p)
}

// AddShapeTarget registers sh as a target shape carrying the unique
// single-bit mask assigned to it (spec §3, bit i for the i-th target
// shape).
func (s *Store) AddShapeTarget(sh shape.Shape, mask uint64) {
	s.ShapesToFind.Insert(sh)
	s.ShapeToFindMask.Insert(sh, mask)
}

// TargetShapeCount returns the number of distinct target shapes.
func (s *Store) TargetShapeCount() int {
	return s.ShapeToFindMask.Len()
}

// TargetMaskFor returns the single-bit mask assigned to sh if it is a
// target shape.
func (s *Store) TargetMaskFor(sh shape.Shape) (uint64, bool) {
	return s.ShapeToFindMask.Get(sh)
}

// PointIndex returns the origin index stored for p, if any.
func (s *Store) PointIndex(p shape.Point) (int, bool) {
	return s.points.Get(p)
}

// ShapeIndex returns the origin index stored for sh, if any.
func (s *Store) ShapeIndex(sh shape.Shape) (int, bool) {
	return s.shapes.Get(sh)
}

// Solved reports whether every target point and target shape has been
// found (single-match termination condition, spec §4.7 step 6).
func (s *Store) Solved() bool {
	return s.PointsToFind.Len() == 0 && s.ShapesToFind.Len() == 0
}

// SolutionDeps returns the union of every found target point's and found
// target shape's dependency set — the single-match-mode solution
// dependency set reported to spec §6a's external output.
func (s *Store) SolutionDeps() depset.DepSet {
	acc := depset.Empty
	for _, p := range s.FoundPoints.AsSlice() {
		if idx, ok := s.PointIndex(p); ok {
			acc = s.Interner.Combine(acc, s.PointOrigins[idx].Deps, nil)
		}
	}
	for _, sh := range s.FoundShapes.AsSlice() {
		if idx, ok := s.ShapeIndex(sh); ok {
			acc = s.Interner.Combine(acc, s.ShapeOrigins[idx].Deps, nil)
		}
	}

	return acc
}

// chainPointIfNotRedundant walks the Next chain for an already-registered
// point, returning false (do not add newIndex) when some existing origin's
// dependency set is already a subset of newDeps — meaning the new lineage
// carries no cheaper information — and otherwise appending newIndex to the
// end of the chain.
func (s *Store) chainPointIfNotRedundant(existing int, newIndex int, newDeps depset.DepSet) bool {
	i := existing
	for {
		origin := &s.PointOrigins[i]
		if s.Interner.IsSubset(newDeps, origin.Deps) {
			return false
		}
		if origin.Next < 0 {
			origin.Next = newIndex

			return true
		}
		i = origin.Next
	}
}

func (s *Store) chainShapeIfNotRedundant(existing int, newIndex int, newDeps depset.DepSet) bool {
	i := existing
	for {
		origin := &s.ShapeOrigins[i]
		if s.Interner.IsSubset(newDeps, origin.Deps) {
			return false
		}
		if origin.Next < 0 {
			origin.Next = newIndex

			return true
		}
		i = origin.Next
	}
}

// RegisterPoint registers p as produced by the intersection of the shapes
// at parentShapeIndices (Given, Given for a problem given). It computes
// the point's dependency set from its parents, marks p found if it is an
// unfound target, and appends a new PointOrigin — chained via Next in
// multi-match mode when p was already seen. isNew is false when the point
// was a duplicate that added no new information (or multi-match is off
// and p was already registered).
func (s *Store) RegisterPoint(p shape.Point, parentShapeIndices [2]int) (index int, isNew bool, err error) {
	var deps1, deps2 depset.DepSet
	if parentShapeIndices[0] != Given {
		deps1 = s.ShapeOrigins[parentShapeIndices[0]].Deps
	}
	if parentShapeIndices[1] != Given {
		deps2 = s.ShapeOrigins[parentShapeIndices[1]].Deps
	}
	deps := s.Interner.Combine(deps1, deps2, nil)

	existing, seenBefore := s.points.Get(p)
	if seenBefore && !s.Multimatch {
		return existing, false, nil
	}
	if !seenBefore && s.PointsToFind.Contains(p) {
		s.FoundPoints.Insert(p)
		s.PointsToFind.Remove(p)
	}

	var foundMask uint64
	if parentShapeIndices[0] != Given {
		foundMask |= s.ShapeOrigins[parentShapeIndices[0]].FoundShapeMask
	}
	if parentShapeIndices[1] != Given {
		foundMask |= s.ShapeOrigins[parentShapeIndices[1]].FoundShapeMask
	}

	if s.Interner.Count(deps) > s.ActionCount {
		return -1, false, fmt.Errorf("registry: point %v: %w", p, ErrDepsCountExceeded)
	}

	newIndex := len(s.PointOrigins)
	if seenBefore {
		if !s.chainPointIfNotRedundant(existing, newIndex, deps) {
			return existing, false, nil
		}
	} else {
		s.points.Insert(p, newIndex)
	}

	s.PointOrigins = append(s.PointOrigins, PointOrigin{
		Point:              p,
		Deps:               deps,
		ParentShapeIndices: parentShapeIndices,
		FoundShapeMask:     foundMask,
		Next:               -1,
	})

	return newIndex, true, nil
}

// RegisterShape registers sh as produced by link, with deps and foundMask
// already combined by the caller (package search, which alone knows how
// many parents — and of which kinds — link's action type takes). isNew is
// false when sh was a duplicate that added no new information.
func (s *Store) RegisterShape(sh shape.Shape, link Link, deps depset.DepSet, foundMask uint64) (index int, isNew bool, err error) {
	existing, seenBefore := s.shapes.Get(sh)
	if seenBefore && !s.Multimatch {
		return existing, false, nil
	}
	if !seenBefore && s.ShapesToFind.Contains(sh) {
		s.FoundShapes.Insert(sh)
		s.ShapesToFind.Remove(sh)
	}

	if s.Interner.Count(deps) > s.ActionCount {
		return -1, false, fmt.Errorf("registry: shape %v: %w", sh.Kind, ErrDepsCountExceeded)
	}

	newIndex := len(s.ShapeOrigins)
	if seenBefore {
		if !s.chainShapeIfNotRedundant(existing, newIndex, deps) {
			return existing, false, nil
		}
	} else {
		s.shapes.Insert(sh, newIndex)
	}

	s.ShapeOrigins = append(s.ShapeOrigins, ShapeOrigin{
		Shape:          sh,
		Link:           link,
		Deps:           deps,
		FoundShapeMask: foundMask,
		Next:           -1,
	})

	return newIndex, true, nil
}

// RegisterGivenPoint registers a problem-given point: empty dependency
// set, no parent shapes.
func (s *Store) RegisterGivenPoint(p shape.Point) (index int, isNew bool, err error) {
	return s.RegisterPoint(p, [2]int{Given, Given})
}

// RegisterGivenShape registers a problem-given shape: empty dependency
// set, no found-shape-mask contribution of its own.
func (s *Store) RegisterGivenShape(sh shape.Shape, link Link) (index int, isNew bool, err error) {
	return s.RegisterShape(sh, link, depset.Empty, 0)
}

// PointOriginChain returns every origin index for a registered point, starting
// at its primary index and following Next — the empty slice if idx < 0.
func (s *Store) PointOriginChain(idx int) []int {
	var out []int
	for i := idx; i >= 0; i = s.PointOrigins[i].Next {
		out = append(out, i)
	}

	return out
}

// ShapeOriginChain returns every origin index for a registered shape,
// following Next.
func (s *Store) ShapeOriginChain(idx int) []int {
	var out []int
	for i := idx; i >= 0; i = s.ShapeOrigins[i].Next {
		out = append(out, i)
	}

	return out
}
