package search

import (
	"fmt"
	"io"

	"github.com/compasslab/euclid/depset"
	"github.com/compasslab/euclid/element"
	"github.com/compasslab/euclid/problem"
	"github.com/compasslab/euclid/registry"
	"github.com/compasslab/euclid/shape"
)

// maxIterations bounds a single Solve call's main loop, matching the
// reference solver's fixed iteration ceiling (spec §4.7 "bounded search").
const maxIterations = 1_000_000

// telemetryEvery is how often (in iterations) Solve reports progress to
// Telemetry.
const telemetryEvery = 10_000

// Driver owns the registry, the action frontier, and the per-action-group
// candidate-type lists derived from the problem's configuration — the
// best-first search loop described by spec §4.7-§4.9.
type Driver struct {
	Problem  *problem.Problem
	Store    *registry.Store
	Interner *depset.Interner
	Queue    *Queue

	// Telemetry receives periodic progress lines; defaults to io.Discard.
	Telemetry io.Writer

	twoPointTypes        []problem.TwoPointActionType
	pointAndLineTypes    []problem.PointAndLineActionType
	threePointTypes      []problem.ThreePointActionType
	twoPointAndLineTypes []problem.TwoPointAndLineActionType
}

// NewDriver builds a Driver for p: it registers every given element (which
// recursively seeds the initial action frontier) and only afterward
// records the target points/shapes to search for. This mirrors the
// reference solver's own initialization order exactly, including its
// consequence that a given element coinciding with a target is never
// retroactively marked found.
func NewDriver(p *problem.Problem) (*Driver, error) {
	interner := depset.NewInterner()
	store := registry.New(interner, p.ActionCount, p.Multimatch)
	d := &Driver{
		Problem:   p,
		Store:     store,
		Interner:  interner,
		Queue:     NewQueue(),
		Telemetry: io.Discard,
	}
	for _, t := range p.ActionTypes {
		switch t.Group {
		case problem.GroupTwoPoint:
			d.twoPointTypes = append(d.twoPointTypes, t.TwoPoint)
		case problem.GroupPointAndLine:
			d.pointAndLineTypes = append(d.pointAndLineTypes, t.PointAndLine)
		case problem.GroupThreePoint:
			d.threePointTypes = append(d.threePointTypes, t.ThreePoint)
		case problem.GroupTwoPointAndLine:
			d.twoPointAndLineTypes = append(d.twoPointAndLineTypes, t.TwoPointAndLine)
		}
	}

	for _, el := range p.GivenElements {
		if err := d.registerGivenElement(el); err != nil {
			return nil, err
		}
	}

	var shapeTargetCount uint
	for _, el := range p.ElementsToFind {
		if el.Kind == element.KindPoint {
			store.AddPointTarget(el.Point)

			continue
		}
		sh, ok := el.GetShape()
		if !ok {
			return nil, fmt.Errorf("search: target element: %w", ErrDegenerateTarget)
		}
		store.AddShapeTarget(sh, uint64(1)<<shapeTargetCount)
		shapeTargetCount++
	}

	return d, nil
}

func (d *Driver) registerGivenElement(el element.Element) error {
	if el.Kind == element.KindPoint {
		idx, isNew, err := d.Store.RegisterGivenPoint(el.Point)
		if err != nil {
			return err
		}
		if isNew {
			d.enumerateFromNewPoint(idx)
		}

		return nil
	}

	sh, ok := el.GetShape()
	if !ok {
		return fmt.Errorf("search: given element: %w", ErrDegenerateGiven)
	}
	idx, isNew, err := d.Store.RegisterGivenShape(sh, registry.Link{Given: true, GivenElement: el})
	if err != nil {
		return err
	}
	if isNew {
		d.enumerateFromNewShape(idx)
	}

	return nil
}

// enumerateFromNewPoint builds and pushes every candidate action that
// becomes available now that the point at idx exists, pairing it against
// every earlier point and line shape (spec §4.6 "register a new point").
func (d *Driver) enumerateFromNewPoint(idx int) {
	for i := 0; i < idx; i++ {
		d.pushCandidates(d.candidatesTwoPoint(i, idx))
	}

	if len(d.pointAndLineTypes) > 0 {
		for i := range d.Store.ShapeOrigins {
			d.pushCandidates(d.candidatesPointAndLine(idx, i))
		}
	}

	if len(d.threePointTypes) > 0 {
		for i1 := 0; i1 < idx; i1++ {
			for i2 := i1 + 1; i2 < idx; i2++ {
				d.pushCandidates(d.candidatesThreePoint(i1, i2, idx))
			}
		}
	}

	if len(d.twoPointAndLineTypes) > 0 {
		for i1 := 0; i1 < idx; i1++ {
			for lineIdx := range d.Store.ShapeOrigins {
				d.pushCandidates(d.candidatesTwoPointAndLine(i1, idx, lineIdx))
			}
		}
	}
}

// enumerateFromNewShape intersects the shape at idx against every earlier
// shape (registering any new intersection points, which recursively
// enumerate their own candidates), then — if the shape has a direction —
// builds PointAndLine/TwoPointAndLine candidates against every known
// point (spec §4.6 "register a new shape").
func (d *Driver) enumerateFromNewShape(idx int) {
	so := d.Store.ShapeOrigins[idx]

	for i := 0; i < idx; i++ {
		prior := d.Store.ShapeOrigins[i]
		combinedMask := prior.FoundShapeMask | so.FoundShapeMask
		depsCount := d.Interner.CombinedCount(prior.Deps, so.Deps)
		if !d.feasibleCandidate(depsCount, combinedMask) {
			continue
		}
		for _, p := range shape.Intersect(prior.Shape, so.Shape) {
			pIdx, isNew, err := d.Store.RegisterPoint(p, [2]int{i, idx})
			if err != nil {
				continue
			}
			if isNew {
				d.enumerateFromNewPoint(pIdx)
			}
		}
	}

	if _, ok := so.Shape.Direction(); ok {
		if len(d.pointAndLineTypes) > 0 {
			for i := range d.Store.PointOrigins {
				d.pushCandidates(d.candidatesPointAndLine(i, idx))
			}
		}
		if len(d.twoPointAndLineTypes) > 0 {
			n := len(d.Store.PointOrigins)
			for i1 := 0; i1 < n; i1++ {
				for i2 := i1 + 1; i2 < n; i2++ {
					d.pushCandidates(d.candidatesTwoPointAndLine(i1, i2, idx))
				}
			}
		}
	}
}

// ownShapeID returns the shape-origin index sh would occupy: its existing
// index if already registered, or the index it will receive on append.
// This is the "self" dependency every constructed (non-given) shape adds
// to its own dependency set.
func (d *Driver) ownShapeID(sh shape.Shape) int {
	if idx, ok := d.Store.ShapeIndex(sh); ok {
		return idx
	}

	return len(d.Store.ShapeOrigins)
}

// actionDepsAndMask computes a's combined dependency set (including a's
// own shape-origin id) and found-shape mask, without registering
// anything — the shared core of executeAction and the exported ActionDeps,
// the latter used by package solver to seed a random-walk Snapshot from a
// frontier action without executing it.
func (d *Driver) actionDepsAndMask(a Action) (depset.DepSet, uint64) {
	ownID := uint32(d.ownShapeID(a.Shape))

	var deps depset.DepSet
	var foundMask uint64

	switch a.ActionType.Group {
	case problem.GroupTwoPoint:
		o1, o2 := d.Store.PointOrigins[a.PointIndex1], d.Store.PointOrigins[a.PointIndex2]
		deps = d.Interner.Combine(o1.Deps, o2.Deps, &ownID)
		foundMask = o1.FoundShapeMask | o2.FoundShapeMask
	case problem.GroupPointAndLine:
		po, so := d.Store.PointOrigins[a.PointIndex1], d.Store.ShapeOrigins[a.PointIndex2]
		deps = d.Interner.Combine(po.Deps, so.Deps, &ownID)
		foundMask = po.FoundShapeMask | so.FoundShapeMask
	case problem.GroupThreePoint:
		o1, o2, o3 := d.Store.PointOrigins[a.PointIndex1], d.Store.PointOrigins[a.PointIndex2], d.Store.PointOrigins[a.ExtraIndex]
		deps12 := d.Interner.Combine(o1.Deps, o2.Deps, &ownID)
		deps = d.Interner.Combine(deps12, o3.Deps, nil)
		foundMask = o1.FoundShapeMask | o2.FoundShapeMask | o3.FoundShapeMask
	case problem.GroupTwoPointAndLine:
		o1, o2 := d.Store.PointOrigins[a.PointIndex1], d.Store.PointOrigins[a.PointIndex2]
		so := d.Store.ShapeOrigins[a.ExtraIndex]
		deps12 := d.Interner.Combine(o1.Deps, o2.Deps, &ownID)
		deps = d.Interner.Combine(deps12, so.Deps, nil)
		foundMask = o1.FoundShapeMask | o2.FoundShapeMask | so.FoundShapeMask
	}

	if mask, ok := d.Store.TargetMaskFor(a.Shape); ok {
		foundMask |= mask
	}

	return deps, foundMask
}

// ActionDeps returns the dependency set a would carry if executed, without
// registering it — used to seed a random-walk starting snapshot from a
// frontier action (spec §4.8 "the action's own shape").
func (d *Driver) ActionDeps(a Action) depset.DepSet {
	deps, _ := d.actionDepsAndMask(a)

	return deps
}

// executeAction combines a's parents' dependency sets (adding a's own
// shape-origin id as the construction action itself) and registers the
// resulting shape, mirroring Action::process.
func (d *Driver) executeAction(a Action) (index int, isNew bool, err error) {
	link := registry.Link{
		ActionType:  a.ActionType,
		PointIndex1: a.PointIndex1,
		PointIndex2: a.PointIndex2,
		ExtraIndex:  a.ExtraIndex,
	}
	deps, foundMask := d.actionDepsAndMask(a)

	return d.Store.RegisterShape(a.Shape, link, deps, foundMask)
}

// recomputePriority re-derives a's priority against the current store
// state (spec §4.7 step 4 "recompute priority at pop time"): the
// found/unfound target bookkeeping the priority bonuses read from
// (Store.ShapesToFind, Store.FoundShapes, ...) mutates as the search
// progresses, so an action enqueued early may score differently by the
// time it is popped. depsCount is reused from a, and combinedMask is
// re-derived from a's parents the same way enumeration derived it: both
// are fixed functions of a's parents and never change after enumeration.
func (d *Driver) recomputePriority(a Action) int {
	switch a.ActionType.Group {
	case problem.GroupTwoPoint:
		o1, o2 := d.Store.PointOrigins[a.PointIndex1], d.Store.PointOrigins[a.PointIndex2]
		mask := o1.FoundShapeMask | o2.FoundShapeMask
		if m, ok := d.Store.TargetMaskFor(a.Shape); ok {
			mask |= m
		}

		return d.priorityTwoPoint(o1.Point, o2.Point, a.DepsCount, mask, a.Shape)
	case problem.GroupPointAndLine:
		po, so := d.Store.PointOrigins[a.PointIndex1], d.Store.ShapeOrigins[a.PointIndex2]
		lineMask, pointMask := so.FoundShapeMask, po.FoundShapeMask
		if m, ok := d.Store.TargetMaskFor(a.Shape); ok {
			pointMask |= m
		}

		return d.priorityPointAndLine(po.Point, so.Shape, so.Deps, po.Deps, lineMask, pointMask, a.DepsCount, a.Shape)
	case problem.GroupThreePoint:
		o1, o2, o3 := d.Store.PointOrigins[a.PointIndex1], d.Store.PointOrigins[a.PointIndex2], d.Store.PointOrigins[a.ExtraIndex]
		mask := o1.FoundShapeMask | o2.FoundShapeMask | o3.FoundShapeMask
		if m, ok := d.Store.TargetMaskFor(a.Shape); ok {
			mask |= m
		}

		return d.priorityThreePoint(o1.Point, o2.Point, o3.Point, a.DepsCount, mask, a.Shape)
	case problem.GroupTwoPointAndLine:
		o1, o2 := d.Store.PointOrigins[a.PointIndex1], d.Store.PointOrigins[a.PointIndex2]
		so := d.Store.ShapeOrigins[a.ExtraIndex]
		mask := o1.FoundShapeMask | o2.FoundShapeMask | so.FoundShapeMask
		if m, ok := d.Store.TargetMaskFor(a.Shape); ok {
			mask |= m
		}

		return d.priorityTwoPointAndLine(o1.Point, o2.Point, so.Shape, a.DepsCount, mask, a.Shape)
	default:
		return a.Priority
	}
}

// Solve runs the best-first search to completion: until a solution is
// found (single-match mode), the queue runs dry, or maxIterations is
// reached. At each pop, an action whose DepsCount equals the configured
// random-walk threshold minus two is diverted to Result.Frontier
// untouched; otherwise its priority is recomputed against the current
// store state, dropped if now negative, re-enqueued if the recomputed
// value differs from the one it was queued with, and only executed once
// it pops again with a priority that is still current (spec §4.7 steps
// 3-4).
func (d *Driver) Solve() *Result {
	result := &Result{Status: StatusExhausted}
	wasSolved := false

	for result.Iterations < maxIterations {
		a, ok := d.Queue.Pop()
		if !ok {
			break
		}
		result.Iterations++

		if result.Iterations%telemetryEvery == 0 {
			fmt.Fprintf(d.Telemetry, "search: iteration %d queue=%d points=%d shapes=%d\n",
				result.Iterations, d.Queue.Len(), len(d.Store.PointOrigins), len(d.Store.ShapeOrigins))
		}

		if n := d.Problem.RandomWalkAtNActions; n != nil && a.DepsCount == *n-2 {
			a.DivertToRandomWalk = true
			result.Frontier = append(result.Frontier, a)

			continue
		}

		if priority := d.recomputePriority(a); priority < 0 {
			continue
		} else if priority != a.Priority {
			a.Priority = priority
			d.Queue.Push(a)

			continue
		}

		idx, isNew, err := d.executeAction(a)
		if err != nil {
			continue
		}
		if isNew {
			d.enumerateFromNewShape(idx)
		}

		if d.Problem.Multimatch {
			if deps, ok := d.checkMultimatchSolution(); ok {
				result.Status = StatusSolved
				result.Solutions = append(result.Solutions, deps)
				if !d.Problem.FindAllSolutions {
					return result
				}

				continue
			}
		}

		if d.Store.Solved() && !d.Problem.Multimatch && !wasSolved {
			wasSolved = true
			result.Status = StatusSolved
			result.Solutions = append(result.Solutions, d.Store.SolutionDeps())
			if !d.Problem.FindAllSolutions {
				return result
			}
		}
	}

	if d.Store.Solved() && !wasSolved {
		result.Status = StatusSolved
		result.Solutions = append(result.Solutions, d.Store.SolutionDeps())
	}

	return result
}
