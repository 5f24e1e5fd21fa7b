package search

import (
	"github.com/compasslab/euclid/element"
	"github.com/compasslab/euclid/problem"
	"github.com/compasslab/euclid/shape"
)

// BuildTwoPoint exports buildTwoPoint for package randomwalk, whose
// completion phase only ever builds TwoPoint-group shapes (see package
// randomwalk's doc comment for why).
func BuildTwoPoint(t problem.TwoPointActionType, p1, p2 shape.Point) element.Element {
	return buildTwoPoint(t, p1, p2)
}

// buildTwoPoint returns the recipe for t built from the ordered pair
// (p1, p2), mirroring create_two_point_element.
func buildTwoPoint(t problem.TwoPointActionType, p1, p2 shape.Point) element.Element {
	switch t {
	case problem.Line:
		return element.Element{Kind: element.KindLineAB, LineAB: element.LineAB{A: p1, B: p2}}
	case problem.Circle12:
		return element.Element{Kind: element.KindCircleCP, CircleCP: element.CircleCP{C: p1, P: p2}}
	case problem.Circle21:
		return element.Element{Kind: element.KindCircleCP, CircleCP: element.CircleCP{C: p2, P: p1}}
	case problem.MidPerp:
		return element.Element{Kind: element.KindMidPerpAB, MidPerpAB: element.MidPerpAB{A: p1, B: p2}}
	default:
		return element.Element{}
	}
}

// buildPointAndLine returns the recipe for t built from point anchored
// against line, mirroring create_point_and_line_element. line must already
// be known to pass through (or be parallel-eligible at) point — callers
// check that before calling.
func buildPointAndLine(t problem.PointAndLineActionType, point shape.Point, line shape.Shape) (element.Element, bool) {
	dir, ok := line.Direction()
	if !ok {
		return element.Element{}, false
	}
	switch t {
	case problem.Perp:
		return element.Element{Kind: element.KindLineAV, LineAV: element.LineAV{A: point, V: shape.Rotate90(dir)}}, true
	case problem.Par:
		return element.Element{Kind: element.KindLineAV, LineAV: element.LineAV{A: point, V: dir}}, true
	default:
		return element.Element{}, false
	}
}

// buildThreePoint returns the recipe for t built from the ordered triple
// (p1, p2, p3), mirroring create_three_point_element. ok is false for a
// degenerate bisector (the two arms from the vertex are collinear).
func buildThreePoint(t problem.ThreePointActionType, p1, p2, p3 shape.Point) (element.Element, bool) {
	switch t {
	case problem.CircleCAB:
		r, ok := shape.Distance(p2, p3)
		if !ok {
			return element.Element{}, false
		}

		return element.Element{Kind: element.KindCircleCR, CircleCR: element.CircleCR{C: p1, R: r}}, true
	case problem.CircleACB:
		r, ok := shape.Distance(p1, p3)
		if !ok {
			return element.Element{}, false
		}

		return element.Element{Kind: element.KindCircleCR, CircleCR: element.CircleCR{C: p2, R: r}}, true
	case problem.CircleABC:
		r, ok := shape.Distance(p1, p2)
		if !ok {
			return element.Element{}, false
		}

		return element.Element{Kind: element.KindCircleCR, CircleCR: element.CircleCR{C: p3, R: r}}, true
	case problem.BisectorCAB:
		if shape.Collinear(p1, p2, p3) {
			return element.Element{}, false
		}

		return element.Element{Kind: element.KindBisectorCVV, BisectorCVV: element.BisectorCVV{
			C: p1, V1: vectorBetween(p1, p2), V2: vectorBetween(p1, p3),
		}}, true
	case problem.BisectorACB:
		if shape.Collinear(p1, p2, p3) {
			return element.Element{}, false
		}

		return element.Element{Kind: element.KindBisectorCVV, BisectorCVV: element.BisectorCVV{
			C: p2, V1: vectorBetween(p2, p1), V2: vectorBetween(p2, p3),
		}}, true
	case problem.BisectorABC:
		if shape.Collinear(p1, p2, p3) {
			return element.Element{}, false
		}

		return element.Element{Kind: element.KindBisectorCVV, BisectorCVV: element.BisectorCVV{
			C: p3, V1: vectorBetween(p3, p1), V2: vectorBetween(p3, p2),
		}}, true
	default:
		return element.Element{}, false
	}
}

// buildTwoPointAndLine returns the recipe for t built from an ordered point
// pair and a line, mirroring create_two_point_and_line_element. The four
// variants build the bisector of the angle at an anchor point between the
// vector toward the other point and line's direction (Pos variants) or its
// reverse (Neg variants); the anchor is point1 (CAL) or point2 (ACL). ok is
// false when line has no direction (a Circle), point1/point2 coincide, the
// anchor does not lie on line, or shape.CollinearRayIntersects rejects the
// chosen direction from the anchor (for a Ray/Segment line, it would run
// off the supporting shape's bounded end).
func buildTwoPointAndLine(t problem.TwoPointAndLineActionType, point1, point2 shape.Point, line shape.Shape) (element.Element, bool) {
	dir, ok := line.Direction()
	if !ok {
		return element.Element{}, false
	}

	var anchor shape.Point
	var v1, v2 shape.Point
	switch t {
	case problem.BisectorPosCAL:
		anchor, v1, v2 = point1, vectorBetween(point1, point2), dir
	case problem.BisectorPosACL:
		anchor, v1, v2 = point2, vectorBetween(point2, point1), dir
	case problem.BisectorNegCAL:
		anchor, v1, v2 = point1, vectorBetween(point1, point2), negate(dir)
	case problem.BisectorNegACL:
		anchor, v1, v2 = point2, vectorBetween(point2, point1), negate(dir)
	default:
		return element.Element{}, false
	}

	if point1.EqualKey(point2) {
		return element.Element{}, false
	}
	if !line.Contains(anchor) {
		return element.Element{}, false
	}
	if !shape.CollinearRayIntersects(line, anchor, v2) {
		return element.Element{}, false
	}

	return element.Element{Kind: element.KindBisectorCVV, BisectorCVV: element.BisectorCVV{C: anchor, V1: v1, V2: v2}}, true
}
