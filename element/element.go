package element

import (
	"github.com/compasslab/euclid/fint"
	"github.com/compasslab/euclid/shape"
)

// LineAB is the line through two given points A and B.
type LineAB struct {
	A shape.Point
	B shape.Point
}

// GetShape returns the canonical line through A and B. ok is false when A
// and B coincide.
func (r LineAB) GetShape() (shape.Shape, bool) {
	l, ok := shape.LineFromTwoPoints(r.A, r.B)
	if !ok {
		return shape.Shape{}, false
	}

	return shape.NewLineShape(l), true
}

// LineAV is the line through point A with direction V.
type LineAV struct {
	A shape.Point
	V shape.Point
}

// GetShape returns the canonical line through A in direction V.
func (r LineAV) GetShape() (shape.Shape, bool) {
	b := shape.Point{X: fint.Add(r.A.X, r.V.X), Y: fint.Add(r.A.Y, r.V.Y)}

	return LineAB{A: r.A, B: b}.GetShape()
}

// RayAV is the ray starting at A in direction V.
type RayAV struct {
	A shape.Point
	V shape.Point
}

// GetShape returns the ray anchored at A with V normalized to unit
// length. ok is false when V has zero length.
func (r RayAV) GetShape() (shape.Shape, bool) {
	ray, ok := shape.RayFromPointDirection(r.A, r.V)
	if !ok {
		return shape.Shape{}, false
	}

	return shape.NewRayShape(ray.A, ray.V), true
}

// SegmentAB is the bounded segment between A and B — a recipe the spec
// requires but the shape it recipe for (shape.Segment) is a deliberate
// addition beyond the reference algorithm, which has no Segment variant.
type SegmentAB struct {
	A shape.Point
	B shape.Point
}

// GetShape returns the segment [A, B].
func (r SegmentAB) GetShape() (shape.Shape, bool) {
	seg := shape.SegmentFromTwoPoints(r.A, r.B)

	return shape.NewSegmentShape(seg.A, seg.B), true
}

// CircleCP is the circle centered at C passing through P.
type CircleCP struct {
	C shape.Point
	P shape.Point
}

// GetShape returns the circle centered at C through P.
func (r CircleCP) GetShape() (shape.Shape, bool) {
	return shape.NewCircleShape(shape.CircleFromCenterPoint(r.C, r.P)), true
}

// CircleCR is the circle centered at C with radius R.
type CircleCR struct {
	C shape.Point
	R fint.FInt
}

// GetShape returns the circle centered at C with radius R.
func (r CircleCR) GetShape() (shape.Shape, bool) {
	return shape.NewCircleShape(shape.CircleFromCenterRadius(r.C, r.R)), true
}

// MidPerpAB is the perpendicular bisector of segment AB.
type MidPerpAB struct {
	A shape.Point
	B shape.Point
}

// GetShape returns the perpendicular bisector of AB.
func (r MidPerpAB) GetShape() (shape.Shape, bool) {
	mid := shape.Point{
		X: fint.Mul(fint.Add(r.A.X, r.B.X), fint.New(0.5)),
		Y: fint.Mul(fint.Add(r.A.Y, r.B.Y), fint.New(0.5)),
	}
	v := shape.Point{X: fint.Sub(r.A.Y, r.B.Y), Y: fint.Sub(r.B.X, r.A.X)}

	return LineAV{A: mid, V: v}.GetShape()
}

// BisectorCVV is the angle bisector at C between directions V1 and V2.
type BisectorCVV struct {
	C  shape.Point
	V1 shape.Point
	V2 shape.Point
}

// GetShape returns the bisector line through C. ok is false when either
// direction vector has zero length.
func (r BisectorCVV) GetShape() (shape.Shape, bool) {
	len1Sq := fint.Add(r.V1.X.Sqr(), r.V1.Y.Sqr())
	len2Sq := fint.Add(r.V2.X.Sqr(), r.V2.Y.Sqr())
	len1, ok := len1Sq.Sqrt()
	if !ok || len1.Equal(fint.New(0)) {
		return shape.Shape{}, false
	}
	len2, ok := len2Sq.Sqrt()
	if !ok || len2.Equal(fint.New(0)) {
		return shape.Shape{}, false
	}

	v := shape.Point{
		X: fint.Add(fint.Mul(r.V1.X, len2), fint.Mul(r.V2.X, len1)),
		Y: fint.Add(fint.Mul(r.V1.Y, len2), fint.Mul(r.V2.Y, len1)),
	}

	return LineAV{A: r.C, V: v}.GetShape()
}

// Kind identifies which Element recipe is populated.
type Kind int

const (
	KindPoint Kind = iota
	KindLineAB
	KindLineAV
	KindRayAV
	KindSegmentAB
	KindCircleCP
	KindCircleCR
	KindMidPerpAB
	KindBisectorCVV
)

// Element is the closed set of recipes a given or constructed entity may
// be expressed as. Exactly one payload field is meaningful, per Kind.
type Element struct {
	Kind       Kind
	Point      shape.Point
	LineAB     LineAB
	LineAV     LineAV
	RayAV      RayAV
	SegmentAB  SegmentAB
	CircleCP   CircleCP
	CircleCR   CircleCR
	MidPerpAB  MidPerpAB
	BisectorCVV BisectorCVV
}

// GetShape dispatches to the active recipe's GetShape, returning (zero,
// false) for a bare Point, which has no associated shape.
func (e Element) GetShape() (shape.Shape, bool) {
	switch e.Kind {
	case KindPoint:
		return shape.Shape{}, false
	case KindLineAB:
		return e.LineAB.GetShape()
	case KindLineAV:
		return e.LineAV.GetShape()
	case KindRayAV:
		return e.RayAV.GetShape()
	case KindSegmentAB:
		return e.SegmentAB.GetShape()
	case KindCircleCP:
		return e.CircleCP.GetShape()
	case KindCircleCR:
		return e.CircleCR.GetShape()
	case KindMidPerpAB:
		return e.MidPerpAB.GetShape()
	case KindBisectorCVV:
		return e.BisectorCVV.GetShape()
	default:
		return shape.Shape{}, false
	}
}

// NewPointElement wraps a bare point (a given with no derived shape).
func NewPointElement(p shape.Point) Element {
	return Element{Kind: KindPoint, Point: p}
}
