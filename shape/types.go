package shape

import "github.com/compasslab/euclid/fint"

// Point is a pair of interval numbers. Equality is coordinate-wise
// interval overlap (EqualKey), never bitwise identity.
type Point struct {
	X fint.FInt
	Y fint.FInt
}

// NewPoint constructs a Point from two interval coordinates.
func NewPoint(x, y fint.FInt) Point {
	return Point{X: x, Y: y}
}

// EqualKey reports whether p and other denote the same point under
// coordinate-wise interval overlap.
func (p Point) EqualKey(other Point) bool {
	return p.X.Equal(other.X) && p.Y.Equal(other.Y)
}

// Hash1 is the first double-hash bucket for p, combining both
// coordinates' own Hash1 values.
func (p Point) Hash1() int64 {
	return mixHash(p.X.Hash1(), p.Y.Hash1())
}

// Hash2 is the second double-hash bucket for p.
func (p Point) Hash2() int64 {
	return mixHash(p.X.Hash2(), p.Y.Hash2())
}

// Kind identifies which variant of the Shape tagged union is populated.
type Kind int

const (
	// KindLine marks Shape.Line as the active variant.
	KindLine Kind = iota
	// KindRay marks Shape.Ray as the active variant.
	KindRay
	// KindSegment marks Shape.Segment as the active variant.
	KindSegment
	// KindCircle marks Shape.Circle as the active variant.
	KindCircle
)

// String renders the Kind for debugging/telemetry.
func (k Kind) String() string {
	switch k {
	case KindLine:
		return "Line"
	case KindRay:
		return "Ray"
	case KindSegment:
		return "Segment"
	case KindCircle:
		return "Circle"
	default:
		return "Unknown"
	}
}

// Line is stored in canonical normal form: nx*x + ny*y = d, with the sign
// convention ny > 0, or ny = 0 ∧ nx > 0 (see LineFromTwoPoints).
type Line struct {
	NX fint.FInt
	NY fint.FInt
	D  fint.FInt
}

// Circle stores its center and squared radius, avoiding a sqrt at
// construction time.
type Circle struct {
	C  Point
	R2 fint.FInt
}

// rayData holds a ray's anchor and unit direction (V is a unit vector).
type rayData struct {
	A Point
	V Point
}

type segmentData struct {
	A Point
	B Point
}

// Shape is the tagged union over the closed set {Line, Ray, Segment,
// Circle}. Exactly one of the four payload fields is meaningful,
// determined by Kind.
type Shape struct {
	Kind    Kind
	Line    Line
	RayV    rayData
	Segment segmentData
	Circle  Circle
}

// NewLineShape wraps l as a Shape.
func NewLineShape(l Line) Shape {
	return Shape{Kind: KindLine, Line: l}
}

// NewRayShape wraps a ray anchored at a with unit direction v as a Shape.
func NewRayShape(a, v Point) Shape {
	return Shape{Kind: KindRay, RayV: rayData{A: a, V: v}}
}

// NewSegmentShape wraps the segment [a, b] as a Shape.
func NewSegmentShape(a, b Point) Shape {
	return Shape{Kind: KindSegment, Segment: segmentData{A: a, B: b}}
}

// NewCircleShape wraps c as a Shape.
func NewCircleShape(c Circle) Shape {
	return Shape{Kind: KindCircle, Circle: c}
}

// RayAnchor returns the ray's start point; valid only when Kind ==
// KindRay.
func (s Shape) RayAnchor() Point { return s.RayV.A }

// RayDirection returns the ray's unit direction; valid only when Kind ==
// KindRay.
func (s Shape) RayDirection() Point { return s.RayV.V }

// SegmentA returns the segment's first endpoint; valid only when Kind ==
// KindSegment.
func (s Shape) SegmentA() Point { return s.Segment.A }

// SegmentB returns the segment's second endpoint; valid only when Kind ==
// KindSegment.
func (s Shape) SegmentB() Point { return s.Segment.B }
