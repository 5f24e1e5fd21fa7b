package shape

import "github.com/compasslab/euclid/fint"

// LineFromTwoPoints canonicalizes the line through a and b into normal
// form (nx, ny, d) with ny > 0, or ny = 0 ∧ nx > 0. ok is false when a and
// b coincide (the direction vector has zero, or ill-formed, length).
func LineFromTwoPoints(a, b Point) (Line, bool) {
	dx := fint.Sub(b.X, a.X)
	dy := fint.Sub(b.Y, a.Y)

	nSq := fint.Add(dx.Sqr(), dy.Sqr())
	n, ok := nSq.Sqrt()
	if !ok {
		return Line{}, false
	}
	nInv, ok := n.Inverse()
	if !ok {
		return Line{}, false
	}

	nx := fint.Mul(dy, nInv)
	minusNy := fint.Mul(dx, nInv)
	d := fint.Mul(fint.Sub(fint.Mul(a.X, dy), fint.Mul(a.Y, dx)), nInv)

	// ny = -dx/n: keep when ny > 0, or when ny ≈ 0 and nx = dy/n > 0.
	signOK := dx.AlwaysNegative() || (dx.Equal(fint.New(0)) && dy.AlwaysPositive())
	if signOK {
		return Line{NX: nx, NY: minusNy.Negate(), D: d}, true
	}

	return Line{NX: nx.Negate(), NY: minusNy, D: d.Negate()}, true
}

// CircleFromCenterPoint builds the circle centered at c passing through p.
func CircleFromCenterPoint(c, p Point) Circle {
	r2 := fint.Add(fint.Sub(p.X, c.X).Sqr(), fint.Sub(p.Y, c.Y).Sqr())

	return Circle{C: c, R2: r2}
}

// CircleFromCenterRadius builds the circle centered at c with radius r.
func CircleFromCenterRadius(c Point, r fint.FInt) Circle {
	return Circle{C: c, R2: r.Sqr()}
}

// RayFromPointDirection builds a ray anchored at a pointing along v,
// normalizing v to unit length. ok is false when v has zero (or ill-formed)
// length.
func RayFromPointDirection(a, v Point) (rayData, bool) {
	lenSq := fint.Add(v.X.Sqr(), v.Y.Sqr())
	length, ok := lenSq.Sqrt()
	if !ok {
		return rayData{}, false
	}
	inv, ok := length.Inverse()
	if !ok {
		return rayData{}, false
	}

	return rayData{A: a, V: Point{X: fint.Mul(v.X, inv), Y: fint.Mul(v.Y, inv)}}, true
}

// SegmentFromTwoPoints builds the segment [a, b].
func SegmentFromTwoPoints(a, b Point) segmentData {
	return segmentData{A: a, B: b}
}

// AsLine returns the infinite line a Ray or Segment shape lies on. ok is
// false for degenerate inputs, or when s is a Circle.
func (s Shape) AsLine() (Line, bool) {
	switch s.Kind {
	case KindLine:
		return s.Line, true
	case KindRay:
		b := Point{X: fint.Add(s.RayV.A.X, s.RayV.V.X), Y: fint.Add(s.RayV.A.Y, s.RayV.V.Y)}

		return LineFromTwoPoints(s.RayV.A, b)
	case KindSegment:
		return LineFromTwoPoints(s.Segment.A, s.Segment.B)
	default:
		return Line{}, false
	}
}

// Direction returns a vector along s: the line's own direction, the ray's
// unit direction, or B-A for a segment. ok is false for Circle, which has
// no single direction.
func (s Shape) Direction() (Point, bool) {
	switch s.Kind {
	case KindLine:
		return Point{X: s.Line.NY.Negate(), Y: s.Line.NX}, true
	case KindRay:
		return s.RayV.V, true
	case KindSegment:
		return Point{X: fint.Sub(s.Segment.B.X, s.Segment.A.X), Y: fint.Sub(s.Segment.B.Y, s.Segment.A.Y)}, true
	default:
		return Point{}, false
	}
}
