package shape

import "github.com/compasslab/euclid/fint"

// cross returns the z-component of (b-a) x (c-a).
func cross(a, b, c Point) fint.FInt {
	return fint.Sub(
		fint.Mul(fint.Sub(b.X, a.X), fint.Sub(c.Y, a.Y)),
		fint.Mul(fint.Sub(b.Y, a.Y), fint.Sub(c.X, a.X)),
	)
}

// Collinear reports whether a, b, c lie on a common line.
func Collinear(a, b, c Point) bool {
	return cross(a, b, c).Equal(fint.New(0))
}

// Distance returns |b-a|. ok is false only for a malformed (negative
// squared-length) interval, which never happens for well-formed points.
func Distance(a, b Point) (fint.FInt, bool) {
	d2 := fint.Add(fint.Sub(b.X, a.X).Sqr(), fint.Sub(b.Y, a.Y).Sqr())

	return d2.Sqrt()
}

// Rotate90 rotates v by +90 degrees (counter-clockwise).
func Rotate90(v Point) Point {
	return Point{X: v.Y.Negate(), Y: v.X}
}

// dotVec returns the interval dot product u.v.
func dotVec(u, v Point) fint.FInt {
	return fint.Add(fint.Mul(u.X, v.X), fint.Mul(u.Y, v.Y))
}

// CollinearRayIntersects reports whether the ray from point along direction
// actually reaches s, given that point already lies on s's supporting line.
// A Line always qualifies (it extends infinitely both ways). A Ray
// qualifies when direction points into its own forward half, a Segment
// when direction points toward whichever endpoint lies ahead of point.
func CollinearRayIntersects(s Shape, point, direction Point) bool {
	switch s.Kind {
	case KindLine:
		return true
	case KindRay:
		return !dotVec(direction, s.RayV.V).AlwaysNegative()
	case KindSegment:
		toA := dotVec(direction, Point{X: fint.Sub(s.Segment.A.X, point.X), Y: fint.Sub(s.Segment.A.Y, point.Y)})
		toB := dotVec(direction, Point{X: fint.Sub(s.Segment.B.X, point.X), Y: fint.Sub(s.Segment.B.Y, point.Y)})

		return !toA.AlwaysNegative() || !toB.AlwaysNegative()
	default:
		return false
	}
}
