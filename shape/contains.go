package shape

import "github.com/compasslab/euclid/fint"

// dot returns the interval dot product of (p-origin) with v.
func dot(origin, v, p Point) fint.FInt {
	return fint.Add(
		fint.Mul(fint.Sub(p.X, origin.X), v.X),
		fint.Mul(fint.Sub(p.Y, origin.Y), v.Y),
	)
}

// onLine reports whether p satisfies l's equation under interval overlap.
func onLine(l Line, p Point) bool {
	val := fint.Sub(fint.Add(fint.Mul(l.NX, p.X), fint.Mul(l.NY, p.Y)), l.D)

	return val.Equal(fint.New(0))
}

// Contains reports whether p lies on s: exact incidence for Line and
// Circle, incidence plus the forward half-plane for Ray, and incidence
// plus both endpoint bounds for Segment.
func (s Shape) Contains(p Point) bool {
	switch s.Kind {
	case KindLine:
		return onLine(s.Line, p)
	case KindCircle:
		dist2 := fint.Add(fint.Sub(p.X, s.Circle.C.X).Sqr(), fint.Sub(p.Y, s.Circle.C.Y).Sqr())

		return dist2.Equal(s.Circle.R2)
	case KindRay:
		l, ok := s.AsLine()
		if !ok || !onLine(l, p) {
			return false
		}
		d := dot(s.RayV.A, s.RayV.V, p)

		return !d.AlwaysNegative()
	case KindSegment:
		l, ok := s.AsLine()
		if !ok || !onLine(l, p) {
			return false
		}
		vAB := Point{X: fint.Sub(s.Segment.B.X, s.Segment.A.X), Y: fint.Sub(s.Segment.B.Y, s.Segment.A.Y)}
		vBA := Point{X: fint.Sub(s.Segment.A.X, s.Segment.B.X), Y: fint.Sub(s.Segment.A.Y, s.Segment.B.Y)}
		d1 := dot(s.Segment.A, vAB, p)
		d2 := dot(s.Segment.B, vBA, p)

		return !d1.AlwaysNegative() && !d2.AlwaysNegative()
	default:
		return false
	}
}
