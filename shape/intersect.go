package shape

import "github.com/compasslab/euclid/fint"

// lineLine solves the 2x2 linear system for two lines in normal form.
// ok is false when the lines are parallel (or near-parallel enough that
// the determinant interval straddles zero).
func lineLine(a, b Line) (Point, bool) {
	det := fint.Sub(fint.Mul(a.NX, b.NY), fint.Mul(b.NX, a.NY))
	if det.StraddlesZero() {
		return Point{}, false
	}
	detInv, ok := det.Inverse()
	if !ok {
		return Point{}, false
	}

	x := fint.Mul(fint.Sub(fint.Mul(a.D, b.NY), fint.Mul(b.D, a.NY)), detInv)
	y := fint.Mul(fint.Sub(fint.Mul(a.NX, b.D), fint.Mul(b.NX, a.D)), detInv)

	return Point{X: x, Y: y}, true
}

// lineCircle intersects a canonical line (unit normal) with a circle,
// returning the negative-offset (foot - h*dir) solution first.
func lineCircle(l Line, c Circle) []Point {
	// signed distance from the center to the line, along the unit normal.
	dist := fint.Sub(fint.Add(fint.Mul(l.NX, c.C.X), fint.Mul(l.NY, c.C.Y)), l.D)
	footX := fint.Sub(c.C.X, fint.Mul(dist, l.NX))
	footY := fint.Sub(c.C.Y, fint.Mul(dist, l.NY))

	h2 := fint.Sub(c.R2, dist.Sqr())
	h, ok := h2.Sqrt()
	if !ok {
		return nil
	}

	// direction along the line, perpendicular to the unit normal.
	dirX, dirY := l.NY.Negate(), l.NX

	p1 := Point{X: fint.Add(footX, fint.Mul(h, dirX)), Y: fint.Add(footY, fint.Mul(h, dirY))}
	p2 := Point{X: fint.Sub(footX, fint.Mul(h, dirX)), Y: fint.Sub(footY, fint.Mul(h, dirY))}

	return []Point{p2, p1}
}

// circleCircle intersects two circles via the standard radical-line
// construction. The tie-break between the two solutions is a deterministic
// rule on the sign of the center-to-center vector's y component.
func circleCircle(c1, c2 Circle) []Point {
	dx := fint.Sub(c2.C.X, c1.C.X)
	dy := fint.Sub(c2.C.Y, c1.C.Y)
	d2 := fint.Add(dx.Sqr(), dy.Sqr())
	if d2.StraddlesZero() {
		return nil
	}
	d, ok := d2.Sqrt()
	if !ok {
		return nil
	}
	dInv, ok := d.Inverse()
	if !ok {
		return nil
	}

	// a = (r1^2 - r2^2 + d^2) / (2d)
	numA := fint.Add(fint.Sub(c1.R2, c2.R2), d2)
	a := fint.Mul(numA, fint.Mul(fint.New(0.5), dInv))

	h2 := fint.Sub(c1.R2, a.Sqr())
	h, ok := h2.Sqrt()
	if !ok {
		return nil
	}

	// unit vector from c1 toward c2.
	ux := fint.Mul(dx, dInv)
	uy := fint.Mul(dy, dInv)

	midX := fint.Add(c1.C.X, fint.Mul(a, ux))
	midY := fint.Add(c1.C.Y, fint.Mul(a, uy))

	// perpendicular to (ux,uy).
	perpX := uy.Negate()
	perpY := ux

	plus := Point{X: fint.Add(midX, fint.Mul(h, perpX)), Y: fint.Add(midY, fint.Mul(h, perpY))}
	minus := Point{X: fint.Sub(midX, fint.Mul(h, perpX)), Y: fint.Sub(midY, fint.Mul(h, perpY))}

	if dy.AlwaysPositive() {
		return []Point{minus, plus}
	}

	return []Point{plus, minus}
}

// rawIntersect computes the unfiltered candidate points for a pair of
// shapes, dispatching purely on whether each side is a Circle or a
// line-like shape (Line/Ray/Segment, reduced via AsLine).
func rawIntersect(a, b Shape) []Point {
	switch {
	case a.Kind == KindCircle && b.Kind == KindCircle:
		return circleCircle(a.Circle, b.Circle)
	case a.Kind == KindCircle:
		l, ok := b.AsLine()
		if !ok {
			return nil
		}

		return lineCircle(l, a.Circle)
	case b.Kind == KindCircle:
		l, ok := a.AsLine()
		if !ok {
			return nil
		}

		return lineCircle(l, b.Circle)
	default:
		la, ok1 := a.AsLine()
		lb, ok2 := b.AsLine()
		if !ok1 || !ok2 {
			return nil
		}
		p, ok := lineLine(la, lb)
		if !ok {
			return nil
		}

		return []Point{p}
	}
}

// Intersect returns the points where a and b meet, in a fixed ordering:
// the negative-offset solution first for line/circle pairs, and a
// deterministic rule on the center-vector sign for circle/circle. Ray and
// Segment operands
// delegate to their underlying line or circle and then filter the raw
// candidates by containment on both original shapes, so a ray or segment
// that doesn't reach a geometrically valid intersection correctly reports
// none.
func Intersect(a, b Shape) []Point {
	candidates := rawIntersect(a, b)
	if candidates == nil {
		return nil
	}

	out := make([]Point, 0, len(candidates))
	for _, p := range candidates {
		if a.Contains(p) && b.Contains(p) {
			out = append(out, p)
		}
	}

	return out
}
