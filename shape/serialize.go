package shape

import (
	"fmt"

	"github.com/compasslab/euclid/fint"
)

// Serialize renders s in the §6 collaborator text format:
// "Line(nx=<f>,ny=<f>,d=<f>)" or "Circle(c.x=<f>,c.y=<f>,r2=<f>)". Ray and
// Segment are not required to round-trip (ErrNotSerializable).
func Serialize(s Shape) (string, error) {
	switch s.Kind {
	case KindLine:
		return fmt.Sprintf("Line(nx=%v,ny=%v,d=%v)",
			s.Line.NX.Midpoint(), s.Line.NY.Midpoint(), s.Line.D.Midpoint()), nil
	case KindCircle:
		return fmt.Sprintf("Circle(c.x=%v,c.y=%v,r2=%v)",
			s.Circle.C.X.Midpoint(), s.Circle.C.Y.Midpoint(), s.Circle.R2.Midpoint()), nil
	default:
		return "", fmt.Errorf("shape.Serialize(%s): %w", s.Kind, ErrNotSerializable)
	}
}

// Parse recognizes the two literal forms Serialize produces and rebuilds
// a Shape with degenerate (point-valued) intervals.
func Parse(text string) (Shape, error) {
	var nx, ny, d float64
	if n, err := fmt.Sscanf(text, "Line(nx=%g,ny=%g,d=%g)", &nx, &ny, &d); err == nil && n == 3 {
		return NewLineShape(Line{NX: fint.New(nx), NY: fint.New(ny), D: fint.New(d)}), nil
	}

	var cx, cy, r2 float64
	if n, err := fmt.Sscanf(text, "Circle(c.x=%g,c.y=%g,r2=%g)", &cx, &cy, &r2); err == nil && n == 3 {
		return NewCircleShape(Circle{C: Point{X: fint.New(cx), Y: fint.New(cy)}, R2: fint.New(r2)}), nil
	}

	return Shape{}, fmt.Errorf("shape.Parse(%q): %w", text, ErrMalformedText)
}
