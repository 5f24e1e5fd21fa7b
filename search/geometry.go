package search

import (
	"github.com/compasslab/euclid/fint"
	"github.com/compasslab/euclid/shape"
)

// vectorBetween returns to-from.
func vectorBetween(from, to shape.Point) shape.Point {
	return shape.Point{X: fint.Sub(to.X, from.X), Y: fint.Sub(to.Y, from.Y)}
}

// negate returns -v.
func negate(v shape.Point) shape.Point {
	return shape.Point{X: v.X.Negate(), Y: v.Y.Negate()}
}
