package randomwalk

import (
	"math/rand"

	"github.com/compasslab/euclid/shape"
)

// newShapeMultiplier oversamples points drawn from intersections of the
// walk's current shapes relative to the walk's fixed starting points,
// echoing the reference's NEW_SHAPE_MULTIPLIER weighting without porting
// its index-decoding arithmetic (see package doc).
const newShapeMultiplier = 4

// candidatePoints returns the pool a walk step samples point pairs from:
// every point already known, plus every pairwise intersection of the
// current shapes, with the latter repeated newShapeMultiplier times so
// freshly constructed shapes bias the walk toward finishing, not
// wandering.
func candidatePoints(points []PointState, shapes []ShapeState) []shape.Point {
	pool := make([]shape.Point, 0, len(points))
	for _, p := range points {
		pool = append(pool, p.Point)
	}

	var fresh []shape.Point
	for i := 0; i < len(shapes); i++ {
		for j := i + 1; j < len(shapes); j++ {
			fresh = append(fresh, shape.Intersect(shapes[i].Shape, shapes[j].Shape)...)
		}
	}
	for n := 0; n < newShapeMultiplier; n++ {
		pool = append(pool, fresh...)
	}

	return pool
}

// samplePointPair draws two distinct points from the candidate pool. ok
// is false when the pool holds fewer than two points, or when eight
// redraws in a row all equal the first point drawn.
func samplePointPair(rng *rand.Rand, points []PointState, shapes []ShapeState) (shape.Point, shape.Point, bool) {
	pool := candidatePoints(points, shapes)
	if len(pool) < 2 {
		return shape.Point{}, shape.Point{}, false
	}

	p1 := pool[rng.Intn(len(pool))]
	for tries := 0; tries < 8; tries++ {
		p2 := pool[rng.Intn(len(pool))]
		if !p2.EqualKey(p1) {
			return p1, p2, true
		}
	}

	return shape.Point{}, shape.Point{}, false
}
