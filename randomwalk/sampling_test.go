package randomwalk

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/compasslab/euclid/depset"
	"github.com/compasslab/euclid/fint"
	"github.com/compasslab/euclid/shape"
)

func pt(x, y float64) shape.Point {
	return shape.NewPoint(fint.New(x), fint.New(y))
}

func TestSamplePointPairNeedsTwoDistinctPoints(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, _, ok := samplePointPair(rng, []PointState{{Point: pt(0, 0)}}, nil)
	require.False(t, ok)
}

func TestSamplePointPairReturnsDistinctPoints(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	points := []PointState{
		{Point: pt(0, 0), Deps: depset.Empty},
		{Point: pt(1, 0), Deps: depset.Empty},
	}
	for i := 0; i < 20; i++ {
		p1, p2, ok := samplePointPair(rng, points, nil)
		require.True(t, ok)
		require.False(t, p1.EqualKey(p2))
	}
}

func TestCandidatePointsIncludesShapeIntersections(t *testing.T) {
	lineA, ok := shape.LineFromTwoPoints(pt(0, 0), pt(2, 0))
	require.True(t, ok)
	lineB, ok := shape.LineFromTwoPoints(pt(1, -1), pt(1, 1))
	require.True(t, ok)

	shapes := []ShapeState{
		{Shape: shape.NewLineShape(lineA)},
		{Shape: shape.NewLineShape(lineB)},
	}

	pool := candidatePoints(nil, shapes)
	require.NotEmpty(t, pool)
	found := false
	for _, p := range pool {
		if p.EqualKey(pt(1, 0)) {
			found = true
		}
	}
	require.True(t, found)
}
