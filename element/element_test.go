package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compasslab/euclid/fint"
	"github.com/compasslab/euclid/shape"
)

func pt(x, y float64) shape.Point {
	return shape.Point{X: fint.New(x), Y: fint.New(y)}
}

func TestLineABGetShape(t *testing.T) {
	s, ok := LineAB{A: pt(0, 0), B: pt(1, 0)}.GetShape()
	require.True(t, ok)
	assert.Equal(t, shape.KindLine, s.Kind)
}

func TestMidPerpABIsEquidistant(t *testing.T) {
	s, ok := MidPerpAB{A: pt(-2, 0), B: pt(2, 0)}.GetShape()
	require.True(t, ok)
	assert.True(t, s.Contains(pt(0, 0)))
}

func TestBisectorCVVRejectsZeroVector(t *testing.T) {
	_, ok := BisectorCVV{C: pt(0, 0), V1: pt(0, 0), V2: pt(1, 0)}.GetShape()
	assert.False(t, ok)
}

func TestBisectorCVVOfPerpendicularVectors(t *testing.T) {
	s, ok := BisectorCVV{C: pt(0, 0), V1: pt(1, 0), V2: pt(0, 1)}.GetShape()
	require.True(t, ok)
	assert.True(t, s.Contains(pt(1, 1)))
}

func TestSegmentABGetShape(t *testing.T) {
	s, ok := SegmentAB{A: pt(0, 0), B: pt(1, 0)}.GetShape()
	require.True(t, ok)
	assert.Equal(t, shape.KindSegment, s.Kind)
	assert.True(t, s.Contains(pt(0.5, 0)))
	assert.False(t, s.Contains(pt(2, 0)))
}

func TestCircleCPGetShape(t *testing.T) {
	s, ok := CircleCP{C: pt(0, 0), P: pt(3, 4)}.GetShape()
	require.True(t, ok)
	assert.InDelta(t, 25, s.Circle.R2.Midpoint(), 1e-9)
}

func TestPointElementHasNoShape(t *testing.T) {
	e := NewPointElement(pt(1, 1))
	_, ok := e.GetShape()
	assert.False(t, ok)
}

func TestRayAVGetShape(t *testing.T) {
	e := Element{Kind: KindRayAV, RayAV: RayAV{A: pt(0, 0), V: pt(1, 0)}}
	s, ok := e.GetShape()
	require.True(t, ok)
	assert.Equal(t, shape.KindRay, s.Kind)
}
