package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/compasslab/euclid/fint"
	"github.com/compasslab/euclid/problem"
	"github.com/compasslab/euclid/shape"
)

func pt(x, y float64) shape.Point {
	return shape.NewPoint(fint.New(x), fint.New(y))
}

func TestBuildTwoPointLine(t *testing.T) {
	el := buildTwoPoint(problem.Line, pt(0, 0), pt(1, 1))
	sh, ok := el.GetShape()
	require.True(t, ok)
	require.Equal(t, shape.KindLine, sh.Kind)
}

func TestBuildThreePointBisectorRejectsCollinear(t *testing.T) {
	_, ok := buildThreePoint(problem.BisectorCAB, pt(0, 0), pt(1, 0), pt(2, 0))
	require.False(t, ok)
}

func TestBuildThreePointBisectorAccepts(t *testing.T) {
	el, ok := buildThreePoint(problem.BisectorCAB, pt(0, 0), pt(1, 0), pt(0, 1))
	require.True(t, ok)
	sh, ok := el.GetShape()
	require.True(t, ok)
	require.Equal(t, shape.KindLine, sh.Kind)
}

func TestBuildPointAndLinePerp(t *testing.T) {
	line, ok := shape.LineFromTwoPoints(pt(0, 0), pt(1, 0))
	require.True(t, ok)
	el, ok := buildPointAndLine(problem.Perp, pt(5, 5), shape.NewLineShape(line))
	require.True(t, ok)
	sh, ok := el.GetShape()
	require.True(t, ok)
	require.True(t, sh.Contains(pt(5, 5)))
}

func TestBuildTwoPointAndLineRejectsSamePoint(t *testing.T) {
	line, ok := shape.LineFromTwoPoints(pt(0, 0), pt(1, 0))
	require.True(t, ok)
	_, ok = buildTwoPointAndLine(problem.BisectorPosCAL, pt(2, 2), pt(2, 2), shape.NewLineShape(line))
	require.False(t, ok)
}
