package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/compasslab/euclid/element"
	"github.com/compasslab/euclid/fint"
	"github.com/compasslab/euclid/problem"
	"github.com/compasslab/euclid/shape"
)

func pt(x, y float64) shape.Point {
	return shape.Point{X: fint.New(x), Y: fint.New(y)}
}

func TestSolveMidpointOfTwoGivenPoints(t *testing.T) {
	a, b := pt(-1, 0), pt(1, 0)
	midpoint := pt(0, 0)

	p, err := problem.New(
		[]element.Element{element.NewPointElement(a), element.NewPointElement(b)},
		[]element.Element{element.NewPointElement(midpoint)},
		4,
		problem.WithActionTypes([]problem.ActionType{
			problem.NewTwoPoint(problem.Line),
			problem.NewTwoPoint(problem.Circle12),
			problem.NewTwoPoint(problem.Circle21),
		}),
	)
	require.NoError(t, err)

	h, err := Solve(context.Background(), p)
	require.NoError(t, err)
	require.True(t, h.Solved())
	require.False(t, h.UsedRandomWalk())

	sol := h.Solution()
	require.Len(t, sol.UsedActions, 4)
	for _, sw := range sol.Shapes {
		require.LessOrEqual(t, len(sw.Deps), len(sol.UsedActions))
	}
}

func TestSolveUnsolvedReportsNotSolved(t *testing.T) {
	p, err := problem.New(
		[]element.Element{element.NewPointElement(pt(0, 0))},
		[]element.Element{element.NewPointElement(pt(999, 999))},
		1,
		problem.WithActionTypes(problem.BasicActionTypes),
	)
	require.NoError(t, err)

	h, err := Solve(context.Background(), p)
	require.NoError(t, err)
	require.False(t, h.Solved())
	require.Equal(t, Solution{}, h.Solution())

	_, err = h.RequireSolution()
	require.ErrorIs(t, err, ErrUnsolved)
}

func TestSolveFallsBackToRandomWalkWhenThresholdConfigured(t *testing.T) {
	a, b := pt(0, 0), pt(4, 0)
	target := pt(2, 0)

	// n=2 diverts every depsCount==n-2==0 candidate — i.e. every action
	// buildable directly from the given points — to the random-walk
	// frontier at pop time (spec §4.7 step 3), so this exercises the
	// completer rather than exhaustive search.
	p, err := problem.New(
		[]element.Element{element.NewPointElement(a), element.NewPointElement(b)},
		[]element.Element{element.NewPointElement(target)},
		2,
		problem.WithActionTypes([]problem.ActionType{
			problem.NewTwoPoint(problem.MidPerp),
			problem.NewTwoPoint(problem.Line),
		}),
		problem.WithRandomWalkAtNActions(2),
	)
	require.NoError(t, err)

	h, err := Solve(context.Background(), p)
	require.NoError(t, err)
	require.True(t, h.Solved())
}
