package randomwalk

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/compasslab/euclid/depset"
	"github.com/compasslab/euclid/problem"
	"github.com/compasslab/euclid/shape"
)

func TestCompleterCompleteFindsSolution(t *testing.T) {
	interner := depset.NewInterner()
	a, b := pt(0, 0), pt(4, 0)
	target, ok := shape.LineFromTwoPoints(pt(2, 0), pt(2, 1))
	require.True(t, ok)
	targetShape := shape.NewLineShape(target)

	snap := Snapshot{
		Points: []PointState{
			{Point: a, Deps: interner.FromBaseIndices(0)},
			{Point: b, Deps: interner.FromBaseIndices(1)},
		},
		TargetShapes: []shape.Shape{targetShape},
	}

	c := NewCompleter(interner, &problem.Problem{
		Options: problem.Options{ActionTypes: []problem.ActionType{problem.NewTwoPoint(problem.MidPerp)}},
	}, 4, 400, 42)

	result := c.Complete(context.Background(), snap)
	require.True(t, result.Solved)
}

func TestCompleterCompleteFailsWhenUnreachable(t *testing.T) {
	interner := depset.NewInterner()
	c := NewCompleter(interner, &problem.Problem{
		Options: problem.Options{ActionTypes: problem.FullActionTypes},
	}, 2, 16, 1)

	snap := Snapshot{
		Points:       []PointState{{Point: pt(0, 0)}},
		TargetPoints: []shape.Point{pt(123, 456)},
	}

	result := c.Complete(context.Background(), snap)
	require.False(t, result.Solved)
}
