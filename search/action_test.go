package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/compasslab/euclid/problem"
)

func TestLessOrdersByPriorityThenIndices(t *testing.T) {
	high := Action{Priority: 10}
	low := Action{Priority: 1}
	require.True(t, less(high, low))
	require.False(t, less(low, high))

	a := Action{Priority: 5, PointIndex1: 1}
	b := Action{Priority: 5, PointIndex1: 2}
	require.True(t, less(a, b))

	c := Action{Priority: 5, PointIndex1: 1, PointIndex2: 1}
	e := Action{Priority: 5, PointIndex1: 1, PointIndex2: 2}
	require.True(t, less(c, e))
}

func TestActionTypeRankDeterministic(t *testing.T) {
	require.Less(t, actionTypeRank(problem.NewTwoPoint(problem.Line)), actionTypeRank(problem.NewPointAndLine(problem.Perp)))
	require.Equal(t, actionTypeRank(problem.NewTwoPoint(problem.Line)), actionTypeRank(problem.NewTwoPoint(problem.Line)))
}
