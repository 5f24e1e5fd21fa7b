package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/compasslab/euclid/element"
	"github.com/compasslab/euclid/problem"
)

func TestSolveFindsMidpoint(t *testing.T) {
	a := pt(0, 0)
	b := pt(4, 0)
	mid := pt(2, 0)

	p, err := problem.New(
		[]element.Element{element.NewPointElement(a), element.NewPointElement(b)},
		[]element.Element{element.NewPointElement(mid)},
		2,
		problem.WithActionTypes(problem.BasicActionTypes),
	)
	require.NoError(t, err)

	d, err := NewDriver(p)
	require.NoError(t, err)

	result := d.Solve()
	require.Equal(t, StatusSolved, result.Status)
	require.True(t, d.Store.Solved())
	require.Len(t, result.Solutions, 1)
}

func TestSolveFindsPerpendicularThroughPointOnCircle(t *testing.T) {
	center := pt(0, 0)
	onCircle := pt(3, 0)
	other := pt(0, 3)

	p, err := problem.New(
		[]element.Element{
			element.NewPointElement(center),
			element.NewPointElement(onCircle),
			element.NewPointElement(other),
		},
		[]element.Element{element.Element{
			Kind:   element.KindLineAV,
			LineAV: element.LineAV{A: onCircle, V: pt(0, 1)},
		}},
		3,
		problem.WithActionTypes(problem.LimitedAdvancedActionTypes),
	)
	require.NoError(t, err)

	d, err := NewDriver(p)
	require.NoError(t, err)

	result := d.Solve()
	require.Equal(t, StatusSolved, result.Status)
}
