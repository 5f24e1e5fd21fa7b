package problem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compasslab/euclid/element"
	"github.com/compasslab/euclid/fint"
	"github.com/compasslab/euclid/shape"
)

func pt(x, y float64) shape.Point {
	return shape.Point{X: fint.New(x), Y: fint.New(y)}
}

func TestNewValidatesActionCount(t *testing.T) {
	given := []element.Element{element.NewPointElement(pt(0, 0))}
	toFind := []element.Element{element.NewPointElement(pt(1, 1))}
	_, err := New(given, toFind, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadActionCount)
}

func TestNewValidatesGivenAndTargets(t *testing.T) {
	_, err := New(nil, []element.Element{element.NewPointElement(pt(0, 0))}, 2)
	assert.ErrorIs(t, err, ErrNoGivenElements)

	given := []element.Element{element.NewPointElement(pt(0, 0))}
	_, err = New(given, nil, 2)
	assert.ErrorIs(t, err, ErrNoTargets)
}

func TestNewDefaultsToFullActionTypes(t *testing.T) {
	given := []element.Element{element.NewPointElement(pt(0, 0))}
	toFind := []element.Element{element.NewPointElement(pt(1, 1))}
	p, err := New(given, toFind, 4)
	require.NoError(t, err)
	assert.Equal(t, FullActionTypes, p.ActionTypes)
}

func TestWithActionTypesOverridesDefault(t *testing.T) {
	given := []element.Element{element.NewPointElement(pt(0, 0))}
	toFind := []element.Element{element.NewPointElement(pt(1, 1))}
	p, err := New(given, toFind, 4, WithActionTypes(BasicActionTypes))
	require.NoError(t, err)
	assert.Equal(t, BasicActionTypes, p.ActionTypes)
}

func TestWithRandomWalkAtNActionsPanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { WithRandomWalkAtNActions(0) })
	assert.Panics(t, func() { WithRandomWalkAtNActions(-1) })
}

func TestOptionsCompose(t *testing.T) {
	given := []element.Element{element.NewPointElement(pt(0, 0))}
	toFind := []element.Element{element.NewPointElement(pt(1, 1))}
	p, err := New(given, toFind, 4,
		WithMultimatch(),
		WithFindAllSolutions(),
		WithTrackSupportsInRW(),
		WithPrioritizeLowActionCountShapes(),
		WithRandomWalkAtNActions(3),
	)
	require.NoError(t, err)
	assert.True(t, p.Multimatch)
	assert.True(t, p.FindAllSolutions)
	assert.True(t, p.TrackSupportsInRW)
	assert.True(t, p.PrioritizeLowActionCountShapes)
	require.NotNil(t, p.RandomWalkAtNActions)
	assert.Equal(t, 3, *p.RandomWalkAtNActions)
}
