package registry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/compasslab/euclid/depset"
	"github.com/compasslab/euclid/fint"
	"github.com/compasslab/euclid/registry"
	"github.com/compasslab/euclid/shape"
)

func pt(x, y float64) shape.Point {
	return shape.NewPoint(fint.New(x), fint.New(y))
}

func TestRegisterGivenPoint(t *testing.T) {
	in := depset.NewInterner()
	s := registry.New(in, 4, false)

	idx, isNew, err := s.RegisterGivenPoint(pt(0, 0))
	require.NoError(t, err)
	require.True(t, isNew)
	require.Equal(t, 0, idx)
	require.Equal(t, depset.Empty, s.PointOrigins[0].Deps)
}

func TestRegisterPointMarksTargetFound(t *testing.T) {
	in := depset.NewInterner()
	s := registry.New(in, 4, false)
	target := pt(1, 1)
	s.AddPointTarget(target)

	_, _, err := s.RegisterGivenPoint(target)
	require.NoError(t, err)
	require.True(t, s.FoundPoints.Contains(target))
	require.Equal(t, 0, s.PointsToFind.Len())
}

func TestRegisterPointDuplicateSingleMatch(t *testing.T) {
	in := depset.NewInterner()
	s := registry.New(in, 4, false)

	p := pt(2, 2)
	_, isNew1, err := s.RegisterGivenPoint(p)
	require.NoError(t, err)
	require.True(t, isNew1)

	_, isNew2, err := s.RegisterGivenPoint(p)
	require.NoError(t, err)
	require.False(t, isNew2)
	require.Len(t, s.PointOrigins, 1)
}

func TestRegisterShapeDepsCountExceeded(t *testing.T) {
	in := depset.NewInterner()
	s := registry.New(in, 1, false)

	// budget 1; fake a shape origin with deps cardinality 2.
	sh := shape.NewCircleShape(shape.CircleFromCenterPoint(pt(0, 0), pt(1, 0)))
	deps := in.FromBaseIndices(0, 1)
	_, _, err := s.RegisterShape(sh, registry.Link{}, deps, 0)
	require.Error(t, err)
	require.True(t, errors.Is(err, registry.ErrDepsCountExceeded))
}

func TestMultimatchChainsAlternateOrigins(t *testing.T) {
	in := depset.NewInterner()
	s := registry.New(in, 8, true)

	p := pt(3, 3)

	// Register the same point through two fabricated shape origins with
	// incomparable dependency lineages ({0} and {1}), and confirm the
	// second chains via Next rather than being dropped. (A lineage whose
	// deps are a superset of an existing one is pruned instead.)
	circ1 := shape.NewCircleShape(shape.CircleFromCenterPoint(pt(0, 0), pt(5, 5)))
	sh1, _, err := s.RegisterShape(circ1, registry.Link{Given: true}, in.FromBaseIndices(0), 0)
	require.NoError(t, err)
	circ2 := shape.NewCircleShape(shape.CircleFromCenterPoint(pt(0, 0), pt(6, 6)))
	sh2, _, err := s.RegisterShape(circ2, registry.Link{Given: true}, in.FromBaseIndices(1), 0)
	require.NoError(t, err)

	idx1, _, err := s.RegisterPoint(p, [2]int{sh1, registry.Given})
	require.NoError(t, err)

	idx2, isNew, err := s.RegisterPoint(p, [2]int{sh2, registry.Given})
	require.NoError(t, err)
	require.True(t, isNew)
	require.NotEqual(t, idx1, idx2)
	require.Equal(t, idx2, s.PointOrigins[idx1].Next)
}

func TestRegisterShapeMarksTargetFound(t *testing.T) {
	in := depset.NewInterner()
	s := registry.New(in, 4, false)
	target := shape.NewCircleShape(shape.CircleFromCenterPoint(pt(0, 0), pt(1, 0)))
	s.AddShapeTarget(target, 1)

	_, _, err := s.RegisterGivenShape(target, registry.Link{Given: true})
	require.NoError(t, err)
	require.True(t, s.FoundShapes.Contains(target))
	require.True(t, s.Solved())
}
