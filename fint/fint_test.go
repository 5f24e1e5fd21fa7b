package fint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithBounds(t *testing.T) {
	v, err := NewWithBounds(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v.Lo)
	assert.Equal(t, 2.0, v.Hi)

	_, err = NewWithBounds(2, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidBounds)
}

func TestEqualIsOverlap(t *testing.T) {
	a := FInt{Lo: 0.999999, Hi: 1.000001}
	b := FInt{Lo: 1.000000, Hi: 1.000002}
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	c := FInt{Lo: 2, Hi: 3}
	assert.False(t, a.Equal(c))
}

func TestAlwaysPositiveNegativeStraddle(t *testing.T) {
	assert.True(t, New(1).AlwaysPositive())
	assert.False(t, New(0).AlwaysPositive())
	assert.True(t, New(-1).AlwaysNegative())
	assert.True(t, FInt{Lo: -1, Hi: 1}.StraddlesZero())
	assert.False(t, FInt{Lo: 1, Hi: 2}.StraddlesZero())
}

func TestNegate(t *testing.T) {
	a := FInt{Lo: 1, Hi: 2}
	n := a.Negate()
	assert.Equal(t, -2.0, n.Lo)
	assert.Equal(t, -1.0, n.Hi)
}

func TestAddSubWiden(t *testing.T) {
	a := New(1)
	b := New(2)
	sum := Add(a, b)
	assert.LessOrEqual(t, sum.Lo, 3.0)
	assert.GreaterOrEqual(t, sum.Hi, 3.0)

	diff := Sub(b, a)
	assert.LessOrEqual(t, diff.Lo, 1.0)
	assert.GreaterOrEqual(t, diff.Hi, 1.0)
}

func TestMulAllSignCombinations(t *testing.T) {
	cases := []struct {
		a, b FInt
		lo   float64
		hi   float64
	}{
		{FInt{1, 2}, FInt{3, 4}, 3, 8},
		{FInt{-2, -1}, FInt{-4, -3}, 3, 8},
		{FInt{-2, -1}, FInt{3, 4}, -8, -3},
		{FInt{-1, 1}, FInt{-1, 1}, -1, 1},
	}
	for _, c := range cases {
		got := Mul(c.a, c.b)
		assert.LessOrEqual(t, got.Lo, c.lo)
		assert.GreaterOrEqual(t, got.Hi, c.hi)
	}
}

func TestInverseStraddlingZero(t *testing.T) {
	_, ok := FInt{Lo: -1, Hi: 1}.Inverse()
	assert.False(t, ok)

	inv, ok := FInt{Lo: 2, Hi: 4}.Inverse()
	require.True(t, ok)
	assert.LessOrEqual(t, inv.Lo, 0.25)
	assert.GreaterOrEqual(t, inv.Hi, 0.5)

	inv, ok = FInt{Lo: -4, Hi: -2}.Inverse()
	require.True(t, ok)
	assert.LessOrEqual(t, inv.Lo, -0.5)
	assert.GreaterOrEqual(t, inv.Hi, -0.25)
}

func TestDivByZeroStraddling(t *testing.T) {
	_, ok := Div(New(1), FInt{Lo: -1, Hi: 1})
	assert.False(t, ok)
}

func TestSqrStraddlingZero(t *testing.T) {
	sq := FInt{Lo: -2, Hi: 3}.Sqr()
	assert.LessOrEqual(t, sq.Lo, 0.0)
	assert.GreaterOrEqual(t, sq.Hi, 9.0)
}

func TestSqrtNegativeIsInvalid(t *testing.T) {
	_, ok := FInt{Lo: -1, Hi: 4}.Sqrt()
	assert.False(t, ok)

	root, ok := New(4).Sqrt()
	require.True(t, ok)
	assert.InDelta(t, 2.0, root.Midpoint(), 1e-9)
}

func TestHashBucketsCollideForCloseValues(t *testing.T) {
	a := New(1.0)
	b := New(1.0 + 1e-9)
	collide := a.Hash1() == b.Hash1() || a.Hash2() == b.Hash2()
	assert.True(t, collide, "values within half a bucket width must share at least one hash")
}

func TestHashCompressionLargeMagnitude(t *testing.T) {
	big := New(1e9)
	small := New(1)
	assert.NotEqual(t, big.Hash1(), small.Hash1())
	assert.False(t, math.IsNaN(float64(big.Hash1())))
}
