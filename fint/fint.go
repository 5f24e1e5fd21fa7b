package fint

import (
	"fmt"
	"math"
)

// hashCompressThreshold is the |midpoint| above which the hash input is
// log-compressed so that widely separated large magnitudes still land in a
// tractable bucket range.
const hashCompressThreshold = 100.0

// hashScale controls bucket resolution: a bucket is 1/hashScale wide, and
// two midpoints differing by less than half a bucket (1/(2*hashScale)),
// after compression, are guaranteed to collide on at least one of
// Hash1/Hash2. Midpoints up to a full bucket apart can differ on both.
const hashScale = 1e6

// FInt is a verified-direction interval: the closed range [Lo, Hi]. Every
// arithmetic method here returns the tightest interval that, under
// worst-case float64 rounding, is guaranteed to contain the true result.
type FInt struct {
	Lo float64
	Hi float64
}

// New returns the degenerate interval [v, v].
func New(v float64) FInt {
	return FInt{Lo: v, Hi: v}
}

// NewWithDelta returns [v-delta, v+delta]. delta is not validated against
// sign; a negative delta simply swaps Lo and Hi's relative order, which
// NewWithBounds would reject — callers wanting that guard should use
// NewWithBounds directly.
func NewWithDelta(v, delta float64) FInt {
	return FInt{Lo: v - delta, Hi: v + delta}
}

// NewWithBounds returns [lo, hi]. It returns ErrInvalidBounds when lo > hi.
func NewWithBounds(lo, hi float64) (FInt, error) {
	if lo > hi {
		return FInt{}, fmt.Errorf("fint.NewWithBounds(%v,%v): %w", lo, hi, ErrInvalidBounds)
	}

	return FInt{Lo: lo, Hi: hi}, nil
}

// Midpoint returns (Lo+Hi)/2.
func (a FInt) Midpoint() float64 {
	return (a.Lo + a.Hi) / 2
}

// AlwaysPositive reports whether every value in the interval is strictly
// positive (Lo > 0).
func (a FInt) AlwaysPositive() bool {
	return a.Lo > 0
}

// AlwaysNegative reports whether every value in the interval is strictly
// negative (Hi < 0).
func (a FInt) AlwaysNegative() bool {
	return a.Hi < 0
}

// StraddlesZero reports whether 0 lies within [Lo, Hi], i.e. the interval
// cannot be safely inverted.
func (a FInt) StraddlesZero() bool {
	return a.Lo <= 0 && a.Hi >= 0
}

// Equal implements equality-as-overlap: a and b denote "the same" numeric
// quantity when their intervals overlap at all — not when they are
// bitwise identical. This is the deliberate, documented definition of
// equality for every geometric primitive built on FInt.
func (a FInt) Equal(b FInt) bool {
	return a.Hi >= b.Lo && b.Hi >= a.Lo
}

// Negate returns -a.
func (a FInt) Negate() FInt {
	return FInt{Lo: -a.Hi, Hi: -a.Lo}
}

// Add returns a+b, widened outward by one ULP in each direction.
func Add(a, b FInt) FInt {
	return FInt{
		Lo: math.Nextafter(a.Lo+b.Lo, math.Inf(-1)),
		Hi: math.Nextafter(a.Hi+b.Hi, math.Inf(1)),
	}
}

// Sub returns a-b, widened outward by one ULP in each direction.
func Sub(a, b FInt) FInt {
	return FInt{
		Lo: math.Nextafter(a.Lo-b.Hi, math.Inf(-1)),
		Hi: math.Nextafter(a.Hi-b.Lo, math.Inf(1)),
	}
}

// Mul returns a*b, widened outward by one ULP in each direction. The four
// corner products cover every sign combination without a case split.
func Mul(a, b FInt) FInt {
	p1 := a.Lo * b.Lo
	p2 := a.Lo * b.Hi
	p3 := a.Hi * b.Lo
	p4 := a.Hi * b.Hi
	lo := math.Min(math.Min(p1, p2), math.Min(p3, p4))
	hi := math.Max(math.Max(p1, p2), math.Max(p3, p4))

	return FInt{
		Lo: math.Nextafter(lo, math.Inf(-1)),
		Hi: math.Nextafter(hi, math.Inf(1)),
	}
}

// Inverse returns 1/a. The second return value is false when a straddles
// zero, in which case the first return value is the zero FInt and must be
// discarded — callers must treat this as a degenerate-geometry outcome,
// never as an error.
func (a FInt) Inverse() (FInt, bool) {
	if a.StraddlesZero() {
		return FInt{}, false
	}

	return FInt{
		Lo: math.Nextafter(1/a.Hi, math.Inf(-1)),
		Hi: math.Nextafter(1/a.Lo, math.Inf(1)),
	}, true
}

// Div returns a/b via a * b.Inverse(). ok is false whenever b straddles
// zero.
func Div(a, b FInt) (FInt, bool) {
	inv, ok := b.Inverse()
	if !ok {
		return FInt{}, false
	}

	return Mul(a, inv), true
}

// Sqr returns a*a, tight even when a straddles zero (where a naive Mul
// would overestimate the lower bound as negative).
func (a FInt) Sqr() FInt {
	ll := a.Lo * a.Lo
	hh := a.Hi * a.Hi
	var lo, hi float64
	switch {
	case a.Lo >= 0:
		lo, hi = ll, hh
	case a.Hi <= 0:
		lo, hi = hh, ll
	default:
		lo, hi = 0, math.Max(ll, hh)
	}

	return FInt{
		Lo: math.Nextafter(lo, math.Inf(-1)),
		Hi: math.Nextafter(hi, math.Inf(1)),
	}
}

// Sqrt returns sqrt(a). ok is false when a.Lo < 0, since no real square
// root covers the full interval.
func (a FInt) Sqrt() (FInt, bool) {
	if a.Lo < 0 {
		return FInt{}, false
	}

	return FInt{
		Lo: math.Nextafter(math.Sqrt(a.Lo), math.Inf(-1)),
		Hi: math.Nextafter(math.Sqrt(a.Hi), math.Inf(1)),
	}, true
}

// compressForHash log-compresses large-magnitude midpoints so that hash
// buckets stay tractable across many orders of magnitude, preserving sign.
func compressForHash(m float64) float64 {
	if math.Abs(m) >= hashCompressThreshold {
		return math.Copysign(math.Log(math.Abs(m)), m)
	}

	return m
}

// Hash1 is the first of two independent bucket hashes derived from the
// interval's midpoint (see package doc and Hash2).
func (a FInt) Hash1() int64 {
	m := compressForHash(a.Midpoint())

	return int64(math.Floor(m * hashScale))
}

// Hash2 is the second bucket hash, offset by half a bucket width relative
// to Hash1 so that any two midpoints closer than half a bucket width
// collide on at least one of the two hashes.
func (a FInt) Hash2() int64 {
	m := compressForHash(a.Midpoint())

	return int64(math.Floor(m*hashScale + 0.5))
}

// String renders the interval for debugging, e.g. "[1.000000,1.000000]".
func (a FInt) String() string {
	return fmt.Sprintf("[%f,%f]", a.Lo, a.Hi)
}
