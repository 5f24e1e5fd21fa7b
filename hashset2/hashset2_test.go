package hashset2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// overlapInt models a value whose equality is "overlap within tolerance",
// analogous to fint.FInt, so tests exercise the double-hash contract the
// way real FInt-backed keys do.
type overlapInt struct {
	v   int64
	tol int64
}

// Hash1 buckets v by tens and Hash2 does the same offset by half a bucket,
// the scheme fint.FInt uses, so values less than 5 apart share at least
// one hash (every v below is non-negative).
func (o overlapInt) Hash1() int64 { return o.v / 10 }
func (o overlapInt) Hash2() int64 { return (o.v + 5) / 10 }
func (o overlapInt) EqualKey(other overlapInt) bool {
	d := o.v - other.v
	if d < 0 {
		d = -d
	}

	return d <= o.tol || d <= other.tol
}

func TestHashSet2InsertAndContains(t *testing.T) {
	s := New[overlapInt]()
	assert.True(t, s.Insert(overlapInt{v: 1, tol: 0}))
	assert.True(t, s.Contains(overlapInt{v: 1, tol: 0}))
	assert.Equal(t, 1, s.Len())
}

func TestHashSet2DuplicateInsertIsRejectedNotOverwritten(t *testing.T) {
	// This reproduces the documented "no overwrite" limitation: once an
	// equal value is present, a later insert is a silent no-op and the
	// stored value remains the first one.
	s := New[overlapInt]()
	require.True(t, s.Insert(overlapInt{v: 100, tol: 2}))
	inserted := s.Insert(overlapInt{v: 101, tol: 2})
	assert.False(t, inserted, "second overlapping insert must be rejected, not merged")
	assert.Equal(t, 1, s.Len())

	got, ok := s.Get(overlapInt{v: 101, tol: 2})
	require.True(t, ok)
	assert.Equal(t, int64(100), got.v, "stale first value must be retained, not overwritten")
}

func TestHashSet2Remove(t *testing.T) {
	s := New[overlapInt]()
	s.Insert(overlapInt{v: 5, tol: 0})
	assert.True(t, s.Remove(overlapInt{v: 5, tol: 0}))
	assert.False(t, s.Contains(overlapInt{v: 5, tol: 0}))
	assert.Equal(t, 0, s.Len())
}

func TestHashSet2AsSliceDedupes(t *testing.T) {
	s := New[overlapInt]()
	s.Insert(overlapInt{v: 1, tol: 0})
	s.Insert(overlapInt{v: 50, tol: 0})
	s.Insert(overlapInt{v: 99, tol: 0})
	got := s.AsSlice()
	assert.Len(t, got, 3)
}

func TestHashMap2InsertGetNoOverwrite(t *testing.T) {
	m := NewMap[overlapInt, string]()
	require.True(t, m.Insert(overlapInt{v: 1, tol: 1}, "first"))
	assert.False(t, m.Insert(overlapInt{v: 2, tol: 1}, "second"))

	v, ok := m.Get(overlapInt{v: 2, tol: 1})
	require.True(t, ok)
	assert.Equal(t, "first", v)
	assert.Equal(t, 1, m.Len())
}

func TestHashMap2RemoveAndContainsKey(t *testing.T) {
	m := NewMap[overlapInt, int]()
	m.Insert(overlapInt{v: 7, tol: 0}, 42)
	assert.True(t, m.ContainsKey(overlapInt{v: 7, tol: 0}))
	assert.True(t, m.Remove(overlapInt{v: 7, tol: 0}))
	assert.False(t, m.ContainsKey(overlapInt{v: 7, tol: 0}))
}
