package hashset2

// Keyer is the constraint every element of a HashSet2/HashMap2 must
// satisfy: two independent int64 hashes, plus an equality notion of its
// own choosing (fint.FInt-backed keys use overlap, not bit-equality).
type Keyer[T any] interface {
	Hash1() int64
	Hash2() int64
	EqualKey(other T) bool
}

// HashSet2 is a double-hash set over a Keyer type T.
type HashSet2[T Keyer[T]] struct {
	bucket1 map[int64][]T
	bucket2 map[int64][]T
	size    int
}

// New returns an empty HashSet2.
func New[T Keyer[T]]() *HashSet2[T] {
	return &HashSet2[T]{
		bucket1: make(map[int64][]T),
		bucket2: make(map[int64][]T),
	}
}

// Len returns the number of distinct entries. Because the two inner
// tables both reference every inserted value, this is tracked separately
// rather than derived from either table's size.
func (s *HashSet2[T]) Len() int {
	return s.size
}

func findInBucket[T Keyer[T]](bucket map[int64][]T, h int64, v T) (T, bool) {
	for _, e := range bucket[h] {
		if e.EqualKey(v) {
			return e, true
		}
	}

	var zero T

	return zero, false
}

// Contains reports whether an equal value is already present, checking
// bucket 1 first and falling back to bucket 2.
func (s *HashSet2[T]) Contains(v T) bool {
	_, ok := s.Get(v)

	return ok
}

// Get returns the stored value equal to v, if any.
func (s *HashSet2[T]) Get(v T) (T, bool) {
	if e, ok := findInBucket(s.bucket1, v.Hash1(), v); ok {
		return e, true
	}

	return findInBucket(s.bucket2, v.Hash2(), v)
}

// Insert adds v if no equal value is already present. It returns true
// when v was newly inserted, false when an equal value already existed —
// in which case the existing value is left untouched (see package doc:
// no overwrite on duplicate insert).
func (s *HashSet2[T]) Insert(v T) bool {
	if s.Contains(v) {
		return false
	}

	h1, h2 := v.Hash1(), v.Hash2()
	s.bucket1[h1] = append(s.bucket1[h1], v)
	s.bucket2[h2] = append(s.bucket2[h2], v)
	s.size++

	return true
}

// Remove performs a linear scan-and-filter over both buckets for v's
// hashes, removing any equal entry. It reports whether anything was
// removed.
func (s *HashSet2[T]) Remove(v T) bool {
	removed := false
	if list, ok := s.bucket1[v.Hash1()]; ok {
		filtered := list[:0:0]
		for _, e := range list {
			if e.EqualKey(v) {
				removed = true

				continue
			}
			filtered = append(filtered, e)
		}
		s.bucket1[v.Hash1()] = filtered
	}
	if list, ok := s.bucket2[v.Hash2()]; ok {
		filtered := list[:0:0]
		for _, e := range list {
			if e.EqualKey(v) {
				continue
			}
			filtered = append(filtered, e)
		}
		s.bucket2[v.Hash2()] = filtered
	}
	if removed {
		s.size--
	}

	return removed
}

// AsSlice returns every distinct stored value. Each value lives in both
// inner tables (inserted under its Hash1 key and, separately, its Hash2
// key), so the two tables are concatenated and then manually deduplicated
// by equality — an O(n^2) pass, matching the reference algorithm's own
// choice rather than returning bucket1's values alone.
func (s *HashSet2[T]) AsSlice() []T {
	var all []T
	for _, list := range s.bucket1 {
		all = append(all, list...)
	}
	for _, list := range s.bucket2 {
		all = append(all, list...)
	}

	out := make([]T, 0, s.size)
	for _, v := range all {
		dup := false
		for _, seen := range out {
			if seen.EqualKey(v) {
				dup = true

				break
			}
		}
		if !dup {
			out = append(out, v)
		}
	}

	return out
}

// HashMap2 is a double-hash map: a Keyer[T] key paired with a value V,
// with the same two-bucket membership and non-overwrite-on-duplicate
// semantics as HashSet2.
type HashMap2[T Keyer[T], V any] struct {
	entries *HashSet2[mapEntry[T, V]]
}

// mapEntry wraps a key/value pair so it can satisfy Keyer[T] by
// delegating to the key.
type mapEntry[T Keyer[T], V any] struct {
	key T
	val V
}

func (e mapEntry[T, V]) Hash1() int64 { return e.key.Hash1() }
func (e mapEntry[T, V]) Hash2() int64 { return e.key.Hash2() }
func (e mapEntry[T, V]) EqualKey(other mapEntry[T, V]) bool {
	return e.key.EqualKey(other.key)
}

// NewMap returns an empty HashMap2.
func NewMap[T Keyer[T], V any]() *HashMap2[T, V] {
	return &HashMap2[T, V]{entries: New[mapEntry[T, V]]()}
}

// Len returns the number of distinct keys stored.
func (m *HashMap2[T, V]) Len() int {
	return m.entries.Len()
}

// Insert adds key->val if key is not already present. Returns true when
// newly inserted; an existing key's value is never overwritten.
func (m *HashMap2[T, V]) Insert(key T, val V) bool {
	return m.entries.Insert(mapEntry[T, V]{key: key, val: val})
}

// Get returns the value stored for an equal key, if any.
func (m *HashMap2[T, V]) Get(key T) (V, bool) {
	e, ok := m.entries.Get(mapEntry[T, V]{key: key})
	if !ok {
		var zero V

		return zero, false
	}

	return e.val, true
}

// ContainsKey reports whether an equal key is present.
func (m *HashMap2[T, V]) ContainsKey(key T) bool {
	return m.entries.Contains(mapEntry[T, V]{key: key})
}

// Remove deletes the entry for an equal key, if any, reporting whether it
// existed.
func (m *HashMap2[T, V]) Remove(key T) bool {
	return m.entries.Remove(mapEntry[T, V]{key: key})
}
