package shape

// mixHash folds a sequence of int64 parts into one bucket hash using an
// FNV-1a-style combinator: cheap, deterministic, and good enough for
// bucket distribution (the collision tolerance lives in fint's overlap
// equality, not in this mixing function).
func mixHash(parts ...int64) int64 {
	const offset = int64(-3750763034362895579) // 0xcbf29ce484222325 as int64
	const prime = int64(1099511628211)

	h := offset
	for _, p := range parts {
		h = (h ^ p) * prime
	}

	return h
}

// Hash1 is the first double-hash bucket for s.
func (s Shape) Hash1() int64 {
	switch s.Kind {
	case KindLine:
		return mixHash(int64(s.Kind), s.Line.NX.Hash1(), s.Line.NY.Hash1(), s.Line.D.Hash1())
	case KindCircle:
		return mixHash(int64(s.Kind), s.Circle.C.Hash1(), s.Circle.R2.Hash1())
	case KindRay:
		return mixHash(int64(s.Kind), s.RayV.A.Hash1(), s.RayV.V.Hash1())
	case KindSegment:
		return mixHash(int64(s.Kind), s.Segment.A.Hash1(), s.Segment.B.Hash1())
	default:
		return 0
	}
}

// Hash2 is the second double-hash bucket for s.
func (s Shape) Hash2() int64 {
	switch s.Kind {
	case KindLine:
		return mixHash(int64(s.Kind), s.Line.NX.Hash2(), s.Line.NY.Hash2(), s.Line.D.Hash2())
	case KindCircle:
		return mixHash(int64(s.Kind), s.Circle.C.Hash2(), s.Circle.R2.Hash2())
	case KindRay:
		return mixHash(int64(s.Kind), s.RayV.A.Hash2(), s.RayV.V.Hash2())
	case KindSegment:
		return mixHash(int64(s.Kind), s.Segment.A.Hash2(), s.Segment.B.Hash2())
	default:
		return 0
	}
}

// EqualKey reports whether s and other denote the same shape: same Kind,
// and coordinate-wise interval overlap on every field of that variant.
func (s Shape) EqualKey(other Shape) bool {
	if s.Kind != other.Kind {
		return false
	}
	switch s.Kind {
	case KindLine:
		return s.Line.NX.Equal(other.Line.NX) && s.Line.NY.Equal(other.Line.NY) && s.Line.D.Equal(other.Line.D)
	case KindCircle:
		return s.Circle.C.EqualKey(other.Circle.C) && s.Circle.R2.Equal(other.Circle.R2)
	case KindRay:
		return s.RayV.A.EqualKey(other.RayV.A) && s.RayV.V.EqualKey(other.RayV.V)
	case KindSegment:
		return s.Segment.A.EqualKey(other.Segment.A) && s.Segment.B.EqualKey(other.Segment.B)
	default:
		return false
	}
}
