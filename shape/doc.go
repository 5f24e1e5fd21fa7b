// Package shape implements the closed set of planar geometric primitives
// the solver reasons about: Point, Line, Ray, Segment, and Circle.
//
// Every primitive is backed by fint.FInt coordinates, so equality is
// interval overlap rather than bitwise identity (see package fint). Lines
// are stored in a canonical normal form (nx, ny, d) with the sign
// convention ny > 0, or ny = 0 ∧ nx > 0, so that the same line built from
// either of its two defining points — or from reversed inputs — produces
// identical coefficients (LineFromTwoPoints is idempotent and
// order-independent under Shape.EqualKey).
//
// Intersection is exposed uniformly via Intersect(a, b Shape) []Point: for
// Ray and Segment this delegates to the underlying line (or circle) and
// then filters candidate points by containment, rather than deriving a
// bespoke bounded-intersection formula per pair of kinds. This mirrors the
// reference algorithm's own "dispatch over a closed enum, no dynamic
// polymorphism" structure — Shape is a tagged union over Kind, not an
// interface hierarchy.
package shape
