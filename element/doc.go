// Package element implements the constructive recipes a problem's given
// elements and the solver's own construction actions are expressed in:
// LineAB, LineAV, RayAV, SegmentAB, CircleCP, CircleCR, MidPerpAB, and
// BisectorCVV, plus a bare Point. Each recipe's GetShape method yields the
// shape.Shape it denotes; for a bare Point, which has no associated shape
// of its own, it returns the zero Shape and ok false.
package element
