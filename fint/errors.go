// errors.go — sentinel errors for the fint package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • fint MUST NOT panic at runtime.

package fint

import "errors"

// ErrInvalidBounds indicates that NewWithBounds was called with lo > hi,
// which cannot describe a valid (possibly empty) interval.
var ErrInvalidBounds = errors.New("fint: lo must be <= hi")
