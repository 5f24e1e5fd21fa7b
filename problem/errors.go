package problem

import "errors"

// ErrBadActionCount indicates actionCount was <= 0.
var ErrBadActionCount = errors.New("problem: actionCount must be positive")

// ErrNoGivenElements indicates the problem supplied no given elements.
var ErrNoGivenElements = errors.New("problem: at least one given element is required")

// ErrNoTargets indicates the problem supplied no target elements.
var ErrNoTargets = errors.New("problem: at least one target element is required")

// ErrBadRandomWalkThreshold indicates WithRandomWalkAtNActions received a
// non-positive threshold. Reserved for runtime option resolution; the
// functional-option constructor itself panics on this condition.
var ErrBadRandomWalkThreshold = errors.New("problem: randomWalkAtNActions must be positive")
