// errors.go — sentinel errors for the search package.

package search

import "errors"

// ErrDegenerateGiven indicates a given element's recipe failed to produce
// a shape (e.g. a LineAB whose two points coincide).
var ErrDegenerateGiven = errors.New("search: given element is degenerate")

// ErrDegenerateTarget indicates a target element's recipe failed to
// produce a shape.
var ErrDegenerateTarget = errors.New("search: target element is degenerate")
