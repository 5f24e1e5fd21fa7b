// errors.go — sentinel errors for the shape package.

package shape

import "errors"

// ErrNotSerializable indicates Serialize was called on a Ray or Segment,
// which §6 explicitly does not require to round-trip through text.
var ErrNotSerializable = errors.New("shape: only Line and Circle serialize to text")

// ErrMalformedText indicates Parse could not recognize the input as a
// Line(...) or Circle(...) literal.
var ErrMalformedText = errors.New("shape: malformed shape literal")
