package solver

import "errors"

// ErrUnsolved is returned by Solution-reading helpers called against a
// Handle that never found a construction.
var ErrUnsolved = errors.New("solver: problem has no recorded solution")
