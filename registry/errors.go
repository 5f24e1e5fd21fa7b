// errors.go — sentinel errors for the registry package.

package registry

import "errors"

// ErrDepsCountExceeded indicates a point or shape would be registered with
// a dependency-set cardinality above the problem's action budget. Per
// spec §7 this is an invariant violation that should be unreachable —
// every caller is expected to have already rejected the candidate action
// via the priority oracle — so registration is dropped rather than the
// entity silently kept.
var ErrDepsCountExceeded = errors.New("registry: dependency count exceeds action budget")
