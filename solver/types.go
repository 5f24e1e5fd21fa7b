package solver

import "github.com/compasslab/euclid/shape"

// ShapeWithDeps pairs a constructed shape with the dependency set that
// justifies it — one element of spec §6a's "solution as a list of shape
// descriptions paired with their deps".
type ShapeWithDeps struct {
	Shape shape.Shape
	Deps  []uint32
}

// Solution is the solved output of Solve: every constructed shape
// reachable from the winning dependency set, each paired with its own
// dependency ids, plus the ids of the base construction actions the
// solution actually uses.
type Solution struct {
	Shapes      []ShapeWithDeps
	UsedActions []uint32
}

// Handle is the opaque, unexported-field result object spec §6c asks for:
// a value suitable for a drawing/printing collaborator to consume via its
// exported methods, without exposing the solver's internal registry or
// search state.
type Handle struct {
	solved     bool
	solution   Solution
	iterations int
	randomWalk bool
}

// Solved reports whether Solve found a construction.
func (h *Handle) Solved() bool { return h.solved }

// Solution returns the winning construction. Valid only when Solved.
func (h *Handle) Solution() Solution { return h.solution }

// RequireSolution returns the winning construction, or ErrUnsolved if
// Solve never found one — the error-returning counterpart to Solution for
// callers who would otherwise need a separate Solved check.
func (h *Handle) RequireSolution() (Solution, error) {
	if !h.solved {
		return Solution{}, ErrUnsolved
	}

	return h.solution, nil
}

// Iterations reports how many search-queue pops Solve performed.
func (h *Handle) Iterations() int { return h.iterations }

// UsedRandomWalk reports whether the solution (if any) came from the
// Monte-Carlo completion phase rather than exhaustive search.
func (h *Handle) UsedRandomWalk() bool { return h.randomWalk }
