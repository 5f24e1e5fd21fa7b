package solver

import (
	"context"
	"runtime"

	"github.com/compasslab/euclid/depset"
	"github.com/compasslab/euclid/problem"
	"github.com/compasslab/euclid/randomwalk"
	"github.com/compasslab/euclid/registry"
	"github.com/compasslab/euclid/search"
)

// randomWalkIterationBudget is the shared step budget every random-walk
// attempt divides across its workers (spec §4.8 "RANDOM_WALK_LIMIT").
const randomWalkIterationBudget = 200_000

// randomWalkSeed seeds every Completer so a given Problem always replays
// the same random-walk attempts; callers wanting fresh sampling should
// vary the problem (e.g. a wrapper element) rather than the solver.
const randomWalkSeed = 1

// Solve runs the best-first search (package search) to completion, then —
// if targets remain and the problem configured a random-walk threshold —
// attempts the Monte-Carlo completion phase (package randomwalk) from
// each action the driver diverted to its frontier, in priority order,
// stopping at the first attempt that succeeds (spec §4.7 "enter
// FALLBACK_TO_RANDOM if the frontier is non-empty").
func Solve(ctx context.Context, p *problem.Problem) (*Handle, error) {
	d, err := search.NewDriver(p)
	if err != nil {
		return nil, err
	}

	result := d.Solve()
	h := &Handle{iterations: result.Iterations}

	if result.Status == search.StatusSolved && len(result.Solutions) > 0 {
		h.solved = true
		h.solution = buildSolution(d.Interner, d.Store, result.Solutions[0], nil)

		return h, nil
	}

	if len(result.Frontier) == 0 {
		return h, nil
	}

	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	completer := randomwalk.NewCompleter(d.Interner, p, workers, randomWalkIterationBudget, randomWalkSeed)

	for _, a := range result.Frontier {
		snap := frontierSnapshot(d, a)
		rwResult := completer.Complete(ctx, snap)
		if rwResult.Solved {
			h.solved = true
			h.randomWalk = true
			h.solution = buildSolution(d.Interner, d.Store, rwResult.Solution, rwResult.BuiltShapes)

			return h, nil
		}

		select {
		case <-ctx.Done():
			return h, nil
		default:
		}
	}

	return h, nil
}

// frontierSnapshot builds the random walk's starting point from a
// diverted action: everything the driver had already registered, plus
// the action's own (not-yet-registered) shape, carrying the dependency
// set it would receive if executed (spec §4.8 "assemble its initial
// shapes: the givens, all ancestors ... and the action's own shape").
func frontierSnapshot(d *search.Driver, a search.Action) randomwalk.Snapshot {
	snap := randomwalk.BuildSnapshot(d.Store)
	deps := d.ActionDeps(a)
	snap.Shapes = append(snap.Shapes, randomwalk.ShapeState{Shape: a.Shape, Deps: deps})
	snap.BaseShapeID = len(d.Store.ShapeOrigins) + 1

	return snap
}

// buildSolution collects every constructed (non-given, non-empty deps)
// registered shape (and, for a random-walk
// solution, every shape the winning walk itself built) whose dependency
// set is a subset of winningDeps, pairing each with its own member ids —
// spec §6a's "solution as a list of shape descriptions paired with their
// deps" — plus the full list of base-construction ids the solution uses.
func buildSolution(interner *depset.Interner, store *registry.Store, winningDeps depset.DepSet, built []randomwalk.ShapeState) Solution {
	var out Solution
	out.UsedActions = interner.Members(winningDeps)

	for i := range store.ShapeOrigins {
		origin := store.ShapeOrigins[i]
		if interner.Count(origin.Deps) == 0 {
			continue
		}
		if !interner.IsSubset(winningDeps, origin.Deps) {
			continue
		}
		out.Shapes = append(out.Shapes, ShapeWithDeps{Shape: origin.Shape, Deps: interner.Members(origin.Deps)})
	}

	for _, s := range built {
		if !interner.IsSubset(winningDeps, s.Deps) {
			continue
		}
		out.Shapes = append(out.Shapes, ShapeWithDeps{Shape: s.Shape, Deps: interner.Members(s.Deps)})
	}

	return out
}
