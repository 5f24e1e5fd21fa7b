package randomwalk

import (
	"context"
	"math/rand"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/compasslab/euclid/depset"
	"github.com/compasslab/euclid/problem"
)

// rngSeedMix is the SplitMix64-style finalizer deriveRNG uses to
// decorrelate worker streams from a single master seed.
func rngSeedMix(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG returns an independent RNG stream for worker index w, derived
// from master so that two Completer.Complete calls with the same seed
// reproduce identical walks.
func deriveRNG(master *rand.Rand, w int) *rand.Rand {
	parent := master.Int63()

	return rand.New(rand.NewSource(rngSeedMix(parent, uint64(w))))
}

// Completer runs Workers independent random walks in parallel against one
// Snapshot, stopping as soon as any of them succeeds (spec §4.8 "launch a
// pool of workers").
type Completer struct {
	Workers         int
	IterationBudget int
	Seed            int64

	walker *walker
}

// NewCompleter returns a Completer restricted to the TwoPoint action
// types p permits (falling back to the full TwoPoint set if p permits
// none, per package doc).
func NewCompleter(interner *depset.Interner, p *problem.Problem, workers, iterationBudget int, seed int64) *Completer {
	return &Completer{
		Workers:         workers,
		IterationBudget: iterationBudget,
		Seed:            seed,
		walker:          newWalker(interner, p.ActionTypes),
	}
}

// Complete launches Workers goroutines, each running an independent random
// walk from snap with a budget of IterationBudget/Workers steps, and
// returns the first one to succeed. ctx cancellation stops workers at
// their next step boundary without waiting for the full budget.
func (c *Completer) Complete(ctx context.Context, snap Snapshot) Result {
	perWorkerBudget := c.IterationBudget / c.Workers
	if perWorkerBudget < 1 {
		perWorkerBudget = 1
	}

	master := rand.New(rand.NewSource(c.Seed))

	var (
		mu     sync.RWMutex
		result Result
	)

	g, gctx := errgroup.WithContext(ctx)

	stop := func() bool {
		select {
		case <-gctx.Done():
			return true
		default:
		}

		mu.RLock()
		defer mu.RUnlock()

		return result.Solved
	}

	for w := 0; w < c.Workers; w++ {
		rng := deriveRNG(master, w)
		g.Go(func() error {
			walked, ok := c.walker.run(rng, snap, perWorkerBudget, stop)
			if !ok {
				return nil
			}

			mu.Lock()
			if !result.Solved {
				result = Result{Solved: true, Solution: walked.Deps, BuiltShapes: walked.Built}
			}
			mu.Unlock()

			return nil
		})
	}
	_ = g.Wait()

	mu.RLock()
	defer mu.RUnlock()

	return result
}
