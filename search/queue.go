package search

import "container/heap"

// overflowThreshold and overflowKeep bound the queue's memory footprint:
// once it grows past overflowThreshold entries the weakest ones are culled
// down to overflowKeep, keeping only the highest-priority candidates (spec
// §4.8 "Queue overflow").
const (
	overflowThreshold = 100_000_000
	overflowKeep      = 50_000
)

// actionHeap is the container/heap.Interface adapter, ordered by less.
type actionHeap []Action

func (h actionHeap) Len() int            { return len(h) }
func (h actionHeap) Less(i, j int) bool  { return less(h[i], h[j]) }
func (h actionHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *actionHeap) Push(x interface{}) { *h = append(*h, x.(Action)) }
func (h *actionHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// Queue is the best-first frontier of pending actions (spec §3 "Queue").
type Queue struct {
	h actionHeap
}

// NewQueue returns an empty Queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Len returns the number of pending actions.
func (q *Queue) Len() int { return q.h.Len() }

// Push adds a to the frontier, then culls if the frontier has grown past
// overflowThreshold entries.
func (q *Queue) Push(a Action) {
	heap.Push(&q.h, a)
	q.cull()
}

// Pop removes and returns the highest-priority action. ok is false when
// the queue is empty.
func (q *Queue) Pop() (Action, bool) {
	if q.h.Len() == 0 {
		return Action{}, false
	}

	return heap.Pop(&q.h).(Action), true
}

// cull keeps only the overflowKeep highest-priority actions once the
// frontier has grown unreasonably large, so a long-running search with no
// solution in sight doesn't exhaust memory.
func (q *Queue) cull() {
	if q.h.Len() <= overflowThreshold {
		return
	}

	kept := make([]Action, 0, overflowKeep)
	for i := 0; i < overflowKeep && q.h.Len() > 0; i++ {
		a, _ := q.Pop()
		kept = append(kept, a)
	}

	q.h = kept
	heap.Init(&q.h)
}
