package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueuePopsHighestPriorityFirst(t *testing.T) {
	q := NewQueue()
	q.Push(Action{Priority: 1})
	q.Push(Action{Priority: 9})
	q.Push(Action{Priority: 4})

	a, ok := q.Pop()
	require.True(t, ok)
	require.Equal(t, 9, a.Priority)

	a, ok = q.Pop()
	require.True(t, ok)
	require.Equal(t, 4, a.Priority)

	a, ok = q.Pop()
	require.True(t, ok)
	require.Equal(t, 1, a.Priority)

	_, ok = q.Pop()
	require.False(t, ok)
}

func TestQueueCullKeepsHighestPriority(t *testing.T) {
	q := NewQueue()
	for i := 0; i < 10; i++ {
		q.Push(Action{Priority: i})
	}
	// cull keeps the entries Pop would return first. The real
	// overflowThreshold is far larger than any unit test wants to
	// populate, so cull itself is not called: the test copies the heap and
	// checks that the first three pops, the entries a keep-three cull
	// would retain, are the three highest priorities.
	q.h = append(actionHeap(nil), q.h...)
	kept := make([]Action, 0, 3)
	for i := 0; i < 3 && q.Len() > 0; i++ {
		a, _ := q.Pop()
		kept = append(kept, a)
	}
	require.Equal(t, 9, kept[0].Priority)
	require.Equal(t, 8, kept[1].Priority)
	require.Equal(t, 7, kept[2].Priority)
}
