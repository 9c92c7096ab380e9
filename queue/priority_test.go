package queue

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tagged struct {
	priority int
	seq      int
}

func TestPriorityQueue_EmptyDequeue(t *testing.T) {
	q := NewPriorityQueue[string, float64]()
	assert.True(t, q.IsEmpty())

	_, err := q.Dequeue()
	assert.ErrorIs(t, err, ErrEmptyQueue)

	_, _, err = q.Peek()
	assert.ErrorIs(t, err, ErrEmptyQueue)
}

func TestPriorityQueue_FIFOWithinPriority(t *testing.T) {
	q := NewPriorityQueue[string, float64]()
	q.Enqueue("c1", 2.5)
	q.Enqueue("a1", 1)
	q.Enqueue("c2", 2.5)
	q.Enqueue("b1", 2)
	q.Enqueue("a2", 1)

	e, p, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, "a1", e)
	assert.Equal(t, 1.0, p)

	var got []string
	for !q.IsEmpty() {
		e, err := q.Dequeue()
		require.NoError(t, err)
		got = append(got, e)
	}
	assert.Equal(t, []string{"a1", "a2", "b1", "c1", "c2"}, got)
	assert.Equal(t, 0, q.Len())
}

func TestPriorityQueue_RandomisedOrdering(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	q := NewPriorityQueue[tagged, int]()

	pending := map[tagged]bool{}
	seq := 0
	for round := 0; round < 2000; round++ {
		// Interleave inserts and removals so buckets empty and reappear
		if rng.Intn(3) > 0 || q.IsEmpty() {
			item := tagged{priority: rng.Intn(12), seq: seq}
			seq++
			q.Enqueue(item, item.priority)
			pending[item] = true
			continue
		}

		got, err := q.Dequeue()
		require.NoError(t, err)
		require.True(t, pending[got])
		delete(pending, got)

		for other := range pending {
			require.LessOrEqual(t, got.priority, other.priority, "dequeued priority exceeds a queued one")
			if other.priority == got.priority {
				require.Less(t, got.seq, other.seq, "equal priorities must leave in insertion order")
			}
		}
	}
	assert.Equal(t, len(pending), q.Len())
}

func TestPriorityQueue_LongBucketCompaction(t *testing.T) {
	q := NewPriorityQueue[int, int]()
	for i := 0; i < 500; i++ {
		q.Enqueue(i, 0)
	}
	for i := 0; i < 400; i++ {
		e, err := q.Dequeue()
		require.NoError(t, err)
		require.Equal(t, i, e)
	}
	for i := 500; i < 600; i++ {
		q.Enqueue(i, 0)
	}
	for i := 400; i < 600; i++ {
		e, err := q.Dequeue()
		require.NoError(t, err)
		require.Equal(t, i, e)
	}
	assert.True(t, q.IsEmpty())
}

func TestPriorityQueue_Each(t *testing.T) {
	q := NewPriorityQueue[string, int]()
	q.Enqueue("x", 3)
	q.Enqueue("y", 1)
	q.Enqueue("z", 3)
	_, _ = q.Dequeue()

	seen := map[string]int{}
	q.Each(func(e string, p int) { seen[e] = p })
	assert.Equal(t, map[string]int{"x": 3, "z": 3}, seen)
}
