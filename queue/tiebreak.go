package queue

import (
	"cmp"
	"slices"
)

type tieEntry[E any, P cmp.Ordered] struct {
	elem E
	tie  P
}

// TieBreakQueue is a min-priority queue whose equal-priority groups are ordered by a secondary key
// Each insertion re-sorts its group immediately; equal secondary keys keep insertion order
type TieBreakQueue[E any, P cmp.Ordered] struct {
	keys    keyHeap[P]
	buckets map[P][]tieEntry[E, P]
	size    int
}

// NewTieBreakQueue creates an empty queue
func NewTieBreakQueue[E any, P cmp.Ordered]() *TieBreakQueue[E, P] {
	return &TieBreakQueue[E, P]{buckets: make(map[P][]tieEntry[E, P])}
}

// Enqueue inserts e into the group for priority, ordered by tie ascending
func (q *TieBreakQueue[E, P]) Enqueue(e E, priority, tie P) {
	b, ok := q.buckets[priority]
	if !ok {
		q.keys.push(priority)
	}
	b = append(b, tieEntry[E, P]{elem: e, tie: tie})
	slices.SortStableFunc(b, func(x, y tieEntry[E, P]) int {
		return cmp.Compare(x.tie, y.tie)
	})
	q.buckets[priority] = b
	q.size++
}

// Dequeue removes the head of the lowest priority group
func (q *TieBreakQueue[E, P]) Dequeue() (E, error) {
	if q.size == 0 {
		var zero E
		return zero, ErrEmptyQueue
	}
	key := q.keys.min()
	b := q.buckets[key]
	e := b[0].elem
	if len(b) == 1 {
		delete(q.buckets, key)
		q.keys.pop()
	} else {
		q.buckets[key] = b[1:]
	}
	q.size--
	return e, nil
}

// Peek returns the next element and its priority without removing it
func (q *TieBreakQueue[E, P]) Peek() (E, P, error) {
	if q.size == 0 {
		var (
			zero E
			p    P
		)
		return zero, p, ErrEmptyQueue
	}
	key := q.keys.min()
	return q.buckets[key][0].elem, key, nil
}

// IsEmpty reports whether no elements are enqueued
func (q *TieBreakQueue[E, P]) IsEmpty() bool {
	return q.size == 0
}

// Len returns the element count
func (q *TieBreakQueue[E, P]) Len() int {
	return q.size
}

// Each visits every queued element, in no particular order
func (q *TieBreakQueue[E, P]) Each(fn func(e E, priority P)) {
	for key, b := range q.buckets {
		for _, entry := range b {
			fn(entry.elem, key)
		}
	}
}
