package queue

import "cmp"

// PriorityQueue is a stable min-priority queue
// Equal priorities dequeue in insertion order
type PriorityQueue[E any, P cmp.Ordered] struct {
	keys    keyHeap[P]
	buckets map[P]*fifo[E]
	size    int
}

// fifo is a slice-backed queue that compacts once the consumed prefix dominates
type fifo[E any] struct {
	items []E
	head  int
}

func (f *fifo[E]) push(e E) {
	f.items = append(f.items, e)
}

func (f *fifo[E]) pop() E {
	e := f.items[f.head]
	var zero E
	f.items[f.head] = zero
	f.head++
	if f.head > 32 && f.head*2 > len(f.items) {
		n := copy(f.items, f.items[f.head:])
		f.items = f.items[:n]
		f.head = 0
	}
	return e
}

func (f *fifo[E]) len() int {
	return len(f.items) - f.head
}

// NewPriorityQueue creates an empty queue
func NewPriorityQueue[E any, P cmp.Ordered]() *PriorityQueue[E, P] {
	return &PriorityQueue[E, P]{buckets: make(map[P]*fifo[E])}
}

// Enqueue appends e to the group for priority
func (q *PriorityQueue[E, P]) Enqueue(e E, priority P) {
	b, ok := q.buckets[priority]
	if !ok {
		b = &fifo[E]{}
		q.buckets[priority] = b
		q.keys.push(priority)
	}
	b.push(e)
	q.size++
}

// Dequeue removes the oldest element of the lowest priority group
func (q *PriorityQueue[E, P]) Dequeue() (E, error) {
	if q.size == 0 {
		var zero E
		return zero, ErrEmptyQueue
	}
	key := q.keys.min()
	b := q.buckets[key]
	e := b.pop()
	if b.len() == 0 {
		delete(q.buckets, key)
		q.keys.pop()
	}
	q.size--
	return e, nil
}

// Peek returns the next element and its priority without removing it
func (q *PriorityQueue[E, P]) Peek() (E, P, error) {
	if q.size == 0 {
		var (
			zero E
			p    P
		)
		return zero, p, ErrEmptyQueue
	}
	key := q.keys.min()
	b := q.buckets[key]
	return b.items[b.head], key, nil
}

// IsEmpty reports whether no elements are enqueued
func (q *PriorityQueue[E, P]) IsEmpty() bool {
	return q.size == 0
}

// Len returns the element count
func (q *PriorityQueue[E, P]) Len() int {
	return q.size
}

// Each visits every queued element, in no particular order
func (q *PriorityQueue[E, P]) Each(fn func(e E, priority P)) {
	for key, b := range q.buckets {
		for _, e := range b.items[b.head:] {
			fn(e, key)
		}
	}
}
