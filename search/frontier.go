package search

import "github.com/lixenwraith/gridpath/queue"

// frontier is the open collection, holding flat node indices
type frontier interface {
	push(idx int, priority, tie float64)
	pop() (int, bool)
	peek() (int, bool)
	len() int
	each(fn func(idx int))
}

// --- Stack (depth-first) ---

type stackFrontier struct {
	items []int
}

func (f *stackFrontier) push(idx int, _, _ float64) {
	f.items = append(f.items, idx)
}

func (f *stackFrontier) pop() (int, bool) {
	n := len(f.items)
	if n == 0 {
		return 0, false
	}
	idx := f.items[n-1]
	f.items = f.items[:n-1]
	return idx, true
}

func (f *stackFrontier) peek() (int, bool) {
	n := len(f.items)
	if n == 0 {
		return 0, false
	}
	return f.items[n-1], true
}

func (f *stackFrontier) len() int { return len(f.items) }

func (f *stackFrontier) each(fn func(int)) {
	for _, idx := range f.items {
		fn(idx)
	}
}

// --- FIFO (breadth-first) ---

type fifoFrontier struct {
	items []int
	head  int
}

func (f *fifoFrontier) push(idx int, _, _ float64) {
	f.items = append(f.items, idx)
}

func (f *fifoFrontier) pop() (int, bool) {
	if f.head == len(f.items) {
		return 0, false
	}
	idx := f.items[f.head]
	f.head++
	return idx, true
}

func (f *fifoFrontier) peek() (int, bool) {
	if f.head == len(f.items) {
		return 0, false
	}
	return f.items[f.head], true
}

func (f *fifoFrontier) len() int { return len(f.items) - f.head }

func (f *fifoFrontier) each(fn func(int)) {
	for _, idx := range f.items[f.head:] {
		fn(idx)
	}
}

// --- Priority queue (greedy, Dijkstra) ---

type priorityFrontier struct {
	q *queue.PriorityQueue[int, float64]
}

func newPriorityFrontier() *priorityFrontier {
	return &priorityFrontier{q: queue.NewPriorityQueue[int, float64]()}
}

func (f *priorityFrontier) push(idx int, priority, _ float64) {
	f.q.Enqueue(idx, priority)
}

func (f *priorityFrontier) pop() (int, bool) {
	if f.q.IsEmpty() {
		return 0, false
	}
	idx, err := f.q.Dequeue()
	return idx, err == nil
}

func (f *priorityFrontier) peek() (int, bool) {
	idx, _, err := f.q.Peek()
	return idx, err == nil
}

func (f *priorityFrontier) len() int { return f.q.Len() }

func (f *priorityFrontier) each(fn func(int)) {
	f.q.Each(func(idx int, _ float64) { fn(idx) })
}

// --- Tie-broken priority queue (A*) ---

type tieBreakFrontier struct {
	q *queue.TieBreakQueue[int, float64]
}

func newTieBreakFrontier() *tieBreakFrontier {
	return &tieBreakFrontier{q: queue.NewTieBreakQueue[int, float64]()}
}

func (f *tieBreakFrontier) push(idx int, priority, tie float64) {
	f.q.Enqueue(idx, priority, tie)
}

func (f *tieBreakFrontier) pop() (int, bool) {
	if f.q.IsEmpty() {
		return 0, false
	}
	idx, err := f.q.Dequeue()
	return idx, err == nil
}

func (f *tieBreakFrontier) peek() (int, bool) {
	idx, _, err := f.q.Peek()
	return idx, err == nil
}

func (f *tieBreakFrontier) len() int { return f.q.Len() }

func (f *tieBreakFrontier) each(fn func(int)) {
	f.q.Each(func(idx int, _ float64) { fn(idx) })
}
