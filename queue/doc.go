// Package queue provides the priority queues backing the informed searches.
//
// PriorityQueue groups elements by priority key and dequeues FIFO inside the
// minimum key group. TieBreakQueue keeps each key group sorted by a secondary
// key, re-sorting the group on every insertion, so equal-priority elements
// dequeue in ascending secondary order.
//
// Neither queue is safe for concurrent use. NaN priorities are not supported.
package queue

import "errors"

// ErrEmptyQueue is returned by Dequeue and Peek on an empty queue
var ErrEmptyQueue = errors.New("queue: no elements enqueued")
