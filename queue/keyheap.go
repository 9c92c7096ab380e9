package queue

import "cmp"

// keyHeap is a binary min-heap of distinct priority keys
type keyHeap[P cmp.Ordered] []P

func (h *keyHeap[P]) push(k P) {
	*h = append(*h, k)
	// Sift up
	i := len(*h) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if (*h)[parent] <= (*h)[i] {
			break
		}
		(*h)[parent], (*h)[i] = (*h)[i], (*h)[parent]
		i = parent
	}
}

func (h *keyHeap[P]) pop() P {
	old := *h
	n := len(old)
	k := old[0]
	old[0] = old[n-1]
	*h = old[:n-1]

	// Sift down
	i := 0
	for {
		left := 2*i + 1
		if left >= len(*h) {
			break
		}
		smallest := left
		if right := left + 1; right < len(*h) && (*h)[right] < (*h)[left] {
			smallest = right
		}
		if (*h)[i] <= (*h)[smallest] {
			break
		}
		(*h)[i], (*h)[smallest] = (*h)[smallest], (*h)[i]
		i = smallest
	}
	return k
}

func (h keyHeap[P]) min() P {
	return h[0]
}
