package search

import "github.com/lixenwraith/gridpath/core"

// Visit tags a node's per-run state
type Visit uint8

const (
	// Unvisited nodes have not been discovered this run
	Unvisited Visit = iota
	// Root is the search origin, it has no predecessor
	Root
	// Visited nodes have a parent and an accumulated cost
	Visited
)

func (v Visit) String() string {
	switch v {
	case Root:
		return "root"
	case Visited:
		return "visited"
	default:
		return "unvisited"
	}
}

// NodeState is the public view of one node's search state
type NodeState struct {
	Visit Visit

	// Parent is meaningful only when Visit == Visited
	Parent core.Point

	// G is the accumulated cost from the origin
	G float64

	// H is the heuristic estimate to the goal, 0 for searches without one
	H float64
}

// F returns G + H
func (s NodeState) F() float64 {
	return s.G + s.H
}

// node is the overlay entry, parent is a flat grid index
type node struct {
	visit  Visit
	parent int
	g, h   float64
}
