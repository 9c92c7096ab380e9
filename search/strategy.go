package search

import (
	"context"
	"log/slog"

	"github.com/lixenwraith/gridpath/core"
	"github.com/lixenwraith/gridpath/grid"
)

type frontierKind uint8

const (
	frontierStack frontierKind = iota
	frontierFIFO
	frontierPriority
	frontierTieBreak
)

// relaxFunc tries to (re)parent the neighbor of cur in direction d and push it
// Returns true when the neighbor was pushed
type relaxFunc func(s *Search, cur int, from core.Point, d grid.Direction) bool

// scoreFunc yields the push priority and tie key of a node
type scoreFunc func(n *node) (priority, tie float64)

type strategy struct {
	dirs     []grid.Direction
	frontier frontierKind
	relax    relaxFunc
	score    scoreFunc

	// heuristic selects how H is derived from the Euclidean distance to goal
	heuristic heuristicKind
}

type heuristicKind uint8

const (
	heuristicNone heuristicKind = iota
	// heuristicEuclidean is the raw distance, used for ranking only
	heuristicEuclidean
	// heuristicAdmissible scales the distance so it never exceeds the true cost
	heuristicAdmissible
)

var strategies = [algorithmCount]strategy{
	DFSRecursive:    {dirs: grid.RecursiveOrder, frontier: frontierStack, relax: relaxFirstVisit, score: scoreNone},
	DFSIterative:    {dirs: grid.Cardinal, frontier: frontierStack, relax: relaxFirstVisit, score: scoreNone},
	BFS:             {dirs: grid.Cardinal, frontier: frontierFIFO, relax: relaxFirstVisit, score: scoreNone},
	GreedyBestFirst: {dirs: grid.Cardinal, frontier: frontierPriority, relax: relaxFirstVisit, score: scoreHeuristic, heuristic: heuristicEuclidean},
	Dijkstra:        {dirs: grid.Cardinal, frontier: frontierPriority, relax: relaxCost, score: scoreCost},
	AStar:           {dirs: grid.Cardinal, frontier: frontierTieBreak, relax: relaxCost, score: scoreTotal, heuristic: heuristicAdmissible},
	AStarDiagonal:   {dirs: grid.Octile, frontier: frontierTieBreak, relax: relaxCost, score: scoreTotal, heuristic: heuristicAdmissible},
}

func scoreNone(*node) (float64, float64)        { return 0, 0 }
func scoreHeuristic(n *node) (float64, float64) { return n.h, n.h }
func scoreCost(n *node) (float64, float64)      { return n.g, 0 }
func scoreTotal(n *node) (float64, float64)     { return n.g + n.h, n.h }

// relaxFirstVisit parents unvisited walkable neighbors, never re-parents
func relaxFirstVisit(s *Search, cur int, from core.Point, d grid.Direction) bool {
	n, ok := s.grid.Neighbor(from, d)
	if !ok {
		return false
	}
	idx := s.grid.Index(n)
	st := &s.nodes[idx]
	if st.visit != Unvisited || !s.grid.Walkable(n) || !s.grid.CornerClear(from, d) {
		return false
	}

	st.visit = Visited
	st.parent = cur
	st.g = s.nodes[cur].g + s.grid.StepCost(n, d)
	st.h = s.heuristic(n)

	priority, tie := s.strat.score(st)
	s.open.push(idx, priority, tie)
	return true
}

// relaxCost parents unvisited walkable neighbors and re-parents open ones when
// the cost through cur is strictly lower than their current G
// Walkability is only checked on discovery, it cannot change afterwards
func relaxCost(s *Search, cur int, from core.Point, d grid.Direction) bool {
	n, ok := s.grid.Neighbor(from, d)
	if !ok || !s.grid.CornerClear(from, d) {
		return false
	}
	idx := s.grid.Index(n)
	st := &s.nodes[idx]

	switch st.visit {
	case Unvisited:
		if !s.grid.Walkable(n) {
			return false
		}
		st.visit = Visited
		st.parent = cur
		st.g = s.nodes[cur].g + s.grid.StepCost(n, d)
		st.h = s.heuristic(n)

	case Visited:
		if s.closed.Has(idx) {
			return false
		}
		g := s.nodes[cur].g + s.grid.StepCost(n, d)
		if g >= st.g {
			return false
		}
		if s.logger.Enabled(context.Background(), slog.LevelDebug) {
			s.logger.Debug("re-parent",
				"node", n,
				"old_parent", s.grid.PointAt(st.parent),
				"old_g", st.g,
				"new_parent", from,
				"new_g", g,
			)
		}
		st.parent = cur
		st.g = g

	default:
		// Root has G = 0 and can never improve
		return false
	}

	priority, tie := s.strat.score(st)
	s.open.push(idx, priority, tie)
	return true
}
