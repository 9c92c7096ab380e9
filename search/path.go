package search

import (
	"github.com/lixenwraith/gridpath/core"
	"github.com/lixenwraith/gridpath/grid"
)

// Path returns the origin→goal path of a successful search, nil otherwise
// Each call returns a fresh slice
func (s *Search) Path() []core.Point {
	if s.status != Found {
		return nil
	}
	return s.PathTo(s.goal)
}

// PathTo walks parent links from p back to the origin
// Returns nil when p has not been discovered
func (s *Search) PathTo(p core.Point) []core.Point {
	if !s.grid.InBounds(p) {
		return nil
	}
	return reconstruct(s.nodes, s.grid.Index(p), s.grid)
}

// reconstruct stacks nodes from idx up to the root, then pops them into root→idx order
func reconstruct(nodes []node, idx int, g *grid.Grid) []core.Point {
	if nodes[idx].visit == Unvisited {
		return nil
	}

	stack := make([]int, 0, 16)
	cur := idx
	for nodes[cur].visit == Visited {
		stack = append(stack, cur)
		cur = nodes[cur].parent
		// Parents always have strictly lower G, a longer chain means corrupt state
		if len(stack) > len(nodes) {
			return nil
		}
	}
	if nodes[cur].visit != Root {
		return nil
	}
	stack = append(stack, cur)

	path := make([]core.Point, 0, len(stack))
	for i := len(stack) - 1; i >= 0; i-- {
		path = append(path, g.PointAt(stack[i]))
	}
	return path
}

// PathCost sums the entered-tile step cost along path
// Steps between non-adjacent cells make the path invalid and return false
func PathCost(g *grid.Grid, path []core.Point) (float64, bool) {
	total := 0.0
	for i := 1; i < len(path); i++ {
		d, ok := directionBetween(path[i-1], path[i])
		if !ok || !g.InBounds(path[i]) {
			return 0, false
		}
		total += g.StepCost(path[i], d)
	}
	return total, true
}

func directionBetween(a, b core.Point) (grid.Direction, bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	for d := grid.Direction(0); d < grid.DirCount; d++ {
		vx, vy := d.Delta()
		if vx == dx && vy == dy {
			return d, true
		}
	}
	return 0, false
}
