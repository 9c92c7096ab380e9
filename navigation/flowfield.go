// Package navigation precomputes cost-to-target fields over a grid
// A field answers the optimal remaining cost and next step from every cell at once
package navigation

import (
	"math"

	"github.com/lixenwraith/gridpath/core"
	"github.com/lixenwraith/gridpath/grid"
	"github.com/lixenwraith/gridpath/queue"
)

// Special direction values
const (
	DirNone   grid.Direction = -1 // Blocked or unreachable
	DirTarget grid.Direction = -2 // At target cell
)

// FlowField stores optimal directions and remaining cost toward a target
type FlowField struct {
	Width, Height int
	Directions    []grid.Direction // Per-cell next step, DirNone if unreachable
	Costs         []float64        // Entered-tile cost to target, +Inf if unreachable

	// Cache state
	Target   core.Point
	Diagonal bool
	Valid    bool
}

// NewFlowField creates an empty flow field for the given dimensions
func NewFlowField(width, height int) *FlowField {
	f := &FlowField{Target: core.Point{X: -1, Y: -1}}
	f.Resize(width, height)
	return f
}

// Resize adjusts field dimensions, invalidates cache
func (f *FlowField) Resize(width, height int) {
	size := width * height
	if cap(f.Directions) < size {
		f.Directions = make([]grid.Direction, size)
		f.Costs = make([]float64, size)
	} else {
		f.Directions = f.Directions[:size]
		f.Costs = f.Costs[:size]
	}
	f.Width = width
	f.Height = height
	f.Valid = false
}

// Compute runs Dijkstra outward from target using the same step costs and
// corner rules a search from any cell toward target would see
// An unwalkable target leaves every cell unreachable
func (f *FlowField) Compute(g *grid.Grid, target core.Point, diagonal bool) {
	if g.Width != f.Width || g.Height != f.Height {
		f.Resize(g.Width, g.Height)
	}
	for i := range f.Costs {
		f.Directions[i] = DirNone
		f.Costs[i] = math.Inf(1)
	}
	f.Target = target
	f.Diagonal = diagonal
	f.Valid = true

	if !g.Walkable(target) {
		return
	}

	dirs := grid.Cardinal
	if diagonal {
		dirs = grid.Octile
	}

	targetIdx := g.Index(target)
	f.Costs[targetIdx] = 0
	f.Directions[targetIdx] = DirTarget

	open := queue.NewPriorityQueue[int, float64]()
	open.Enqueue(targetIdx, 0)

	for !open.IsEmpty() {
		idx, dist, _ := open.Peek()
		open.Dequeue()
		if dist > f.Costs[idx] {
			continue // Stale entry
		}
		b := g.PointAt(idx)

		for _, d := range dirs {
			a, ok := g.Neighbor(b, d)
			if !ok || !g.Walkable(a) {
				continue
			}
			// The move runs from a back toward b
			toward := d.Opposite()
			if !g.CornerClear(a, toward) {
				continue
			}
			aIdx := g.Index(a)
			cost := dist + g.StepCost(b, toward)
			if cost < f.Costs[aIdx] {
				f.Costs[aIdx] = cost
				f.Directions[aIdx] = toward
				open.Enqueue(aIdx, cost)
			}
		}
	}
}

// Invalidate marks field for recomputation
func (f *FlowField) Invalidate() {
	f.Valid = false
}

// Direction returns the next step from p, DirNone if invalid or unreachable
func (f *FlowField) Direction(p core.Point) grid.Direction {
	if !f.Valid || !p.In(f.Width, f.Height) {
		return DirNone
	}
	return f.Directions[p.Y*f.Width+p.X]
}

// Cost returns the optimal remaining cost from p
func (f *FlowField) Cost(p core.Point) (float64, bool) {
	if !f.Valid || !p.In(f.Width, f.Height) {
		return 0, false
	}
	c := f.Costs[p.Y*f.Width+p.X]
	if math.IsInf(c, 1) {
		return 0, false
	}
	return c, true
}

// Follow walks the field from p to the target, nil when unreachable
func (f *FlowField) Follow(p core.Point) []core.Point {
	if _, ok := f.Cost(p); !ok {
		return nil
	}
	path := []core.Point{p}
	for p != f.Target {
		d := f.Direction(p)
		if d < 0 || len(path) > len(f.Costs) {
			return nil
		}
		p = p.Add(d.Delta())
		path = append(path, p)
	}
	return path
}

// Reachable counts cells with a finite cost
func (f *FlowField) Reachable() int {
	if !f.Valid {
		return 0
	}
	n := 0
	for _, c := range f.Costs {
		if !math.IsInf(c, 1) {
			n++
		}
	}
	return n
}
