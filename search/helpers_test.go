package search

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gridpath/core"
	"github.com/lixenwraith/gridpath/grid"
)

func mustRows(t *testing.T, rows []string, origin, goal core.Point) *grid.Grid {
	t.Helper()
	g, err := grid.FromRows(rows, grid.UniformCosts(1), origin, goal)
	require.NoError(t, err)
	return g
}

func mustBuild(t *testing.T, cfg grid.Config) *grid.Grid {
	t.Helper()
	g, err := grid.Build(cfg)
	require.NoError(t, err)
	return g
}

func mustRun(t *testing.T, g *grid.Grid, alg Algorithm, opts ...Option) Result {
	t.Helper()
	r, err := Find(g, alg, opts...)
	require.NoError(t, err)
	return r
}

// requireValidPath checks endpoints, adjacency and walkability
func requireValidPath(t *testing.T, g *grid.Grid, path []core.Point, diagonal bool) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, g.Origin, path[0], "path must start at origin")
	require.Equal(t, g.Goal, path[len(path)-1], "path must end at goal")
	for i, p := range path {
		require.True(t, g.Walkable(p), "path cell %v not walkable", p)
		if i == 0 {
			continue
		}
		dx := p.X - path[i-1].X
		dy := p.Y - path[i-1].Y
		if diagonal {
			require.True(t, max(abs(dx), abs(dy)) == 1, "non-adjacent step %v -> %v", path[i-1], p)
		} else {
			require.Equal(t, 1, abs(dx)+abs(dy), "non-adjacent step %v -> %v", path[i-1], p)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// referenceDistances is a plain BFS over 4-connected walkable cells
func referenceDistances(g *grid.Grid, from core.Point) map[core.Point]int {
	dist := map[core.Point]int{from: 0}
	queue := []core.Point{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range grid.Cardinal {
			n, ok := g.Neighbor(cur, d)
			if !ok || !g.Walkable(n) {
				continue
			}
			if _, seen := dist[n]; !seen {
				dist[n] = dist[cur] + 1
				queue = append(queue, n)
			}
		}
	}
	return dist
}

// referenceCost is an O(n^2) Dijkstra over entered-tile costs, 4-connected
func referenceCost(g *grid.Grid) (float64, bool) {
	size := g.Size()
	dist := make([]float64, size)
	done := make([]bool, size)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[g.Index(g.Origin)] = 0

	for {
		best := -1
		for i := 0; i < size; i++ {
			if !done[i] && !math.IsInf(dist[i], 1) && (best < 0 || dist[i] < dist[best]) {
				best = i
			}
		}
		if best < 0 {
			return 0, false
		}
		if best == g.Index(g.Goal) {
			return dist[best], true
		}
		done[best] = true
		p := g.PointAt(best)
		for _, d := range grid.Cardinal {
			n, ok := g.CanStep(p, d)
			if !ok {
				continue
			}
			ni := g.Index(n)
			if c := dist[best] + g.StepCost(n, d); c < dist[ni] {
				dist[ni] = c
			}
		}
	}
}

func sortedKeys(m map[core.Point]int, g *grid.Grid) []core.Point {
	pts := make([]core.Point, 0, len(m))
	for i := 0; i < g.Size(); i++ {
		p := g.PointAt(i)
		if _, ok := m[p]; ok {
			pts = append(pts, p)
		}
	}
	return pts
}
