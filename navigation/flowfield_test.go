package navigation

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gridpath/core"
	"github.com/lixenwraith/gridpath/grid"
	"github.com/lixenwraith/gridpath/search"
)

func mustRows(t *testing.T, rows []string, costs grid.CostTable) *grid.Grid {
	t.Helper()
	g, err := grid.FromRows(rows, costs, core.Point{X: 0, Y: len(rows) - 1}, core.Point{X: len(rows[0]) - 1, Y: len(rows) - 1})
	require.NoError(t, err)
	return g
}

func TestFlowField_OpenGrid(t *testing.T) {
	g := mustRows(t, []string{".....", ".....", ".....", ".....", "....."}, grid.UniformCosts(1))
	target := core.Point{X: 4, Y: 4}

	f := NewFlowField(g.Width, g.Height)
	f.Compute(g, target, false)
	cost, ok := f.Cost(core.Point{X: 0, Y: 0})
	require.True(t, ok)
	assert.InDelta(t, 8.0, cost, 1e-9)
	assert.Equal(t, DirTarget, f.Direction(target))
	assert.Equal(t, 25, f.Reachable())

	f.Compute(g, target, true)
	cost, ok = f.Cost(core.Point{X: 0, Y: 0})
	require.True(t, ok)
	assert.InDelta(t, 4*math.Sqrt2, cost, 1e-9)
	assert.Equal(t, grid.DirSE, f.Direction(core.Point{X: 0, Y: 0}))
	assert.Len(t, f.Follow(core.Point{X: 0, Y: 0}), 5)
}

func TestFlowField_FollowThroughGap(t *testing.T) {
	g := mustRows(t, []string{
		".....",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
	}, grid.UniformCosts(1))

	f := NewFlowField(g.Width, g.Height)
	f.Compute(g, g.Goal, false)

	path := f.Follow(g.Origin)
	require.NotNil(t, path)
	assert.Equal(t, g.Origin, path[0])
	assert.Equal(t, g.Goal, path[len(path)-1])
	assert.Contains(t, path, core.Point{X: 2, Y: 0})

	cost, _ := f.Cost(g.Origin)
	assert.InDelta(t, float64(len(path)-1), cost, 1e-9)
	assert.Equal(t, DirNone, f.Direction(core.Point{X: 2, Y: 2}))
}

func TestFlowField_Unreachable(t *testing.T) {
	g := mustRows(t, []string{
		"..#..",
		"..#..",
	}, grid.UniformCosts(1))

	f := NewFlowField(1, 1)
	f.Compute(g, g.Goal, true)
	assert.Equal(t, 5, f.Width)
	assert.Nil(t, f.Follow(g.Origin))
	_, ok := f.Cost(g.Origin)
	assert.False(t, ok)
	assert.Equal(t, 4, f.Reachable())

	f.Invalidate()
	assert.Equal(t, DirNone, f.Direction(g.Goal))
	assert.Zero(t, f.Reachable())
}

func TestFlowField_UnwalkableTarget(t *testing.T) {
	g, err := grid.FromRows([]string{"..#"}, grid.UniformCosts(1), core.Point{X: 0, Y: 0}, core.Point{X: 1, Y: 0})
	require.NoError(t, err)
	f := NewFlowField(g.Width, g.Height)
	f.Compute(g, core.Point{X: 2, Y: 0}, false)
	assert.Zero(t, f.Reachable())
}

// The field agrees with optimal searches run in the forward direction
func TestFlowField_MatchesOptimalSearch(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		rng := rand.New(rand.NewSource(seed))
		w, h := 5+rng.Intn(12), 5+rng.Intn(12)
		g, err := grid.Build(grid.Config{
			Width: w, Height: h,
			Origin:              core.Point{X: rng.Intn(w), Y: rng.Intn(h)},
			Goal:                core.Point{X: rng.Intn(w), Y: rng.Intn(h)},
			WalkableProbability: 0.7,
			Costs:               grid.DefaultCosts(),
			Seed:                seed,
		})
		require.NoError(t, err)

		f := NewFlowField(w, h)
		for _, tc := range []struct {
			alg      search.Algorithm
			diagonal bool
		}{
			{search.Dijkstra, false},
			{search.AStarDiagonal, true},
		} {
			f.Compute(g, g.Goal, tc.diagonal)
			r, err := search.Find(g, tc.alg)
			require.NoError(t, err)

			cost, ok := f.Cost(g.Origin)
			require.Equal(t, r.Found(), ok, "seed %d %s", seed, tc.alg)
			if ok {
				assert.InDelta(t, r.Cost, cost, 1e-9, "seed %d %s", seed, tc.alg)
				followed, valid := search.PathCost(g, f.Follow(g.Origin))
				require.True(t, valid)
				assert.InDelta(t, cost, followed, 1e-9, "seed %d %s", seed, tc.alg)
			}
		}
	}
}
