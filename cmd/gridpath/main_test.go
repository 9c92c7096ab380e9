package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gridpath/core"
	"github.com/lixenwraith/gridpath/grid"
	"github.com/lixenwraith/gridpath/pathfind"
	"github.com/lixenwraith/gridpath/search"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRun_SingleAlgorithm(t *testing.T) {
	out, _, err := runCLI(t, "-layout", "open", "-seed", "3", "-algorithm", "bfs")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3+1+5)
	assert.True(t, strings.HasPrefix(lines[0], "Grid 5x5 seed 3 layout open, 25 walkable"), lines[0])
	assert.Contains(t, lines[1], "25 cells reach the goal")
	assert.Contains(t, lines[2], "bfs:")
	assert.Contains(t, lines[2], "found")
	assert.Contains(t, lines[2], "path 5")
	assert.Equal(t, 3, strings.Count(out, "•"))
	assert.Equal(t, 1, strings.Count(out, "S"))
	assert.Equal(t, 1, strings.Count(out, "E"))
}

func TestRun_CompareAll(t *testing.T) {
	out, _, err := runCLI(t, "-layout", "maze", "-seed", "11", "-width", "15", "-height", "11",
		"-origin", "1,1", "-goal", "13,9", "-algorithm", "all", "-no-map")
	require.NoError(t, err)

	for _, alg := range search.Algorithms() {
		assert.Contains(t, out, alg.String()+":")
	}
	assert.NotContains(t, out, "█")
}

func TestRun_NoPath(t *testing.T) {
	out, _, err := runCLI(t, "-p", "0", "-seed", "5", "-algorithm", "dijkstra")
	require.Error(t, err)
	assert.True(t, errors.Is(err, pathfind.ErrNoPathFound))
	assert.Contains(t, out, "no-path")
	assert.Contains(t, out, "Goal unreachable, 1 cells reach it")
}

func TestBaseline(t *testing.T) {
	g, err := grid.FromRows([]string{
		"...",
		"...",
	}, grid.UniformCosts(1), core.Point{X: 0, Y: 0}, core.Point{X: 2, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, "Optimal cost 3.00 (4-dir) 2.41 (8-dir), 6 cells reach the goal", baseline(g))
}

func TestRun_StepLimit(t *testing.T) {
	_, _, err := runCLI(t, "-layout", "open", "-seed", "1", "-max-steps", "1", "-no-map")
	assert.True(t, errors.Is(err, pathfind.ErrStepLimit))
}

func TestRun_BadFlags(t *testing.T) {
	tests := []struct {
		args []string
		is   error
	}{
		{[]string{"-algorithm", "teleport"}, search.ErrUnknownAlgorithm},
		{[]string{"-layout", "spiral"}, grid.ErrInvalidConfig},
		{[]string{"-width", "3", "-goal", "4,4"}, grid.ErrInvalidConfig},
		{[]string{"-origin", "1;1"}, nil},
		{[]string{"-log-level", "loud"}, nil},
	}
	for _, tt := range tests {
		_, _, err := runCLI(t, tt.args...)
		require.Error(t, err, tt.args)
		if tt.is != nil {
			assert.True(t, errors.Is(err, tt.is), err.Error())
		}
	}
}

func TestRun_ConfigFileWithOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
algorithm: greedy
grid:
  width: 7
  height: 4
  layout: open
  seed: 9
  origin: {x: 0, y: 0}
  goal: {x: 6, y: 3}
`), 0644))

	out, _, err := runCLI(t, "-config", path, "-no-map")
	require.NoError(t, err)
	assert.Contains(t, out, "Grid 7x4 seed 9")
	assert.Contains(t, out, "greedy:")

	out, _, err = runCLI(t, "-config", path, "-no-map", "-algorithm", "astar", "-width", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "Grid 8x4 seed 9")
	assert.Contains(t, out, "astar:")
}

func TestRun_Dump(t *testing.T) {
	out, _, err := runCLI(t, "-dump", "yaml", "-width", "9", "-algorithm", "bfs")
	require.NoError(t, err)
	assert.Contains(t, out, "width: 9")
	assert.Contains(t, out, "algorithm: bfs")

	out, _, err = runCLI(t, "-dump", "TOML")
	require.NoError(t, err)
	assert.Contains(t, out, `algorithm = "astar"`)
}

func TestParsePoint(t *testing.T) {
	p, err := parsePoint(" 3, 4")
	require.NoError(t, err)
	assert.Equal(t, core.Point{X: 3, Y: 4}, p)
	assert.Equal(t, "3,4", formatPoint(p))

	for _, bad := range []string{"3", "a,1", "1,b"} {
		_, err := parsePoint(bad)
		assert.Error(t, err, bad)
	}
}

func TestDraw(t *testing.T) {
	g, err := grid.FromRows([]string{
		".#f",
		"..s",
	}, grid.DefaultCosts(), core.Point{X: 0, Y: 0}, core.Point{X: 2, Y: 1})
	require.NoError(t, err)

	var buf bytes.Buffer
	draw(&buf, g, []core.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}})
	assert.Equal(t, "S█f\n••E\n", buf.String())
}

func TestBestPath(t *testing.T) {
	cheap := []core.Point{{X: 0, Y: 0}}
	reports := []pathfind.Report{
		{Result: search.Result{Status: search.Found, Cost: 9, Path: []core.Point{{X: 1, Y: 1}}}},
		{Result: search.Result{Status: search.NoPath}},
		{Result: search.Result{Status: search.Found, Cost: 4, Path: cheap}},
	}
	assert.Equal(t, cheap, bestPath(reports))
	assert.Nil(t, bestPath(reports[1:2]))
}
