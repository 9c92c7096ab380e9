package search

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in   string
		want Algorithm
	}{
		{"bfs", BFS},
		{"  BFS ", BFS},
		{"dfs", DFSIterative},
		{"dfs-recursive", DFSRecursive},
		{"greedy", GreedyBestFirst},
		{"best-first", GreedyBestFirst},
		{"dijkstra", Dijkstra},
		{"A*", AStar},
		{"astar-diagonal", AStarDiagonal},
		{"astar8", AStarDiagonal},
	}
	for _, tt := range tests {
		got, err := ParseAlgorithm(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseAlgorithm("jps")
	assert.True(t, errors.Is(err, ErrUnknownAlgorithm))
}

func TestAlgorithm_RoundTripNames(t *testing.T) {
	all := Algorithms()
	require.Len(t, all, 7)
	for _, a := range all {
		assert.True(t, a.Valid())
		text, err := a.MarshalText()
		require.NoError(t, err)

		var back Algorithm
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, a, back)
	}

	bad := Algorithm(42)
	assert.False(t, bad.Valid())
	assert.Equal(t, "algorithm(42)", bad.String())
	_, err := bad.MarshalText()
	assert.Error(t, err)
}

func TestAlgorithm_Classes(t *testing.T) {
	assert.False(t, BFS.Informed())
	assert.True(t, GreedyBestFirst.Informed())
	assert.False(t, GreedyBestFirst.Optimal())
	assert.True(t, Dijkstra.Optimal())
	assert.True(t, AStarDiagonal.Optimal())
	assert.False(t, DFSRecursive.Optimal())
}

func TestStatusStrings(t *testing.T) {
	assert.Equal(t, "found", Found.String())
	assert.Equal(t, "no-path", NoPath.String())
	assert.Equal(t, "exhausted", StepExhausted.String())
	assert.True(t, StepAborted.Done())
	assert.Equal(t, "root", Root.String())
	assert.InDelta(t, 3.5, NodeState{G: 1, H: 2.5}.F(), 1e-9)
}
