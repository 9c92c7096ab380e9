package search

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned for unrecognised algorithm names or values
var ErrUnknownAlgorithm = errors.New("unknown search algorithm")

// Algorithm selects the search strategy
type Algorithm uint8

const (
	DFSRecursive Algorithm = iota
	DFSIterative
	BFS
	GreedyBestFirst
	Dijkstra
	AStar
	AStarDiagonal
	algorithmCount
)

var algorithmNames = [algorithmCount]string{
	"dfs-recursive",
	"dfs",
	"bfs",
	"greedy",
	"dijkstra",
	"astar",
	"astar-diagonal",
}

// Accepted spellings besides the canonical names
var algorithmAliases = map[string]Algorithm{
	"dfs-iterative":     DFSIterative,
	"depth-first":       DFSIterative,
	"breadth-first":     BFS,
	"best-first":        GreedyBestFirst,
	"greedy-best-first": GreedyBestFirst,
	"a*":                AStar,
	"a-star":            AStar,
	"astar8":            AStarDiagonal,
	"a*-diagonal":       AStarDiagonal,
}

func (a Algorithm) String() string {
	if a < algorithmCount {
		return algorithmNames[a]
	}
	return fmt.Sprintf("algorithm(%d)", uint8(a))
}

// Valid reports whether a is a known algorithm
func (a Algorithm) Valid() bool {
	return a < algorithmCount
}

// Informed reports whether a orders its frontier by cost or heuristic
func (a Algorithm) Informed() bool {
	return a == GreedyBestFirst || a == Dijkstra || a == AStar || a == AStarDiagonal
}

// Optimal reports whether a guarantees a minimum-cost path
func (a Algorithm) Optimal() bool {
	return a == Dijkstra || a == AStar || a == AStarDiagonal
}

// ParseAlgorithm resolves a name case-insensitively
func ParseAlgorithm(s string) (Algorithm, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range algorithmNames {
		if name == s {
			return Algorithm(i), nil
		}
	}
	if a, ok := algorithmAliases[s]; ok {
		return a, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Algorithms lists every algorithm in declaration order
func Algorithms() []Algorithm {
	all := make([]Algorithm, algorithmCount)
	for i := range all {
		all[i] = Algorithm(i)
	}
	return all
}

// MarshalText implements encoding.TextMarshaler
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
