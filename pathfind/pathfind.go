// Package pathfind is the one-call entry point over grid generation and search
// It adds run ids, structured logging, result caching and concurrent
// multi-algorithm runs on top of package search
package pathfind

import (
	"context"
	"errors"
	"fmt"

	"github.com/lixenwraith/gridpath/core"
	"github.com/lixenwraith/gridpath/grid"
	"github.com/lixenwraith/gridpath/search"
)

var (
	// ErrNoPathFound is the expected negative outcome, the goal is unreachable
	ErrNoPathFound = errors.New("no path found")

	// ErrStepLimit means the search hit its step cap before completing
	ErrStepLimit = errors.New("search step limit reached")
)

// Scenario is a grid to generate and the algorithm to run on it
type Scenario struct {
	Name      string
	Grid      grid.Config
	Algorithm search.Algorithm

	// MaxSteps caps the search, 0 = unlimited
	MaxSteps int
}

// DefaultScenario is the stock 5×5 grid searched with A*
func DefaultScenario() Scenario {
	return Scenario{
		Name:      "default",
		Grid:      grid.DefaultConfig(),
		Algorithm: search.AStar,
	}
}

// FindPath builds the scenario grid and returns the origin→goal path
// An unreachable goal returns ErrNoPathFound
func FindPath(ctx context.Context, sc Scenario) ([]core.Point, error) {
	return NewPlanner(WithCache(nil)).FindPath(ctx, sc)
}

// outcomeErr maps a non-successful result to its sentinel
func outcomeErr(g *grid.Grid, r search.Result) error {
	switch r.Status {
	case search.Found:
		return nil
	case search.Aborted:
		return fmt.Errorf("%w: %s after %d steps", ErrStepLimit, r.Algorithm, r.Steps)
	default:
		return fmt.Errorf("%w: %s from (%d,%d) to (%d,%d)", ErrNoPathFound, r.Algorithm,
			g.Origin.X, g.Origin.Y, g.Goal.X, g.Goal.Y)
	}
}
