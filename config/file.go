// Package config reads and writes scenario files in TOML or YAML
package config

import (
	"fmt"

	"github.com/lixenwraith/gridpath/core"
	"github.com/lixenwraith/gridpath/grid"
	"github.com/lixenwraith/gridpath/pathfind"
	"github.com/lixenwraith/gridpath/search"
)

// File is the on-disk scenario layout shared by both formats
type File struct {
	Name      string      `toml:"name" yaml:"name"`
	Algorithm string      `toml:"algorithm" yaml:"algorithm"`
	MaxSteps  int         `toml:"max_steps" yaml:"max_steps"`
	Grid      GridSection `toml:"grid" yaml:"grid"`
}

// GridSection mirrors grid.Config with text-friendly types
type GridSection struct {
	Width               int          `toml:"width" yaml:"width"`
	Height              int          `toml:"height" yaml:"height"`
	Origin              PointSection `toml:"origin" yaml:"origin"`
	Goal                PointSection `toml:"goal" yaml:"goal"`
	WalkableProbability float64      `toml:"walkable_probability" yaml:"walkable_probability"`
	Seed                int64        `toml:"seed" yaml:"seed"`
	Layout              string       `toml:"layout" yaml:"layout"`
	Braiding            float64      `toml:"braiding" yaml:"braiding"`
	AllowCornerCutting  bool         `toml:"allow_corner_cutting" yaml:"allow_corner_cutting"`
	Costs               CostSection  `toml:"costs" yaml:"costs"`
}

// PointSection is a grid coordinate
type PointSection struct {
	X int `toml:"x" yaml:"x"`
	Y int `toml:"y" yaml:"y"`
}

// CostSection holds per-terrain step costs
type CostSection struct {
	Normal float64 `toml:"normal" yaml:"normal"`
	Fire   float64 `toml:"fire" yaml:"fire"`
	Forest float64 `toml:"forest" yaml:"forest"`
	Sand   float64 `toml:"sand" yaml:"sand"`
}

// DefaultFile is the default scenario in file form
// Decoding starts from it, so keys missing from a file keep their defaults
func DefaultFile() File {
	return FromScenario(pathfind.DefaultScenario())
}

// FromScenario converts a scenario to its file form
func FromScenario(sc pathfind.Scenario) File {
	c := sc.Grid
	return File{
		Name:      sc.Name,
		Algorithm: sc.Algorithm.String(),
		MaxSteps:  sc.MaxSteps,
		Grid: GridSection{
			Width:               c.Width,
			Height:              c.Height,
			Origin:              PointSection{X: c.Origin.X, Y: c.Origin.Y},
			Goal:                PointSection{X: c.Goal.X, Y: c.Goal.Y},
			WalkableProbability: c.WalkableProbability,
			Seed:                c.Seed,
			Layout:              c.Layout.String(),
			Braiding:            c.Braiding,
			AllowCornerCutting:  c.AllowCornerCutting,
			Costs: CostSection{
				Normal: c.Costs[grid.Normal],
				Fire:   c.Costs[grid.Fire],
				Forest: c.Costs[grid.Forest],
				Sand:   c.Costs[grid.Sand],
			},
		},
	}
}

// Scenario validates the file and converts it
func (f File) Scenario() (pathfind.Scenario, error) {
	alg, err := search.ParseAlgorithm(f.Algorithm)
	if err != nil {
		return pathfind.Scenario{}, fmt.Errorf("config: algorithm: %w", err)
	}
	layout, err := grid.ParseLayout(f.Grid.Layout)
	if err != nil {
		return pathfind.Scenario{}, fmt.Errorf("config: %w", err)
	}
	if f.MaxSteps < 0 {
		return pathfind.Scenario{}, fmt.Errorf("config: max_steps must not be negative, got %d", f.MaxSteps)
	}

	gs := f.Grid
	cfg := grid.Config{
		Width:               gs.Width,
		Height:              gs.Height,
		Origin:              core.Point{X: gs.Origin.X, Y: gs.Origin.Y},
		Goal:                core.Point{X: gs.Goal.X, Y: gs.Goal.Y},
		WalkableProbability: gs.WalkableProbability,
		Costs:               grid.CostTable{gs.Costs.Normal, gs.Costs.Fire, gs.Costs.Forest, gs.Costs.Sand},
		Seed:                gs.Seed,
		Layout:              layout,
		Braiding:            gs.Braiding,
		AllowCornerCutting:  gs.AllowCornerCutting,
	}
	if err := cfg.Validate(); err != nil {
		return pathfind.Scenario{}, fmt.Errorf("config: %w", err)
	}

	return pathfind.Scenario{
		Name:      f.Name,
		Grid:      cfg,
		Algorithm: alg,
		MaxSteps:  f.MaxSteps,
	}, nil
}
