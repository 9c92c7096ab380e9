package grid

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lixenwraith/gridpath/core"
	"github.com/lixenwraith/gridpath/parameter"
)

// ErrInvalidConfig is wrapped by every ConfigError
var ErrInvalidConfig = errors.New("invalid grid configuration")

// ConfigError describes a rejected grid parameter
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("grid: invalid %s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

func configErr(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Layout selects how walkability is generated
type Layout uint8

const (
	// LayoutRandom draws each tile's walkability independently
	LayoutRandom Layout = iota
	// LayoutOpen makes every tile walkable
	LayoutOpen
	// LayoutMaze carves walkability with a recursive backtracker
	LayoutMaze
)

var layoutNames = []string{"random", "open", "maze"}

func (l Layout) String() string {
	if int(l) < len(layoutNames) {
		return layoutNames[l]
	}
	return fmt.Sprintf("layout(%d)", uint8(l))
}

// ParseLayout resolves a layout name, empty selects LayoutRandom
func ParseLayout(s string) (Layout, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return LayoutRandom, nil
	}
	for i, name := range layoutNames {
		if name == s {
			return Layout(i), nil
		}
	}
	return 0, configErr("layout", "unknown layout %q", s)
}

// Config holds grid generation parameters
type Config struct {
	Width, Height int
	Origin, Goal  core.Point

	// WalkableProbability is the per-tile walkable chance for LayoutRandom
	WalkableProbability float64

	Costs CostTable

	// Seed 0 = time-seeded
	Seed int64

	Layout Layout

	// Braiding is the loop factor for LayoutMaze
	Braiding float64

	// AllowCornerCutting permits diagonal steps past blocked flanking tiles
	AllowCornerCutting bool
}

// DefaultConfig returns the stock 5×5 configuration
func DefaultConfig() Config {
	return Config{
		Width:               parameter.GridDefaultWidth,
		Height:              parameter.GridDefaultHeight,
		Origin:              core.Point{X: parameter.GridDefaultOriginX, Y: parameter.GridDefaultOriginY},
		Goal:                core.Point{X: parameter.GridDefaultGoalX, Y: parameter.GridDefaultGoalY},
		WalkableProbability: parameter.GridDefaultWalkableProbability,
		Costs:               DefaultCosts(),
		Layout:              LayoutRandom,
		Braiding:            parameter.GridDefaultBraiding,
	}
}

// Validate checks dimensions, endpoints, probabilities and the cost table
func (c Config) Validate() error {
	if c.Width <= 0 {
		return configErr("width", "must be positive, got %d", c.Width)
	}
	if c.Height <= 0 {
		return configErr("height", "must be positive, got %d", c.Height)
	}
	if !c.Origin.In(c.Width, c.Height) {
		return configErr("origin", "(%d,%d) outside %dx%d", c.Origin.X, c.Origin.Y, c.Width, c.Height)
	}
	if !c.Goal.In(c.Width, c.Height) {
		return configErr("goal", "(%d,%d) outside %dx%d", c.Goal.X, c.Goal.Y, c.Width, c.Height)
	}
	if err := validateCosts(c.Costs); err != nil {
		return err
	}
	if math.IsNaN(c.WalkableProbability) || c.WalkableProbability < 0 || c.WalkableProbability > 1 {
		return configErr("walkable probability", "must be in [0,1], got %v", c.WalkableProbability)
	}
	if math.IsNaN(c.Braiding) || c.Braiding < 0 || c.Braiding > 1 {
		return configErr("braiding", "must be in [0,1], got %v", c.Braiding)
	}
	if c.Layout > LayoutMaze {
		return configErr("layout", "unknown layout %d", c.Layout)
	}
	return nil
}

func validateCosts(costs CostTable) error {
	for k, cost := range costs {
		if math.IsNaN(cost) || math.IsInf(cost, 0) || cost <= 0 {
			return configErr("terrain cost", "%s must be positive and finite, got %v", Kind(k), cost)
		}
	}
	return nil
}
