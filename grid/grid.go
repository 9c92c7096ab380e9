package grid

import (
	"math/rand"
	"strings"
	"time"

	"github.com/lixenwraith/gridpath/core"
	"github.com/lixenwraith/gridpath/maze"
	"github.com/lixenwraith/gridpath/parameter"
)

// Tile is an immutable grid cell
type Tile struct {
	X, Y     int
	Kind     Kind
	Cost     float64
	Walkable bool
}

// Grid is a fixed-size rectangular tile array indexed [y][x]
// A Grid is never mutated after construction, searches keep their own state
type Grid struct {
	Width, Height int
	Origin, Goal  core.Point

	// Seed is the effective generator seed, 0 for grids built from rows
	Seed int64

	costs              CostTable
	tiles              [][]Tile
	allowCornerCutting bool
}

// Build generates a grid from cfg
func Build(cfg Config) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	g := newGrid(cfg.Width, cfg.Height, cfg.Costs)
	g.Origin = cfg.Origin
	g.Goal = cfg.Goal
	g.Seed = seed
	g.allowCornerCutting = cfg.AllowCornerCutting

	var walls [][]bool
	if cfg.Layout == LayoutMaze {
		walls = maze.Carve(maze.Config{
			Width:    cfg.Width,
			Height:   cfg.Height,
			Braiding: cfg.Braiding,
			Keep:     []core.Point{cfg.Origin, cfg.Goal},
		}, rng)
	}

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			var walkable bool
			switch cfg.Layout {
			case LayoutRandom:
				walkable = rng.Float64() < cfg.WalkableProbability
			case LayoutOpen:
				walkable = true
			case LayoutMaze:
				walkable = walls[y][x] == maze.Passage
			}
			kind := Kind(rng.Intn(int(KindCount)))
			g.tiles[y][x] = Tile{X: x, Y: y, Kind: kind, Cost: cfg.Costs[kind], Walkable: walkable}
		}
	}

	g.forceWalkable(cfg.Origin)
	g.forceWalkable(cfg.Goal)
	return g, nil
}

// FromRows builds a grid from an ASCII map, one string per row
// '#' wall, '.' normal, 'f' fire, 't' forest, 's' sand
func FromRows(rows []string, costs CostTable, origin, goal core.Point) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, configErr("rows", "map is empty")
	}
	width, height := len(rows[0]), len(rows)
	cfg := Config{Width: width, Height: height, Origin: origin, Goal: goal, Costs: costs}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := newGrid(width, height, costs)
	g.Origin = origin
	g.Goal = goal

	for y, row := range rows {
		if len(row) != width {
			return nil, configErr("rows", "row %d has width %d, want %d", y, len(row), width)
		}
		for x := 0; x < width; x++ {
			kind, walkable, ok := parseGlyph(row[x])
			if !ok {
				return nil, configErr("rows", "unknown glyph %q at (%d,%d)", row[x], x, y)
			}
			g.tiles[y][x] = Tile{X: x, Y: y, Kind: kind, Cost: costs[kind], Walkable: walkable}
		}
	}

	g.forceWalkable(origin)
	g.forceWalkable(goal)
	return g, nil
}

func newGrid(width, height int, costs CostTable) *Grid {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
	}
	return &Grid{Width: width, Height: height, costs: costs, tiles: tiles}
}

// forceWalkable keeps the tile's kind and cost
func (g *Grid) forceWalkable(p core.Point) {
	g.tiles[p.Y][p.X].Walkable = true
}

func parseGlyph(c byte) (Kind, bool, bool) {
	if c == wallGlyph {
		return Normal, false, true
	}
	for k, glyph := range kindGlyphs {
		if glyph == c {
			return Kind(k), true, true
		}
	}
	return 0, false, false
}

// --- Accessors ---

// Size returns the tile count
func (g *Grid) Size() int {
	return g.Width * g.Height
}

// Costs returns the cost table the grid was built with
func (g *Grid) Costs() CostTable {
	return g.costs
}

// InBounds reports whether p is a grid cell
func (g *Grid) InBounds(p core.Point) bool {
	return p.In(g.Width, g.Height)
}

// Tile returns the tile at p, false when out of bounds
func (g *Grid) Tile(p core.Point) (Tile, bool) {
	if !g.InBounds(p) {
		return Tile{}, false
	}
	return g.tiles[p.Y][p.X], true
}

// Walkable returns false for blocked or out-of-bounds cells
func (g *Grid) Walkable(p core.Point) bool {
	return g.InBounds(p) && g.tiles[p.Y][p.X].Walkable
}

// Index returns the flat row-major index of p
func (g *Grid) Index(p core.Point) int {
	return p.Y*g.Width + p.X
}

// PointAt is the inverse of Index
func (g *Grid) PointAt(idx int) core.Point {
	return core.Point{X: idx % g.Width, Y: idx / g.Width}
}

// --- Geometry ---

// Neighbor returns the cell one step from p in direction d if it is in bounds
func (g *Grid) Neighbor(p core.Point, d Direction) (core.Point, bool) {
	dx, dy := d.Delta()
	n := p.Add(dx, dy)
	if !g.InBounds(n) {
		return core.Point{}, false
	}
	return n, true
}

// CanStep returns the neighbor in direction d when it is in bounds and walkable
// Diagonal steps also require both flanking cardinals walkable unless corner cutting is allowed
func (g *Grid) CanStep(p core.Point, d Direction) (core.Point, bool) {
	n, ok := g.Neighbor(p, d)
	if !ok || !g.tiles[n.Y][n.X].Walkable {
		return core.Point{}, false
	}
	if !g.CornerClear(p, d) {
		return core.Point{}, false
	}
	return n, true
}

// CornerClear reports whether a step from p in direction d passes the diagonal corner rule
// Cardinal steps always pass
func (g *Grid) CornerClear(p core.Point, d Direction) bool {
	if !d.Diagonal() || g.allowCornerCutting {
		return true
	}
	dx, dy := d.Delta()
	return g.Walkable(p.Add(dx, 0)) && g.Walkable(p.Add(0, dy))
}

// StepCost is the cost of entering to via direction d
// Diagonal moves pay √2 times the entered tile's cost
func (g *Grid) StepCost(to core.Point, d Direction) float64 {
	c := g.tiles[to.Y][to.X].Cost
	if d.Diagonal() {
		c *= parameter.DiagonalCostFactor
	}
	return c
}

// MinStepCost is the cheapest possible single step
func (g *Grid) MinStepCost() float64 {
	return g.costs.Min()
}

// Rows renders the grid in FromRows notation
func (g *Grid) Rows() []string {
	rows := make([]string, g.Height)
	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		sb.Reset()
		for x := 0; x < g.Width; x++ {
			t := g.tiles[y][x]
			if !t.Walkable {
				sb.WriteByte(wallGlyph)
			} else {
				sb.WriteByte(kindGlyphs[t.Kind])
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

// WalkableCount returns the number of walkable tiles
func (g *Grid) WalkableCount() int {
	n := 0
	for _, row := range g.tiles {
		for _, t := range row {
			if t.Walkable {
				n++
			}
		}
	}
	return n
}

// WithCornerCutting returns a copy of g sharing its tiles with the diagonal corner rule toggled
func (g *Grid) WithCornerCutting(allow bool) *Grid {
	c := *g
	c.allowCornerCutting = allow
	return &c
}
