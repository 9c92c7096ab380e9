// Package maze carves wall masks for the maze grid layout
package maze

import (
	"math/rand"

	"github.com/lixenwraith/gridpath/core"
)

// Cell types
const (
	Wall    = true
	Passage = false
)

type Config struct {
	Width, Height int

	// Braiding is the chance a dead end is opened into a loop, 0 keeps a perfect maze
	// Openings that would leave a 2x2 open block or a free-standing wall cell are skipped
	Braiding float64

	// Keep lists cells forced to Passage after carving (search origin and goal)
	Keep []core.Point
}

// orthogonal unit steps, in the order carving and braiding try them
var orthogonal = [4]core.Point{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}

// mask is a [y][x] wall grid, reads outside it see Wall
type mask [][]bool

func (m mask) rows() int { return len(m) }
func (m mask) cols() int { return len(m[0]) }

func (m mask) wall(x, y int) bool {
	if y < 0 || y >= len(m) || x < 0 || x >= len(m[y]) {
		return true
	}
	return m[y][x]
}

// interior reports whether p lies inside the one-cell border
func (m mask) interior(p core.Point) bool {
	return p.X > 0 && p.X < m.cols()-1 && p.Y > 0 && p.Y < m.rows()-1
}

// Carve produces a Height×Width wall mask with a recursive backtracker
// Rooms sit on odd coordinates, with even dimensions the last row/column stays wall
// Grids smaller than 3×3 have no room for walls and come back fully open
func Carve(cfg Config, rng *rand.Rand) [][]bool {
	m := make(mask, cfg.Height)
	for y := range m {
		m[y] = make([]bool, cfg.Width)
	}
	if cfg.Height < 3 || cfg.Width < 3 {
		return m
	}
	for _, row := range m {
		for x := range row {
			row[x] = Wall
		}
	}

	start := core.Point{X: 1, Y: 1}
	if len(cfg.Keep) > 0 {
		start = nearestRoom(cfg.Height, cfg.Width, cfg.Keep[0])
	}
	m.carveFrom(start, rng)

	if cfg.Braiding > 0 {
		m.braid(cfg.Braiding, rng)
	}
	for _, p := range cfg.Keep {
		m.open(p)
	}
	return m
}

// --- Carving ---

// carveFrom grows a spanning tree of rooms from start, knocking out the wall between each pair
func (m mask) carveFrom(start core.Point, rng *rand.Rand) {
	m[start.Y][start.X] = Passage
	path := []core.Point{start}
	options := make([]core.Point, 0, len(orthogonal))

	for len(path) > 0 {
		room := path[len(path)-1]

		options = options[:0]
		for _, d := range orthogonal {
			next := room.Add(2*d.X, 2*d.Y)
			if m.interior(next) && m[next.Y][next.X] == Wall {
				options = append(options, d)
			}
		}
		if len(options) == 0 {
			path = path[:len(path)-1]
			continue
		}

		d := options[rng.Intn(len(options))]
		m[room.Y+d.Y][room.X+d.X] = Passage
		next := room.Add(2*d.X, 2*d.Y)
		m[next.Y][next.X] = Passage
		path = append(path, next)
	}
}

// --- Braiding ---

// braid visits every dead-end room and, with the given probability, opens one wall
// separating it from a neighbouring room
func (m mask) braid(probability float64, rng *rand.Rand) {
	for y := 1; y < m.rows()-1; y += 2 {
		for x := 1; x < m.cols()-1; x += 2 {
			if m[y][x] == Wall || m.exits(x, y) != 1 || rng.Float64() >= probability {
				continue
			}

			var walls []core.Point
			for _, d := range orthogonal {
				w := core.Point{X: x + d.X, Y: y + d.Y}
				if m.wall(w.X, w.Y) && !m.wall(x+2*d.X, y+2*d.Y) && m.removable(w) {
					walls = append(walls, w)
				}
			}
			if len(walls) > 0 {
				w := walls[rng.Intn(len(walls))]
				m[w.Y][w.X] = Passage
			}
		}
	}
}

func (m mask) exits(x, y int) int {
	n := 0
	for _, d := range orthogonal {
		if !m.wall(x+d.X, y+d.Y) {
			n++
		}
	}
	return n
}

// quadrants are the three other cells of each 2x2 block containing a cell
var quadrants = [4][3]core.Point{
	{{X: -1, Y: -1}, {X: 0, Y: -1}, {X: -1, Y: 0}},
	{{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 0}},
	{{X: -1, Y: 0}, {X: -1, Y: 1}, {X: 0, Y: 1}},
	{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
}

// removable reports whether opening w keeps the maze free of 2x2 open blocks
// and of wall cells with no wall neighbour
func (m mask) removable(w core.Point) bool {
	for _, q := range quadrants {
		open := 0
		for _, o := range q {
			if !m.wall(w.X+o.X, w.Y+o.Y) {
				open++
			}
		}
		if open == len(q) {
			return false
		}
	}

	for _, d := range orthogonal {
		n := w.Add(d.X, d.Y)
		if n.X < 0 || n.X >= m.cols() || n.Y < 0 || n.Y >= m.rows() || !m[n.Y][n.X] {
			continue
		}
		anchored := false
		for _, d2 := range orthogonal {
			nn := n.Add(d2.X, d2.Y)
			if nn != w && nn.In(m.cols(), m.rows()) && m[nn.Y][nn.X] {
				anchored = true
				break
			}
		}
		if !anchored {
			return false
		}
	}
	return true
}

// --- Helpers ---

// nearestRoom snaps p onto the odd-coordinate room lattice inside the border
func nearestRoom(rows, cols int, p core.Point) core.Point {
	snap := func(v, limit int) int {
		if v%2 == 0 {
			v--
		}
		if v < 1 {
			v = 1
		}
		for v >= limit-1 {
			v -= 2
		}
		return v
	}
	return core.Point{X: snap(p.X, cols), Y: snap(p.Y, rows)}
}

// open forces p to Passage and, when that leaves it sealed in, opens one interior neighbour
func (m mask) open(p core.Point) {
	if !p.In(m.cols(), m.rows()) {
		return
	}
	m[p.Y][p.X] = Passage
	if m.exits(p.X, p.Y) > 0 {
		return
	}
	for _, d := range orthogonal {
		if n := p.Add(d.X, d.Y); m.interior(n) {
			m[n.Y][n.X] = Passage
			return
		}
	}
}
