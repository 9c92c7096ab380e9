package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/lixenwraith/gridpath/core"
	"github.com/lixenwraith/gridpath/grid"
	"github.com/lixenwraith/gridpath/navigation"
	"github.com/lixenwraith/gridpath/pathfind"
)

// draw prints the grid with origin S, goal E, walls █ and the path as •
// Other walkable tiles show their terrain glyph
func draw(w io.Writer, g *grid.Grid, path []core.Point) {
	onPath := make(map[core.Point]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}

	rows := g.Rows()
	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := core.Point{X: x, Y: y}
			tile, _ := g.Tile(p)
			switch {
			case p == g.Origin:
				sb.WriteByte('S')
			case p == g.Goal:
				sb.WriteByte('E')
			case !tile.Walkable:
				sb.WriteRune('█')
			case onPath[p]:
				sb.WriteRune('•')
			default:
				sb.WriteByte(rows[y][x])
			}
		}
		sb.WriteByte('\n')
	}
	io.WriteString(w, sb.String())
}

// summary is one report line
func summary(rep pathfind.Report) string {
	r := rep.Result
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-15s %-8s", r.Algorithm.String()+":", r.Status.String())
	if r.Found() {
		fmt.Fprintf(&sb, " cost %-7.2f path %-3d", r.Cost, len(r.Path))
	} else {
		fmt.Fprintf(&sb, " %-22s", "")
	}
	fmt.Fprintf(&sb, " expanded %-4d steps %-4d", r.Expanded, r.Steps)
	if rep.Cached {
		sb.WriteString(" (cached)")
	} else {
		fmt.Fprintf(&sb, " %v", rep.Elapsed)
	}
	return strings.TrimRight(sb.String(), " ")
}

// baseline reports the optimal origin→goal cost from goal-rooted flow fields
func baseline(g *grid.Grid) string {
	f := navigation.NewFlowField(g.Width, g.Height)
	f.Compute(g, g.Goal, false)
	four, ok := f.Cost(g.Origin)
	if !ok {
		return fmt.Sprintf("Goal unreachable, %d cells reach it", f.Reachable())
	}
	reach := f.Reachable()
	f.Compute(g, g.Goal, true)
	eight, _ := f.Cost(g.Origin)
	return fmt.Sprintf("Optimal cost %.2f (4-dir) %.2f (8-dir), %d cells reach the goal", four, eight, reach)
}
