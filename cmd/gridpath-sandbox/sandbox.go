package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridpath/audio"
	"github.com/lixenwraith/gridpath/core"
	"github.com/lixenwraith/gridpath/grid"
	"github.com/lixenwraith/gridpath/parameter"
	"github.com/lixenwraith/gridpath/pathfind"
	"github.com/lixenwraith/gridpath/search"
)

// canvas is the drawing surface, satisfied by tcell.Screen
type canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

var (
	styleWall    = tcell.StyleDefault.Background(tcell.ColorGray).Foreground(tcell.ColorGray)
	styleOrigin  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen).Bold(true)
	styleGoal    = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorRed).Bold(true)
	stylePath    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleClosed  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleOpen    = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleCurrent = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorFuchsia)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHelp    = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

var terrainStyles = [grid.KindCount]tcell.Style{
	grid.Normal: tcell.StyleDefault.Foreground(tcell.ColorSilver),
	grid.Fire:   tcell.StyleDefault.Foreground(tcell.ColorOrangeRed),
	grid.Forest: tcell.StyleDefault.Foreground(tcell.ColorGreen),
	grid.Sand:   tcell.StyleDefault.Foreground(tcell.ColorKhaki),
}

// Sandbox steps one search at a time over a generated grid
type Sandbox struct {
	scenario pathfind.Scenario
	grid     *grid.Grid
	search   *search.Search

	playing  bool
	lastStep time.Time

	cues   *audio.CuePlayer
	cued   bool
	logger *slog.Logger
}

// NewSandbox builds the scenario grid and prepares its search
func NewSandbox(sc pathfind.Scenario, cues *audio.CuePlayer, logger *slog.Logger) (*Sandbox, error) {
	sb := &Sandbox{scenario: sc, cues: cues, logger: logger}
	if err := sb.regenerate(); err != nil {
		return nil, err
	}
	return sb, nil
}

// regenerate rebuilds the grid, a zero seed draws a fresh layout each time
func (sb *Sandbox) regenerate() error {
	g, err := grid.Build(sb.scenario.Grid)
	if err != nil {
		return err
	}
	sb.grid = g
	sb.logger.Info("grid built", "width", g.Width, "height", g.Height, "seed", g.Seed)
	return sb.restart()
}

func (sb *Sandbox) restart() error {
	s, err := search.New(sb.grid, sb.scenario.Algorithm, sb.grid.Origin, sb.grid.Goal,
		search.WithLogger(sb.logger), search.WithMaxSteps(sb.scenario.MaxSteps))
	if err != nil {
		return err
	}
	sb.search = s
	sb.playing = false
	sb.cued = false
	return nil
}

// step advances the search once and plays the completion cue on termination
func (sb *Sandbox) step() search.StepResult {
	res := sb.search.Step()
	if res.Done() && !sb.cued {
		sb.cued = true
		sb.playing = false
		if sb.cues != nil {
			switch res {
			case search.StepFound:
				sb.cues.Play(audio.CueFound)
			case search.StepAborted:
				sb.cues.Play(audio.CueAborted)
			default:
				sb.cues.Play(audio.CueExhausted)
			}
		}
	}
	return res
}

// nextAlgorithm cycles through every algorithm and restarts on the same grid
func (sb *Sandbox) nextAlgorithm() error {
	all := search.Algorithms()
	sb.scenario.Algorithm = all[(int(sb.scenario.Algorithm)+1)%len(all)]
	return sb.restart()
}

// tick auto-steps while playing
func (sb *Sandbox) tick(now time.Time) {
	if !sb.playing || now.Sub(sb.lastStep) < parameter.SandboxStepIntervalMs*time.Millisecond {
		return
	}
	sb.lastStep = now
	sb.step()
}

// handleInput returns false when the sandbox should exit
func (sb *Sandbox) handleInput(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}

	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		sb.playing = !sb.playing && sb.search.Status() == search.Running
		return true
	case tcell.KeyTab:
		sb.report(sb.nextAlgorithm())
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch key.Rune() {
	case 'q':
		return false
	case ' ', 's':
		sb.playing = false
		sb.step()
	case 'p':
		sb.playing = !sb.playing && sb.search.Status() == search.Running
	case 'f':
		for !sb.step().Done() {
		}
	case 'r':
		sb.report(sb.restart())
	case 'n':
		sb.report(sb.regenerate())
	case 'a':
		sb.report(sb.nextAlgorithm())
	}
	return true
}

func (sb *Sandbox) report(err error) {
	if err != nil {
		sb.logger.Error("sandbox action failed", "error", err)
	}
}

// draw renders the grid at the top-left corner with a status line below it
func (sb *Sandbox) draw(c canvas) {
	g := sb.grid
	s := sb.search
	cur, hasCur := s.Current()

	onPath := make(map[core.Point]bool)
	for _, p := range s.Path() {
		onPath[p] = true
	}
	inOpen := make(map[core.Point]bool)
	for _, p := range s.Open() {
		inOpen[p] = true
	}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := core.Point{X: x, Y: y}
			tile, _ := g.Tile(p)
			r, style := sb.cell(p, tile, onPath[p], inOpen[p], hasCur && p == cur)
			c.SetContent(x, y, r, nil, style)
		}
	}

	status := fmt.Sprintf("%s  %s  step %d  expanded %d", s.Algorithm(), s.Status(), s.Steps(), s.Expanded())
	if s.Status() == search.Found {
		r := s.Result()
		status += fmt.Sprintf("  cost %.2f  path %d", r.Cost, len(r.Path))
	}
	if sb.playing {
		status += "  ▶"
	}
	putString(c, 0, g.Height+1, status, styleStatus)
	putString(c, 0, g.Height+2, "[space] step [p] play [f] finish [r] reset [n] new grid [a] algorithm [q] quit", styleHelp)
}

func (sb *Sandbox) cell(p core.Point, tile grid.Tile, onPath, inOpen, current bool) (rune, tcell.Style) {
	switch {
	case p == sb.grid.Origin:
		return 'S', styleOrigin
	case p == sb.grid.Goal:
		return 'E', styleGoal
	case !tile.Walkable:
		return '█', styleWall
	case onPath:
		return '•', stylePath
	case current:
		return '@', styleCurrent
	case sb.search.IsClosed(p):
		return '·', styleClosed
	case inOpen:
		return '+', styleOpen
	}
	return rune(tile.Kind.Glyph()), terrainStyles[tile.Kind]
}

// putString writes s clipped to the canvas width
func putString(c canvas, x, y int, s string, style tcell.Style) {
	w, h := c.Size()
	if y >= h {
		return
	}
	for _, r := range s {
		if x >= w {
			return
		}
		c.SetContent(x, y, r, nil, style)
		x++
	}
}
