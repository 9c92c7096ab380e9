package main

import (
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gridpath/core"
	"github.com/lixenwraith/gridpath/grid"
	"github.com/lixenwraith/gridpath/pathfind"
	"github.com/lixenwraith/gridpath/search"
)

// recorder captures drawn cells
type recorder struct {
	w, h   int
	cells  map[core.Point]rune
	styles map[core.Point]tcell.Style
	events chan tcell.Event
	shows  int
}

func newRecorder(w, h int) *recorder {
	return &recorder{
		w: w, h: h,
		cells:  make(map[core.Point]rune),
		styles: make(map[core.Point]tcell.Style),
		events: make(chan tcell.Event, 16),
	}
}

func (r *recorder) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.w || y >= r.h {
		return
	}
	r.cells[core.Point{X: x, Y: y}] = primary
	r.styles[core.Point{X: x, Y: y}] = style
}

func (r *recorder) Size() (int, int) { return r.w, r.h }
func (r *recorder) Clear() {
	clear(r.cells)
	clear(r.styles)
}
func (r *recorder) Show() { r.shows++ }
func (r *recorder) PollEvent() tcell.Event {
	ev, ok := <-r.events
	if !ok {
		return nil
	}
	return ev
}

func (r *recorder) row(y int) string {
	var sb strings.Builder
	for x := 0; x < r.w; x++ {
		if c, ok := r.cells[core.Point{X: x, Y: y}]; ok {
			sb.WriteRune(c)
		} else {
			sb.WriteRune(' ')
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func openSandbox(t *testing.T, alg search.Algorithm) *Sandbox {
	t.Helper()
	cfg := grid.DefaultConfig()
	cfg.Layout = grid.LayoutOpen
	cfg.Costs = grid.UniformCosts(1)
	cfg.Seed = 5
	sb, err := NewSandbox(pathfind.Scenario{Grid: cfg, Algorithm: alg}, nil, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	return sb
}

func TestSandbox_StepAndDraw(t *testing.T) {
	sb := openSandbox(t, search.BFS)
	rec := newRecorder(100, 10)

	sb.draw(rec)
	assert.Equal(t, 'S', rec.cells[core.Point{X: 1, Y: 1}])
	assert.Equal(t, 'E', rec.cells[core.Point{X: 3, Y: 3}])
	assert.True(t, strings.HasPrefix(rec.row(6), "bfs  running  step 0"), rec.row(6))
	assert.Contains(t, rec.row(7), "[space] step")

	require.True(t, sb.handleInput(key(' ')))
	rec.Clear()
	sb.draw(rec)
	// Neighbors of the origin are on the frontier
	assert.Equal(t, '+', rec.cells[core.Point{X: 1, Y: 0}])
	assert.Equal(t, '+', rec.cells[core.Point{X: 2, Y: 1}])
	assert.Contains(t, rec.row(6), "step 1")

	require.True(t, sb.handleInput(key('f')))
	require.Equal(t, search.Found, sb.search.Status())
	rec.Clear()
	sb.draw(rec)
	assert.Contains(t, rec.row(6), "found")
	assert.Contains(t, rec.row(6), "path 5")

	path := 0
	for _, c := range rec.cells {
		if c == '•' {
			path++
		}
	}
	assert.Equal(t, 3, path)
}

func TestSandbox_Keys(t *testing.T) {
	sb := openSandbox(t, search.AStar)

	require.True(t, sb.handleInput(key('a')))
	assert.Equal(t, search.AStarDiagonal, sb.search.Algorithm())
	require.True(t, sb.handleInput(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone)))
	assert.Equal(t, search.DFSRecursive, sb.search.Algorithm())

	sb.handleInput(key('s'))
	sb.handleInput(key('s'))
	assert.Equal(t, 2, sb.search.Steps())
	sb.handleInput(key('r'))
	assert.Zero(t, sb.search.Steps())

	sb.handleInput(key('p'))
	assert.True(t, sb.playing)
	sb.handleInput(key('p'))
	assert.False(t, sb.playing)

	g := sb.grid
	sb.handleInput(key('n'))
	assert.NotSame(t, g, sb.grid)

	assert.False(t, sb.handleInput(key('q')))
	assert.False(t, sb.handleInput(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestSandbox_TickAutoSteps(t *testing.T) {
	sb := openSandbox(t, search.Dijkstra)
	start := time.Now()

	sb.tick(start)
	assert.Zero(t, sb.search.Steps(), "paused sandbox does not step")

	sb.playing = true
	sb.tick(start)
	assert.Equal(t, 1, sb.search.Steps())
	sb.tick(start.Add(time.Millisecond))
	assert.Equal(t, 1, sb.search.Steps(), "interval not elapsed")
	sb.tick(start.Add(time.Second))
	assert.Equal(t, 2, sb.search.Steps())

	for i := 2; sb.playing; i++ {
		sb.tick(start.Add(time.Duration(i) * time.Second))
	}
	assert.Equal(t, search.Found, sb.search.Status())
	assert.True(t, sb.cued)
}

func TestLoop_ExitsOnQuit(t *testing.T) {
	sb := openSandbox(t, search.BFS)
	rec := newRecorder(60, 10)
	rec.events <- key('f')
	rec.events <- key('q')

	done := make(chan struct{})
	go func() {
		loop(rec, sb)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not exit")
	}
	assert.Equal(t, search.Found, sb.search.Status())
	assert.GreaterOrEqual(t, rec.shows, 2)
}

func TestPutString_Clips(t *testing.T) {
	rec := newRecorder(4, 2)
	putString(rec, 1, 0, "abcdef", tcell.StyleDefault)
	assert.Equal(t, " abc", rec.row(0))
	putString(rec, 0, 5, "zz", tcell.StyleDefault)
	assert.Equal(t, "", rec.row(1))
}

func TestHandleCrash_NilIsNoop(t *testing.T) {
	called := false
	setCrashScreen(func() { called = true })
	defer setCrashScreen(nil)

	handleCrash(nil)
	assert.False(t, called)
}

func TestRun_ReturnsSetupErrors(t *testing.T) {
	defer func(cfg, alg string) { *configFlag, *algorithmFlag = cfg, alg }(*configFlag, *algorithmFlag)

	*configFlag = filepath.Join(t.TempDir(), "missing.toml")
	assert.Error(t, run())

	*configFlag = ""
	*algorithmFlag = "dfs-sideways"
	assert.ErrorIs(t, run(), search.ErrUnknownAlgorithm)
}
