package search

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/gridpath/core"
	"github.com/lixenwraith/gridpath/grid"
)

// Status is the lifecycle state of a Search
type Status uint8

const (
	Running Status = iota
	Found
	NoPath
	// Aborted means the step cap was reached before the search completed
	Aborted
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Found:
		return "found"
	case NoPath:
		return "no-path"
	case Aborted:
		return "aborted"
	}
	return fmt.Sprintf("status(%d)", uint8(s))
}

// StepResult is the outcome of a single Step
type StepResult uint8

const (
	StepContinuing StepResult = iota
	StepFound
	StepExhausted
	StepAborted
)

func (r StepResult) String() string {
	switch r {
	case StepContinuing:
		return "continuing"
	case StepFound:
		return "found"
	case StepExhausted:
		return "exhausted"
	case StepAborted:
		return "aborted"
	}
	return fmt.Sprintf("step(%d)", uint8(r))
}

// Done reports whether the search has terminated
func (r StepResult) Done() bool {
	return r != StepContinuing
}

// Result summarises a completed search
type Result struct {
	Algorithm Algorithm
	Status    Status

	// Path is origin→goal inclusive, nil unless Status == Found
	Path []core.Point

	// Cost is the accumulated entered-tile cost of Path
	Cost float64

	// Expanded counts closed nodes
	Expanded int

	// Steps counts pop-and-expand cycles
	Steps int

	// Closed lists expanded cells in row-major order
	Closed []core.Point
}

// Found reports whether a path was produced
func (r Result) Found() bool {
	return r.Status == Found
}

// Options defines parameters for a search
type Options struct {
	Logger *slog.Logger

	// MaxSteps aborts the search after this many steps, 0 = unlimited
	MaxSteps int
}

// Option is a function that modifies Options
type Option func(*Options)

// WithLogger routes re-parent and completion events to l at debug level
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMaxSteps caps the number of steps
func WithMaxSteps(n int) Option {
	return func(o *Options) { o.MaxSteps = n }
}

// Search is one search run over a grid
type Search struct {
	grid   *grid.Grid
	alg    Algorithm
	strat  strategy
	origin core.Point
	goal   core.Point

	originIdx int
	goalIdx   int
	hScale    float64

	nodes  []node
	open   frontier
	closed mapset.Set[int]

	status     Status
	steps      int
	expanded   int
	current    int
	hasCurrent bool

	maxSteps int
	logger   *slog.Logger
}

// New prepares a search from origin to goal; no work is done until Step or Run
// The search owns fresh per-node state, the grid is never written
func New(g *grid.Grid, alg Algorithm, origin, goal core.Point, opts ...Option) (*Search, error) {
	if g == nil {
		return nil, fmt.Errorf("search: nil grid")
	}
	if !alg.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(alg))
	}
	if !g.InBounds(origin) {
		return nil, &grid.ConfigError{Field: "origin", Reason: fmt.Sprintf("(%d,%d) outside %dx%d", origin.X, origin.Y, g.Width, g.Height)}
	}
	if !g.InBounds(goal) {
		return nil, &grid.ConfigError{Field: "goal", Reason: fmt.Sprintf("(%d,%d) outside %dx%d", goal.X, goal.Y, g.Width, g.Height)}
	}

	options := Options{}
	for _, o := range opts {
		o(&options)
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.DiscardHandler)
	}

	s := &Search{
		grid:      g,
		alg:       alg,
		strat:     strategies[alg],
		origin:    origin,
		goal:      goal,
		originIdx: g.Index(origin),
		goalIdx:   g.Index(goal),
		maxSteps:  options.MaxSteps,
		logger:    options.Logger.With("algorithm", alg.String()),
	}

	switch s.strat.heuristic {
	case heuristicEuclidean:
		s.hScale = 1
	case heuristicAdmissible:
		// Euclidean distance is admissible while every step costs at least 1
		s.hScale = min(1, g.MinStepCost())
	}

	s.Reset()
	return s, nil
}

// Find runs alg from the grid's origin to its goal
func Find(g *grid.Grid, alg Algorithm, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, fmt.Errorf("search: nil grid")
	}
	s, err := New(g, alg, g.Origin, g.Goal, opts...)
	if err != nil {
		return Result{}, err
	}
	return s.Run(), nil
}

// Reset discards all per-run state and re-seeds the frontier with the origin
func (s *Search) Reset() {
	s.nodes = make([]node, s.grid.Size())
	s.closed = mapset.New[int]()

	switch s.strat.frontier {
	case frontierStack:
		s.open = &stackFrontier{}
	case frontierFIFO:
		s.open = &fifoFrontier{}
	case frontierPriority:
		s.open = newPriorityFrontier()
	case frontierTieBreak:
		s.open = newTieBreakFrontier()
	}

	s.status = Running
	s.steps = 0
	s.expanded = 0
	s.current = s.originIdx
	s.hasCurrent = false

	// A walled origin leaves the frontier empty, the first step reports NoPath
	if !s.grid.Walkable(s.origin) {
		return
	}
	root := &s.nodes[s.originIdx]
	root.visit = Root
	root.parent = s.originIdx
	root.h = s.heuristic(s.origin)
	s.open.push(s.originIdx, 0, root.h)
}

// Step performs one pop-and-expand cycle
// Once the search has terminated every further call returns the terminal result
func (s *Search) Step() StepResult {
	if s.status != Running {
		return s.terminalStep()
	}
	if s.maxSteps > 0 && s.steps >= s.maxSteps {
		s.finish(Aborted)
		return StepAborted
	}
	s.steps++
	if s.strat.frontier == frontierStack {
		return s.stepDepthFirst()
	}

	var idx int
	for {
		next, ok := s.open.pop()
		if !ok {
			s.finish(NoPath)
			return StepExhausted
		}
		// Stale duplicate left behind by a re-parent
		if !s.closed.Has(next) {
			idx = next
			break
		}
	}

	s.closed.Put(idx)
	s.current = idx
	s.hasCurrent = true
	s.expanded++

	if idx == s.goalIdx {
		s.finish(Found)
		return StepFound
	}

	from := s.grid.PointAt(idx)
	for _, d := range s.strat.dirs {
		s.strat.relax(s, idx, from, d)
	}

	if s.open.len() == 0 {
		s.finish(NoPath)
		return StepExhausted
	}
	return StepContinuing
}

// Run steps the search to completion
func (s *Search) Run() Result {
	if s.alg == DFSRecursive && s.status == Running && s.steps == 0 {
		s.runRecursive()
	}
	for s.status == Running {
		s.Step()
	}
	return s.Result()
}

func (s *Search) terminalStep() StepResult {
	switch s.status {
	case Found:
		return StepFound
	case Aborted:
		return StepAborted
	default:
		return StepExhausted
	}
}

func (s *Search) finish(status Status) {
	s.status = status
	if !s.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	attrs := []any{
		"status", status.String(),
		"origin", s.origin,
		"goal", s.goal,
		"steps", s.steps,
		"expanded", s.expanded,
		"closed", s.closed.Size(),
	}
	if status == Found {
		attrs = append(attrs, "cost", s.nodes[s.goalIdx].g)
	}
	s.logger.Debug("search finished", attrs...)
}

func (s *Search) heuristic(p core.Point) float64 {
	if s.hScale == 0 {
		return 0
	}
	return p.Euclidean(s.goal) * s.hScale
}

// --- Inspection ---

// Result snapshots the current outcome
func (s *Search) Result() Result {
	r := Result{
		Algorithm: s.alg,
		Status:    s.status,
		Expanded:  s.expanded,
		Steps:     s.steps,
		Closed:    s.Closed(),
	}
	if s.status == Found {
		r.Path = s.Path()
		r.Cost = s.nodes[s.goalIdx].g
	}
	return r
}

// Algorithm returns the algorithm this search runs
func (s *Search) Algorithm() Algorithm { return s.alg }

// Grid returns the searched grid
func (s *Search) Grid() *grid.Grid { return s.grid }

// Origin returns the start cell
func (s *Search) Origin() core.Point { return s.origin }

// Goal returns the target cell
func (s *Search) Goal() core.Point { return s.goal }

// Status returns the lifecycle state
func (s *Search) Status() Status { return s.status }

// Expanded returns the number of closed nodes
func (s *Search) Expanded() int { return s.expanded }

// Steps returns the number of Step cycles performed
func (s *Search) Steps() int { return s.steps }

// Current returns the most recently expanded cell
func (s *Search) Current() (core.Point, bool) {
	return s.grid.PointAt(s.current), s.hasCurrent
}

// State returns the search state of p, Unvisited when out of bounds
func (s *Search) State(p core.Point) NodeState {
	if !s.grid.InBounds(p) {
		return NodeState{}
	}
	n := s.nodes[s.grid.Index(p)]
	st := NodeState{Visit: n.visit, G: n.g, H: n.h}
	if n.visit == Visited {
		st.Parent = s.grid.PointAt(n.parent)
	}
	return st
}

// IsClosed reports whether p has been expanded
func (s *Search) IsClosed(p core.Point) bool {
	return s.grid.InBounds(p) && s.closed.Has(s.grid.Index(p))
}

// Closed lists expanded cells in row-major order
func (s *Search) Closed() []core.Point {
	idx := make([]int, 0, s.closed.Size())
	s.closed.Each(func(i int) {
		idx = append(idx, i)
	})
	return s.pointsSorted(idx)
}

// Open lists frontier cells in row-major order, without duplicates
func (s *Search) Open() []core.Point {
	seen := make(map[int]bool, s.open.len())
	idx := make([]int, 0, s.open.len())
	s.open.each(func(i int) {
		if !seen[i] && !s.closed.Has(i) {
			seen[i] = true
			idx = append(idx, i)
		}
	})
	return s.pointsSorted(idx)
}

func (s *Search) pointsSorted(idx []int) []core.Point {
	slices.Sort(idx)
	pts := make([]core.Point, len(idx))
	for i, v := range idx {
		pts[i] = s.grid.PointAt(v)
	}
	return pts
}
