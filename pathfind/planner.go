package pathfind

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/gridpath/core"
	"github.com/lixenwraith/gridpath/grid"
	"github.com/lixenwraith/gridpath/parameter"
	"github.com/lixenwraith/gridpath/search"
)

// Report is the outcome of one planner run
type Report struct {
	RunID  uuid.UUID
	Grid   *grid.Grid
	Result search.Result

	Elapsed time.Duration

	// Cached is set when Result came from the path cache
	Cached bool
}

// Planner runs searches with logging, run ids and an optional result cache
// Safe for concurrent use
type Planner struct {
	logger   *slog.Logger
	cache    *PathCache
	maxSteps int
}

// PlannerOption configures a Planner
type PlannerOption func(*Planner)

// WithLogger sets the planner logger, searches log through it at debug level
func WithLogger(l *slog.Logger) PlannerOption {
	return func(p *Planner) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithCache replaces the default cache, nil disables caching
func WithCache(c *PathCache) PlannerOption {
	return func(p *Planner) { p.cache = c }
}

// WithMaxSteps caps every search run by the planner, 0 = unlimited
func WithMaxSteps(n int) PlannerOption {
	return func(p *Planner) { p.maxSteps = n }
}

// NewPlanner creates a planner with a discard logger and a default-sized cache
func NewPlanner(opts ...PlannerOption) *Planner {
	p := &Planner{
		logger:   slog.New(slog.DiscardHandler),
		cache:    NewPathCache(parameter.PathCacheCapacity),
		maxSteps: parameter.SearchDefaultMaxSteps,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Cache returns the planner's cache, nil when disabled
func (p *Planner) Cache() *PathCache {
	return p.cache
}

// Plan builds the scenario grid and runs its algorithm
func (p *Planner) Plan(ctx context.Context, sc Scenario) (Report, error) {
	g, err := grid.Build(sc.Grid)
	if err != nil {
		return Report{}, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}
	p.logger.Debug("grid built",
		"scenario", sc.Name,
		"width", g.Width,
		"height", g.Height,
		"seed", g.Seed,
		"layout", sc.Grid.Layout.String(),
		"walkable", g.WalkableCount(),
	)

	maxSteps := p.maxSteps
	if sc.MaxSteps > 0 {
		maxSteps = sc.MaxSteps
	}
	return p.run(ctx, g, sc.Algorithm, g.Origin, g.Goal, maxSteps)
}

// FindPath plans the scenario and returns the path or the outcome as an error
func (p *Planner) FindPath(ctx context.Context, sc Scenario) ([]core.Point, error) {
	rep, err := p.Plan(ctx, sc)
	if err != nil {
		return nil, err
	}
	if err := outcomeErr(rep.Grid, rep.Result); err != nil {
		return nil, err
	}
	return rep.Result.Path, nil
}

// Search runs alg on an existing grid from its origin to its goal
func (p *Planner) Search(ctx context.Context, g *grid.Grid, alg search.Algorithm) (Report, error) {
	if g == nil {
		return Report{}, fmt.Errorf("pathfind: nil grid")
	}
	return p.run(ctx, g, alg, g.Origin, g.Goal, p.maxSteps)
}

// SearchBetween runs alg on g between arbitrary endpoints
func (p *Planner) SearchBetween(ctx context.Context, g *grid.Grid, alg search.Algorithm, origin, goal core.Point) (Report, error) {
	if g == nil {
		return Report{}, fmt.Errorf("pathfind: nil grid")
	}
	return p.run(ctx, g, alg, origin, goal, p.maxSteps)
}

// FindAll runs every listed algorithm concurrently over the shared grid
// No algorithms means all of them; reports keep the argument order
// The first failure cancels the remaining runs
func (p *Planner) FindAll(ctx context.Context, g *grid.Grid, algs ...search.Algorithm) ([]Report, error) {
	if g == nil {
		return nil, fmt.Errorf("pathfind: nil grid")
	}
	if len(algs) == 0 {
		algs = search.Algorithms()
	}

	reports := make([]Report, len(algs))
	eg, gctx := errgroup.WithContext(ctx)
	for i, alg := range algs {
		eg.Go(func() error {
			rep, err := p.run(gctx, g, alg, g.Origin, g.Goal, p.maxSteps)
			reports[i] = rep
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return reports, err
	}
	return reports, nil
}

func (p *Planner) run(ctx context.Context, g *grid.Grid, alg search.Algorithm, origin, goal core.Point, maxSteps int) (Report, error) {
	id := uuid.New()
	rep := Report{RunID: id, Grid: g}
	log := p.logger.With("run", id.String())

	if err := ctx.Err(); err != nil {
		return rep, err
	}

	if p.cache != nil {
		if r, ok := p.cache.Lookup(g, alg, origin, goal); ok {
			rep.Result = r
			rep.Cached = true
			log.Debug("path cache hit", "algorithm", alg.String(), "status", r.Status.String())
			return rep, nil
		}
	}

	s, err := search.New(g, alg, origin, goal, search.WithLogger(log), search.WithMaxSteps(maxSteps))
	if err != nil {
		return rep, err
	}

	start := time.Now()
	err = drive(ctx, s)
	rep.Elapsed = time.Since(start)
	rep.Result = s.Result()
	if err != nil {
		log.Warn("search cancelled",
			"algorithm", alg.String(),
			"steps", s.Steps(),
			"error", err,
		)
		return rep, err
	}

	if p.cache != nil {
		p.cache.Store(g, alg, origin, goal, rep.Result)
	}

	attrs := []any{
		"algorithm", alg.String(),
		"status", rep.Result.Status.String(),
		"steps", rep.Result.Steps,
		"expanded", rep.Result.Expanded,
		"elapsed", rep.Elapsed,
	}
	if rep.Result.Found() {
		attrs = append(attrs, "path_len", len(rep.Result.Path), "cost", rep.Result.Cost)
	}
	log.Info("search complete", attrs...)
	return rep, nil
}

// drive steps s to completion, checking ctx every PlannerCancelCheckSteps steps
func drive(ctx context.Context, s *search.Search) error {
	for n := 0; ; n++ {
		if n%parameter.PlannerCancelCheckSteps == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if s.Step().Done() {
			return nil
		}
	}
}
