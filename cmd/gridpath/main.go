package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/lixenwraith/gridpath/config"
	"github.com/lixenwraith/gridpath/core"
	"github.com/lixenwraith/gridpath/grid"
	"github.com/lixenwraith/gridpath/pathfind"
	"github.com/lixenwraith/gridpath/search"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
		os.Exit(0)
	case errors.Is(err, pathfind.ErrNoPathFound):
		fmt.Fprintf(os.Stderr, "gridpath: %v\n", err)
		os.Exit(2)
	default:
		fmt.Fprintf(os.Stderr, "gridpath: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	algorithm  string
	dump       string
	noMap      bool
	logLevel   string
	logFile    string

	width, height int
	origin, goal  string
	probability   float64
	seed          int64
	layout        string
	braiding      float64
	cornerCutting bool
	maxSteps      int
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	def := pathfind.DefaultScenario()

	var o options
	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "Scenario file (.toml, .yaml, .yml)")
	fs.StringVar(&o.algorithm, "algorithm", def.Algorithm.String(), "Algorithm name, or 'all' to compare every algorithm")
	fs.StringVar(&o.dump, "dump", "", "Print the effective scenario as toml or yaml and exit")
	fs.BoolVar(&o.noMap, "no-map", false, "Skip the ASCII map")
	fs.StringVar(&o.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	fs.StringVar(&o.logFile, "log-file", "", "Append JSON logs to this file instead of stderr")
	fs.IntVar(&o.width, "width", def.Grid.Width, "Grid width")
	fs.IntVar(&o.height, "height", def.Grid.Height, "Grid height")
	fs.StringVar(&o.origin, "origin", formatPoint(def.Grid.Origin), "Search origin as x,y")
	fs.StringVar(&o.goal, "goal", formatPoint(def.Grid.Goal), "Search goal as x,y")
	fs.Float64Var(&o.probability, "p", def.Grid.WalkableProbability, "Walkable probability for the random layout [0.0 - 1.0]")
	fs.Int64Var(&o.seed, "seed", 0, "Generator seed, 0 = time-seeded")
	fs.StringVar(&o.layout, "layout", def.Grid.Layout.String(), "Grid layout: random, open, maze")
	fs.Float64Var(&o.braiding, "braiding", def.Grid.Braiding, "Maze braiding factor [0.0 - 1.0]")
	fs.BoolVar(&o.cornerCutting, "corner-cutting", false, "Allow diagonal moves past blocked corners")
	fs.IntVar(&o.maxSteps, "max-steps", 0, "Abort searches after this many steps, 0 = unlimited")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sc := def
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return err
		}
		sc = loaded
	}

	compareAll, err := applyFlags(fs, &o, &sc)
	if err != nil {
		return err
	}
	if err := sc.Grid.Validate(); err != nil {
		return err
	}

	if o.dump != "" {
		return config.Encode(stdout, config.Format(strings.ToLower(o.dump)), sc)
	}

	logger, closer, err := setupLogger(o.logLevel, o.logFile, stderr)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	planner := pathfind.NewPlanner(pathfind.WithLogger(logger), pathfind.WithMaxSteps(sc.MaxSteps))
	g, err := grid.Build(sc.Grid)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Grid %dx%d seed %d layout %s, %d walkable\n",
		g.Width, g.Height, g.Seed, sc.Grid.Layout, g.WalkableCount())
	fmt.Fprintln(stdout, baseline(g))

	if compareAll {
		reports, err := planner.FindAll(ctx, g)
		if err != nil {
			return err
		}
		for _, rep := range reports {
			fmt.Fprintln(stdout, summary(rep))
		}
		if !o.noMap {
			fmt.Fprintln(stdout)
			draw(stdout, g, bestPath(reports))
		}
		return nil
	}

	rep, err := planner.Search(ctx, g, sc.Algorithm)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, summary(rep))
	if !o.noMap {
		fmt.Fprintln(stdout)
		draw(stdout, g, rep.Result.Path)
	}

	switch rep.Result.Status {
	case search.NoPath:
		return fmt.Errorf("%w: %s", pathfind.ErrNoPathFound, sc.Algorithm)
	case search.Aborted:
		return fmt.Errorf("%w: %s after %d steps", pathfind.ErrStepLimit, sc.Algorithm, rep.Result.Steps)
	}
	return nil
}

// applyFlags overrides scenario fields with explicitly set flags only
// Returns true when -algorithm all was requested
func applyFlags(fs *flag.FlagSet, o *options, sc *pathfind.Scenario) (bool, error) {
	var (
		compareAll bool
		err        error
	)
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "algorithm":
			if strings.EqualFold(o.algorithm, "all") {
				compareAll = true
				return
			}
			sc.Algorithm, err = search.ParseAlgorithm(o.algorithm)
		case "width":
			sc.Grid.Width = o.width
		case "height":
			sc.Grid.Height = o.height
		case "origin":
			sc.Grid.Origin, err = parsePoint(o.origin)
		case "goal":
			sc.Grid.Goal, err = parsePoint(o.goal)
		case "p":
			sc.Grid.WalkableProbability = o.probability
		case "seed":
			sc.Grid.Seed = o.seed
		case "layout":
			sc.Grid.Layout, err = grid.ParseLayout(o.layout)
		case "braiding":
			sc.Grid.Braiding = o.braiding
		case "corner-cutting":
			sc.Grid.AllowCornerCutting = o.cornerCutting
		case "max-steps":
			sc.MaxSteps = o.maxSteps
		}
		if err != nil {
			err = fmt.Errorf("-%s: %w", f.Name, err)
		}
	})
	return compareAll, err
}

func parsePoint(s string) (core.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return core.Point{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return core.Point{}, fmt.Errorf("bad x in %q", s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return core.Point{}, fmt.Errorf("bad y in %q", s)
	}
	return core.Point{X: x, Y: y}, nil
}

func formatPoint(p core.Point) string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

// bestPath picks the cheapest found path across reports
func bestPath(reports []pathfind.Report) []core.Point {
	var best *search.Result
	for i := range reports {
		r := &reports[i].Result
		if r.Found() && (best == nil || r.Cost < best.Cost) {
			best = r
		}
	}
	if best == nil {
		return nil
	}
	return best.Path
}
