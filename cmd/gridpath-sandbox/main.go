package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lixenwraith/gridpath/audio"
	"github.com/lixenwraith/gridpath/config"
	"github.com/lixenwraith/gridpath/grid"
	"github.com/lixenwraith/gridpath/pathfind"
	"github.com/lixenwraith/gridpath/search"
)

var (
	configFlag    = flag.String("config", "", "Scenario file (.toml, .yaml, .yml)")
	algorithmFlag = flag.String("algorithm", "", "Algorithm name, overrides the scenario")
	widthFlag     = flag.Int("width", 0, "Grid width, overrides the scenario")
	heightFlag    = flag.Int("height", 0, "Grid height, overrides the scenario")
	layoutFlag    = flag.String("layout", "", "Grid layout: random, open, maze")
	seedFlag      = flag.Int64("seed", 0, "Generator seed, 0 = time-seeded")
	muteFlag      = flag.Bool("mute", false, "Disable completion cues")
	logFileFlag   = flag.String("log-file", "", "Write debug logs to this file")
)

// Log file rotation, size in megabytes
const (
	logMaxSizeMB  = 10
	logMaxBackups = 3
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "gridpath-sandbox: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	sc, err := loadScenario()
	if err != nil {
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if *logFileFlag != "" {
		w := &lumberjack.Logger{
			Filename:   *logFileFlag,
			MaxSize:    logMaxSizeMB,
			MaxBackups: logMaxBackups,
		}
		defer w.Close()
		logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	cues := audio.NewCuePlayer()
	if !*muteFlag {
		if err := cues.Initialize(); err != nil {
			// Non-fatal, the sandbox runs silently
			logger.Warn("audio initialization failed", "error", err)
		}
		defer cues.Cleanup()
	}

	sb, err := NewSandbox(sc, cues, logger)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	setCrashScreen(screen.Fini)
	defer func() {
		handleCrash(recover())
	}()

	loop(screen, sb)
	return nil
}

func loadScenario() (pathfind.Scenario, error) {
	sc := pathfind.DefaultScenario()
	sc.Grid.Width, sc.Grid.Height = 24, 16
	sc.Grid.Origin.X, sc.Grid.Origin.Y = 1, 1
	sc.Grid.Goal.X, sc.Grid.Goal.Y = 22, 14
	sc.Grid.WalkableProbability = 0.7

	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return sc, err
		}
		sc = loaded
	}
	if *algorithmFlag != "" {
		alg, err := search.ParseAlgorithm(*algorithmFlag)
		if err != nil {
			return sc, err
		}
		sc.Algorithm = alg
	}
	if *widthFlag > 0 {
		sc.Grid.Width = *widthFlag
	}
	if *heightFlag > 0 {
		sc.Grid.Height = *heightFlag
	}
	if *layoutFlag != "" {
		l, err := grid.ParseLayout(*layoutFlag)
		if err != nil {
			return sc, err
		}
		sc.Grid.Layout = l
	}
	if *seedFlag != 0 {
		sc.Grid.Seed = *seedFlag
	}
	return sc, sc.Grid.Validate()
}

// display is the subset of tcell.Screen the loop drives
type display interface {
	canvas
	Clear()
	Show()
	PollEvent() tcell.Event
}

func loop(scr display, sb *Sandbox) {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	goSafe(func() {
		for {
			ev := scr.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	})

	redraw := func() {
		scr.Clear()
		sb.draw(scr)
		scr.Show()
	}
	redraw()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !sb.handleInput(ev) {
				return
			}
			redraw()
		case now := <-ticker.C:
			if sb.playing {
				sb.tick(now)
				redraw()
			}
		}
	}
}
