// Package game is the raylib shell around the simulation: it drives the
// fixed-step clock, renders frames, handles input and turns window
// resizes into debounced world rebuilds. The simulation core never
// touches raylib; headless runs skip this package's drawing entirely.
package game

import (
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/serpentine/config"
	"github.com/pthm-cable/serpentine/sim"
	"github.com/pthm-cable/serpentine/telemetry"
)

// Options configures game construction.
type Options struct {
	Seed           int64
	Verbose        bool
	LogStats       bool
	OutputDir      string
	Headless       bool
	StepsPerUpdate int
}

// Game holds the shell state: the current world plus render/input state.
type Game struct {
	opts Options

	world *sim.World
	clock *sim.FixedStep

	collector *telemetry.Collector
	output    *telemetry.OutputManager

	paused         bool
	verbose        bool
	stepsPerUpdate int
	showPanel      bool

	// Pending debounced resize
	resizeAt   time.Time
	resizeSize [2]int

	screenWidth  int
	screenHeight int
}

// NewGame builds a game and its initial world sized from the configured
// screen dimensions.
func NewGame(opts Options) (*Game, error) {
	cfg := config.Cfg()

	if opts.StepsPerUpdate < 1 {
		opts.StepsPerUpdate = 1
	}

	g := &Game{
		opts:           opts,
		verbose:        opts.Verbose,
		stepsPerUpdate: opts.StepsPerUpdate,
		screenWidth:    cfg.Screen.Width,
		screenHeight:   cfg.Screen.Height,
		clock:          sim.NewFixedStep(time.Duration(cfg.Sim.TickMillis) * time.Millisecond),
	}

	out, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	g.output = out
	if err := g.output.WriteConfig(cfg); err != nil {
		slog.Warn("failed to write config snapshot", "error", err)
	}

	if err := g.buildWorld(opts.Seed); err != nil {
		g.output.Close()
		return nil, err
	}
	return g, nil
}

// buildWorld creates a fresh world for the current screen size. Dimensions
// are rounded down to even, as the cycle construction requires.
func (g *Game) buildWorld(seed int64) error {
	cfg := config.Cfg()

	cols := evenFloor(g.screenWidth / cfg.Screen.CellSize)
	rows := evenFloor(g.screenHeight / cfg.Screen.CellSize)

	w, err := sim.NewWorld(cols, rows, seed, cfg)
	if err != nil {
		return err
	}

	dt := float64(cfg.Sim.TickMillis) / 1000.0
	g.collector = telemetry.NewCollector(cfg.Telemetry.StatsWindow, dt)
	w.SetCollector(g.collector)
	w.SetVerbose(g.verbose)

	g.world = w
	slog.Info("world built", "cols", cols, "rows", rows, "seed", seed)
	return nil
}

// evenFloor rounds n down to the nearest even value, never below 2.
func evenFloor(n int) int {
	n -= n % 2
	if n < 2 {
		n = 2
	}
	return n
}

// Update advances the simulation; called once per render frame.
func (g *Game) Update() {
	g.handleInput()
	g.applyPendingResize()

	if g.paused {
		return
	}

	for g.clock.ShouldStep() {
		for i := 0; i < g.stepsPerUpdate; i++ {
			g.world.Step()
		}
	}

	g.flushStats()
}

// UpdateHeadless advances the simulation without raylib or pacing; used by
// the headless soak mode.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.world.Step()
	}
	g.flushStats()
}

func (g *Game) flushStats() {
	if !g.world.ShouldFlushStats() {
		return
	}
	stats := g.world.FlushStats()
	if g.opts.LogStats {
		stats.LogStats()
	}
	if err := g.output.WriteTelemetry(stats); err != nil {
		slog.Warn("failed to write telemetry", "error", err)
	}
}

// Reset rebuilds the world with a fresh wall-clock seed.
func (g *Game) Reset() {
	if err := g.buildWorld(time.Now().UnixNano()); err != nil {
		// Only reachable with a sub-cell window; keep the old world.
		slog.Error("world rebuild failed", "error", err)
	}
}

// applyPendingResize rebuilds the world once the resize signal has been
// quiet for the debounce period, avoiding thrash on continuous resizes.
func (g *Game) applyPendingResize() {
	if g.resizeAt.IsZero() {
		return
	}
	debounce := time.Duration(config.Cfg().Sim.ResizeDebounceMs) * time.Millisecond
	if time.Since(g.resizeAt) < debounce {
		return
	}
	g.screenWidth = g.resizeSize[0]
	g.screenHeight = g.resizeSize[1]
	g.resizeAt = time.Time{}
	g.Reset()
}

// Tick returns the current world tick.
func (g *Game) Tick() int {
	return g.world.Tick()
}

// Unload releases resources.
func (g *Game) Unload() {
	if err := g.output.Close(); err != nil {
		slog.Warn("failed to close telemetry output", "error", err)
	}
}

// handleInput processes keyboard input and resize signals.
func (g *Game) handleInput() {
	if g.opts.Headless {
		return
	}

	if rl.IsWindowResized() {
		g.resizeAt = time.Now()
		g.resizeSize = [2]int{rl.GetScreenWidth(), rl.GetScreenHeight()}
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}
	if rl.IsKeyPressed(rl.KeyV) {
		g.verbose = !g.verbose
		g.world.SetVerbose(g.verbose)
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.Reset()
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.showPanel = !g.showPanel
	}
}
