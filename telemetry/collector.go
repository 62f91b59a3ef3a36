// Package telemetry accumulates simulation events into fixed windows and
// writes them out as structured logs and CSV rows.
package telemetry

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int
	dt                  float64

	windowStartTick int

	// Event counters for current window
	cycleMoves        int
	shortcutMoves     int
	survivalMoves     int
	starvedSurvivals  int
	deaths            int
	foodEaten         int
	placementFailures int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec, dt float64) *Collector {
	ticksPerWindow := int(windowDurationSec / dt)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}
	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordMove records one agent decision by class name (cycle, shortcut,
// survival). Unknown classes are counted as survival so nothing is lost.
func (c *Collector) RecordMove(class string) {
	switch class {
	case "cycle":
		c.cycleMoves++
	case "shortcut":
		c.shortcutMoves++
	default:
		c.survivalMoves++
	}
}

// RecordStarvedSurvival records a survival call that found no viable move.
func (c *Collector) RecordStarvedSurvival() {
	c.starvedSurvivals++
}

// RecordDeath records an agent collision and respawn.
func (c *Collector) RecordDeath() {
	c.deaths++
}

// RecordFoodEaten records a consumed food item.
func (c *Collector) RecordFoodEaten() {
	c.foodEaten++
}

// RecordPlacementFailure records a food replenish attempt that exhausted
// its retry budget.
func (c *Collector) RecordPlacementFailure() {
	c.placementFailures++
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
// The caller provides the current tick, population counts and the body
// length of every live agent for distribution stats.
func (c *Collector) Flush(currentTick, agentCount, foodCount int, lengths []float64) WindowStats {
	mean, std, max := ComputeLengthStats(lengths)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,

		AgentCount: agentCount,
		FoodCount:  foodCount,

		CycleMoves:        c.cycleMoves,
		ShortcutMoves:     c.shortcutMoves,
		SurvivalMoves:     c.survivalMoves,
		StarvedSurvivals:  c.starvedSurvivals,
		Deaths:            c.deaths,
		FoodEaten:         c.foodEaten,
		PlacementFailures: c.placementFailures,

		LengthMean: mean,
		LengthStd:  std,
		LengthMax:  max,
	}

	c.windowStartTick = currentTick
	c.cycleMoves = 0
	c.shortcutMoves = 0
	c.survivalMoves = 0
	c.starvedSurvivals = 0
	c.deaths = 0
	c.foodEaten = 0
	c.placementFailures = 0

	return stats
}
