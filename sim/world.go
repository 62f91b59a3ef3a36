// Package sim owns the world state and advances it one discrete tick at a
// time. The World is the single owner of agents, food and target claims;
// the decision engine only ever sees read-only views plus the claims
// table, which is the one shared-mutation point (agents deciding later in
// a tick must see earlier agents' food reservations).
package sim

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/serpentine/ai"
	"github.com/pthm-cable/serpentine/config"
	"github.com/pthm-cable/serpentine/cycle"
	"github.com/pthm-cable/serpentine/grid"
	"github.com/pthm-cable/serpentine/rng"
	"github.com/pthm-cable/serpentine/telemetry"
)

// World holds the complete simulation state for one grid configuration.
// A resize is a full reset: build a new World, never mutate dimensions.
type World struct {
	size   grid.Size
	cyc    *cycle.Cycle
	rand   *rng.Stream
	params ai.Params

	agents []*Agent // ascending id; decision order is significant
	foods  []grid.Point
	claims ai.Claims

	tick        int
	spawnLength int
	minFood     int
	retries     int

	collector *telemetry.Collector
	verbose   bool
}

// NewWorld builds the cycle for an even cols x rows grid and spawns the
// configured agent and food populations. Odd dimensions fail with the
// cycle builder's configuration error; callers round down to even first.
func NewWorld(cols, rows int, seed int64, cfg *config.Config) (*World, error) {
	r := rng.New(seed)
	cyc, err := cycle.Build(cols, rows, r)
	if err != nil {
		return nil, fmt.Errorf("building world: %w", err)
	}

	w := &World{
		size: grid.Size{Cols: cols, Rows: rows},
		cyc:  cyc,
		rand: r,
		params: ai.Params{
			Lookahead:       cfg.AI.Lookahead,
			DangerThreshold: cfg.AI.DangerThreshold,
			FloodFillCap:    cfg.AI.FloodFillCap,
			PenaltyOffGrid:  cfg.AI.PenaltyOffGrid,
			PenaltyNear:     cfg.AI.PenaltyNear,
			PenaltyFar:      cfg.AI.PenaltyFar,
		},
		claims:      make(ai.Claims),
		spawnLength: cfg.Sim.SpawnLength,
		minFood:     cfg.Sim.MinFood,
		retries:     cfg.Sim.PlacementRetries,
	}

	for id := 0; id < cfg.Sim.Agents; id++ {
		w.agents = append(w.agents, w.freshAgent(id))
	}
	w.replenishFood()

	return w, nil
}

// SetCollector attaches a telemetry collector. Optional; nil disables.
func (w *World) SetCollector(c *telemetry.Collector) {
	w.collector = c
}

// SetVerbose enables per-decision diagnostic logging at debug level.
func (w *World) SetVerbose(v bool) {
	w.verbose = v
}

// Size returns the grid dimensions.
func (w *World) Size() grid.Size { return w.size }

// Tick returns the number of completed steps.
func (w *World) Tick() int { return w.tick }

// Cycle exposes the immutable Hamiltonian cycle (for inspection tools).
func (w *World) Cycle() *cycle.Cycle { return w.cyc }

// Step advances the simulation by one tick. Agents decide in ascending id
// order against a snapshot of all bodies taken before any agent moved, so
// a later agent may still move into a cell an earlier agent just vacated.
// That snapshot semantics is deliberate and pinned by tests.
func (w *World) Step() {
	w.tick++

	snapshot := w.bodySnapshot()

	for _, a := range w.agents {
		obstacles := otherBodies(snapshot, a.ID)

		dec := ai.Decide(ai.View{
			AgentID:   a.ID,
			Body:      a.Body,
			Obstacles: obstacles,
			Foods:     w.foods,
			Cycle:     w.cyc,
		}, w.claims, w.params)

		if w.collector != nil {
			w.collector.RecordMove(dec.Class.String())
			if !dec.OK {
				w.collector.RecordStarvedSurvival()
			}
		}
		if w.verbose && dec.Class == ai.MoveSurvival {
			slog.Debug("survival move", "agent", a.ID, "reason", dec.Reason, "viable", dec.OK)
		}

		if dec.OK {
			a.Dir = dec.Dir
		}
		// On no viable move the heading stays put and the collision rule
		// below resolves the agent.

		newHead := a.Head().Add(a.Dir)
		if w.collides(a, newHead) {
			w.respawn(a)
			continue
		}

		a.Body = append([]grid.Point{newHead}, a.Body...)
		if i := w.foodIndexAt(newHead); i >= 0 {
			w.eatFood(a, i)
		} else {
			a.Body = a.Body[:len(a.Body)-1]
		}
	}

	w.replenishFood()
}

// bodySnapshot captures every agent's pre-tick body cells, keyed by owner.
func (w *World) bodySnapshot() map[grid.Point]int {
	snap := make(map[grid.Point]int)
	for _, a := range w.agents {
		for _, c := range a.Body {
			snap[c] = a.ID
		}
	}
	return snap
}

// otherBodies filters a snapshot down to cells not owned by agentID.
func otherBodies(snapshot map[grid.Point]int, agentID int) map[grid.Point]bool {
	obs := make(map[grid.Point]bool, len(snapshot))
	for c, id := range snapshot {
		if id != agentID {
			obs[c] = true
		}
	}
	return obs
}

// collides applies the collision rule: out of bounds, own existing body,
// or any other agent's body. Unlike the decision view, which works from
// the pre-tick snapshot, the collision check reads live bodies (earlier
// agents have already moved), so two agents can never end a tick sharing
// a cell.
func (w *World) collides(a *Agent, newHead grid.Point) bool {
	if !w.size.InBounds(newHead) {
		return true
	}
	if a.Occupies(newHead) {
		return true
	}
	for _, other := range w.agents {
		if other.ID != a.ID && other.Occupies(newHead) {
			return true
		}
	}
	return false
}

// respawn replaces a collided agent's body with a fresh spawn, keeping its
// id and visual identity, and drops its food claim.
func (w *World) respawn(a *Agent) {
	if w.collector != nil {
		w.collector.RecordDeath()
	}
	if w.verbose {
		slog.Debug("agent respawn", "agent", a.ID, "tick", w.tick, "length", len(a.Body))
	}
	fresh := w.freshAgent(a.ID)
	a.Body = fresh.Body
	a.Dir = fresh.Dir
	delete(w.claims, a.ID)
}

// freshAgent builds a spawn-length body laid along the cycle at a random
// offset, head at the highest cycle position so the default move simply
// continues the cycle. Random placement retries until the body is clear of
// other agents and food; if the budget runs out, every cycle offset is
// swept for a body clear of other agents, and any food underneath is
// evicted for replenishment to replace at the end of the tick. An overlap
// is only possible when no spawn-length run of agent-free cells exists.
func (w *World) freshAgent(id int) *Agent {
	var body []grid.Point
	for attempt := 0; attempt < w.retries; attempt++ {
		body = w.spawnBodyAt(w.rand.IntN(w.cyc.Len()))
		if w.placementClear(id, body) {
			break
		}
	}
	if !w.agentClear(id, body) {
		base := w.rand.IntN(w.cyc.Len())
		for k := 0; k < w.cyc.Len(); k++ {
			cand := w.spawnBodyAt(base + k)
			if w.agentClear(id, cand) {
				body = cand
				break
			}
		}
	}
	for _, c := range body {
		if i := w.foodIndexAt(c); i >= 0 {
			w.foods = append(w.foods[:i], w.foods[i+1:]...)
		}
	}
	head := body[0]
	return &Agent{
		ID:   id,
		Body: body,
		Dir:  body[1].DeltaTo(head),
	}
}

// spawnBodyAt lays a spawn-length body along the cycle starting at offset,
// head at the highest cycle position.
func (w *World) spawnBodyAt(offset int) []grid.Point {
	body := make([]grid.Point, w.spawnLength)
	for i := 0; i < w.spawnLength; i++ {
		body[i] = w.cyc.At(offset + w.spawnLength - 1 - i)
	}
	return body
}

// agentClear reports whether the candidate body avoids every other agent's
// cells.
func (w *World) agentClear(id int, body []grid.Point) bool {
	for _, c := range body {
		for _, a := range w.agents {
			if a.ID != id && a.Occupies(c) {
				return false
			}
		}
	}
	return true
}

// placementClear reports whether the candidate body avoids every other
// agent's cells and all food.
func (w *World) placementClear(id int, body []grid.Point) bool {
	if !w.agentClear(id, body) {
		return false
	}
	for _, c := range body {
		if w.foodIndexAt(c) >= 0 {
			return false
		}
	}
	return true
}

// eatFood removes food item i, clears the eater's claim and lets the body
// keep its new head without trimming the tail (growth by one).
func (w *World) eatFood(a *Agent, i int) {
	w.foods = append(w.foods[:i], w.foods[i+1:]...)
	delete(w.claims, a.ID)
	if w.collector != nil {
		w.collector.RecordFoodEaten()
	}
	if w.verbose {
		slog.Debug("food eaten", "agent", a.ID, "length", len(a.Body))
	}
}

// foodIndexAt returns the index of the food at p, or -1.
func (w *World) foodIndexAt(p grid.Point) int {
	for i, f := range w.foods {
		if f == p {
			return i
		}
	}
	return -1
}

// replenishFood tops the food population back up to the minimum, sampling
// random cells with a bounded retry budget per item. Exhausting the budget
// is not an error; the shortfall is retried next tick when the grid opens
// up.
func (w *World) replenishFood() {
	for len(w.foods) < w.minFood {
		p, ok := w.randomFreeCell()
		if !ok {
			if w.collector != nil {
				w.collector.RecordPlacementFailure()
			}
			slog.Debug("food placement exhausted", "tick", w.tick, "food", len(w.foods))
			return
		}
		w.foods = append(w.foods, p)
	}
}

// randomFreeCell samples up to the retry budget looking for a cell free of
// agents and existing food.
func (w *World) randomFreeCell() (grid.Point, bool) {
	for attempt := 0; attempt < w.retries; attempt++ {
		p := grid.Point{X: w.rand.IntN(w.size.Cols), Y: w.rand.IntN(w.size.Rows)}
		if w.cellFree(p) {
			return p, true
		}
	}
	return grid.Point{}, false
}

func (w *World) cellFree(p grid.Point) bool {
	for _, a := range w.agents {
		if a.Occupies(p) {
			return false
		}
	}
	return w.foodIndexAt(p) < 0
}

// FlushStats drains the attached collector into a WindowStats. Callers
// check collector readiness via ShouldFlush; nil collector yields zero
// stats.
func (w *World) FlushStats() telemetry.WindowStats {
	if w.collector == nil {
		return telemetry.WindowStats{}
	}
	lengths := make([]float64, len(w.agents))
	for i, a := range w.agents {
		lengths[i] = float64(len(a.Body))
	}
	return w.collector.Flush(w.tick, len(w.agents), len(w.foods), lengths)
}

// ShouldFlushStats reports whether the telemetry window is full.
func (w *World) ShouldFlushStats() bool {
	return w.collector != nil && w.collector.ShouldFlush(w.tick)
}
