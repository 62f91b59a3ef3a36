package sim

import "github.com/pthm-cable/serpentine/grid"

// AgentFrame is the renderable view of one agent. Style is the stable
// per-agent palette index (persists across respawns).
type AgentFrame struct {
	ID    int
	Style int
	Body  []grid.Point
}

// Frame is an immutable snapshot of one tick's world state, taken at a
// tick boundary. Renderers running on another goroutine must draw from a
// Frame, never from the World.
type Frame struct {
	Tick   int
	Cols   int
	Rows   int
	Agents []AgentFrame
	Foods  []grid.Point
}

// Frame copies the current world state into a renderable snapshot.
func (w *World) Frame() Frame {
	f := Frame{
		Tick:   w.tick,
		Cols:   w.size.Cols,
		Rows:   w.size.Rows,
		Agents: make([]AgentFrame, len(w.agents)),
		Foods:  append([]grid.Point(nil), w.foods...),
	}
	for i, a := range w.agents {
		f.Agents[i] = AgentFrame{
			ID:    a.ID,
			Style: a.ID,
			Body:  append([]grid.Point(nil), a.Body...),
		}
	}
	return f
}
