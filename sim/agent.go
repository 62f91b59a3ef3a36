package sim

import "github.com/pthm-cable/serpentine/grid"

// Agent is one snake: an ordered body (head first) plus its current
// heading. The id is stable across respawns and doubles as the palette
// index handed to the renderer.
type Agent struct {
	ID   int
	Body []grid.Point
	Dir  grid.Delta
}

// Head returns the agent's head cell.
func (a *Agent) Head() grid.Point {
	return a.Body[0]
}

// Tail returns the agent's tail cell.
func (a *Agent) Tail() grid.Point {
	return a.Body[len(a.Body)-1]
}

// Occupies reports whether p is one of the agent's body cells.
func (a *Agent) Occupies(p grid.Point) bool {
	for _, c := range a.Body {
		if c == p {
			return true
		}
	}
	return false
}
