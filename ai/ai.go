// Package ai holds the per-agent decision engine. Decide is a pure
// function of the world view it receives; the single sanctioned mutation
// is the food claim table, which exists so agents deciding later in the
// same tick can see earlier agents' reservations.
package ai

import (
	"github.com/pthm-cable/serpentine/cycle"
	"github.com/pthm-cable/serpentine/grid"
)

// Move classification, carried on decisions for diagnostics only.
type MoveClass int

const (
	MoveCycle MoveClass = iota
	MoveShortcut
	MoveSurvival
)

func (m MoveClass) String() string {
	switch m {
	case MoveCycle:
		return "cycle"
	case MoveShortcut:
		return "shortcut"
	case MoveSurvival:
		return "survival"
	}
	return "unknown"
}

// Decision is the outcome of one Decide call. OK is false when survival
// mode found no viable neighbor; the agent then keeps its heading and the
// world's collision rule resolves it.
type Decision struct {
	Dir    grid.Delta
	Class  MoveClass
	Reason string
	OK     bool
}

// Claims maps agent id to the index of the food item it is targeting
// within the live food slice. Entries go stale when food is consumed and
// the slice compacts; readers must treat out-of-range indices as no claim.
type Claims map[int]int

// View is the read-only world state one agent decides against.
type View struct {
	AgentID   int
	Body      []grid.Point // head first
	Obstacles map[grid.Point]bool
	Foods     []grid.Point
	Cycle     *cycle.Cycle
}

// Tunables for the decision procedure. Values mirror the config defaults;
// tests construct them directly.
type Params struct {
	Lookahead       int // cycle cells checked ahead before panicking
	DangerThreshold int // max danger score a shortcut may carry
	FloodFillCap    int // BFS visit cap in survival scoring
	PenaltyOffGrid  int
	PenaltyNear     int // obstacle at Chebyshev distance 1
	PenaltyFar      int // obstacle at Chebyshev distance 2
}

// DefaultParams returns the standard tuning.
func DefaultParams() Params {
	return Params{
		Lookahead:       5,
		DangerThreshold: 15,
		FloodFillCap:    300,
		PenaltyOffGrid:  5,
		PenaltyNear:     20,
		PenaltyFar:      10,
	}
}

// Decide picks the agent's next move, in strict priority order: blocked
// cycle step or blocked lookahead window fall through to survival mode;
// otherwise a safety-gated shortcut toward the nearest unclaimed food;
// otherwise the default cycle-following step.
func Decide(v View, claims Claims, p Params) Decision {
	head := v.Body[0]
	headIdx := v.Cycle.IndexOf(head)
	next := v.Cycle.At(headIdx + 1)

	if v.Obstacles[next] {
		return survive(v, p, "immediate blockage")
	}
	for k := 2; k <= p.Lookahead; k++ {
		if v.Obstacles[v.Cycle.At(headIdx+k)] {
			return survive(v, p, "path blocked ahead")
		}
	}

	if target, ok := claimNearestFood(v, claims, headIdx); ok {
		foodDist := v.Cycle.Dist(headIdx, v.Cycle.IndexOf(target))
		tailDist := v.Cycle.Dist(headIdx, v.Cycle.IndexOf(v.Body[len(v.Body)-1]))
		if d, ok := findShortcut(v, p, headIdx, foodDist, tailDist); ok {
			return Decision{Dir: d, Class: MoveShortcut, OK: true}
		}
	}

	return Decision{Dir: head.DeltaTo(next), Class: MoveCycle, OK: true}
}

// claimNearestFood finds the closest food by forward cyclic distance,
// skipping items already claimed by another agent, and records the claim.
func claimNearestFood(v View, claims Claims, headIdx int) (grid.Point, bool) {
	best := -1
	bestDist := 0
	for i, f := range v.Foods {
		if claimedByOther(claims, v.AgentID, i, len(v.Foods)) {
			continue
		}
		d := v.Cycle.Dist(headIdx, v.Cycle.IndexOf(f))
		if best == -1 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if best == -1 {
		return grid.Point{}, false
	}
	claims[v.AgentID] = best
	return v.Foods[best], true
}

// claimedByOther reports whether food index i is reserved by a different
// agent. Stale claims pointing past the live food slice count as absent.
func claimedByOther(claims Claims, agentID, i, foodCount int) bool {
	for id, idx := range claims {
		if id == agentID {
			continue
		}
		if idx >= 0 && idx < foodCount && idx == i {
			return true
		}
	}
	return false
}

// findShortcut scans head neighbors in the fixed direction order and
// returns the first that passes every safety gate. The tail-distance gate
// keeps the shortcut from cutting ahead of the agent's own tail, which
// would leave the body straddling a cycle segment the head no longer
// precedes.
func findShortcut(v View, p Params, headIdx, foodDist, tailDist int) (grid.Delta, bool) {
	head := v.Body[0]
	size := v.Cycle.Size()
	for _, d := range grid.Directions4 {
		n := head.Add(d)
		if !size.InBounds(n) || v.Obstacles[n] {
			continue
		}
		if onBody(v.Body, n, true) {
			continue
		}
		if dangerScore(v, p, n) > p.DangerThreshold {
			continue
		}
		nDist := v.Cycle.Dist(headIdx, v.Cycle.IndexOf(n))
		if nDist > 1 && nDist < foodDist && nDist < tailDist {
			return d, true
		}
	}
	return grid.Delta{}, false
}

// onBody reports whether p is a body cell. With skipTail the tail cell is
// ignored: it vacates this tick, so moving into it is legal.
func onBody(body []grid.Point, p grid.Point, skipTail bool) bool {
	end := len(body)
	if skipTail && end > 0 {
		end--
	}
	for i := 0; i < end; i++ {
		if body[i] == p {
			return true
		}
	}
	return false
}
