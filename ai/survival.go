package ai

import "github.com/pthm-cable/serpentine/grid"

// survive ranks every free head neighbor by open space reached minus a
// doubled danger penalty and moves toward the best one. When nothing is
// free the decision reports no move; the world's collision rule turns
// that into a respawn.
func survive(v View, p Params, reason string) Decision {
	head := v.Body[0]
	size := v.Cycle.Size()

	bestScore := 0
	var bestDir grid.Delta
	found := false

	for _, d := range grid.Directions4 {
		n := head.Add(d)
		if !size.InBounds(n) || v.Obstacles[n] || onBody(v.Body, n, false) {
			continue
		}
		score := floodFillCount(v, p, n) - 2*dangerScore(v, p, n)
		if !found || score > bestScore {
			bestScore, bestDir, found = score, d, true
		}
	}

	if !found {
		return Decision{Class: MoveSurvival, Reason: reason, OK: false}
	}
	return Decision{Dir: bestDir, Class: MoveSurvival, Reason: reason, OK: true}
}

// dangerScore sums penalties over the 5x5 neighborhood around p: off-grid
// cells and obstacles both raise the score, with adjacent obstacles
// weighted heaviest. Higher means more hemmed in. Only external obstacles
// count; the agent's own body is gated separately where it matters.
func dangerScore(v View, p Params, pos grid.Point) int {
	size := v.Cycle.Size()
	score := 0
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			c := grid.Point{X: pos.X + dx, Y: pos.Y + dy}
			switch {
			case !size.InBounds(c):
				score += p.PenaltyOffGrid
			case v.Obstacles[c]:
				if pos.Chebyshev(c) == 1 {
					score += p.PenaltyNear
				} else {
					score += p.PenaltyFar
				}
			}
		}
	}
	return score
}

// floodFillCount counts free cells reachable from start, breadth-first,
// capped at p.FloodFillCap visits. Beyond the cap only relative magnitude
// matters, not the exact open-area size.
func floodFillCount(v View, p Params, start grid.Point) int {
	size := v.Cycle.Size()
	if !size.InBounds(start) || v.Obstacles[start] || onBody(v.Body, start, false) {
		return 0
	}

	visited := map[grid.Point]bool{start: true}
	queue := []grid.Point{start}
	count := 0

	var buf [4]grid.Point
	for len(queue) > 0 && count < p.FloodFillCap {
		cur := queue[0]
		queue = queue[1:]
		count++

		for _, n := range size.Neighbors4(cur, buf[:0]) {
			if visited[n] || v.Obstacles[n] || onBody(v.Body, n, false) {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}
	return count
}
