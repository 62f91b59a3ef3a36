// Package grid provides integer grid coordinates and adjacency helpers
// shared by the cycle builder, the path AI and the world simulation.
package grid

// Point is a cell coordinate on the grid, origin top-left.
type Point struct {
	X int
	Y int
}

// Delta is a unit direction vector between 4-adjacent cells.
type Delta struct {
	DX int
	DY int
}

// Direction deltas. Directions4 fixes the enumeration order used wherever
// "first qualifying neighbor" matters, so decision output is reproducible.
var (
	Up    = Delta{0, -1}
	Down  = Delta{0, 1}
	Left  = Delta{-1, 0}
	Right = Delta{1, 0}

	Directions4 = [4]Delta{Up, Down, Left, Right}
)

// Add returns the point offset by d.
func (p Point) Add(d Delta) Point {
	return Point{X: p.X + d.DX, Y: p.Y + d.DY}
}

// DeltaTo returns the delta that moves p to q. Only meaningful for
// 4-adjacent points; callers guarantee adjacency.
func (p Point) DeltaTo(q Point) Delta {
	return Delta{DX: q.X - p.X, DY: q.Y - p.Y}
}

// Manhattan returns the L1 distance between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Chebyshev returns the L∞ distance between p and q.
func (p Point) Chebyshev(q Point) int {
	dx := abs(p.X - q.X)
	dy := abs(p.Y - q.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// Size describes grid dimensions in cells.
type Size struct {
	Cols int
	Rows int
}

// Cells returns the total cell count.
func (s Size) Cells() int {
	return s.Cols * s.Rows
}

// InBounds reports whether p lies on the grid.
func (s Size) InBounds(p Point) bool {
	return p.X >= 0 && p.X < s.Cols && p.Y >= 0 && p.Y < s.Rows
}

// Index converts p to its row-major index. No bounds check.
func (s Size) Index(p Point) int {
	return p.Y*s.Cols + p.X
}

// PointAt converts a row-major index back to a point.
func (s Size) PointAt(i int) Point {
	return Point{X: i % s.Cols, Y: i / s.Cols}
}

// Neighbors4 appends the in-bounds 4-neighbors of p to dst and returns it,
// in Directions4 order. Pass a stack buffer to avoid allocation:
//
//	var buf [4]Point
//	for _, n := range sz.Neighbors4(p, buf[:0]) { ... }
func (s Size) Neighbors4(p Point, dst []Point) []Point {
	for _, d := range Directions4 {
		n := p.Add(d)
		if s.InBounds(n) {
			dst = append(dst, n)
		}
	}
	return dst
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
