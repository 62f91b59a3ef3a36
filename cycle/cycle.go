// Package cycle builds the Hamiltonian cycle every agent navigates by.
//
// The construction runs a randomized Prim spanning tree over a
// half-resolution grid, expands each coarse cell into a 2x2 loop of fine
// cells, and splices neighboring loops together along every tree edge.
// Because the tree spans all coarse cells, the splices merge the small
// loops into a single cycle visiting every fine cell exactly once.
package cycle

import (
	"errors"
	"fmt"

	"github.com/pthm-cable/serpentine/grid"
	"github.com/pthm-cable/serpentine/rng"
)

// ErrOddDimensions is returned when either grid dimension is odd. The 2x2
// block expansion requires even dimensions; callers must round down before
// building rather than rely on truncation here.
var ErrOddDimensions = errors.New("cycle: grid dimensions must be even")

// Cycle is an immutable Hamiltonian cycle over a grid. Seq lists every
// cell in traversal order; index maps a cell's row-major position to its
// place in Seq for O(1) cyclic-distance queries.
type Cycle struct {
	size  grid.Size
	seq   []grid.Point
	index []int
}

// Build generates a cycle for an even cols x rows grid using r for all
// random choices. The same (cols, rows, seed) always yields the same cycle.
func Build(cols, rows int, r *rng.Stream) (*Cycle, error) {
	if cols < 2 || rows < 2 {
		return nil, fmt.Errorf("cycle: grid %dx%d too small", cols, rows)
	}
	if cols%2 != 0 || rows%2 != 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrOddDimensions, cols, rows)
	}

	size := grid.Size{Cols: cols, Rows: rows}
	coarse := grid.Size{Cols: cols / 2, Rows: rows / 2}

	edges := spanningTree(coarse, r)

	links := newLinkTable(size)
	for _, e := range edges {
		links.splice(e)
	}

	seq := links.walk()
	index := make([]int, size.Cells())
	for i, p := range seq {
		index[size.Index(p)] = i
	}

	return &Cycle{size: size, seq: seq, index: index}, nil
}

// Len returns the cycle length (total cell count).
func (c *Cycle) Len() int { return len(c.seq) }

// Size returns the grid dimensions the cycle spans.
func (c *Cycle) Size() grid.Size { return c.size }

// At returns the cell at cycle position i (taken modulo the length).
func (c *Cycle) At(i int) grid.Point {
	n := len(c.seq)
	i %= n
	if i < 0 {
		i += n
	}
	return c.seq[i]
}

// IndexOf returns the cycle position of p. p must be in bounds.
func (c *Cycle) IndexOf(p grid.Point) int {
	return c.index[c.size.Index(p)]
}

// NextFrom returns the cell one step forward along the cycle from p.
func (c *Cycle) NextFrom(p grid.Point) grid.Point {
	return c.At(c.IndexOf(p) + 1)
}

// Dist returns the forward cyclic distance from position a to position b.
func (c *Cycle) Dist(a, b int) int {
	n := len(c.seq)
	d := (b - a) % n
	if d < 0 {
		d += n
	}
	return d
}

// DistPoints returns the forward cyclic distance from cell p to cell q.
func (c *Cycle) DistPoints(p, q grid.Point) int {
	return c.Dist(c.IndexOf(p), c.IndexOf(q))
}

// coarseEdge connects two adjacent cells of the half-resolution grid.
type coarseEdge struct {
	from grid.Point
	to   grid.Point
}

// spanningTree runs randomized Prim over the coarse grid: grow from a
// random cell, repeatedly pulling a uniformly random frontier edge.
func spanningTree(coarse grid.Size, r *rng.Stream) []coarseEdge {
	visited := make([]bool, coarse.Cells())
	frontier := make([]coarseEdge, 0, coarse.Cells()*2)
	tree := make([]coarseEdge, 0, coarse.Cells()-1)

	var buf [4]grid.Point
	addFrontier := func(p grid.Point) {
		visited[coarse.Index(p)] = true
		for _, n := range coarse.Neighbors4(p, buf[:0]) {
			if !visited[coarse.Index(n)] {
				frontier = append(frontier, coarseEdge{from: p, to: n})
			}
		}
	}

	start := grid.Point{X: r.IntN(coarse.Cols), Y: r.IntN(coarse.Rows)}
	addFrontier(start)

	for len(frontier) > 0 {
		i := r.IntN(len(frontier))
		e := frontier[i]
		frontier[i] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		if visited[coarse.Index(e.to)] {
			continue
		}
		tree = append(tree, e)
		addFrontier(e.to)
	}
	return tree
}

// linkTable is a 2-regular adjacency over fine cells: each cell holds
// exactly two cycle neighbors at all times. Splicing preserves that
// invariant, so the table always encodes a disjoint union of cycles.
type linkTable struct {
	size grid.Size
	adj  [][2]int // two neighbor indices per cell
}

// newLinkTable wires every 2x2 block into its initial 4-cycle
// tl -> tr -> br -> bl -> tl.
func newLinkTable(size grid.Size) *linkTable {
	t := &linkTable{size: size, adj: make([][2]int, size.Cells())}
	for cy := 0; cy < size.Rows/2; cy++ {
		for cx := 0; cx < size.Cols/2; cx++ {
			tl := size.Index(grid.Point{X: 2 * cx, Y: 2 * cy})
			tr := size.Index(grid.Point{X: 2*cx + 1, Y: 2 * cy})
			bl := size.Index(grid.Point{X: 2 * cx, Y: 2*cy + 1})
			br := size.Index(grid.Point{X: 2*cx + 1, Y: 2*cy + 1})
			t.adj[tl] = [2]int{tr, bl}
			t.adj[tr] = [2]int{br, tl}
			t.adj[br] = [2]int{bl, tr}
			t.adj[bl] = [2]int{tl, br}
		}
	}
	return t
}

// splice merges the two block cycles on either side of a tree edge:
// remove the boundary edge of each block, add the two edges crossing the
// shared boundary.
func (t *linkTable) splice(e coarseEdge) {
	// Fine-cell corners of the source block.
	fx, fy := e.from.X*2, e.from.Y*2
	switch {
	case e.to.X == e.from.X+1: // right
		t.unlink(t.idx(fx+1, fy), t.idx(fx+1, fy+1))
		t.unlink(t.idx(fx+2, fy), t.idx(fx+2, fy+1))
		t.link(t.idx(fx+1, fy), t.idx(fx+2, fy))
		t.link(t.idx(fx+1, fy+1), t.idx(fx+2, fy+1))
	case e.to.X == e.from.X-1: // left
		t.unlink(t.idx(fx, fy), t.idx(fx, fy+1))
		t.unlink(t.idx(fx-1, fy), t.idx(fx-1, fy+1))
		t.link(t.idx(fx, fy), t.idx(fx-1, fy))
		t.link(t.idx(fx, fy+1), t.idx(fx-1, fy+1))
	case e.to.Y == e.from.Y+1: // down
		t.unlink(t.idx(fx, fy+1), t.idx(fx+1, fy+1))
		t.unlink(t.idx(fx, fy+2), t.idx(fx+1, fy+2))
		t.link(t.idx(fx, fy+1), t.idx(fx, fy+2))
		t.link(t.idx(fx+1, fy+1), t.idx(fx+1, fy+2))
	default: // up
		t.unlink(t.idx(fx, fy), t.idx(fx+1, fy))
		t.unlink(t.idx(fx, fy-1), t.idx(fx+1, fy-1))
		t.link(t.idx(fx, fy), t.idx(fx, fy-1))
		t.link(t.idx(fx+1, fy), t.idx(fx+1, fy-1))
	}
}

func (t *linkTable) idx(x, y int) int {
	return t.size.Index(grid.Point{X: x, Y: y})
}

// unlink removes the a<->b edge by marking the slot open (-1).
func (t *linkTable) unlink(a, b int) {
	for s := 0; s < 2; s++ {
		if t.adj[a][s] == b {
			t.adj[a][s] = -1
		}
		if t.adj[b][s] == a {
			t.adj[b][s] = -1
		}
	}
}

// link fills the open slot on each side with the new neighbor.
func (t *linkTable) link(a, b int) {
	for s := 0; s < 2; s++ {
		if t.adj[a][s] == -1 {
			t.adj[a][s] = b
			break
		}
	}
	for s := 0; s < 2; s++ {
		if t.adj[b][s] == -1 {
			t.adj[b][s] = a
			break
		}
	}
}

// walk traverses the merged cycle from (0,0), always stepping to the
// neighbor that is not the cell just visited.
func (t *linkTable) walk() []grid.Point {
	n := t.size.Cells()
	seq := make([]grid.Point, 0, n)

	prev := -1
	cur := t.size.Index(grid.Point{X: 0, Y: 0})
	for i := 0; i < n; i++ {
		seq = append(seq, t.size.PointAt(cur))
		next := t.adj[cur][0]
		if next == prev {
			next = t.adj[cur][1]
		}
		prev, cur = cur, next
	}
	return seq
}
