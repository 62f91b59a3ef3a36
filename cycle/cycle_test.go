package cycle

import (
	"errors"
	"testing"

	"github.com/pthm-cable/serpentine/grid"
	"github.com/pthm-cable/serpentine/rng"
)

// checkValid asserts the full cycle postcondition: right length, every
// cell exactly once, every consecutive pair (including the wraparound)
// 4-adjacent.
func checkValid(t *testing.T, c *Cycle, cols, rows int) {
	t.Helper()

	if c.Len() != cols*rows {
		t.Fatalf("cycle length = %d, want %d", c.Len(), cols*rows)
	}

	seen := make(map[grid.Point]bool, c.Len())
	for i := 0; i < c.Len(); i++ {
		p := c.At(i)
		if p.X < 0 || p.X >= cols || p.Y < 0 || p.Y >= rows {
			t.Fatalf("position %d = %v out of bounds", i, p)
		}
		if seen[p] {
			t.Fatalf("position %v appears twice", p)
		}
		seen[p] = true

		next := c.At(i + 1) // wraps at the end
		if p.Manhattan(next) != 1 {
			t.Fatalf("positions %d..%d not adjacent: %v -> %v", i, i+1, p, next)
		}
	}
}

func TestBuildValidity(t *testing.T) {
	dims := []struct{ cols, rows int }{
		{2, 2}, {4, 4}, {8, 8}, {6, 10}, {20, 14}, {32, 32},
	}
	seeds := []int64{0, 1, 42, 99999, -7}

	for _, d := range dims {
		for _, seed := range seeds {
			c, err := Build(d.cols, d.rows, rng.New(seed))
			if err != nil {
				t.Fatalf("Build(%d, %d, seed %d): %v", d.cols, d.rows, seed, err)
			}
			checkValid(t, c, d.cols, d.rows)
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	a, err := Build(8, 8, rng.New(42))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Build(8, 8, rng.New(42))
	if err != nil {
		t.Fatal(err)
	}

	if a.Len() != 64 || b.Len() != 64 {
		t.Fatalf("lengths = %d, %d, want 64", a.Len(), b.Len())
	}
	for i := 0; i < a.Len(); i++ {
		if a.At(i) != b.At(i) {
			t.Fatalf("cycles diverge at %d: %v != %v", i, a.At(i), b.At(i))
		}
	}
}

func TestBuildOddDimensions(t *testing.T) {
	tests := []struct{ cols, rows int }{
		{7, 8}, {8, 7}, {9, 9},
	}
	for _, tt := range tests {
		_, err := Build(tt.cols, tt.rows, rng.New(1))
		if !errors.Is(err, ErrOddDimensions) {
			t.Errorf("Build(%d, %d) error = %v, want ErrOddDimensions", tt.cols, tt.rows, err)
		}
	}
}

func TestBuildTooSmall(t *testing.T) {
	if _, err := Build(0, 8, rng.New(1)); err == nil {
		t.Error("Build(0, 8) succeeded, want error")
	}
}

func TestIndexOf(t *testing.T) {
	c, err := Build(8, 8, rng.New(42))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < c.Len(); i++ {
		if got := c.IndexOf(c.At(i)); got != i {
			t.Fatalf("IndexOf(At(%d)) = %d", i, got)
		}
	}
}

func TestDist(t *testing.T) {
	c, err := Build(4, 4, rng.New(1))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		a, b int
		want int
	}{
		{"same", 3, 3, 0},
		{"forward", 2, 5, 3},
		{"wrap", 14, 2, 4},
		{"full minus one", 0, 15, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Dist(tt.a, tt.b); got != tt.want {
				t.Errorf("Dist(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestNextFrom(t *testing.T) {
	c, err := Build(8, 8, rng.New(42))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < c.Len(); i++ {
		p := c.At(i)
		if got := c.NextFrom(p); got != c.At(i+1) {
			t.Fatalf("NextFrom(%v) = %v, want %v", p, got, c.At(i+1))
		}
	}
}
