package grid

import "testing"

func TestInBounds(t *testing.T) {
	s := Size{Cols: 8, Rows: 6}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"origin", Point{0, 0}, true},
		{"far corner", Point{7, 5}, true},
		{"x too big", Point{8, 0}, false},
		{"y too big", Point{0, 6}, false},
		{"negative x", Point{-1, 0}, false},
		{"negative y", Point{0, -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.InBounds(tt.p); got != tt.want {
				t.Errorf("InBounds(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestIndexRoundTrip(t *testing.T) {
	s := Size{Cols: 5, Rows: 4}
	for y := 0; y < s.Rows; y++ {
		for x := 0; x < s.Cols; x++ {
			p := Point{X: x, Y: y}
			if got := s.PointAt(s.Index(p)); got != p {
				t.Fatalf("PointAt(Index(%v)) = %v", p, got)
			}
		}
	}
}

func TestNeighbors4(t *testing.T) {
	s := Size{Cols: 4, Rows: 4}

	var buf [4]Point
	corner := s.Neighbors4(Point{0, 0}, buf[:0])
	if len(corner) != 2 {
		t.Errorf("corner has %d neighbors, want 2", len(corner))
	}

	center := s.Neighbors4(Point{1, 1}, buf[:0])
	if len(center) != 4 {
		t.Errorf("center has %d neighbors, want 4", len(center))
	}
	// Enumeration order is fixed: up, down, left, right.
	want := []Point{{1, 0}, {1, 2}, {0, 1}, {2, 1}}
	for i, n := range center {
		if n != want[i] {
			t.Errorf("neighbor %d = %v, want %v", i, n, want[i])
		}
	}
}

func TestDistances(t *testing.T) {
	a := Point{1, 1}
	b := Point{3, 4}
	if got := a.Manhattan(b); got != 5 {
		t.Errorf("Manhattan = %d, want 5", got)
	}
	if got := a.Chebyshev(b); got != 3 {
		t.Errorf("Chebyshev = %d, want 3", got)
	}
}

func TestDeltaTo(t *testing.T) {
	p := Point{2, 2}
	if d := p.DeltaTo(Point{2, 1}); d != Up {
		t.Errorf("DeltaTo up = %v", d)
	}
	if d := p.DeltaTo(Point{3, 2}); d != Right {
		t.Errorf("DeltaTo right = %v", d)
	}
}
