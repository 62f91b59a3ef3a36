// cycledump prints a generated Hamiltonian cycle as an ASCII arrow field,
// one glyph per cell pointing at that cell's successor. Useful for eyeing
// the effect of different seeds without launching the renderer.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pthm-cable/serpentine/cycle"
	"github.com/pthm-cable/serpentine/grid"
	"github.com/pthm-cable/serpentine/rng"
)

func main() {
	cols := flag.Int("cols", 16, "grid columns (even)")
	rows := flag.Int("rows", 12, "grid rows (even)")
	seed := flag.Int64("seed", 42, "rng seed")
	flag.Parse()

	c, err := cycle.Build(*cols, *rows, rng.New(*seed))
	if err != nil {
		fmt.Fprintln(os.Stderr, "cycledump:", err)
		os.Exit(1)
	}

	arrows := make([]rune, c.Len())
	for i := 0; i < c.Len(); i++ {
		p := c.At(i)
		arrows[c.Size().Index(p)] = arrowFor(p.DeltaTo(c.At(i + 1)))
	}

	var b strings.Builder
	for y := 0; y < *rows; y++ {
		for x := 0; x < *cols; x++ {
			b.WriteRune(arrows[y**cols+x])
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	fmt.Print(b.String())
	fmt.Printf("cells=%d seed=%d\n", c.Len(), *seed)
}

func arrowFor(d grid.Delta) rune {
	switch d {
	case grid.Up:
		return '^'
	case grid.Down:
		return 'v'
	case grid.Left:
		return '<'
	case grid.Right:
		return '>'
	}
	return '?'
}
