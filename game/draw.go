package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/serpentine/config"
	"github.com/pthm-cable/serpentine/sim"
)

// palette cycles per-agent colors by style index; ids persist across
// respawns so an agent keeps its color for its whole lifetime.
var palette = []rl.Color{
	{R: 96, G: 200, B: 120, A: 255},
	{R: 110, G: 160, B: 240, A: 255},
	{R: 235, G: 170, B: 80, A: 255},
	{R: 200, G: 110, B: 210, A: 255},
	{R: 90, G: 210, B: 200, A: 255},
	{R: 230, G: 120, B: 120, A: 255},
}

var foodColor = rl.Color{R: 245, G: 215, B: 90, A: 255}

// Draw renders the current frame.
func (g *Game) Draw() {
	frame := g.world.Frame()
	cell := config.Cfg().Screen.CellSize

	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 18, G: 20, B: 26, A: 255})

	g.drawFood(frame, cell)
	g.drawAgents(frame, cell)
	g.drawHUD(frame)
	if g.showPanel {
		g.drawPanel()
	}

	rl.EndDrawing()
}

// drawAgents renders each body as slightly inset cells, head brightest,
// fading toward the tail.
func (g *Game) drawAgents(frame sim.Frame, cell int) {
	inset := int32(1)
	size := int32(cell) - inset*2

	for _, a := range frame.Agents {
		base := palette[a.Style%len(palette)]
		n := len(a.Body)
		for i, c := range a.Body {
			col := base
			// Tail segments dim to ~40% of the head brightness.
			fade := 1.0 - 0.6*float32(i)/float32(n)
			col.R = uint8(float32(base.R) * fade)
			col.G = uint8(float32(base.G) * fade)
			col.B = uint8(float32(base.B) * fade)

			rl.DrawRectangle(int32(c.X*cell)+inset, int32(c.Y*cell)+inset, size, size, col)
		}
		head := a.Body[0]
		rl.DrawRectangleLines(int32(head.X*cell)+inset, int32(head.Y*cell)+inset, size, size, rl.White)
	}
}

// drawFood renders food items as filled circles centered in their cells.
func (g *Game) drawFood(frame sim.Frame, cell int) {
	r := float32(cell) * 0.3
	for _, f := range frame.Foods {
		cx := float32(f.X*cell) + float32(cell)/2
		cy := float32(f.Y*cell) + float32(cell)/2
		rl.DrawCircle(int32(cx), int32(cy), r, foodColor)
	}
}

// drawHUD draws the status line.
func (g *Game) drawHUD(frame sim.Frame) {
	rl.DrawText(fmt.Sprintf("Tick: %d", frame.Tick), 10, 10, 20, rl.White)
	rl.DrawText(fmt.Sprintf("Agents: %d  Food: %d", len(frame.Agents), len(frame.Foods)), 10, 35, 20, rl.White)
	rl.DrawText(fmt.Sprintf("Speed: %dx  [</>]  [TAB] panel", g.stepsPerUpdate), 10, 60, 20, rl.Gray)
	if g.paused {
		rl.DrawText("PAUSED", 10, 85, 20, rl.Yellow)
	}
	if g.verbose {
		rl.DrawText("VERBOSE", 10, 110, 20, rl.Orange)
	}
}
