package game

import (
	"fmt"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/serpentine/config"
)

// drawPanel renders the TAB-toggled control panel: tick period slider plus
// reset/reseed buttons.
func (g *Game) drawPanel() {
	panelX := float32(g.screenWidth - 270)
	panelY := float32(10)
	panelW := float32(260)

	rl.DrawRectangle(int32(panelX)-10, int32(panelY)-10, int32(panelW)+20, 150, rl.Color{R: 0, G: 0, B: 0, A: 180})
	rl.DrawText("Simulation", int32(panelX), int32(panelY), 20, rl.White)
	panelY += 30

	// Tick period slider
	rl.DrawText("Tick period (ms)", int32(panelX), int32(panelY), 14, rl.Gray)
	panelY += 18
	period := float32(g.clock.Period() / time.Millisecond)
	newPeriod := gui.SliderBar(
		rl.Rectangle{X: panelX, Y: panelY, Width: panelW - 60, Height: 20},
		"20", "200",
		period, 20, 200,
	)
	rl.DrawText(fmt.Sprintf("%d", int(period)), int32(panelX+panelW-50), int32(panelY+2), 16, rl.White)
	if newPeriod != period {
		g.clock.SetPeriod(time.Duration(newPeriod) * time.Millisecond)
	}
	panelY += 35

	if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reset World") {
		g.Reset()
	}
	if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Defaults") {
		g.clock.SetPeriod(time.Duration(config.Cfg().Sim.TickMillis) * time.Millisecond)
		g.stepsPerUpdate = 1
	}
}
