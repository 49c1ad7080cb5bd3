package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Joshua861/lucas/creature"
)

// readInput samples the per-tick creature input from mouse and keyboard.
// The pointer is the mouse cursor projected into world space.
func (g *Game) readInput() creature.Input {
	mouse := rl.GetMousePosition()
	wx, wy := g.cam.ScreenToWorld(mouse.X, mouse.Y)

	return creature.Input{
		Pointer: creature.Vec2{X: wx, Y: wy},
		Fire:    rl.IsMouseButtonPressed(rl.MouseButtonLeft),
		Spin:    rl.IsMouseButtonDown(rl.MouseButtonRight),
		Attack:  rl.IsKeyPressed(rl.KeySpace),
	}
}

// handleInput processes simulation control input (not creature steering).
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeyP) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyD) {
		g.debugOverlay = !g.debugOverlay
	}

	// Speed control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.cam.ZoomBy(1 + wheel*0.1)
	}

	if rl.IsWindowResized() {
		g.cam.Resize(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
	}
}
