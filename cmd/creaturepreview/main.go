// Creature animation preview tool - a standalone creature steered by the
// mouse, with sliders for the steering parameters.
//
// Usage: go run ./cmd/creaturepreview
package main

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Joshua861/lucas/creature"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	panelWidth   = 280
)

// stubPhysics backs the preview creature: grapple shots always whiff to max
// range and attacks hit nothing.
type stubPhysics struct{}

func (stubPhysics) RayCast(origin, dir creature.Vec2, maxLen float32) (creature.Hit, bool) {
	return creature.Hit{}, false
}
func (stubPhysics) QueryOverlap(center creature.Vec2, radius float32) []creature.Contact {
	return nil
}
func (stubPhysics) ApplyImpulse(id uint32, impulse creature.Vec2) {}
func (stubPhysics) ApplyDamage(id uint32, amount float32)         {}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Creature Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	params := creature.DefaultParams()
	center := creature.Vec2{X: (windowWidth - panelWidth) / 2, Y: windowHeight / 2}
	c := creature.New(params, stubPhysics{}, center)

	for !rl.WindowShouldClose() {
		mouse := rl.GetMousePosition()
		in := creature.Input{
			Pointer: creature.Vec2{X: mouse.X, Y: mouse.Y},
			Fire:    rl.IsMouseButtonPressed(rl.MouseButtonLeft),
			Spin:    rl.IsMouseButtonDown(rl.MouseButtonRight),
			Attack:  rl.IsKeyPressed(rl.KeySpace),
		}
		// Keep the creature still while the pointer is over the panel.
		if mouse.X > windowWidth-panelWidth {
			in = creature.Input{Pointer: c.Head()}
		}
		ev := c.Update(in)

		rl.BeginDrawing()
		rl.ClearBackground(rl.Color{R: 18, G: 18, B: 24, A: 255})

		drawCreature(c)

		rl.DrawText(fmt.Sprintf("mode: %s", ev.Mode), 10, 10, 18, rl.Gray)
		rl.DrawText("LMB grapple  RMB spin  SPACE attack", 10, 34, 16, rl.DarkGray)

		// Parameter panel
		panelX := float32(windowWidth - panelWidth + 10)
		panelY := float32(10)

		rl.DrawText("Steering Parameters", int32(panelX), int32(panelY), 18, rl.RayWhite)
		panelY += 30

		params.FollowStep = slider(panelX, &panelY, "follow step", params.FollowStep, 0.1, 3)
		params.FollowDeadzone = slider(panelX, &panelY, "follow deadzone", params.FollowDeadzone, 0, 40)
		params.GrappleStep = slider(panelX, &panelY, "grapple step", params.GrappleStep, 0.5, 6)
		params.GrappleRange = slider(panelX, &panelY, "grapple range", params.GrappleRange, 20, 400)
		params.AttackRadius = slider(panelX, &panelY, "attack radius", params.AttackRadius, 2, 40)

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Apply") {
			c = creature.New(params, stubPhysics{}, c.Head())
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset") {
			params = creature.DefaultParams()
			c = creature.New(params, stubPhysics{}, center)
		}

		rl.EndDrawing()
	}
}

// slider draws one labeled slider row and advances the layout cursor.
func slider(x float32, y *float32, label string, value, min, max float32) float32 {
	rl.DrawText(label, int32(x), int32(*y), 14, rl.Gray)
	*y += 18
	v := gui.SliderBar(
		rl.Rectangle{X: x, Y: *y, Width: panelWidth - 90, Height: 20},
		fmt.Sprintf("%.1f", min), fmt.Sprintf("%.1f", max),
		value, min, max,
	)
	rl.DrawText(fmt.Sprintf("%.2f", v), int32(x+panelWidth-80), int32(*y+2), 14, rl.RayWhite)
	*y += 30
	return v
}

// drawCreature renders the outline ring, legs, grapple line and eyes in
// screen coordinates.
func drawCreature(c *creature.Creature) {
	for _, leg := range c.Legs() {
		prev := toVec(leg.Joints[0])
		for _, j := range leg.Joints[1:] {
			p := toVec(j)
			rl.DrawLineEx(prev, p, 2, rl.Gray)
			prev = p
		}
		rl.DrawLineEx(prev, toVec(leg.Foot), 2, rl.Gray)
	}

	if from, to, active := c.GrappleLine(); active {
		rl.DrawLineEx(toVec(from), toVec(to), 1.5, rl.Gold)
	}

	// Perimeter order: caps between the head side vertices, right side
	// tailward, left side back.
	verts := c.Vertices()
	n := len(verts)
	half := 4 + (n/2 - 2)

	ring := make([]rl.Vector2, 0, n+1)
	ring = append(ring, toVec(verts[0]), toVec(verts[3]), toVec(verts[2]))
	for i := n - 1; i >= half; i-- {
		ring = append(ring, toVec(verts[i]))
	}
	for i := half - 1; i >= 4; i-- {
		ring = append(ring, toVec(verts[i]))
	}
	ring = append(ring, toVec(verts[1]), ring[0])
	rl.DrawLineStrip(ring, rl.RayWhite)

	if radius, active := c.AttackActive(); active {
		rl.DrawCircleLinesV(toVec(c.Head()), radius, rl.Red)
	}

	e1, e2 := c.EyeMarkers()
	rl.DrawCircleV(toVec(e1), 1.5, rl.RayWhite)
	rl.DrawCircleV(toVec(e2), 1.5, rl.RayWhite)
}

func toVec(p creature.Vec2) rl.Vector2 {
	return rl.Vector2{X: p.X, Y: p.Y}
}
