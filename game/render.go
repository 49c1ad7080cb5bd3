package game

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Joshua861/lucas/components"
	"github.com/Joshua861/lucas/creature"
)

// Palette.
var (
	colorBackground = rl.Color{R: 18, G: 18, B: 24, A: 255}
	colorBody       = rl.Color{R: 225, G: 225, B: 235, A: 255}
	colorOutline    = rl.Color{R: 120, G: 120, B: 140, A: 255}
	colorLeg        = rl.Color{R: 180, G: 180, B: 195, A: 255}
	colorEye        = rl.Color{R: 30, G: 30, B: 40, A: 255}
	colorGrapple    = rl.Color{R: 240, G: 200, B: 80, A: 255}
	colorAttack     = rl.Color{R: 240, G: 90, B: 90, A: 160}
)

// Draw renders one frame.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(colorBackground)

	g.drawWorldBorder()
	g.drawCritters()
	g.drawCreature()
	g.drawHUD()
	if g.debugOverlay {
		g.drawDebugPanel()
	}

	rl.EndDrawing()
}

// toScreen converts a world point to a raylib screen vector.
func (g *Game) toScreen(p creature.Vec2) rl.Vector2 {
	sx, sy := g.cam.WorldToScreen(p.X, p.Y)
	return rl.Vector2{X: sx, Y: sy}
}

// drawWorldBorder marks the critter wander bounds.
func (g *Game) drawWorldBorder() {
	tl := g.toScreen(creature.Vec2{X: 0, Y: 0})
	br := g.toScreen(creature.Vec2{X: g.worldWidth, Y: g.worldHeight})
	rl.DrawRectangleLines(int32(tl.X), int32(tl.Y), int32(br.X-tl.X), int32(br.Y-tl.Y), colorOutline)
}

// drawCreature renders the legs, grapple line, filled body and eyes, back
// to front.
func (g *Game) drawCreature() {
	verts := g.lucas.Vertices()

	// Legs draw under the body so the roots stay hidden.
	for _, leg := range g.lucas.Legs() {
		var pts [len(leg.Joints) + 1]rl.Vector2
		for i, j := range leg.Joints {
			pts[i] = g.toScreen(j)
		}
		pts[len(leg.Joints)] = g.toScreen(leg.Foot)
		for i := 0; i < len(pts)-1; i++ {
			rl.DrawLineEx(pts[i], pts[i+1], 2*g.cam.Zoom, colorLeg)
		}
	}

	if from, to, active := g.lucas.GrappleLine(); active {
		rl.DrawLineEx(g.toScreen(from), g.toScreen(to), 1.5*g.cam.Zoom, colorGrapple)
		rl.DrawCircleV(g.toScreen(to), 2*g.cam.Zoom, colorGrapple)
	}

	g.fillBody(verts)

	ring := orderedRing(verts)
	screen := make([]rl.Vector2, len(ring)+1)
	for i, p := range ring {
		screen[i] = g.toScreen(p)
	}
	screen[len(ring)] = screen[0] // close the loop
	rl.DrawLineStrip(screen, colorOutline)

	head := g.lucas.Head()
	if radius, active := g.lucas.AttackActive(); active {
		rl.DrawCircleLinesV(g.toScreen(head), radius*g.cam.Zoom, colorAttack)
	}

	e1, e2 := g.lucas.EyeMarkers()
	rl.DrawCircleV(g.toScreen(e1), 1.2*g.cam.Zoom, colorEye)
	rl.DrawCircleV(g.toScreen(e2), 1.2*g.cam.Zoom, colorEye)
}

// fillBody fills the creature as quads between consecutive left/right side
// pairs plus a head-cap fan. The tube shape keeps each quad convex even
// when the body curves sharply.
func (g *Game) fillBody(verts []creature.Vec2) {
	n := len(verts)
	points := n/2 - 1 // body points behind the outline buffer

	left := func(i int) rl.Vector2 {
		if i == 0 {
			return g.toScreen(verts[1])
		}
		return g.toScreen(verts[i+3])
	}
	right := func(i int) rl.Vector2 {
		if i == 0 {
			return g.toScreen(verts[2])
		}
		return g.toScreen(verts[n-i])
	}

	// Head cap: two triangles over [L0, capL, capR, R0].
	capL := g.toScreen(verts[0])
	capR := g.toScreen(verts[3])
	fillTriangle(left(0), capL, capR, colorBody)
	fillTriangle(left(0), capR, right(0), colorBody)

	for i := 0; i < points-1; i++ {
		fillTriangle(left(i), left(i+1), right(i+1), colorBody)
		fillTriangle(left(i), right(i+1), right(i), colorBody)
	}
}

// fillTriangle draws a filled triangle regardless of the vertex order's
// screen orientation; raylib culls triangles wound the other way.
func fillTriangle(v1, v2, v3 rl.Vector2, color rl.Color) {
	cross := (v2.X-v1.X)*(v3.Y-v1.Y) - (v2.Y-v1.Y)*(v3.X-v1.X)
	if cross < 0 {
		rl.DrawTriangle(v1, v2, v3, color)
	} else {
		rl.DrawTriangle(v1, v3, v2, color)
	}
}

// orderedRing rearranges the raw vertex buffer into perimeter order. The
// raw layout keeps the head's four vertices in front and the caps sit
// between the two head side vertices across the front, so the silhouette
// runs left cap, right cap, right side tailward, left side back to the
// head.
func orderedRing(verts []creature.Vec2) []creature.Vec2 {
	n := len(verts)
	half := 4 + (n/2 - 2) // first right-side index in the raw buffer

	ring := make([]creature.Vec2, 0, n)
	ring = append(ring, verts[0], verts[3], verts[2])
	for i := n - 1; i >= half; i-- { // R1 tailward to the last right vertex
		ring = append(ring, verts[i])
	}
	for i := half - 1; i >= 4; i-- { // back up the left side to L1
		ring = append(ring, verts[i])
	}
	ring = append(ring, verts[1])
	return ring
}

// drawCritters renders living critters as oriented triangles.
func (g *Game) drawCritters() {
	query := g.critterFilter.Query()
	for query.Next() {
		pos, _, rot, body, health, crit := query.Get()

		if !health.Alive || !g.cam.IsVisible(pos.X, pos.Y, body.Radius*2) {
			continue
		}

		color := rl.Green
		if crit.Kind == components.KindPredator {
			color = rl.Red
		}
		// Dim wounded critters.
		color.A = uint8(100 + int(health.Value/g.maxHealth*155))

		g.drawOrientedTriangle(pos.X, pos.Y, rot.Heading, body.Radius, color)
	}
}

// drawOrientedTriangle draws a triangle pointing in the heading direction,
// in world coordinates.
func (g *Game) drawOrientedTriangle(x, y, heading, radius float32, color rl.Color) {
	p := creature.Vec2{X: x, Y: y}
	v1 := g.toScreen(p.Add(fromHeading(heading).Scale(radius * 1.5)))
	v2 := g.toScreen(p.Add(fromHeading(heading + math.Pi*0.8).Scale(radius)))
	v3 := g.toScreen(p.Add(fromHeading(heading - math.Pi*0.8).Scale(radius)))

	fillTriangle(v1, v2, v3, color)
	rl.DrawTriangleLines(v1, v2, v3, rl.White)
}

// drawHUD renders the text overlay.
func (g *Game) drawHUD() {
	rl.DrawText(fmt.Sprintf("Tick: %d", g.tick), 10, 10, 20, rl.White)
	rl.DrawText(fmt.Sprintf("Critters: %d  Predators: %d", g.aliveCount, g.predCount), 10, 35, 20, rl.White)
	rl.DrawText(fmt.Sprintf("Speed: %dx  [</>]", g.stepsPerUpdate), 10, 60, 20, rl.White)
	rl.DrawText("LMB grapple  RMB spin  SPACE attack  [P]ause  [D]ebug", 10, 85, 16, rl.Gray)
	if g.paused {
		rl.DrawText("PAUSED", 10, 110, 20, rl.Yellow)
	}
}

// drawDebugPanel renders the debug overlay toggles and markers.
func (g *Game) drawDebugPanel() {
	panelX := g.cam.ViewportW - 210
	panelY := float32(10)

	rl.DrawRectangle(int32(panelX)-10, int32(panelY)-5, 210, 122, rl.Color{R: 0, G: 0, B: 0, A: 180})
	rl.DrawText("Debug", int32(panelX), int32(panelY), 18, rl.White)
	panelY += 25

	g.showBodyPoints = gui.CheckBox(
		rl.Rectangle{X: panelX, Y: panelY, Width: 16, Height: 16},
		"body points", g.showBodyPoints)
	panelY += 22
	g.showVertices = gui.CheckBox(
		rl.Rectangle{X: panelX, Y: panelY, Width: 16, Height: 16},
		"outline vertices", g.showVertices)
	panelY += 22
	g.showFootRange = gui.CheckBox(
		rl.Rectangle{X: panelX, Y: panelY, Width: 16, Height: 16},
		"foot targets", g.showFootRange)
	panelY += 22
	g.showGridStats = gui.CheckBox(
		rl.Rectangle{X: panelX, Y: panelY, Width: 16, Height: 16},
		"camera stats", g.showGridStats)

	if g.showBodyPoints {
		for _, p := range g.lucas.BodyPoints() {
			rl.DrawCircleV(g.toScreen(p), 1.5*g.cam.Zoom, rl.SkyBlue)
		}
	}
	if g.showVertices {
		for _, p := range g.lucas.Vertices() {
			rl.DrawCircleV(g.toScreen(p), 1*g.cam.Zoom, rl.Purple)
		}
	}
	if g.showFootRange {
		for _, leg := range g.lucas.Legs() {
			rl.DrawCircleLinesV(g.toScreen(leg.Foot), 3*g.cam.Zoom, rl.Orange)
		}
	}
	if g.showGridStats {
		rl.DrawText(
			fmt.Sprintf("cam (%.0f, %.0f) zoom %.2f", g.cam.X, g.cam.Y, g.cam.Zoom),
			int32(panelX), 142, 14, rl.Gray)
	}
}

// fromHeading returns the unit vector for a heading angle.
func fromHeading(a float32) creature.Vec2 {
	return creature.Vec2{
		X: float32(math.Cos(float64(a))),
		Y: float32(math.Sin(float64(a))),
	}
}
