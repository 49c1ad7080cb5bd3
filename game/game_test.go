package game

import (
	"testing"

	"github.com/Joshua861/lucas/components"
	"github.com/Joshua861/lucas/config"
	"github.com/Joshua861/lucas/creature"
)

// newTestGame builds a headless game over embedded defaults with a
// controlled critter count.
func newTestGame(t *testing.T, critters int) *Game {
	t.Helper()
	if err := config.Init(""); err != nil {
		t.Fatalf("config init: %v", err)
	}
	config.Cfg().Critters.Count = critters
	return NewGameWithOptions(Options{Seed: 1, Headless: true})
}

func TestBridgeRaycastHitsNearest(t *testing.T) {
	g := newTestGame(t, 0)
	head := g.lucas.Head()

	// Two predators on the ray; the near one wins.
	g.spawnCritter(head.X+80, head.Y, 0, components.KindPredator)
	g.spawnCritter(head.X+50, head.Y, 0, components.KindPredator)
	g.updateSpatialGrid()

	bridge := &physicsBridge{g: g}
	hit, ok := bridge.RayCast(head, creature.Vec2{X: 1, Y: 0}, 100)

	if !ok || !hit.Predator {
		t.Fatalf("expected predator hit, got ok=%v hit=%+v", ok, hit)
	}

	wantX := head.X + 50 - g.critterRadius
	if d := hit.Point.X - wantX; d > 1e-3 || d < -1e-3 {
		t.Errorf("expected hit surface at x=%f, got %f", wantX, hit.Point.X)
	}
}

func TestBridgeRaycastRespectsRange(t *testing.T) {
	g := newTestGame(t, 0)
	head := g.lucas.Head()

	g.spawnCritter(head.X+150, head.Y, 0, components.KindPredator)
	g.updateSpatialGrid()

	bridge := &physicsBridge{g: g}
	if _, ok := bridge.RayCast(head, creature.Vec2{X: 1, Y: 0}, 100); ok {
		t.Error("expected miss beyond ray length")
	}
}

func TestBridgeOverlapDamageAndCleanup(t *testing.T) {
	g := newTestGame(t, 0)
	head := g.lucas.Head()

	g.spawnCritter(head.X+2, head.Y, 0, components.KindPredator)
	g.spawnCritter(head.X+200, head.Y, 0, components.KindPrey)
	g.updateSpatialGrid()

	bridge := &physicsBridge{g: g}
	contacts := bridge.QueryOverlap(head, 8)
	if len(contacts) != 1 || !contacts[0].Predator {
		t.Fatalf("expected one predator contact, got %+v", contacts)
	}

	// Enough damage to kill; the critter disappears at end of tick.
	bridge.ApplyDamage(contacts[0].Entity, g.maxHealth)
	g.cleanupDead()

	if g.aliveCount != 1 || g.predCount != 0 {
		t.Errorf("expected predator removed, alive=%d pred=%d", g.aliveCount, g.predCount)
	}
	if _, ok := g.byID[contacts[0].Entity]; ok {
		t.Error("dead critter still resolvable by ID")
	}
}

func TestBridgeImpulseMovesCritter(t *testing.T) {
	g := newTestGame(t, 0)
	head := g.lucas.Head()

	e := g.spawnCritter(head.X+10, head.Y, 0, components.KindPrey)
	crit := g.critMap.Get(e)

	bridge := &physicsBridge{g: g}
	bridge.ApplyImpulse(crit.ID, creature.Vec2{X: 40, Y: 0})

	vel := g.velMap.Get(e)
	if vel.X != 40 || vel.Y != 0 {
		t.Errorf("expected impulse velocity (40, 0), got (%f, %f)", vel.X, vel.Y)
	}
}

func TestHeadlessDeterminism(t *testing.T) {
	run := func() (int32, creature.Vec2, int) {
		g := newTestGame(t, 16)
		for g.Tick() < 500 {
			g.UpdateHeadless()
		}
		return g.Tick(), g.lucas.Head(), g.aliveCount
	}

	t1, h1, a1 := run()
	t2, h2, a2 := run()

	if t1 != t2 || h1 != h2 || a1 != a2 {
		t.Errorf("headless runs diverged: tick %d/%d head %+v/%+v alive %d/%d",
			t1, t2, h1, h2, a1, a2)
	}
}
