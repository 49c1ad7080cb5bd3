package creature

import "testing"

func TestSpinRamp(t *testing.T) {
	// Held for 10 ticks at 0.01 duration per tick: the per-tick angle
	// strictly increases while below the clamp.
	prev := float32(0)
	for tick := 1; tick <= 10; tick++ {
		a := spinStep(0.01 * float32(tick))
		if a <= prev {
			t.Fatalf("tick %d: spin step %f did not increase from %f", tick, a, prev)
		}
		prev = a
	}

	// Once ln(d+1)/5 passes the clamp the step plateaus.
	if a := spinStep(10); a != maxSpinStep {
		t.Errorf("expected plateau at %f, got %f", maxSpinStep, a)
	}
	if a := spinStep(100); a != maxSpinStep {
		t.Errorf("expected plateau at %f, got %f", maxSpinStep, a)
	}
}

func TestSpinPreservesShape(t *testing.T) {
	c, _ := newTestCreature()
	// Extend the chain into a curve first.
	for tick := 0; tick < 50; tick++ {
		c.Update(Input{Pointer: Vec2{300, 40 * float32(tick%7)}})
	}

	before := make([]Vec2, numPoints)
	copy(before, c.BodyPoints())
	pivot := before[numPoints/2]

	ev := c.Update(Input{Pointer: Vec2{300, 0}, Spin: true})
	if ev.Mode != ModeSpin {
		t.Fatalf("expected spin mode, got %v", ev.Mode)
	}

	after := c.BodyPoints()

	// The pivot body point stays put.
	if d := after[numPoints/2].Sub(pivot).Len(); d > eps {
		t.Errorf("pivot moved by %f during spin", d)
	}

	// Rigid rotation preserves all pairwise distances.
	for i := 0; i < numPoints; i++ {
		for j := i + 1; j < numPoints; j++ {
			db := before[j].Sub(before[i]).Len()
			da := after[j].Sub(after[i]).Len()
			if !approxEq(da, db) {
				t.Fatalf("distance (%d,%d) changed: %f -> %f", i, j, db, da)
			}
		}
	}
}

func TestSpinReleaseResets(t *testing.T) {
	c, _ := newTestCreature()

	for tick := 0; tick < 5; tick++ {
		c.Update(Input{Pointer: Vec2{300, 0}, Spin: true})
	}
	if c.spinDuration == 0 {
		t.Fatal("expected accumulated spin duration while held")
	}

	ev := c.Update(Input{Pointer: Vec2{300, 0}})
	if ev.Mode != ModeFree {
		t.Errorf("expected free mode after release, got %v", ev.Mode)
	}
	if c.spinDuration != 0 {
		t.Errorf("expected spin duration reset, got %f", c.spinDuration)
	}
}

func TestSpinOverridesGrapple(t *testing.T) {
	c, phys := newTestCreature()
	phys.hasHit = true
	phys.hit = Hit{Point: Vec2{90, 0}, Entity: 1, Predator: true}

	c.Update(Input{Pointer: Vec2{50, 0}, Fire: true})

	ev := c.Update(Input{Pointer: Vec2{50, 0}, Spin: true})
	if ev.Mode != ModeSpin {
		t.Errorf("spin must take priority over an active grapple, got %v", ev.Mode)
	}
	if _, _, active := c.GrappleLine(); !active {
		t.Error("grapple target must survive a spin tick")
	}
}
