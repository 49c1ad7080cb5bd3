package creature

import "testing"

func TestGrappleHitPredator(t *testing.T) {
	c, phys := newTestCreature()
	phys.hasHit = true
	phys.hit = Hit{Point: Vec2{30, 0}, Entity: 7, Predator: true}

	ev := c.Update(Input{Pointer: Vec2{50, 0}, Fire: true})

	if !ev.GrappleFired || !ev.GrappleHit {
		t.Fatalf("expected fired+hit events, got %+v", ev)
	}
	if _, to, active := c.GrappleLine(); !active || to != (Vec2{30, 0}) {
		t.Fatalf("expected active grapple line to (30,0), got %v active=%v", to, active)
	}

	// The hit entity takes a nonzero impulse along the aim direction.
	imp, ok := phys.impulses[7]
	if !ok || imp.X <= 0 || !approxEq(imp.Y, 0) {
		t.Errorf("expected +X impulse on entity 7, got %v", imp)
	}
}

func TestGrappleWhiff(t *testing.T) {
	c, phys := newTestCreature()
	phys.hasHit = false

	c.Update(Input{Pointer: Vec2{50, 0}, Fire: true})

	// A miss still grapples a point at maximum range along the aim.
	_, to, active := c.GrappleLine()
	if !active {
		t.Fatal("expected grapple active after whiff")
	}
	if !approxEq(to.X, c.params.GrappleRange) || !approxEq(to.Y, 0) {
		t.Errorf("expected whiff target at (%f, 0), got %v", c.params.GrappleRange, to)
	}
	if len(phys.impulses) != 0 {
		t.Error("whiff must not apply impulses")
	}
}

func TestGrappleNonPredatorHitIsWhiff(t *testing.T) {
	c, phys := newTestCreature()
	phys.hasHit = true
	phys.hit = Hit{Point: Vec2{30, 0}, Entity: 3, Predator: false}

	ev := c.Update(Input{Pointer: Vec2{50, 0}, Fire: true})

	if ev.GrappleHit {
		t.Error("hit on a non-predator must not count as a grapple hit")
	}
	if _, to, _ := c.GrappleLine(); !approxEq(to.X, c.params.GrappleRange) {
		t.Errorf("expected max-range target, got %v", to)
	}
	if len(phys.impulses) != 0 {
		t.Error("non-predator hit must not apply impulses")
	}
}

func TestGrappleChaseAndRelease(t *testing.T) {
	c, phys := newTestCreature()
	phys.hasHit = true
	phys.hit = Hit{Point: Vec2{30, 0}, Entity: 7, Predator: true}

	c.Update(Input{Pointer: Vec2{50, 0}, Fire: true})

	// The head closes on the target strictly each tick until released.
	prev := c.grapplePoint.Sub(c.Head()).Len()
	released := false
	for tick := 0; tick < 60; tick++ {
		ev := c.Update(Input{Pointer: Vec2{50, 0}})
		if ev.GrappleReleased {
			released = true
			break
		}
		if ev.Mode != ModeGrapple {
			t.Fatalf("tick %d: expected grapple mode, got %v", tick, ev.Mode)
		}
		d := c.grapplePoint.Sub(c.Head()).Len()
		if d >= prev {
			t.Fatalf("tick %d: distance %f did not decrease from %f", tick, d, prev)
		}
		prev = d
	}

	if !released {
		t.Fatal("grapple never released")
	}
	if _, _, active := c.GrappleLine(); active {
		t.Error("grapple line should be torn down on release")
	}
	if d := c.Head().Sub(Vec2{30, 0}).Len(); d >= c.params.GrappleRelease {
		t.Errorf("head should be within release distance, got %f", d)
	}
}

func TestGrappleRefireIsNoOp(t *testing.T) {
	c, phys := newTestCreature()
	phys.hasHit = true
	phys.hit = Hit{Point: Vec2{80, 0}, Entity: 7, Predator: true}

	c.Update(Input{Pointer: Vec2{50, 0}, Fire: true})
	casts := phys.raycasts

	ev := c.Update(Input{Pointer: Vec2{-50, 0}, Fire: true})

	if phys.raycasts != casts {
		t.Error("re-fire while a target is active must not raycast")
	}
	if ev.GrappleFired {
		t.Error("re-fire while a target is active must not report a fire event")
	}
	if _, to, _ := c.GrappleLine(); to != (Vec2{80, 0}) {
		t.Errorf("target must be unchanged by re-fire, got %v", to)
	}
}
