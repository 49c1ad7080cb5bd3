package creature

import "testing"

func TestAttackPulseResolvesAfterWindow(t *testing.T) {
	c, phys := newTestCreature()
	phys.contacts = []Contact{
		{Entity: 1, Pos: Vec2{5, 0}, Predator: true},
		{Entity: 2, Pos: Vec2{-3, 0}, Predator: false},
	}

	// Pointer on the head keeps it inside the deadzone, so the creature
	// holds still for the whole window.
	ev := c.Update(Input{Pointer: Vec2{0, 0}, Attack: true})
	if !ev.AttackStarted {
		t.Fatal("expected attack start event")
	}

	// The hit check only runs when the window expires.
	for tick := 1; tick < c.params.AttackTicks; tick++ {
		ev = c.Update(Input{Pointer: Vec2{0, 0}})
		if phys.overlaps != 0 {
			t.Fatalf("tick %d: overlap queried before window expiry", tick)
		}
		if ev.AttackHits != 0 {
			t.Fatalf("tick %d: premature attack hits", tick)
		}
	}

	ev = c.Update(Input{Pointer: Vec2{0, 0}})
	if phys.overlaps != 1 {
		t.Fatalf("expected exactly one overlap query, got %d", phys.overlaps)
	}
	if ev.AttackHits != 1 {
		t.Fatalf("expected 1 attack hit, got %d", ev.AttackHits)
	}

	// Only the predator takes damage and a repelling impulse.
	if phys.damage[1] != c.params.AttackDamage {
		t.Errorf("expected damage %f on entity 1, got %f", c.params.AttackDamage, phys.damage[1])
	}
	if _, hit := phys.damage[2]; hit {
		t.Error("non-predator must not take damage")
	}
	if imp := phys.impulses[1]; imp.X <= 0 {
		t.Errorf("expected repelling +X impulse on entity 1, got %v", imp)
	}

	if _, active := c.AttackActive(); active {
		t.Error("attack window should be closed after resolving")
	}
}

func TestAttackRetriggerIsNoOp(t *testing.T) {
	c, _ := newTestCreature()

	c.Update(Input{Pointer: Vec2{0, 0}, Attack: true})
	ticksLeft := c.attackTicks

	ev := c.Update(Input{Pointer: Vec2{0, 0}, Attack: true})
	if ev.AttackStarted {
		t.Error("re-trigger while a window is open must not restart it")
	}
	if c.attackTicks != ticksLeft-1 {
		t.Errorf("countdown should keep running, got %d", c.attackTicks)
	}
}

func TestAttackWithNoOverlaps(t *testing.T) {
	c, phys := newTestCreature()
	phys.contacts = nil

	c.Update(Input{Pointer: Vec2{0, 0}, Attack: true})
	var ev Events
	for tick := 0; tick < c.params.AttackTicks; tick++ {
		ev = c.Update(Input{Pointer: Vec2{0, 0}})
	}

	// Nothing overlapping is a no-op, never an error.
	if ev.AttackHits != 0 || len(phys.damage) != 0 {
		t.Error("expected no hits with no overlapping entities")
	}
}
