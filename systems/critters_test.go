package systems

import (
	"math/rand"
	"testing"

	"github.com/Joshua861/lucas/components"
)

func testWanderParams() WanderParams {
	return WanderParams{
		MaxSpeed: 20,
		TurnRate: 1.5,
		Drag:     1.2,
		WorldW:   640,
		WorldH:   480,
	}
}

func TestUpdateWanderStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := testWanderParams()

	pos := components.Position{X: 5, Y: 475}
	vel := components.Velocity{}
	rot := components.Rotation{Heading: 2.5}

	for tick := 0; tick < 2000; tick++ {
		UpdateWander(&pos, &vel, &rot, rng, p, 1.0/60.0)
		if pos.X < 0 || pos.X > p.WorldW || pos.Y < 0 || pos.Y > p.WorldH {
			t.Fatalf("tick %d: critter escaped bounds at (%f, %f)", tick, pos.X, pos.Y)
		}
	}
}

func TestUpdateWanderDecaysImpulse(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := testWanderParams()

	pos := components.Position{X: 320, Y: 240}
	vel := components.Velocity{X: 60, Y: 0}
	rot := components.Rotation{}

	for tick := 0; tick < 600; tick++ {
		UpdateWander(&pos, &vel, &rot, rng, p, 1.0/60.0)
	}

	if vel.X > 1 {
		t.Errorf("expected impulse velocity to decay, still %f after 10s", vel.X)
	}
}

func TestApplyDamage(t *testing.T) {
	h := components.Health{Value: 3, Alive: true}

	ApplyDamage(&h, 1)
	if !h.Alive || h.Value != 2 {
		t.Errorf("expected alive with 2 health, got %+v", h)
	}

	ApplyDamage(&h, 5)
	if h.Alive || h.Value != 0 {
		t.Errorf("expected dead at 0 health, got %+v", h)
	}

	// Damaging a corpse is a no-op.
	ApplyDamage(&h, 1)
	if h.Value != 0 {
		t.Errorf("expected health to stay at 0, got %f", h.Value)
	}
}
