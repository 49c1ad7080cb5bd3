package systems

import (
	"math"
	"math/rand"

	"github.com/Joshua861/lucas/components"
)

// WanderParams holds the critter motion tuning, built from config once at
// startup.
type WanderParams struct {
	MaxSpeed float32 // cruise speed in world units per second
	TurnRate float32 // heading jitter magnitude in radians per second
	Drag     float32 // exponential damping applied to impulse velocity
	WorldW   float32
	WorldH   float32
}

// UpdateWander advances one critter by one tick: jitter the heading, cruise
// along it, decay any impulse velocity, and keep the critter inside the
// world bounds by reflecting its heading at the border.
func UpdateWander(pos *components.Position, vel *components.Velocity, rot *components.Rotation, rng *rand.Rand, p WanderParams, dt float32) {
	rot.Heading = normalizeAngle(rot.Heading + (rng.Float32()*2-1)*p.TurnRate*dt)

	// Impulse velocity (grapple shove, attack repel) decays with drag;
	// cruise motion is added on top each tick.
	dragFactor := float32(math.Exp(float64(-p.Drag * dt)))
	vel.X *= dragFactor
	vel.Y *= dragFactor

	cruiseX := float32(math.Cos(float64(rot.Heading))) * p.MaxSpeed * dt
	cruiseY := float32(math.Sin(float64(rot.Heading))) * p.MaxSpeed * dt

	pos.X += vel.X*dt + cruiseX
	pos.Y += vel.Y*dt + cruiseY

	if pos.X < 0 || pos.X > p.WorldW {
		rot.Heading = normalizeAngle(math.Pi - rot.Heading)
		pos.X = clampFloat(pos.X, 0, p.WorldW)
	}
	if pos.Y < 0 || pos.Y > p.WorldH {
		rot.Heading = normalizeAngle(-rot.Heading)
		pos.Y = clampFloat(pos.Y, 0, p.WorldH)
	}
}

// ApplyDamage reduces a critter's health, marking it dead at zero.
func ApplyDamage(h *components.Health, amount float32) {
	if !h.Alive {
		return
	}
	h.Value -= amount
	if h.Value <= 0 {
		h.Value = 0
		h.Alive = false
	}
}
