package game

import (
	"github.com/Joshua861/lucas/components"
	"github.com/Joshua861/lucas/creature"
	"github.com/Joshua861/lucas/systems"
)

// physicsBridge implements creature.Physics against the critter world: the
// spatial grid answers raycasts and overlap queries, the component mappers
// apply impulses and damage.
type physicsBridge struct {
	g *Game
}

// RayCast finds the nearest living critter hit by the ray.
func (b *physicsBridge) RayCast(origin, dir creature.Vec2, maxLen float32) (creature.Hit, bool) {
	g := b.g

	// The grid stores critter centers, so the search radius pads the ray
	// length by the body radius.
	g.neighborBuf = g.spatialGrid.QueryRadiusInto(
		g.neighborBuf[:0], origin.X, origin.Y, maxLen+g.critterRadius, g.posMap)

	var (
		best  creature.Hit
		bestT float32
		found bool
	)

	for _, n := range g.neighborBuf {
		pos := g.posMap.Get(n.E)
		body := g.bodyMap.Get(n.E)
		health := g.healthMap.Get(n.E)
		if pos == nil || body == nil || health == nil || !health.Alive {
			continue
		}

		t, ok := systems.RayCircle(origin.X, origin.Y, dir.X, dir.Y, maxLen, pos.X, pos.Y, body.Radius)
		if !ok || (found && t >= bestT) {
			continue
		}

		crit := g.critMap.Get(n.E)
		if crit == nil {
			continue
		}

		bestT = t
		found = true
		best = creature.Hit{
			Point:    origin.Add(dir.Scale(t)),
			Entity:   crit.ID,
			Predator: crit.Kind == components.KindPredator,
		}
	}

	return best, found
}

// QueryOverlap returns living critters overlapping the circle. The returned
// slice is reused across calls.
func (b *physicsBridge) QueryOverlap(center creature.Vec2, radius float32) []creature.Contact {
	g := b.g

	g.neighborBuf = g.spatialGrid.QueryRadiusInto(
		g.neighborBuf[:0], center.X, center.Y, radius+g.critterRadius, g.posMap)
	g.contactBuf = g.contactBuf[:0]

	for _, n := range g.neighborBuf {
		pos := g.posMap.Get(n.E)
		body := g.bodyMap.Get(n.E)
		health := g.healthMap.Get(n.E)
		if pos == nil || body == nil || health == nil || !health.Alive {
			continue
		}

		if !systems.CircleOverlap(center.X, center.Y, radius, pos.X, pos.Y, body.Radius) {
			continue
		}

		crit := g.critMap.Get(n.E)
		if crit == nil {
			continue
		}

		g.contactBuf = append(g.contactBuf, creature.Contact{
			Entity:   crit.ID,
			Pos:      creature.Vec2{X: pos.X, Y: pos.Y},
			Predator: crit.Kind == components.KindPredator,
		})
	}

	return g.contactBuf
}

// ApplyImpulse adds a velocity impulse to a critter by ID.
func (b *physicsBridge) ApplyImpulse(id uint32, impulse creature.Vec2) {
	g := b.g
	entity, ok := g.byID[id]
	if !ok {
		return
	}
	vel := g.velMap.Get(entity)
	if vel == nil {
		return
	}
	vel.X += impulse.X
	vel.Y += impulse.Y
}

// ApplyDamage damages a critter by ID. Dead critters are collected at the
// end of the tick.
func (b *physicsBridge) ApplyDamage(id uint32, amount float32) {
	g := b.g
	entity, ok := g.byID[id]
	if !ok {
		return
	}
	health := g.healthMap.Get(entity)
	if health == nil {
		return
	}
	systems.ApplyDamage(health, amount)
}
