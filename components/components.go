// Package components defines ECS components for the world critters the
// creature interacts with.
package components

// Kind discriminates critter dispositions.
type Kind uint8

const (
	KindPrey Kind = iota
	// KindPredator marks hostile critters: eligible for grapple impulses
	// and attack-pulse damage.
	KindPredator
)

// Position is a critter's world position.
type Position struct {
	X, Y float32
}

// Velocity is a critter's impulse velocity in world units per second.
type Velocity struct {
	X, Y float32
}

// Rotation holds a critter's wander heading.
type Rotation struct {
	Heading float32
}

// Body holds a critter's collision circle.
type Body struct {
	Radius float32
}

// Health tracks damage state. Dead critters are collected and removed at
// the end of the tick.
type Health struct {
	Value float32
	Alive bool
}

// Critter holds identity data.
type Critter struct {
	ID   uint32
	Kind Kind
}
