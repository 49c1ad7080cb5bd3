package creature

// Leg is a short joint chain pinned to a body outline vertex, relaxing its
// tip toward a slowly-updating foot target.
type Leg struct {
	// Joints are the solved joint positions, root first. Consecutive
	// joints are exactly segLen apart after every solve.
	Joints [numJoints]Vec2

	// Foot is the held foot target. It only moves when the candidate foot
	// point drifts past the step threshold, which produces the planted
	// foot, occasional step look.
	Foot Vec2

	anchor int     // outline vertex index the root joint pins to
	segLen float32 // fixed length of each leg segment
}

// newLeg creates a leg pinned to the given outline vertex with segments of
// legSize * chainRadius.
func newLeg(anchor, legSize int) Leg {
	return Leg{anchor: anchor, segLen: float32(legSize) * chainRadius}
}

// updateLegs advances every leg one tick: refresh the anchor, apply foot
// target hysteresis, then relax the joint chain.
func (c *Creature) updateLegs() {
	for i := range c.legs {
		leg := &c.legs[i]
		anchor := c.verts[leg.anchor]

		candidate := c.footCandidate(leg)
		// A step is suppressed entirely while a grapple target is active,
		// so the feet stay planted during the lunge.
		if !c.grappleActive && candidate.Sub(leg.Foot).LenSq() > footStepThresholdSq {
			leg.Foot = candidate
			c.events.FootSteps++
		}

		leg.solve(anchor)
	}
}

// footCandidate computes where this leg would plant its foot right now:
// offset perpendicular from the anchor's body segment, scaled by twice the
// segment's width. The sign alternates with anchor parity so legs on
// opposite body sides mirror each other.
func (c *Creature) footCandidate(leg *Leg) Vec2 {
	bi := anchorBody(leg.anchor)
	a := c.segmentAngle(bi)
	side := sideOffset
	if leg.anchor%2 != 0 {
		side = -sideOffset
	}
	return radialPoint(c.verts[leg.anchor], a+side, 2*sizes[bi])
}

// anchorBody maps an outline vertex index back to the body point it was
// derived from (see buildOutline for the buffer layout).
func anchorBody(vert int) int {
	switch {
	case vert < 4:
		return 0
	case vert < numPoints+3:
		return vert - 3 // left side, chain order
	default:
		return numVertices - vert // right side, reverse order
	}
}

// solve runs the fixed relaxation budget: each iteration pins the tip to
// the foot target on a backward pass, re-pins the root to the anchor, then
// restores segment lengths on a forward pass. Both passes preserve each
// link's direction while enforcing its length, so a handful of iterations
// settles the chain between the two pins.
func (leg *Leg) solve(anchor Vec2) {
	leg.Joints[0] = anchor

	for it := 0; it < relaxIterations; it++ {
		// Backward: tip to foot target, walk to the root.
		leg.Joints[numJoints-1] = leg.Foot
		for i := numJoints - 2; i >= 0; i-- {
			leg.Joints[i] = placeAt(leg.Joints[i+1], leg.Joints[i], leg.segLen)
		}

		// The backward pass displaced the root; force it back onto the
		// anchor before the forward pass.
		leg.Joints[0] = anchor

		// Forward: root to tip.
		for i := 1; i < numJoints; i++ {
			leg.Joints[i] = placeAt(leg.Joints[i-1], leg.Joints[i], leg.segLen)
		}
	}
}

// placeAt repositions p exactly dist away from base, along the direction
// from base to p. A degenerate zero-length delta falls back to +X.
func placeAt(base, p Vec2, dist float32) Vec2 {
	diff := p.Sub(base)
	l := diff.Len()
	if l == 0 {
		return Vec2{base.X + dist, base.Y}
	}
	return base.Add(diff.Scale(dist / l))
}
