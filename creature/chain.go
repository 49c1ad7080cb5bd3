package creature

// followPointer advances the head a small fixed step toward the pointer.
// Inside the deadzone the head holds still, which prevents jitter when the
// pointer hovers near the head.
func (c *Creature) followPointer(pointer Vec2) {
	diff := pointer.Sub(c.body[0])
	if diff.Len() > c.params.FollowDeadzone {
		c.body[0] = radialPoint(c.body[0], diff.Angle(), c.params.FollowStep)
	}
}

// chaseTarget advances the head toward the active grapple point at the
// larger grapple step, releasing the target once the head is close enough.
func (c *Creature) chaseTarget() {
	diff := c.grapplePoint.Sub(c.body[0])
	if diff.Len() > c.params.GrappleRelease {
		c.body[0] = radialPoint(c.body[0], diff.Angle(), c.params.GrappleStep)
	}
	if c.grapplePoint.Sub(c.body[0]).Len() < c.params.GrappleRelease {
		c.grappleActive = false
		c.events.GrappleReleased = true
	}
}

// propagate re-derives every trailing body point from its predecessor in a
// single forward pass. Each point is placed exactly chainRadius behind its
// predecessor along the direction the link already had, so the spacing
// invariant holds by construction every tick. This is a rigid-link chain,
// not a spring: sharp head turns propagate without angular damping.
func (c *Creature) propagate() {
	for i := 1; i < numPoints; i++ {
		diff := c.body[i-1].Sub(c.body[i])
		dist := diff.Len()
		if dist > 0 {
			dir := diff.Scale(1 / dist)
			c.body[i] = c.body[i-1].Sub(dir.Scale(chainRadius))
		}
	}
}
