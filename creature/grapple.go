package creature

// fireGrapple fires the tongue toward the pointer. While a target is
// already active this is a no-op (lock-on: no cancel-and-refire).
//
// A raycast hit on a predator grapples the hit point and shoves the entity
// along the aim direction; any other outcome grapples a point at maximum
// range along the aim, so a whiff still lunges into empty space.
func (c *Creature) fireGrapple(pointer Vec2) {
	if c.grappleActive {
		return
	}

	aim := fromAngle(pointer.Sub(c.body[0]).Angle())
	c.events.GrappleFired = true

	if hit, ok := c.phys.RayCast(c.body[0], aim, c.params.GrappleRange); ok && hit.Predator {
		c.phys.ApplyImpulse(hit.Entity, aim.Scale(c.params.GrappleImpulse))
		c.grapplePoint = hit.Point
		c.events.GrappleHit = true
	} else {
		c.grapplePoint = c.body[0].Add(aim.Scale(c.params.GrappleRange))
	}
	c.grappleActive = true
}
