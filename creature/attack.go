package creature

// startAttack opens the timed hit window. Re-triggering while a window is
// already open is a no-op.
func (c *Creature) startAttack() {
	if c.attackTicks > 0 {
		return
	}
	// +1 because the countdown already ticks once later this same update;
	// the pulse resolves a full window after the trigger.
	c.attackTicks = c.params.AttackTicks + 1
	c.events.AttackStarted = true
}

// updateAttack counts the open hit window down one tick and resolves the
// pulse when it expires: every predator overlapping the head volume takes
// damage and a repelling impulse. The rest of the per-tick update keeps
// running normally while the window is open; this countdown is the only
// state deliberately carried across ticks.
func (c *Creature) updateAttack() {
	if c.attackTicks == 0 {
		return
	}
	c.attackTicks--
	if c.attackTicks > 0 {
		return
	}

	head := c.body[0]
	for _, contact := range c.phys.QueryOverlap(head, c.params.AttackRadius) {
		if !contact.Predator {
			continue
		}
		c.phys.ApplyDamage(contact.Entity, c.params.AttackDamage)

		repel := contact.Pos.Sub(head)
		if l := repel.Len(); l > 0 {
			repel = repel.Scale(1 / l)
		} else {
			repel = Vec2{1, 0}
		}
		c.phys.ApplyImpulse(contact.Entity, repel.Scale(c.params.AttackImpulse))
		c.events.AttackHits++
	}
}
