package creature

import "math"

// updateSpinInput tracks the held spin input. Release is immediate and
// total: the flag clears and the accumulated duration resets to zero.
func (c *Creature) updateSpinInput(held bool) {
	if held {
		c.spinHeld = true
		c.spinDuration += c.params.DT
		return
	}
	if c.spinHeld {
		c.spinHeld = false
		c.spinDuration = 0
	}
}

// spinStep derives the per-tick rotation angle from the accumulated spin
// duration: a logarithmically decelerating ramp clamped to maxSpinStep, so
// spin-up feels fast initially and settles to a steady rate.
func spinStep(duration float32) float32 {
	a := float32(math.Log(float64(duration)+1)) / 5
	if a > maxSpinStep {
		a = maxSpinStep
	}
	return a
}

// applySpin rigidly rotates the whole body chain about its midpoint body
// point. Normal head steering is bypassed for the tick; propagation still
// runs afterwards but is a no-op on an already-rigid chain.
func (c *Creature) applySpin() {
	pivot := c.body[numPoints/2]
	a := spinStep(c.spinDuration)
	for i := range c.body {
		c.body[i] = rotateAround(c.body[i], pivot, a)
	}
}
