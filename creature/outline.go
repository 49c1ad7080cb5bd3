package creature

import "math"

const (
	sideOffset float32 = math.Pi / 2     // perpendicular side vertices
	capOffset  float32 = 5 * math.Pi / 6 // narrower, pointed head cap
)

// buildOutline rebuilds the raw outline vertex buffer from the current body
// chain. headAngle is the segment direction at index 0 (steer point to
// head); every other index uses the direction from its predecessor.
//
// Buffer layout: [capL, L0, R0, capR, L1..L(M-1), R(M-1)..R1]. The left
// side runs in chain order with the head group in front, the right side in
// reverse; renderers reorder into perimeter order themselves. Indices 2 and
// 3 double as the eye overlay markers.
func (c *Creature) buildOutline(headAngle float32) {
	c.verts[0] = radialPoint(c.body[0], headAngle+capOffset, sizes[0])
	c.verts[1] = radialPoint(c.body[0], headAngle+sideOffset, sizes[0])
	c.verts[2] = radialPoint(c.body[0], headAngle-sideOffset, sizes[0])
	c.verts[3] = radialPoint(c.body[0], headAngle-capOffset, sizes[0])

	// Left side, head to tail.
	n := 4
	for i := 1; i < numPoints; i++ {
		a := c.segmentAngle(i)
		c.verts[n] = radialPoint(c.body[i], a+sideOffset, sizes[i])
		n++
	}

	// Right side, tail back to head.
	for i := numPoints - 1; i >= 1; i-- {
		a := c.segmentAngle(i)
		c.verts[n] = radialPoint(c.body[i], a-sideOffset, sizes[i])
		n++
	}
}

// segmentAngle returns the chain direction at body index i > 0: from the
// predecessor toward the point itself.
func (c *Creature) segmentAngle(i int) float32 {
	return c.body[i].Sub(c.body[i-1]).Angle()
}
