package systems

import "math"

// RayCircle intersects a ray starting at (ox, oy) along the unit direction
// (dx, dy) with the circle at (cx, cy) of radius r. It returns the distance
// along the ray to the nearest intersection within maxLen. Rays starting
// inside the circle report a hit at distance 0.
func RayCircle(ox, oy, dx, dy, maxLen, cx, cy, r float32) (float32, bool) {
	// Quadratic in t: |o + t*d - c|^2 = r^2 with |d| = 1.
	fx := ox - cx
	fy := oy - cy

	b := fx*dx + fy*dy
	c := fx*fx + fy*fy - r*r

	if c <= 0 {
		return 0, true
	}

	disc := b*b - c
	if disc < 0 {
		return 0, false
	}

	t := -b - float32(math.Sqrt(float64(disc)))
	if t < 0 || t > maxLen {
		return 0, false
	}
	return t, true
}

// CircleOverlap reports whether two circles overlap.
func CircleOverlap(x1, y1, r1, x2, y2, r2 float32) bool {
	rr := r1 + r2
	return distanceSq(x1, y1, x2, y2) <= rr*rr
}
