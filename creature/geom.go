package creature

import "math"

// Vec2 is a 2D point or direction in world units.
type Vec2 struct {
	X, Y float32
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the length of v.
func (v Vec2) Len() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// LenSq returns the squared length of v (avoids sqrt in hot paths).
func (v Vec2) LenSq() float32 { return v.X*v.X + v.Y*v.Y }

// Angle returns the direction of v in radians. A zero vector yields 0;
// callers accept this and self-correct on the next tick.
func (v Vec2) Angle() float32 {
	return float32(math.Atan2(float64(v.Y), float64(v.X)))
}

// fromAngle returns the unit vector pointing along angle a.
func fromAngle(a float32) Vec2 {
	return Vec2{float32(math.Cos(float64(a))), float32(math.Sin(float64(a)))}
}

// radialPoint returns center offset by dist along angle a.
func radialPoint(center Vec2, a, dist float32) Vec2 {
	return center.Add(fromAngle(a).Scale(dist))
}

// rotateAround rotates p about pivot by angle a.
func rotateAround(p, pivot Vec2, a float32) Vec2 {
	sin := float32(math.Sin(float64(a)))
	cos := float32(math.Cos(float64(a)))
	d := p.Sub(pivot)
	return Vec2{
		X: pivot.X + d.X*cos - d.Y*sin,
		Y: pivot.Y + d.X*sin + d.Y*cos,
	}
}
