package math

import "math"

// Vec2 is a 2D vector. The flight code uses it for the horizontal (x, z) plane.
type Vec2 struct {
	X, Y float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// InSquare reports whether both components lie in the closed range
// [-halfWidth, halfWidth].
func (v Vec2) InSquare(halfWidth float32) bool {
	return v.X >= -halfWidth && v.X <= halfWidth &&
		v.Y >= -halfWidth && v.Y <= halfWidth
}
