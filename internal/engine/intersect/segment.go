// Package intersect provides the segment/triangle test used for terrain collision.
package intersect

import (
	"github.com/Faultbox/terrain-flight/pkg/math"
)

// epsilon rejects segments parallel to the triangle plane and degenerate triangles
// such as the repeated-index joins of a triangle strip.
const epsilon = 1e-7

// Segment represents the points Origin + t*Direction for t in [0, 1].
type Segment struct {
	Origin    math.Vec3
	Direction math.Vec3 // Not normalized; its length is the segment length
}

// At returns the point at parameter t.
func (s Segment) At(t float32) math.Vec3 {
	return s.Origin.Add(s.Direction.Scale(t))
}

// End returns the far endpoint of the segment.
func (s Segment) End() math.Vec3 {
	return s.Origin.Add(s.Direction)
}

// Triangle tests the segment against triangle (a, b, c) using the Moller-Trumbore
// algorithm. Both faces count as hits. Returns the parameter t of the hit.
func (s Segment) Triangle(a, b, c math.Vec3) (t float32, hit bool) {
	edge1 := b.Sub(a)
	edge2 := c.Sub(a)

	h := s.Direction.Cross(edge2)
	det := edge1.Dot(h)

	// Segment lies in (or parallel to) the triangle plane
	if det > -epsilon && det < epsilon {
		return 0, false
	}

	f := 1.0 / det
	toOrigin := s.Origin.Sub(a)
	u := f * toOrigin.Dot(h)
	if u < 0 || u > 1 {
		return 0, false
	}

	q := toOrigin.Cross(edge1)
	v := f * s.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t = f * edge2.Dot(q)
	if t < 0 || t > 1 {
		return 0, false
	}
	return t, true
}

// SegmentTriangle reports where the segment starting at origin and spanning dir
// crosses triangle (a, b, c), if it does.
func SegmentTriangle(origin, dir, a, b, c math.Vec3) (math.Vec3, bool) {
	s := Segment{Origin: origin, Direction: dir}
	t, ok := s.Triangle(a, b, c)
	if !ok {
		return math.Vec3{}, false
	}
	return s.At(t), true
}
