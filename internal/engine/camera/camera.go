// Package camera builds the projection for the flyer's view.
package camera

import (
	"github.com/Faultbox/terrain-flight/pkg/math"
)

// Projection describes a symmetric perspective frustum.
type Projection struct {
	FovYDegrees float32 // Vertical field of view
	Near        float32
	Far         float32
}

// DefaultProjection returns a 45 degree frustum close enough to the camera
// for a terrain spanning [-1, 1].
func DefaultProjection() Projection {
	return Projection{
		FovYDegrees: 45,
		Near:        0.01,
		Far:         100,
	}
}

// Aspect returns width/height, or 1 for an empty viewport.
func Aspect(width, height int) float32 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}

// Flip negates all three eye axes. The model-view puts the eye at
// -position in mesh space with mesh -Y as up, so the projection looks
// through the flip.
var Flip = math.Mat4{
	-1, 0, 0, 0,
	0, -1, 0, 0,
	0, 0, -1, 0,
	0, 0, 0, 1,
}

// Matrix returns the projection matrix for a width x height viewport.
func (p Projection) Matrix(width, height int) math.Mat4 {
	return math.Perspective(math.Radians(p.FovYDegrees), Aspect(width, height), p.Near, p.Far).Mul(Flip)
}
