package flight

import (
	"github.com/Faultbox/terrain-flight/internal/engine/intersect"
	"github.com/Faultbox/terrain-flight/internal/engine/terrain"
	"github.com/Faultbox/terrain-flight/pkg/math"
)

// DefaultSafetyMargin is subtracted from the hit fraction so the flyer stops
// short of the surface.
const DefaultSafetyMargin = 0.4

// Resolver shrinks displacements that would carry the flyer through the terrain.
type Resolver struct {
	mesh   *terrain.Mesh
	margin float32
}

// NewResolver creates a resolver over an immutable mesh.
func NewResolver(mesh *terrain.Mesh, margin float32) *Resolver {
	return &Resolver{mesh: mesh, margin: margin}
}

// ScaleFactor is the factor applied to a displacement of length magnitude that
// hits the surface dist away from the flyer. It goes negative when the hit is
// closer than margin*magnitude, which reverses the displacement instead of
// stopping it.
func ScaleFactor(dist, magnitude, margin float32) float32 {
	return dist/magnitude - margin
}

// Resolve returns the displacement d adjusted against every strip triangle,
// and the number of triangles hit.
//
// The renderer translates the world by the position, so the flyer sits at
// -pos and moves by -d in mesh space; the segment is tested in that frame.
// Each hit rescales d, and later triangles are tested against the rescaled d.
func (r *Resolver) Resolve(pos, d math.Vec3) (math.Vec3, int) {
	origin := pos.Neg()
	hits := 0

	for i := 0; i < r.mesh.TriangleCount(); i++ {
		a, b, c := r.mesh.Triangle(i)
		p, ok := intersect.SegmentTriangle(origin, d.Neg(), a, b, c)
		if !ok {
			continue
		}
		dist := p.Distance(origin)
		d = d.Scale(ScaleFactor(dist, d.Length(), r.margin))
		hits++
	}

	return d, hits
}
