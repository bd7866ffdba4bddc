package flight

import (
	"github.com/Faultbox/terrain-flight/internal/engine/terrain"
	"github.com/Faultbox/terrain-flight/pkg/math"
)

// recordingSink captures what the deriver publishes.
type recordingSink struct {
	views       []math.Mat4
	modelViews  []math.Mat4
	projections int
}

func (r *recordingSink) SetView(m math.Mat4)      { r.views = append(r.views, m) }
func (r *recordingSink) SetModelView(m math.Mat4) { r.modelViews = append(r.modelViews, m) }
func (r *recordingSink) RefreshProjection()       { r.projections++ }

// meshOf builds a mesh from loose triangles, joining them into one strip with
// degenerate triangles.
func meshOf(tris ...[3]math.Vec3) *terrain.Mesh {
	m := &terrain.Mesh{}
	for i, tri := range tris {
		base := uint32(i * 3)
		for _, v := range tri {
			m.Positions = append(m.Positions, v.X, v.Y, v.Z)
		}
		if i > 0 {
			last := m.Indices[len(m.Indices)-1]
			m.Indices = append(m.Indices, last, base)
		}
		m.Indices = append(m.Indices, base, base+1, base+2)
	}
	return m
}

// horizontal returns a large triangle in the plane y = h covering the origin.
func horizontal(h float32) [3]math.Vec3 {
	return [3]math.Vec3{
		{X: -2, Y: h, Z: -2},
		{X: 2, Y: h, Z: -2},
		{X: 0, Y: h, Z: 2},
	}
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func near(a, b math.Vec3) bool {
	return a.Distance(b) < 1e-5
}
