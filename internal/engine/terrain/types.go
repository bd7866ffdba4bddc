// Package terrain builds the height field, triangle-strip mesh, normals and
// vertex colours for the flight scene.
package terrain

import (
	"github.com/Faultbox/terrain-flight/pkg/math"
)

// HeightField is a square grid of elevations, row-major.
// Immutable once generated.
type HeightField struct {
	Size    int       // Vertices per side
	Heights []float32 // Size*Size elevations, index row*Size+col
}

// Mesh holds the terrain geometry ready for GPU upload and collision queries.
type Mesh struct {
	Positions []float32 // Flat xyz per vertex
	Indices   []uint32  // Triangle strip, rows joined by degenerate triangles
	Bounds    Bounds
}

// Bounds holds the axis-aligned bounding box of the terrain.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// Vertex returns the position of vertex i.
func (m *Mesh) Vertex(i uint32) math.Vec3 {
	p := m.Positions[i*3 : i*3+3]
	return math.Vec3{X: p[0], Y: p[1], Z: p[2]}
}

// TriangleCount returns the number of triangles the strip describes,
// degenerate join triangles included.
func (m *Mesh) TriangleCount() int {
	if len(m.Indices) < 3 {
		return 0
	}
	return len(m.Indices) - 2
}

// Triangle returns the vertices of strip triangle i (indices i, i+1, i+2).
func (m *Mesh) Triangle(i int) (a, b, c math.Vec3) {
	return m.Vertex(m.Indices[i]), m.Vertex(m.Indices[i+1]), m.Vertex(m.Indices[i+2])
}
