package terrain

import gomath "math"

// CalculateNormals returns per-vertex normals (flat xyz) for the mesh.
// Face normals of every non-degenerate strip triangle are accumulated on its
// vertices and averaged. Normals face mesh -Y, the side the eye and the
// light sit on. Odd strip triangles have reversed winding, so even ones are
// negated to make all faces agree.
func CalculateNormals(m *Mesh) []float32 {
	sums := make([][3]float32, m.VertexCount())

	for i := 0; i < m.TriangleCount(); i++ {
		ia, ib, ic := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		if ia == ib || ib == ic || ia == ic {
			continue
		}

		a, b, c := m.Triangle(i)
		n := b.Sub(a).Cross(c.Sub(a))
		if i%2 == 0 {
			n = n.Neg()
		}

		for _, idx := range [3]uint32{ia, ib, ic} {
			sums[idx][0] += n.X
			sums[idx][1] += n.Y
			sums[idx][2] += n.Z
		}
	}

	normals := make([]float32, 0, len(sums)*3)
	for _, s := range sums {
		n := normalize(s)
		normals = append(normals, n[0], n[1], n[2])
	}
	return normals
}

func normalize(v [3]float32) [3]float32 {
	l := sqrtf(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if l < 0.0001 {
		return [3]float32{0, -1, 0}
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}

func sqrtf(x float32) float32 {
	return float32(gomath.Sqrt(float64(x)))
}
