package terrain

// BuildMesh lays the height field out on x, z in [-1, 1] with y = elevation and
// indexes it as a single triangle strip. Rows are stitched with repeated
// indices, which produce zero-area triangles.
func BuildMesh(f *HeightField) *Mesh {
	n := f.Size
	positions := make([]float32, 0, n*n*3)

	bounds := Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}

	step := float32(0)
	if n > 1 {
		step = 2 / float32(n-1)
	}

	for row := range n {
		for col := range n {
			p := [3]float32{
				-1 + float32(col)*step,
				f.At(col, row),
				-1 + float32(row)*step,
			}
			updateBounds(&bounds, p)
			positions = append(positions, p[0], p[1], p[2])
		}
	}

	return &Mesh{
		Positions: positions,
		Indices:   stripIndices(n),
		Bounds:    bounds,
	}
}

// stripIndices returns the triangle-strip index buffer for an n x n grid.
func stripIndices(n int) []uint32 {
	if n < 2 {
		return nil
	}

	indices := make([]uint32, 0, (n-1)*(2*n+2))
	for row := 0; row < n-1; row++ {
		if row > 0 {
			// Degenerate join: repeat the first vertex of this row
			indices = append(indices, uint32(row*n))
		}
		for col := 0; col < n; col++ {
			indices = append(indices, uint32(row*n+col), uint32((row+1)*n+col))
		}
		if row < n-2 {
			// Degenerate join: repeat the last vertex of this row
			indices = append(indices, uint32((row+1)*n+n-1))
		}
	}
	return indices
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := range 3 {
		b.Min[i] = min(b.Min[i], p[i])
		b.Max[i] = max(b.Max[i], p[i])
	}
}
