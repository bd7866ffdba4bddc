package renderer

import "fmt"

// vertexStride is the number of floats per interleaved vertex:
// position, normal, colour.
const vertexStride = 9

// Interleave packs the three per-vertex xyz arrays into one buffer.
func Interleave(positions, normals, colors []float32) ([]float32, error) {
	if len(positions)%3 != 0 {
		return nil, fmt.Errorf("positions length %d is not a multiple of 3", len(positions))
	}
	if len(normals) != len(positions) || len(colors) != len(positions) {
		return nil, fmt.Errorf("attribute length mismatch: %d positions, %d normals, %d colors",
			len(positions), len(normals), len(colors))
	}
	if len(positions) == 0 {
		return nil, fmt.Errorf("no vertices")
	}

	n := len(positions) / 3
	out := make([]float32, 0, n*vertexStride)
	for i := 0; i < n; i++ {
		out = append(out, positions[i*3:i*3+3]...)
		out = append(out, normals[i*3:i*3+3]...)
		out = append(out, colors[i*3:i*3+3]...)
	}
	return out, nil
}
