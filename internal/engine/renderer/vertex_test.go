package renderer

import (
	"testing"

	"github.com/Faultbox/terrain-flight/internal/engine/terrain"
)

func TestInterleave(t *testing.T) {
	pos := []float32{1, 2, 3, 4, 5, 6}
	nrm := []float32{0, 1, 0, 0, 1, 0}
	col := []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}

	got, err := Interleave(pos, nrm, col)
	if err != nil {
		t.Fatalf("Interleave: %v", err)
	}
	want := []float32{
		1, 2, 3, 0, 1, 0, 0.1, 0.2, 0.3,
		4, 5, 6, 0, 1, 0, 0.4, 0.5, 0.6,
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestInterleaveErrors(t *testing.T) {
	tests := []struct {
		name          string
		pos, nrm, col []float32
	}{
		{"empty", nil, nil, nil},
		{"ragged positions", []float32{1, 2}, []float32{1, 2}, []float32{1, 2}},
		{"short normals", []float32{1, 2, 3}, []float32{1}, []float32{1, 2, 3}},
		{"short colors", []float32{1, 2, 3}, []float32{1, 2, 3}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Interleave(tt.pos, tt.nrm, tt.col); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestInterleaveTerrain(t *testing.T) {
	field := terrain.Flat(5)
	mesh := terrain.BuildMesh(field)

	got, err := Interleave(mesh.Positions, terrain.CalculateNormals(mesh), terrain.Colors(field))
	if err != nil {
		t.Fatalf("Interleave: %v", err)
	}
	if len(got) != mesh.VertexCount()*vertexStride {
		t.Errorf("len = %d, want %d", len(got), mesh.VertexCount()*vertexStride)
	}
}
