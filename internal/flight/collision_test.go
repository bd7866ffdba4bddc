package flight

import (
	"testing"

	"github.com/Faultbox/terrain-flight/internal/engine/terrain"
	"github.com/Faultbox/terrain-flight/pkg/math"
)

func TestResolveNoHitLeavesDisplacement(t *testing.T) {
	mesh := terrain.BuildMesh(terrain.Flat(5))
	r := NewResolver(mesh, DefaultSafetyMargin)

	tests := []struct {
		name string
		pos  math.Vec3
		d    math.Vec3
	}{
		{"parallel to surface", math.Vec3{Y: 0.3}, math.Vec3{Z: -0.05}},
		{"away from surface", math.Vec3{Y: 0.3}, math.Vec3{Y: 0.05}},
		{"short of surface", math.Vec3{Y: 0.3}, math.Vec3{Y: 0.1}},
		{"zero", math.Vec3{Y: 0.3}, math.Vec3{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hits := r.Resolve(tt.pos, tt.d)
			if hits != 0 {
				t.Errorf("hits = %d, want 0", hits)
			}
			if got != tt.d {
				t.Errorf("Resolve = %v, want %v unchanged", got, tt.d)
			}
		})
	}
}

func TestResolveSingleHitScales(t *testing.T) {
	r := NewResolver(meshOf(horizontal(0)), DefaultSafetyMargin)

	// Flyer sits at y=-0.2 in mesh space and moves up by 0.25; surface is 0.2 away.
	pos := math.Vec3{Y: 0.2}
	d := math.Vec3{Y: -0.25}

	got, hits := r.Resolve(pos, d)
	if hits != 1 {
		t.Fatalf("hits = %d, want 1", hits)
	}

	wantLen := d.Length() * (0.2/d.Length() - DefaultSafetyMargin)
	if absf(got.Length()-wantLen) > 1e-5 {
		t.Errorf("|result| = %f, want %f", got.Length(), wantLen)
	}
	if !near(got, math.Vec3{Y: -0.1}) {
		t.Errorf("result = %v, want (0, -0.1, 0)", got)
	}
}

func TestResolveNegativeFactorReverses(t *testing.T) {
	r := NewResolver(meshOf(horizontal(0)), DefaultSafetyMargin)

	// Surface is 0.05 away on a 0.5 step: factor 0.1 - 0.4 = -0.3.
	got, hits := r.Resolve(math.Vec3{Y: 0.05}, math.Vec3{Y: -0.5})
	if hits != 1 {
		t.Fatalf("hits = %d, want 1", hits)
	}
	if !near(got, math.Vec3{Y: 0.15}) {
		t.Errorf("result = %v, want reversed (0, 0.15, 0)", got)
	}
}

func TestScaleFactor(t *testing.T) {
	tests := []struct {
		dist, mag, want float32
	}{
		{0.2, 0.25, 0.4},
		{0.05, 0.5, -0.3},
		{0.4, 1, 0},
		{1, 1, 0.6},
	}
	for _, tt := range tests {
		got := ScaleFactor(tt.dist, tt.mag, DefaultSafetyMargin)
		if absf(got-tt.want) > 1e-6 {
			t.Errorf("ScaleFactor(%v, %v) = %v, want %v", tt.dist, tt.mag, got, tt.want)
		}
	}
}

func TestResolveIsCumulative(t *testing.T) {
	// Far plane first in the strip, then a nearer one. The second test must use
	// the displacement already shortened by the first.
	r := NewResolver(meshOf(horizontal(1), horizontal(0.1)), DefaultSafetyMargin)

	got, hits := r.Resolve(math.Vec3{Y: 0.2}, math.Vec3{Y: -2})
	if hits != 2 {
		t.Fatalf("hits = %d, want 2", hits)
	}
	// 1st: 1.2/2 - 0.4 = 0.2 -> -0.4. 2nd: 0.3/0.4 - 0.4 = 0.35 -> -0.14.
	if !near(got, math.Vec3{Y: -0.14}) {
		t.Errorf("result = %v, want (0, -0.14, 0)", got)
	}
}

func TestResolveSurfaceOutOfReach(t *testing.T) {
	mesh := meshOf(horizontal(5), horizontal(6))
	r := NewResolver(mesh, DefaultSafetyMargin)

	d := math.Vec3{Y: -0.1}
	got, hits := r.Resolve(math.Vec3{Y: 0.3}, d)
	if hits != 0 || got != d {
		t.Errorf("Resolve = %v (%d hits), want %v untouched", got, hits, d)
	}
}
