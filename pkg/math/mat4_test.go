package math

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(Vec3{1, 2, 3})
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(Vec3{5, 10, 15})

	// Translation should be in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(Vec3{10, 20, 30})
	got := m.TransformPoint(Vec3{1, 2, 3})

	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformPoint: got %v, want %v", got, want)
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	m := Translate(Vec3{10, 20, 30})
	d := Vec3{0, 0, -1}
	if got := m.TransformDirection(d); got != d {
		t.Errorf("TransformDirection: got %v, want %v", got, d)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2)) // 90 degrees
	result := m.TransformPoint(Vec3{1, 0, 0})

	// After 90 degree Y rotation, (1,0,0) should become approximately (0,0,-1)
	if abs(result.X) > 0.001 || abs(result.Y) > 0.001 || abs(result.Z+1) > 0.001 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestTransposeInvertsRotation(t *testing.T) {
	r := RotateX(0.3).Mul(RotateZ(-1.1)).Mul(RotateY(2.4))
	got := r.Mul(r.Transpose())
	assertMatNear(t, "R * R^T", got, Identity())
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/4), 1.0, 0.1, 100.0)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

// The hand-written matrices must agree with mathgl.
func TestMatchesMathGL(t *testing.T) {
	angles := []float32{0, 0.25, -1.3, float32(math.Pi), 7.5}

	for _, a := range angles {
		assertMatNear(t, "RotateX", RotateX(a), Mat4(mgl32.HomogRotate3DX(a)))
		assertMatNear(t, "RotateY", RotateY(a), Mat4(mgl32.HomogRotate3DY(a)))
		assertMatNear(t, "RotateZ", RotateZ(a), Mat4(mgl32.HomogRotate3DZ(a)))
	}

	assertMatNear(t, "Translate", Translate(Vec3{1, -2, 3}), Mat4(mgl32.Translate3D(1, -2, 3)))
	assertMatNear(t, "Perspective",
		Perspective(0.8, 1.5, 0.01, 50),
		Mat4(mgl32.Perspective(0.8, 1.5, 0.01, 50)))

	// Composition order X, Z, Y then translate.
	ours := RotateX(0.4).Mul(RotateZ(0.2)).Mul(RotateY(-0.9)).Mul(Translate(Vec3{0.1, 0.3, -0.5}))
	theirs := mgl32.HomogRotate3DX(0.4).
		Mul4(mgl32.HomogRotate3DZ(0.2)).
		Mul4(mgl32.HomogRotate3DY(-0.9)).
		Mul4(mgl32.Translate3D(0.1, 0.3, -0.5))
	assertMatNear(t, "composed", ours, Mat4(theirs))

	v := Vec4{0.5, -1, 2, 1}
	got := ours.MulVec4(v)
	want := theirs.Mul4x1(mgl32.Vec4{0.5, -1, 2, 1})
	for i := range got {
		if abs(got[i]-want[i]) > 1e-5 {
			t.Errorf("MulVec4[%d]: got %f, want %f", i, got[i], want[i])
		}
	}
}

func assertMatNear(t *testing.T, name string, got, want Mat4) {
	t.Helper()
	for i := range got {
		if abs(got[i]-want[i]) > 1e-5 {
			t.Errorf("%s element %d: got %f, want %f", name, i, got[i], want[i])
		}
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
