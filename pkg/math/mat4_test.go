package math

import (
	"math"
	"testing"
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
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation lives in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestScale(t *testing.T) {
	m := Scale(2, 3, 4)

	if m[0] != 2 || m[5] != 3 || m[10] != 4 {
		t.Errorf("Scale diagonal: got (%f, %f, %f), want (2, 3, 4)", m[0], m[5], m[10])
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(10, 20, 30)
	result := m.TransformPoint(Vector3{1, 2, 3})

	if want := (Vector3{11, 22, 33}); result != want {
		t.Errorf("TransformPoint: got %v, want %v", result, want)
	}
}

func TestTransformPointScale(t *testing.T) {
	m := Scale(2, 2, 2)
	result := m.TransformPoint(Vector3{1, 2, 3})

	if want := (Vector3{2, 4, 6}); result != want {
		t.Errorf("TransformPoint with scale: got %v, want %v", result, want)
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	m := Translate(10, 20, 30).Mul(Scale(2, 3, 4))
	result := m.TransformDirection(Vector3{1, 1, 1})

	if want := (Vector3{2, 3, 4}); result != want {
		t.Errorf("TransformDirection: got %v, want %v", result, want)
	}
	if got := Transform(Vector3{1, 1, 1}, m); got != result {
		t.Errorf("Transform() = %v, want %v", got, result)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(math.Pi / 2)
	result := m.TransformPoint(Vector3{1, 0, 0})

	// After 90 degree Y rotation, (1,0,0) becomes approximately (0,0,-1)
	if math.Abs(result.X) > 1e-9 || math.Abs(result.Y) > 1e-9 || math.Abs(result.Z+1) > 1e-9 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestRotateAxisMatchesRotateX(t *testing.T) {
	a := RotateAxis(Vector3{X: 1}, 0.3)
	b := RotateX(0.3)

	for i := 0; i < 16; i++ {
		if math.Abs(a[i]-b[i]) > 1e-12 {
			t.Errorf("RotateAxis(X) element %d: got %v, want %v", i, a[i], b[i])
		}
	}
}

func TestInverse(t *testing.T) {
	m := Translate(1, 2, 3).Mul(RotateZ(0.5)).Mul(Scale(2, 2, 2))
	p := m.Mul(m.Inverse())
	id := Identity()

	for i := 0; i < 16; i++ {
		if math.Abs(p[i]-id[i]) > 1e-12 {
			t.Errorf("M * M^-1 element %d: got %v, want %v", i, p[i], id[i])
		}
	}
}

func TestInverseSingular(t *testing.T) {
	if got := Scale(0, 1, 1).Inverse(); got != Identity() {
		t.Errorf("singular Inverse() = %v, want identity", got)
	}
}

func TestMulVec4(t *testing.T) {
	got := Translate(1, 2, 3).MulVec4(Vec4{1, 1, 1, 0})
	if want := (Vec4{1, 1, 1, 0}); got != want {
		t.Errorf("MulVec4 with w=0: got %v, want %v", got, want)
	}
}

func TestFromMat3x3(t *testing.T) {
	m3 := [9]float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	m4 := FromMat3x3(m3)

	if m4[0] != 1 || m4[1] != 2 || m4[2] != 3 {
		t.Error("FromMat3x3 column 0 incorrect")
	}
	if m4[4] != 4 || m4[5] != 5 || m4[6] != 6 {
		t.Error("FromMat3x3 column 1 incorrect")
	}
	if m4[15] != 1 {
		t.Errorf("FromMat3x3 [15] should be 1, got %f", m4[15])
	}
	if m4.Mat3x3() != m3 {
		t.Errorf("Mat3x3() = %v, want %v", m4.Mat3x3(), m3)
	}
}
