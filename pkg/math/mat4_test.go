package math

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIdentity(t *testing.T) {
	m := Identity[float32]()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}

	var n Mat4f
	n.SetIdentity()
	if n != m {
		t.Error("SetIdentity should match Identity")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate[float32](1, 2, 3)
	if got := m.Mul(Identity[float32]()); got != m {
		t.Errorf("M * I = %v, want %v", got, m)
	}
	if got := Identity[float32]().Mul(m); got != m {
		t.Errorf("I * M = %v, want %v", got, m)
	}
}

func TestMat4FromRows(t *testing.T) {
	m := Mat4FromRows[float32](
		1, 0, 0, 5,
		0, 1, 0, 10,
		0, 0, 1, 15,
		0, 0, 0, 1,
	)
	if m != Translate[float32](5, 10, 15) {
		t.Errorf("row-major translation = %v", m)
	}
	if got := m.Row(0); got != (Vec4f{1, 0, 0, 5}) {
		t.Errorf("Row(0) = %v", got)
	}
	if got := m.Col(3); got != (Vec4f{5, 10, 15, 1}) {
		t.Errorf("Col(3) = %v", got)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate[float32](5, 10, 15)

	// Translation should be in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4f
		p    Vec3f
		want Vec3f
	}{
		{"translate", Translate[float32](10, 20, 30), Vec3f{1, 2, 3}, Vec3f{11, 22, 33}},
		{"scale", Scale[float32](2, 2, 2), Vec3f{1, 2, 3}, Vec3f{2, 4, 6}},
		{"rotate y", RotateY(float32(math.Pi / 2)), Vec3f{1, 0, 0}, Vec3f{0, 0, -1}},
		{"rotate z", RotateZ(float32(math.Pi / 2)), Vec3f{1, 0, 0}, Vec3f{0, 1, 0}},
		{"rotate x", RotateX(float32(math.Pi / 2)), Vec3f{0, 1, 0}, Vec3f{0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.p)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("TransformPoint mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	m := Translate[float64](4, 5, 6)
	if got := m.TransformDirection(Vec3d{1, 2, 3}); got != (Vec3d{1, 2, 3}) {
		t.Errorf("TransformDirection = %v", got)
	}
}

func TestRotateAxisMatchesRotateZ(t *testing.T) {
	angle := 0.7
	got := RotateAxis(Vec3d{0, 0, 1}, angle)
	if diff := cmp.Diff(RotateZ(angle), got, approx); diff != "" {
		t.Errorf("RotateAxis(z) mismatch (-want +got):\n%s", diff)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective[float32](math.Pi/4, 1, 0.1, 100)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	// Element [15] should be 0 for perspective projection
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	// Element [11] should be -1 for perspective projection
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}

	// The near plane maps to -1 and the far plane to +1 in NDC.
	near := m.TransformPoint(Vec3f{0, 0, -0.1})
	far := m.TransformPoint(Vec3f{0, 0, -100})
	if math.Abs(float64(near[2])+1) > 1e-4 || math.Abs(float64(far[2])-1) > 1e-4 {
		t.Errorf("depth range = [%v, %v], want [-1, 1]", near[2], far[2])
	}
}

func TestOrtho(t *testing.T) {
	m := Ortho[float64](0, 800, 0, 600, -1, 1)

	center := m.TransformPoint(Vec3d{400, 300, 0})
	if diff := cmp.Diff(Vec3d{0, 0, 0}, center, approx); diff != "" {
		t.Errorf("center mismatch (-want +got):\n%s", diff)
	}
	corner := m.TransformPoint(Vec3d{800, 600, 0})
	if diff := cmp.Diff(Vec3d{1, 1, 0}, corner, approx); diff != "" {
		t.Errorf("corner mismatch (-want +got):\n%s", diff)
	}
}

func TestProjectInPlace(t *testing.T) {
	base := Translate[float64](1, -2, 3).Mul(RotateY(0.3)).Mul(Scale[float64](2, 1, 0.5))

	t.Run("ortho", func(t *testing.T) {
		m := base
		m.ProjectOrtho(-2, 3, -1, 4, 0.5, 20)
		want := base.Mul(Ortho[float64](-2, 3, -1, 4, 0.5, 20))
		if diff := cmp.Diff(want, m, approx); diff != "" {
			t.Errorf("ProjectOrtho mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("perspective", func(t *testing.T) {
		m := base
		m.ProjectPerspective(math.Pi/3, 16.0/9.0, 0.1, 50)
		want := base.Mul(Perspective[float64](math.Pi/3, 16.0/9.0, 0.1, 50))
		if diff := cmp.Diff(want, m, approx); diff != "" {
			t.Errorf("ProjectPerspective mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("from identity", func(t *testing.T) {
		m := Identity[float32]()
		m.ProjectOrtho(-1, 1, -1, 1, -1, 1)
		if diff := cmp.Diff(Ortho[float32](-1, 1, -1, 1, -1, 1), m, approx); diff != "" {
			t.Errorf("identity ortho mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestLookAt(t *testing.T) {
	eye := Vec3f{0, 0, 5}
	m := LookAt(eye, Vec3f{}, Vec3f{0, 1, 0})

	if m[15] != 1 {
		t.Errorf("LookAt [15] should be 1, got %f", m[15])
	}
	// The eye lands on the origin and the target straight ahead on -Z.
	if diff := cmp.Diff(Vec3f{}, m.TransformPoint(eye), approx); diff != "" {
		t.Errorf("eye mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Vec3f{0, 0, -5}, m.TransformPoint(Vec3f{}), approx); diff != "" {
		t.Errorf("target mismatch (-want +got):\n%s", diff)
	}
}

func TestDeterminant(t *testing.T) {
	if d := Translate[float64](3, 4, 5).Determinant(); d != 1 {
		t.Errorf("det(translate) = %v, want 1", d)
	}
	if d := Scale[float64](2, 3, 4).Determinant(); d != 24 {
		t.Errorf("det(scale) = %v, want 24", d)
	}
	if d := (Mat4d{}).Determinant(); d != 0 {
		t.Errorf("det(zero) = %v, want 0", d)
	}
}

func TestInverse(t *testing.T) {
	m := Translate[float64](1, 2, 3).Mul(RotateX(0.5)).Mul(Scale[float64](2, 2, 2))
	got := m.Mul(m.Inverse())
	if diff := cmp.Diff(Identity[float64](), got, approx); diff != "" {
		t.Errorf("M * M^-1 mismatch (-want +got):\n%s", diff)
	}

	if inv := (Mat4d{}).Inverse(); inv != Identity[float64]() {
		t.Errorf("singular inverse = %v, want identity", inv)
	}
}

func TestTranspose(t *testing.T) {
	m := Translate[float32](1, 2, 3)
	tr := m.Transpose()
	if tr[3] != 1 || tr[7] != 2 || tr[11] != 3 {
		t.Errorf("Transpose = %v", tr)
	}
	if tr.Transpose() != m {
		t.Error("transpose twice should give the original")
	}
}

func TestMat4MatrixRoundTrip(t *testing.T) {
	m := RotateZ[float64](1.1).Mul(Translate[float64](1, 2, 3))
	back, err := Mat4Of(m.Matrix())
	if err != nil {
		t.Fatal(err)
	}
	if back != m {
		t.Errorf("round trip = %v, want %v", back, m)
	}
	if m.Matrix().At(0, 3) != m[12] {
		t.Error("Matrix should keep the column-major layout")
	}
	if _, err := Mat4Of(MustMatrix[float64](3, 3)); err == nil {
		t.Error("Mat4Of(3x3) should fail")
	}
}
