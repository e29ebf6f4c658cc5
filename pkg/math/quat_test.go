package math

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity[float32]()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	n := Quatf{X: 1, Y: 2, Z: 3, W: 4}.Normalize()
	if length := n.Vec4().Length(); math.Abs(length-1.0) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
	if z := (Quatf{}).Normalize(); z != QuatIdentity[float32]() {
		t.Errorf("zero quaternion normalized to %v, want identity", z)
	}
}

func TestQuatSlerp(t *testing.T) {
	q1 := QuatIdentity[float32]()
	q2 := QuatFromAxisAngle(Vec3f{0, 1, 0}, float32(math.Pi/2))

	if got := q1.Slerp(q2, 0); math.Abs(float64(got.W-q1.W)) > 0.001 {
		t.Errorf("Slerp at t=0 should equal q1, got %v", got)
	}
	if got := q1.Slerp(q2, 1); math.Abs(float64(got.W-q2.W)) > 0.001 {
		t.Errorf("Slerp at t=1 should equal q2, got %v", got)
	}

	// For 90 degree rotation, halfway should be 45 degrees
	half := q1.Slerp(q2, 0.5)
	expectedW := float32(math.Cos(math.Pi / 8))
	if math.Abs(float64(half.W-expectedW)) > 0.01 {
		t.Errorf("Slerp at t=0.5: expected W ~%v, got %v", expectedW, half.W)
	}

	// The negated target is the same rotation; slerp takes the short way.
	neg := Quatf{X: -q2.X, Y: -q2.Y, Z: -q2.Z, W: -q2.W}
	if got := q1.Slerp(neg, 0.5); math.Abs(float64(got.W-expectedW)) > 0.01 {
		t.Errorf("Slerp to negated target: expected W ~%v, got %v", expectedW, got.W)
	}
}

func TestQuatMat4(t *testing.T) {
	if m := QuatIdentity[float32]().Mat4(); m != Identity[float32]() {
		t.Errorf("identity quat gave %v", m)
	}

	angle := 0.9
	axis := Vec3d{1, 2, 2}.Normalize()
	got := FromQuat(QuatFromAxisAngle(axis, angle))
	if diff := cmp.Diff(RotateAxis(axis, angle), got, approx); diff != "" {
		t.Errorf("quat matrix vs axis rotation (-want +got):\n%s", diff)
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	q := QuatFromAxisAngle(Vec3f{0, 1, 0}, float32(math.Pi/2))

	expectedW := float32(math.Cos(math.Pi / 4))
	expectedY := float32(math.Sin(math.Pi / 4))

	if math.Abs(float64(q.W-expectedW)) > 0.001 {
		t.Errorf("QuatFromAxisAngle W: expected %v, got %v", expectedW, q.W)
	}
	if math.Abs(float64(q.Y-expectedY)) > 0.001 {
		t.Errorf("QuatFromAxisAngle Y: expected %v, got %v", expectedY, q.Y)
	}
}

func TestQuatRotateAndCompose(t *testing.T) {
	quarter := QuatFromAxisAngle(Vec3d{0, 0, 1}, math.Pi/2)
	if diff := cmp.Diff(Vec3d{0, 1, 0}, quarter.Rotate(Vec3d{1, 0, 0}), approx); diff != "" {
		t.Errorf("Rotate mismatch (-want +got):\n%s", diff)
	}

	half := quarter.Mul(quarter)
	if diff := cmp.Diff(Vec3d{-1, 0, 0}, half.Rotate(Vec3d{1, 0, 0}), approx); diff != "" {
		t.Errorf("composed rotation mismatch (-want +got):\n%s", diff)
	}
}
