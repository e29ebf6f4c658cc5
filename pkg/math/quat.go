package math

import "math"

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part.
type Quat[T Float] struct {
	X, Y, Z, W T
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity[T Float]() Quat[T] {
	return Quat[T]{W: 1}
}

// QuatFromAxisAngle creates a quaternion from axis-angle rotation.
// axis should be normalized, angle is in radians.
func QuatFromAxisAngle[T Float](axis Vec3[T], angle T) Quat[T] {
	s, c := sincos(angle / 2)
	return Quat[T]{X: axis[0] * s, Y: axis[1] * s, Z: axis[2] * s, W: c}
}

// Vec4 returns the components as (x, y, z, w).
func (q Quat[T]) Vec4() Vec4[T] {
	return Vec4[T]{q.X, q.Y, q.Z, q.W}
}

func quatOf[T Float](v Vec4[T]) Quat[T] {
	return Quat[T]{X: v[0], Y: v[1], Z: v[2], W: v[3]}
}

// Normalize returns a normalized quaternion. Near-zero quaternions become the identity.
func (q Quat[T]) Normalize() Quat[T] {
	if q.Vec4().Length() < 0.0001 {
		return QuatIdentity[T]()
	}
	return quatOf(q.Vec4().Normalize())
}

// Dot returns the dot product of two quaternions.
func (q Quat[T]) Dot(other Quat[T]) T {
	return q.Vec4().Dot(other.Vec4())
}

// Mul multiplies two quaternions (combines rotations).
func (q Quat[T]) Mul(other Quat[T]) Quat[T] {
	return Quat[T]{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// Lerp blends two quaternions linearly and renormalizes.
// Use Slerp for rotation interpolation.
func (q Quat[T]) Lerp(other Quat[T], t T) Quat[T] {
	return quatOf(q.Vec4().Lerp(other.Vec4(), t)).Normalize()
}

// Slerp performs spherical linear interpolation between two quaternions.
// t should be in range [0, 1].
func (q Quat[T]) Slerp(other Quat[T], t T) Quat[T] {
	dot := q.Dot(other)

	// Take the shorter path.
	if dot < 0 {
		other = quatOf(other.Vec4().Neg())
		dot = -dot
	}

	// Nearly parallel: sin(theta0) is too small to divide by.
	if dot > 0.9995 {
		return q.Lerp(other, t)
	}

	theta0 := math.Acos(float64(dot))
	theta := theta0 * float64(t)
	sinTheta := math.Sin(theta)
	sinTheta0 := math.Sin(theta0)

	s0 := T(math.Cos(theta) - float64(dot)*sinTheta/sinTheta0)
	s1 := T(sinTheta / sinTheta0)

	return quatOf(q.Vec4().Scale(s0).Add(other.Vec4().Scale(s1)))
}

// Rotate applies the rotation to v.
func (q Quat[T]) Rotate(v Vec3[T]) Vec3[T] {
	return q.Mat4().TransformDirection(v)
}

// Mat4 converts the quaternion to a 4x4 rotation matrix.
func (q Quat[T]) Mat4() Mat4[T] {
	q = q.Normalize()

	xx, xy, xz, xw := q.X*q.X, q.X*q.Y, q.X*q.Z, q.X*q.W
	yy, yz, yw := q.Y*q.Y, q.Y*q.Z, q.Y*q.W
	zz, zw := q.Z*q.Z, q.Z*q.W

	return Mat4[T]{
		1 - 2*(yy+zz), 2 * (xy + zw), 2 * (xz - yw), 0,
		2 * (xy - zw), 1 - 2*(xx+zz), 2 * (yz + xw), 0,
		2 * (xz + yw), 2 * (yz - xw), 1 - 2*(xx+yy), 0,
		0, 0, 0, 1,
	}
}

// FromQuat is q.Mat4 in builder form.
func FromQuat[T Float](q Quat[T]) Mat4[T] {
	return q.Mat4()
}
