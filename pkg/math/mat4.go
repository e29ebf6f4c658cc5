package math

import (
	"fmt"
	"math"
)

// Mat4 is a 4x4 matrix in column-major order (OpenGL compatible).
// Layout: [m0 m4 m8  m12]
//
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
//
// Degenerate builder arguments (equal planes, zero field of view) are not
// checked and produce Inf or NaN elements.
type Mat4[T Float] [16]T

// Identity returns an identity matrix.
func Identity[T Float]() Mat4[T] {
	return Mat4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4FromRows builds a matrix from elements listed row by row, the way it is written on paper.
func Mat4FromRows[T Float](
	a, b, c, d,
	e, f, g, h,
	i, j, k, l,
	m, n, o, p T) Mat4[T] {
	return Mat4[T]{
		a, e, i, m,
		b, f, j, n,
		c, g, k, o,
		d, h, l, p,
	}
}

// Perspective returns a perspective projection matrix.
// fovY is in radians, aspect is width/height.
func Perspective[T Float](fovY, aspect, near, far T) Mat4[T] {
	f := T(1.0 / math.Tan(float64(fovY)/2.0))
	nf := 1.0 / (near - far)

	return Mat4[T]{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, -1,
		0, 0, 2 * far * near * nf, 0,
	}
}

// Ortho returns an orthographic projection matrix.
// left, right, bottom, top define the view volume; near and far the depth range.
func Ortho[T Float](left, right, bottom, top, near, far T) Mat4[T] {
	rl := 1.0 / (right - left)
	tb := 1.0 / (top - bottom)
	fn := 1.0 / (far - near)

	return Mat4[T]{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(right + left) * rl, -(top + bottom) * tb, -(far + near) * fn, 1,
	}
}

// LookAt returns a view matrix looking from eye to center with up direction.
func LookAt[T Float](eye, center, up Vec3[T]) Mat4[T] {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	return Mat4[T]{
		s[0], u[0], -f[0], 0,
		s[1], u[1], -f[1], 0,
		s[2], u[2], -f[2], 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	}
}

// Translate returns a translation matrix.
func Translate[T Float](x, y, z T) Mat4[T] {
	return Mat4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// Scale returns a scale matrix.
func Scale[T Float](x, y, z T) Mat4[T] {
	return Mat4[T]{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// RotateX returns a rotation matrix around the X axis. angle is in radians.
func RotateX[T Float](angle T) Mat4[T] {
	s, c := sincos(angle)
	return Mat4[T]{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY returns a rotation matrix around the Y axis. angle is in radians.
func RotateY[T Float](angle T) Mat4[T] {
	s, c := sincos(angle)
	return Mat4[T]{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ returns a rotation matrix around the Z axis. angle is in radians.
func RotateZ[T Float](angle T) Mat4[T] {
	s, c := sincos(angle)
	return Mat4[T]{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// RotateAxis creates a rotation matrix around an arbitrary axis.
// axis should be normalized, angle is in radians.
func RotateAxis[T Float](axis Vec3[T], angle T) Mat4[T] {
	s, c := sincos(angle)
	t := 1 - c
	x, y, z := axis[0], axis[1], axis[2]

	return Mat4[T]{
		t*x*x + c, t*x*y + s*z, t*x*z - s*y, 0,
		t*x*y - s*z, t*y*y + c, t*y*z + s*x, 0,
		t*x*z + s*y, t*y*z - s*x, t*z*z + c, 0,
		0, 0, 0, 1,
	}
}

func sincos[T Float](angle T) (T, T) {
	s, c := math.Sincos(float64(angle))
	return T(s), T(c)
}

// SetIdentity resets m to the identity.
func (m *Mat4[T]) SetIdentity() {
	*m = Identity[T]()
}

// ProjectOrtho sets m to m * Ortho(left, right, bottom, top, near, far)
// without building the projection matrix.
func (m *Mat4[T]) ProjectOrtho(left, right, bottom, top, near, far T) {
	sx := 2 / (right - left)
	sy := 2 / (top - bottom)
	sz := -2 / (far - near)
	tx := -(right + left) / (right - left)
	ty := -(top + bottom) / (top - bottom)
	tz := -(far + near) / (far - near)

	for row := 0; row < 4; row++ {
		c0, c1, c2, c3 := m[row], m[4+row], m[8+row], m[12+row]
		m[row] = c0 * sx
		m[4+row] = c1 * sy
		m[8+row] = c2 * sz
		m[12+row] = c0*tx + c1*ty + c2*tz + c3
	}
}

// ProjectPerspective sets m to m * Perspective(fovY, aspect, near, far)
// without building the projection matrix.
func (m *Mat4[T]) ProjectPerspective(fovY, aspect, near, far T) {
	f := T(1.0 / math.Tan(float64(fovY)/2.0))
	nf := 1 / (near - far)
	sx := f / aspect
	sz := (far + near) * nf
	tz := 2 * far * near * nf

	for row := 0; row < 4; row++ {
		c0, c1, c2, c3 := m[row], m[4+row], m[8+row], m[12+row]
		m[row] = c0 * sx
		m[4+row] = c1 * f
		m[8+row] = c2*sz - c3
		m[12+row] = c2 * tz
	}
}

// Mul multiplies this matrix by another (m * other).
func (m Mat4[T]) Mul(other Mat4[T]) Mat4[T] {
	var result Mat4[T]
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			result[col*4+row] =
				m[0*4+row]*other[col*4+0] +
					m[1*4+row]*other[col*4+1] +
					m[2*4+row]*other[col*4+2] +
					m[3*4+row]*other[col*4+3]
		}
	}
	return result
}

// Add returns the element-wise sum.
func (m Mat4[T]) Add(other Mat4[T]) Mat4[T] {
	for i := range m {
		m[i] += other[i]
	}
	return m
}

// Sub returns the element-wise difference.
func (m Mat4[T]) Sub(other Mat4[T]) Mat4[T] {
	for i := range m {
		m[i] -= other[i]
	}
	return m
}

// MulVec4 multiplies the matrix by a Vec4.
func (m Mat4[T]) MulVec4(v Vec4[T]) Vec4[T] {
	return Vec4[T]{
		m[0]*v[0] + m[4]*v[1] + m[8]*v[2] + m[12]*v[3],
		m[1]*v[0] + m[5]*v[1] + m[9]*v[2] + m[13]*v[3],
		m[2]*v[0] + m[6]*v[1] + m[10]*v[2] + m[14]*v[3],
		m[3]*v[0] + m[7]*v[1] + m[11]*v[2] + m[15]*v[3],
	}
}

// TransformPoint transforms a 3D point by this matrix (assumes w=1).
// The result is divided by w unless w is 0 or 1.
func (m Mat4[T]) TransformPoint(p Vec3[T]) Vec3[T] {
	v := m.MulVec4(p.Extend(1))
	if w := v[3]; w != 0 && w != 1 {
		return Vec3[T]{v[0] / w, v[1] / w, v[2] / w}
	}
	return v.XYZ()
}

// TransformDirection transforms a direction vector (ignores translation).
func (m Mat4[T]) TransformDirection(d Vec3[T]) Vec3[T] {
	return m.MulVec4(d.Extend(0)).XYZ()
}

// Col returns column i.
func (m Mat4[T]) Col(i int) Vec4[T] {
	return Vec4[T]{m[i*4], m[i*4+1], m[i*4+2], m[i*4+3]}
}

// Row returns row i.
func (m Mat4[T]) Row(i int) Vec4[T] {
	return Vec4[T]{m[i], m[4+i], m[8+i], m[12+i]}
}

// Transpose returns the transposed matrix.
func (m Mat4[T]) Transpose() Mat4[T] {
	var t Mat4[T]
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			t[row*4+col] = m[col*4+row]
		}
	}
	return t
}

// Ptr returns a pointer to the first element (for OpenGL uniform calls).
func (m *Mat4[T]) Ptr() *T {
	return &m[0]
}

// Matrix copies m into a general 4x4 Matrix.
func (m Mat4[T]) Matrix() Matrix[T] {
	return Matrix[T]{rows: 4, cols: 4, data: append([]T(nil), m[:]...)}
}

// Mat4Of converts a 4x4 Matrix.
func Mat4Of[T Float](m Matrix[T]) (Mat4[T], error) {
	if m.rows != 4 || m.cols != 4 {
		return Mat4[T]{}, fmt.Errorf("%w: %dx%d is not 4x4", ErrDimensionMismatch, m.rows, m.cols)
	}
	var out Mat4[T]
	copy(out[:], m.data)
	return out, nil
}

func (m Mat4[T]) String() string {
	return m.Matrix().String()
}

// cofactors returns the first-column cofactors of m's adjugate layout,
// shared by Determinant and Inverse.
func (m Mat4[T]) cofactors() [16]T {
	var c [16]T
	c[0] = m[5]*m[10]*m[15] - m[5]*m[11]*m[14] - m[9]*m[6]*m[15] + m[9]*m[7]*m[14] + m[13]*m[6]*m[11] - m[13]*m[7]*m[10]
	c[1] = -m[1]*m[10]*m[15] + m[1]*m[11]*m[14] + m[9]*m[2]*m[15] - m[9]*m[3]*m[14] - m[13]*m[2]*m[11] + m[13]*m[3]*m[10]
	c[2] = m[1]*m[6]*m[15] - m[1]*m[7]*m[14] - m[5]*m[2]*m[15] + m[5]*m[3]*m[14] + m[13]*m[2]*m[7] - m[13]*m[3]*m[6]
	c[3] = -m[1]*m[6]*m[11] + m[1]*m[7]*m[10] + m[5]*m[2]*m[11] - m[5]*m[3]*m[10] - m[9]*m[2]*m[7] + m[9]*m[3]*m[6]

	c[4] = -m[4]*m[10]*m[15] + m[4]*m[11]*m[14] + m[8]*m[6]*m[15] - m[8]*m[7]*m[14] - m[12]*m[6]*m[11] + m[12]*m[7]*m[10]
	c[5] = m[0]*m[10]*m[15] - m[0]*m[11]*m[14] - m[8]*m[2]*m[15] + m[8]*m[3]*m[14] + m[12]*m[2]*m[11] - m[12]*m[3]*m[10]
	c[6] = -m[0]*m[6]*m[15] + m[0]*m[7]*m[14] + m[4]*m[2]*m[15] - m[4]*m[3]*m[14] - m[12]*m[2]*m[7] + m[12]*m[3]*m[6]
	c[7] = m[0]*m[6]*m[11] - m[0]*m[7]*m[10] - m[4]*m[2]*m[11] + m[4]*m[3]*m[10] + m[8]*m[2]*m[7] - m[8]*m[3]*m[6]

	c[8] = m[4]*m[9]*m[15] - m[4]*m[11]*m[13] - m[8]*m[5]*m[15] + m[8]*m[7]*m[13] + m[12]*m[5]*m[11] - m[12]*m[7]*m[9]
	c[9] = -m[0]*m[9]*m[15] + m[0]*m[11]*m[13] + m[8]*m[1]*m[15] - m[8]*m[3]*m[13] - m[12]*m[1]*m[11] + m[12]*m[3]*m[9]
	c[10] = m[0]*m[5]*m[15] - m[0]*m[7]*m[13] - m[4]*m[1]*m[15] + m[4]*m[3]*m[13] + m[12]*m[1]*m[7] - m[12]*m[3]*m[5]
	c[11] = -m[0]*m[5]*m[11] + m[0]*m[7]*m[9] + m[4]*m[1]*m[11] - m[4]*m[3]*m[9] - m[8]*m[1]*m[7] + m[8]*m[3]*m[5]

	c[12] = -m[4]*m[9]*m[14] + m[4]*m[10]*m[13] + m[8]*m[5]*m[14] - m[8]*m[6]*m[13] - m[12]*m[5]*m[10] + m[12]*m[6]*m[9]
	c[13] = m[0]*m[9]*m[14] - m[0]*m[10]*m[13] - m[8]*m[1]*m[14] + m[8]*m[2]*m[13] + m[12]*m[1]*m[10] - m[12]*m[2]*m[9]
	c[14] = -m[0]*m[5]*m[14] + m[0]*m[6]*m[13] + m[4]*m[1]*m[14] - m[4]*m[2]*m[13] - m[12]*m[1]*m[6] + m[12]*m[2]*m[5]
	c[15] = m[0]*m[5]*m[10] - m[0]*m[6]*m[9] - m[4]*m[1]*m[10] + m[4]*m[2]*m[9] + m[8]*m[1]*m[6] - m[8]*m[2]*m[5]
	return c
}

// Determinant returns det(m).
func (m Mat4[T]) Determinant() T {
	c := m.cofactors()
	return m[0]*c[0] + m[4]*c[1] + m[8]*c[2] + m[12]*c[3]
}

// Inverse returns the inverse of the matrix.
// Returns identity if the matrix is singular.
func (m Mat4[T]) Inverse() Mat4[T] {
	c := m.cofactors()
	det := m[0]*c[0] + m[4]*c[1] + m[8]*c[2] + m[12]*c[3]
	if det == 0 {
		return Identity[T]()
	}

	invDet := 1 / det
	var inv Mat4[T]
	for i := range c {
		inv[i] = c[i] * invDet
	}
	return inv
}
