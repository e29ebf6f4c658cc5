package math

import (
	"fmt"
	"math"
)

// Vec4 is a 4-component vector, usually a homogeneous point or an RGBA color.
type Vec4[T Number] [4]T

// Vec4Of copies the first four elements of v, zero-filling missing ones.
func Vec4Of[T Number](v Vector[T]) Vec4[T] {
	var out Vec4[T]
	copy(out[:], v)
	return out
}

// Splat4 returns a Vec4 with every component set to s.
func Splat4[T Number](s T) Vec4[T] {
	return Vec4[T]{s, s, s, s}
}

func (v Vec4[T]) X() T { return v[0] }
func (v Vec4[T]) Y() T { return v[1] }
func (v Vec4[T]) Z() T { return v[2] }
func (v Vec4[T]) W() T { return v[3] }

func (v *Vec4[T]) SetX(x T) { v[0] = x }
func (v *Vec4[T]) SetY(y T) { v[1] = y }
func (v *Vec4[T]) SetZ(z T) { v[2] = z }
func (v *Vec4[T]) SetW(w T) { v[3] = w }

// Add returns v + other.
func (v Vec4[T]) Add(other Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] + other[0], v[1] + other[1], v[2] + other[2], v[3] + other[3]}
}

// Sub returns v - other.
func (v Vec4[T]) Sub(other Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] - other[0], v[1] - other[1], v[2] - other[2], v[3] - other[3]}
}

// Mul returns the component-wise product.
func (v Vec4[T]) Mul(other Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] * other[0], v[1] * other[1], v[2] * other[2], v[3] * other[3]}
}

// Div returns the component-wise quotient.
func (v Vec4[T]) Div(other Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] / other[0], v[1] / other[1], v[2] / other[2], v[3] / other[3]}
}

// Scale returns v * scalar.
func (v Vec4[T]) Scale(s T) Vec4[T] {
	return Vec4[T]{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// DivScalar returns v / scalar.
func (v Vec4[T]) DivScalar(s T) Vec4[T] {
	return Vec4[T]{v[0] / s, v[1] / s, v[2] / s, v[3] / s}
}

// Neg returns -v.
func (v Vec4[T]) Neg() Vec4[T] {
	return Vec4[T]{-v[0], -v[1], -v[2], -v[3]}
}

// Translate is Add under the name used by transform code.
func (v Vec4[T]) Translate(d Vec4[T]) Vec4[T] {
	return v.Add(d)
}

// ScaleBy scales each axis by the matching component of s.
func (v Vec4[T]) ScaleBy(s Vec4[T]) Vec4[T] {
	return v.Mul(s)
}

// Dot returns the dot product.
func (v Vec4[T]) Dot(other Vec4[T]) T {
	return v[0]*other[0] + v[1]*other[1] + v[2]*other[2] + v[3]*other[3]
}

// LengthSquared returns the squared magnitude.
func (v Vec4[T]) LengthSquared() T {
	return v.Dot(v)
}

// Length returns the magnitude.
func (v Vec4[T]) Length() float64 {
	return math.Sqrt(float64(v.LengthSquared()))
}

// Normalize returns a unit vector.
func (v Vec4[T]) Normalize() Vec4[T] {
	l := v.Length()
	if l == 0 {
		return Vec4[T]{}
	}
	var out Vec4[T]
	for i := range v {
		out[i] = T(float64(v[i]) / l)
	}
	return out
}

// Distance returns the distance to another point.
func (v Vec4[T]) Distance(other Vec4[T]) float64 {
	return v.Sub(other).Length()
}

// Project returns the projection of v onto other.
// A zero-length target is not checked.
func (v Vec4[T]) Project(onto Vec4[T]) Vec4[T] {
	return onto.Scale(v.Dot(onto) / onto.LengthSquared())
}

// Lerp interpolates between v and other.
func (v Vec4[T]) Lerp(other Vec4[T], t T) Vec4[T] {
	return v.Add(other.Sub(v).Scale(t))
}

// ApproxEqual reports whether every component differs by at most eps.
func (v Vec4[T]) ApproxEqual(other Vec4[T], eps float64) bool {
	return approxEqual(v[:], other[:], eps)
}

// XYZ drops the last component.
func (v Vec4[T]) XYZ() Vec3[T] {
	return Vec3[T]{v[0], v[1], v[2]}
}

// Swizzle2 reads two axes of v.
func (v Vec4[T]) Swizzle2(a, b Axis) Vec2[T] {
	var out Vec2[T]
	swizzle(out[:], v[:], []Axis{a, b})
	return out
}

// Swizzle3 reads three axes of v.
func (v Vec4[T]) Swizzle3(a, b, c Axis) Vec3[T] {
	var out Vec3[T]
	swizzle(out[:], v[:], []Axis{a, b, c})
	return out
}

// Swizzle4 reads four axes of v.
func (v Vec4[T]) Swizzle4(a, b, c, d Axis) Vec4[T] {
	var out Vec4[T]
	swizzle(out[:], v[:], []Axis{a, b, c, d})
	return out
}

// SetSwizzle2 writes src into the axes a and b.
func (v *Vec4[T]) SetSwizzle2(a, b Axis, src Vec2[T]) {
	unswizzle(v[:], src[:], []Axis{a, b})
}

// SetSwizzle3 writes src into the axes a, b and c.
func (v *Vec4[T]) SetSwizzle3(a, b, c Axis, src Vec3[T]) {
	unswizzle(v[:], src[:], []Axis{a, b, c})
}

// SetSwizzle4 writes src into the axes a, b, c and d.
func (v *Vec4[T]) SetSwizzle4(a, b, c, d Axis, src Vec4[T]) {
	unswizzle(v[:], src[:], []Axis{a, b, c, d})
}

// Vector returns a copy of v as a Vector.
func (v Vec4[T]) Vector() Vector[T] {
	return Vector[T]{v[0], v[1], v[2], v[3]}
}

func (v Vec4[T]) String() string {
	return fmt.Sprintf("<%v, %v, %v, %v>", v[0], v[1], v[2], v[3])
}
