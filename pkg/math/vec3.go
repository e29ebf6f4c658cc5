package math

import (
	"fmt"
	"math"
)

// Vec3 is a 3D vector.
type Vec3[T Number] [3]T

// Vec3Of copies the first three elements of v, zero-filling missing ones.
func Vec3Of[T Number](v Vector[T]) Vec3[T] {
	var out Vec3[T]
	copy(out[:], v)
	return out
}

// X returns the first component.
func (v Vec3[T]) X() T { return v[0] }

// Y returns the second component.
func (v Vec3[T]) Y() T { return v[1] }

// Z returns the third component.
func (v Vec3[T]) Z() T { return v[2] }

// SetX sets the first component.
func (v *Vec3[T]) SetX(x T) { v[0] = x }

// SetY sets the second component.
func (v *Vec3[T]) SetY(y T) { v[1] = y }

// SetZ sets the third component.
func (v *Vec3[T]) SetZ(z T) { v[2] = z }

// Add returns v + other.
func (v Vec3[T]) Add(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] + other[0], v[1] + other[1], v[2] + other[2]}
}

// Sub returns v - other.
func (v Vec3[T]) Sub(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] - other[0], v[1] - other[1], v[2] - other[2]}
}

// Mul returns the component-wise product.
func (v Vec3[T]) Mul(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] * other[0], v[1] * other[1], v[2] * other[2]}
}

// Div returns the component-wise quotient.
func (v Vec3[T]) Div(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] / other[0], v[1] / other[1], v[2] / other[2]}
}

// Scale returns v * scalar.
func (v Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{v[0] * s, v[1] * s, v[2] * s}
}

// DivScalar returns v / scalar.
func (v Vec3[T]) DivScalar(s T) Vec3[T] {
	return Vec3[T]{v[0] / s, v[1] / s, v[2] / s}
}

// Neg returns -v.
func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{-v[0], -v[1], -v[2]}
}

// Translate is Add under the name used by transform code.
func (v Vec3[T]) Translate(d Vec3[T]) Vec3[T] {
	return v.Add(d)
}

// ScaleBy scales each axis by the matching component of s.
func (v Vec3[T]) ScaleBy(s Vec3[T]) Vec3[T] {
	return v.Mul(s)
}

// Dot returns the dot product.
func (v Vec3[T]) Dot(other Vec3[T]) T {
	return v[0]*other[0] + v[1]*other[1] + v[2]*other[2]
}

// Cross returns the cross product.
func (v Vec3[T]) Cross(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v[1]*other[2] - v[2]*other[1],
		v[2]*other[0] - v[0]*other[2],
		v[0]*other[1] - v[1]*other[0],
	}
}

// LengthSquared returns the squared magnitude.
func (v Vec3[T]) LengthSquared() T {
	return v.Dot(v)
}

// Length returns the magnitude.
func (v Vec3[T]) Length() float64 {
	return math.Sqrt(float64(v.LengthSquared()))
}

// Normalize returns a unit vector.
func (v Vec3[T]) Normalize() Vec3[T] {
	l := v.Length()
	if l == 0 {
		return Vec3[T]{}
	}
	return Vec3[T]{T(float64(v[0]) / l), T(float64(v[1]) / l), T(float64(v[2]) / l)}
}

// Distance returns the distance to another point.
func (v Vec3[T]) Distance(other Vec3[T]) float64 {
	return v.Sub(other).Length()
}

// Project returns the projection of v onto other.
// A zero-length target is not checked.
func (v Vec3[T]) Project(onto Vec3[T]) Vec3[T] {
	return onto.Scale(v.Dot(onto) / onto.LengthSquared())
}

// Lerp interpolates between v and other.
func (v Vec3[T]) Lerp(other Vec3[T], t T) Vec3[T] {
	return v.Add(other.Sub(v).Scale(t))
}

// ApproxEqual reports whether every component differs by at most eps.
func (v Vec3[T]) ApproxEqual(other Vec3[T], eps float64) bool {
	return approxEqual(v[:], other[:], eps)
}

// XY returns the X and Y components.
func (v Vec3[T]) XY() Vec2[T] {
	return Vec2[T]{v[0], v[1]}
}

// XZ returns the XZ components as Vec2.
func (v Vec3[T]) XZ() Vec2[T] {
	return Vec2[T]{v[0], v[2]}
}

// Extend appends w, giving a Vec4.
func (v Vec3[T]) Extend(w T) Vec4[T] {
	return Vec4[T]{v[0], v[1], v[2], w}
}

// Prepend puts s in front of v, giving a Vec4.
func (v Vec3[T]) Prepend(s T) Vec4[T] {
	return Vec4[T]{s, v[0], v[1], v[2]}
}

// Swizzle2 reads two axes of v.
func (v Vec3[T]) Swizzle2(a, b Axis) Vec2[T] {
	var out Vec2[T]
	swizzle(out[:], v[:], []Axis{a, b})
	return out
}

// Swizzle3 reads three axes of v.
func (v Vec3[T]) Swizzle3(a, b, c Axis) Vec3[T] {
	var out Vec3[T]
	swizzle(out[:], v[:], []Axis{a, b, c})
	return out
}

// Swizzle4 reads four axes of v.
func (v Vec3[T]) Swizzle4(a, b, c, d Axis) Vec4[T] {
	var out Vec4[T]
	swizzle(out[:], v[:], []Axis{a, b, c, d})
	return out
}

// SetSwizzle2 writes src into the axes a and b.
func (v *Vec3[T]) SetSwizzle2(a, b Axis, src Vec2[T]) {
	unswizzle(v[:], src[:], []Axis{a, b})
}

// SetSwizzle3 writes src into the axes a, b and c.
func (v *Vec3[T]) SetSwizzle3(a, b, c Axis, src Vec3[T]) {
	unswizzle(v[:], src[:], []Axis{a, b, c})
}

// Vector returns a copy of v as a Vector.
func (v Vec3[T]) Vector() Vector[T] {
	return Vector[T]{v[0], v[1], v[2]}
}

func (v Vec3[T]) String() string {
	return fmt.Sprintf("<%v, %v, %v>", v[0], v[1], v[2])
}
