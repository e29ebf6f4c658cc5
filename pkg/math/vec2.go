package math

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector.
type Vec2[T Number] [2]T

// Concat2 joins two scalars into a Vec2.
func Concat2[T Number](x, y T) Vec2[T] {
	return Vec2[T]{x, y}
}

// Vec2Of copies the first two elements of v, zero-filling missing ones.
func Vec2Of[T Number](v Vector[T]) Vec2[T] {
	var out Vec2[T]
	copy(out[:], v)
	return out
}

// X returns the first component.
func (v Vec2[T]) X() T { return v[0] }

// Y returns the second component.
func (v Vec2[T]) Y() T { return v[1] }

// SetX sets the first component.
func (v *Vec2[T]) SetX(x T) { v[0] = x }

// SetY sets the second component.
func (v *Vec2[T]) SetY(y T) { v[1] = y }

// Add returns v + other.
func (v Vec2[T]) Add(other Vec2[T]) Vec2[T] {
	return Vec2[T]{v[0] + other[0], v[1] + other[1]}
}

// Sub returns v - other.
func (v Vec2[T]) Sub(other Vec2[T]) Vec2[T] {
	return Vec2[T]{v[0] - other[0], v[1] - other[1]}
}

// Mul returns the component-wise product.
func (v Vec2[T]) Mul(other Vec2[T]) Vec2[T] {
	return Vec2[T]{v[0] * other[0], v[1] * other[1]}
}

// Div returns the component-wise quotient.
func (v Vec2[T]) Div(other Vec2[T]) Vec2[T] {
	return Vec2[T]{v[0] / other[0], v[1] / other[1]}
}

// Scale returns v * scalar.
func (v Vec2[T]) Scale(s T) Vec2[T] {
	return Vec2[T]{v[0] * s, v[1] * s}
}

// DivScalar returns v / scalar.
func (v Vec2[T]) DivScalar(s T) Vec2[T] {
	return Vec2[T]{v[0] / s, v[1] / s}
}

// Neg returns -v.
func (v Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{-v[0], -v[1]}
}

// Translate is Add under the name used by transform code.
func (v Vec2[T]) Translate(d Vec2[T]) Vec2[T] {
	return v.Add(d)
}

// ScaleBy scales each axis by the matching component of s.
func (v Vec2[T]) ScaleBy(s Vec2[T]) Vec2[T] {
	return v.Mul(s)
}

// Dot returns the dot product.
func (v Vec2[T]) Dot(other Vec2[T]) T {
	return v[0]*other[0] + v[1]*other[1]
}

// LengthSquared returns the squared magnitude.
func (v Vec2[T]) LengthSquared() T {
	return v.Dot(v)
}

// Length returns the magnitude.
func (v Vec2[T]) Length() float64 {
	return math.Sqrt(float64(v.LengthSquared()))
}

// Normalize returns a unit vector.
func (v Vec2[T]) Normalize() Vec2[T] {
	l := v.Length()
	if l == 0 {
		return Vec2[T]{}
	}
	return Vec2[T]{T(float64(v[0]) / l), T(float64(v[1]) / l)}
}

// Distance returns the distance to another point.
func (v Vec2[T]) Distance(other Vec2[T]) float64 {
	return v.Sub(other).Length()
}

// Project returns the projection of v onto other.
// A zero-length target is not checked.
func (v Vec2[T]) Project(onto Vec2[T]) Vec2[T] {
	return onto.Scale(v.Dot(onto) / onto.LengthSquared())
}

// Lerp interpolates between v and other.
func (v Vec2[T]) Lerp(other Vec2[T], t T) Vec2[T] {
	return v.Add(other.Sub(v).Scale(t))
}

// Rotate returns v rotated counter-clockwise by angle radians.
func (v Vec2[T]) Rotate(angle float64) Vec2[T] {
	s, c := math.Sincos(angle)
	x, y := float64(v[0]), float64(v[1])
	return Vec2[T]{T(x*c - y*s), T(x*s + y*c)}
}

// Perp returns v rotated by 90 degrees.
func (v Vec2[T]) Perp() Vec2[T] {
	return Vec2[T]{-v[1], v[0]}
}

// ApproxEqual reports whether every component differs by at most eps.
func (v Vec2[T]) ApproxEqual(other Vec2[T], eps float64) bool {
	return approxEqual(v[:], other[:], eps)
}

// Extend appends z, giving a Vec3.
func (v Vec2[T]) Extend(z T) Vec3[T] {
	return Vec3[T]{v[0], v[1], z}
}

// Prepend puts s in front of v, giving a Vec3.
func (v Vec2[T]) Prepend(s T) Vec3[T] {
	return Vec3[T]{s, v[0], v[1]}
}

// Concat22 joins two Vec2 into a Vec4.
func Concat22[T Number](a, b Vec2[T]) Vec4[T] {
	return Vec4[T]{a[0], a[1], b[0], b[1]}
}

// Swizzle2 reads two axes of v.
func (v Vec2[T]) Swizzle2(a, b Axis) Vec2[T] {
	var out Vec2[T]
	swizzle(out[:], v[:], []Axis{a, b})
	return out
}

// Swizzle3 reads three axes of v.
func (v Vec2[T]) Swizzle3(a, b, c Axis) Vec3[T] {
	var out Vec3[T]
	swizzle(out[:], v[:], []Axis{a, b, c})
	return out
}

// Swizzle4 reads four axes of v.
func (v Vec2[T]) Swizzle4(a, b, c, d Axis) Vec4[T] {
	var out Vec4[T]
	swizzle(out[:], v[:], []Axis{a, b, c, d})
	return out
}

// SetSwizzle2 writes src into the axes a and b.
func (v *Vec2[T]) SetSwizzle2(a, b Axis, src Vec2[T]) {
	unswizzle(v[:], src[:], []Axis{a, b})
}

// Vector returns a copy of v as a Vector.
func (v Vec2[T]) Vector() Vector[T] {
	return Vector[T]{v[0], v[1]}
}

func (v Vec2[T]) String() string {
	return fmt.Sprintf("<%v, %v>", v[0], v[1])
}
