package math

import (
	"fmt"
	"math"
	"strings"
)

// Vector is a vector of any dimension. Its length is fixed when it is made;
// operations between vectors of different lengths panic with
// ErrDimensionMismatch.
//
// A Vector returned by Matrix.Col aliases the matrix storage.
type Vector[T Number] []T

// NewVector returns a zero vector of n components.
func NewVector[T Number](n int) (Vector[T], error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: vector of %d components", ErrInvalidDimension, n)
	}
	return make(Vector[T], n), nil
}

// VectorOf returns a vector holding a copy of values.
func VectorOf[T Number](values ...T) Vector[T] {
	return append(Vector[T](nil), values...)
}

func mustMatch(a, b int) {
	if a != b {
		panic(fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, a, b))
	}
}

// Len returns the number of components.
func (v Vector[T]) Len() int { return len(v) }

// Clone returns an owning copy of v.
func (v Vector[T]) Clone() Vector[T] {
	return append(Vector[T](nil), v...)
}

func (v Vector[T]) zip(other Vector[T], f func(a, b T) T) Vector[T] {
	mustMatch(len(v), len(other))
	out := make(Vector[T], len(v))
	for i := range v {
		out[i] = f(v[i], other[i])
	}
	return out
}

func (v Vector[T]) each(f func(a T) T) Vector[T] {
	out := make(Vector[T], len(v))
	for i := range v {
		out[i] = f(v[i])
	}
	return out
}

// Add returns v + other.
func (v Vector[T]) Add(other Vector[T]) Vector[T] {
	return v.zip(other, func(a, b T) T { return a + b })
}

// Sub returns v - other.
func (v Vector[T]) Sub(other Vector[T]) Vector[T] {
	return v.zip(other, func(a, b T) T { return a - b })
}

// Mul returns the component-wise product.
func (v Vector[T]) Mul(other Vector[T]) Vector[T] {
	return v.zip(other, func(a, b T) T { return a * b })
}

// Div returns the component-wise quotient.
func (v Vector[T]) Div(other Vector[T]) Vector[T] {
	return v.zip(other, func(a, b T) T { return a / b })
}

// Scale returns v * s.
func (v Vector[T]) Scale(s T) Vector[T] {
	return v.each(func(a T) T { return a * s })
}

// DivScalar returns v / s.
func (v Vector[T]) DivScalar(s T) Vector[T] {
	return v.each(func(a T) T { return a / s })
}

// Neg returns -v.
func (v Vector[T]) Neg() Vector[T] {
	return v.each(func(a T) T { return -a })
}

// Equal reports whether v and other have the same length and components.
func (v Vector[T]) Equal(other Vector[T]) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if v[i] != other[i] {
			return false
		}
	}
	return true
}

// ApproxEqual is Equal with a per-component tolerance.
func (v Vector[T]) ApproxEqual(other Vector[T], eps float64) bool {
	return len(v) == len(other) && approxEqual(v, other, eps)
}

// Dot returns the dot product.
func (v Vector[T]) Dot(other Vector[T]) T {
	mustMatch(len(v), len(other))
	var sum T
	for i := range v {
		sum += v[i] * other[i]
	}
	return sum
}

// LengthSquared returns the squared magnitude.
func (v Vector[T]) LengthSquared() T {
	return v.Dot(v)
}

// Length returns the magnitude.
func (v Vector[T]) Length() float64 {
	return math.Sqrt(float64(v.LengthSquared()))
}

// Normalize returns a unit vector. A zero vector stays zero.
func (v Vector[T]) Normalize() Vector[T] {
	l := v.Length()
	if l == 0 {
		return make(Vector[T], len(v))
	}
	return v.each(func(a T) T { return T(float64(a) / l) })
}

// Project returns the projection of v onto other.
// A zero-length target is not checked.
func (v Vector[T]) Project(onto Vector[T]) Vector[T] {
	return onto.Scale(v.Dot(onto) / onto.LengthSquared())
}

// Concat returns v followed by each of others.
func (v Vector[T]) Concat(others ...Vector[T]) Vector[T] {
	n := len(v)
	for _, o := range others {
		n += len(o)
	}
	out := make(Vector[T], 0, n)
	out = append(out, v...)
	for _, o := range others {
		out = append(out, o...)
	}
	return out
}

// Append returns v followed by the given scalars.
func (v Vector[T]) Append(s ...T) Vector[T] {
	out := make(Vector[T], 0, len(v)+len(s))
	return append(append(out, v...), s...)
}

// Prepend returns s followed by v.
func (v Vector[T]) Prepend(s T) Vector[T] {
	out := make(Vector[T], 0, len(v)+1)
	return append(append(out, s), v...)
}

// Swizzle reads the given axes into a new vector of len(axes) components.
func (v Vector[T]) Swizzle(axes ...Axis) Vector[T] {
	out := make(Vector[T], len(axes))
	swizzle(out, v, axes)
	return out
}

// SetSwizzle writes src into v at the given axes, in place.
func (v Vector[T]) SetSwizzle(axes []Axis, src Vector[T]) {
	mustMatch(len(axes), len(src))
	unswizzle(v, src, axes)
}

func (v Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('<')
	for i, x := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, x)
	}
	sb.WriteByte('>')
	return sb.String()
}

func approxEqual[T Number](a, b []T, eps float64) bool {
	for i := range a {
		if math.Abs(float64(a[i])-float64(b[i])) > eps {
			return false
		}
	}
	return true
}
