package math

import (
	"fmt"
	"strings"
)

// Axis indexes a vector component. Swizzles are lists of axes.
type Axis uint8

// Named axes. Higher indices are valid for Vector.
const (
	AxisX Axis = iota
	AxisY
	AxisZ
	AxisW
)

// String returns the axis letter ("x", "y", "z", "w") or its index.
func (a Axis) String() string {
	if a <= AxisW {
		return string("xyzw"[a])
	}
	return fmt.Sprintf("a%d", uint8(a))
}

// ParseSwizzle converts a pattern such as "zyx" or "bgra" into axes.
// Position letters (xyzw) and color letters (rgba) may not be mixed.
func ParseSwizzle(pattern string) ([]Axis, error) {
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty pattern", ErrInvalidSwizzle)
	}
	pattern = strings.ToLower(pattern)

	set := "xyzw"
	if strings.ContainsAny(pattern, "rgba") {
		set = "rgba"
	}

	axes := make([]Axis, 0, len(pattern))
	for _, r := range pattern {
		i := strings.IndexRune(set, r)
		if i < 0 {
			return nil, fmt.Errorf("%w: unexpected %q in %q", ErrInvalidSwizzle, r, pattern)
		}
		axes = append(axes, Axis(i))
	}
	return axes, nil
}

// MustParseSwizzle is ParseSwizzle for patterns known at compile time.
func MustParseSwizzle(pattern string) []Axis {
	axes, err := ParseSwizzle(pattern)
	if err != nil {
		panic(err)
	}
	return axes
}

func checkAxes(arity int, axes ...Axis) {
	for _, a := range axes {
		if int(a) >= arity {
			panic(fmt.Errorf("%w: axis %v on %d-component vector", ErrInvalidSwizzle, a, arity))
		}
	}
}

// swizzle reads src at the given axes into dst, which must have len(axes) elements.
func swizzle[T Number](dst, src []T, axes []Axis) {
	checkAxes(len(src), axes...)
	for i, a := range axes {
		dst[i] = src[a]
	}
}

// unswizzle writes src into dst at the given axes. Later duplicates win.
func unswizzle[T Number](dst, src []T, axes []Axis) {
	checkAxes(len(dst), axes...)
	for i, a := range axes {
		dst[a] = src[i]
	}
}
