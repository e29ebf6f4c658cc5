// Package math provides generic vector and matrix types for graphics code.
//
// Vectors of dimension 2, 3 and 4 are fixed-size arrays, so mixing arities is
// a compile error. Vector and Matrix cover arbitrary dimensions and check
// their shapes at run time instead.
package math

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Number is any element type a vector or matrix can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float is the element type of types that need real arithmetic (projections, rotations).
type Float interface {
	constraints.Float
}

var (
	// ErrDimensionMismatch is raised when two operands have incompatible sizes.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrNotSquare is returned by operations that need a square matrix.
	ErrNotSquare = errors.New("matrix is not square")
	// ErrInvalidDimension is returned for zero or negative sizes.
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrInvalidSwizzle is raised for axes outside a vector's arity.
	ErrInvalidSwizzle = errors.New("invalid swizzle")
)
