package math

import (
	"fmt"
	"strings"
)

// Matrix is a rows x cols matrix stored column by column.
//
// Assigning a Matrix shares its storage; use Clone for an independent copy.
// Operations on mismatched shapes panic with ErrDimensionMismatch.
type Matrix[T Number] struct {
	rows, cols int
	data       []T
}

// NewMatrix returns a zero matrix.
func NewMatrix[T Number](rows, cols int) (Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return Matrix[T]{}, fmt.Errorf("%w: %dx%d matrix", ErrInvalidDimension, rows, cols)
	}
	return Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}, nil
}

// MustMatrix is NewMatrix for sizes known to be valid.
func MustMatrix[T Number](rows, cols int) Matrix[T] {
	m, err := NewMatrix[T](rows, cols)
	if err != nil {
		panic(err)
	}
	return m
}

// MatrixFromRows builds a matrix from row slices, which must all have the same length.
func MatrixFromRows[T Number](rows [][]T) (Matrix[T], error) {
	if len(rows) == 0 {
		return Matrix[T]{}, fmt.Errorf("%w: no rows", ErrInvalidDimension)
	}
	m, err := NewMatrix[T](len(rows), len(rows[0]))
	if err != nil {
		return Matrix[T]{}, err
	}
	for r, row := range rows {
		if len(row) != m.cols {
			return Matrix[T]{}, fmt.Errorf("%w: row %d has %d values, want %d", ErrDimensionMismatch, r, len(row), m.cols)
		}
		for c, v := range row {
			m.Set(r, c, v)
		}
	}
	return m, nil
}

// IdentityMatrix returns the n x n identity.
func IdentityMatrix[T Number](n int) (Matrix[T], error) {
	m, err := NewMatrix[T](n, n)
	if err != nil {
		return Matrix[T]{}, err
	}
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m, nil
}

// Rows returns the number of rows.
func (m Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Matrix[T]) Cols() int { return m.cols }

// IsSquare reports whether rows == cols.
func (m Matrix[T]) IsSquare() bool { return m.rows == m.cols }

// Data returns the column-major backing slice.
func (m Matrix[T]) Data() []T { return m.data }

// At returns the element at row r, column c.
func (m Matrix[T]) At(r, c int) T {
	return m.data[m.index(r, c)]
}

// Set stores v at row r, column c.
func (m Matrix[T]) Set(r, c int, v T) {
	m.data[m.index(r, c)] = v
}

func (m Matrix[T]) index(r, c int) int {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(fmt.Sprintf("matrix index (%d, %d) out of range for %dx%d", r, c, m.rows, m.cols))
	}
	return c*m.rows + r
}

// Col returns column c as a view into the matrix: writes to it change m.
func (m Matrix[T]) Col(c int) Vector[T] {
	start := m.index(0, c)
	end := start + m.rows
	return Vector[T](m.data[start:end:end])
}

// Row returns a copy of row r.
func (m Matrix[T]) Row(r int) Vector[T] {
	out := make(Vector[T], m.cols)
	for c := range out {
		out[c] = m.At(r, c)
	}
	return out
}

// Clone returns an independent copy.
func (m Matrix[T]) Clone() Matrix[T] {
	return Matrix[T]{rows: m.rows, cols: m.cols, data: append([]T(nil), m.data...)}
}

// Equal reports whether both matrices have the same shape and elements.
func (m Matrix[T]) Equal(other Matrix[T]) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// ApproxEqual is Equal with a per-element tolerance.
func (m Matrix[T]) ApproxEqual(other Matrix[T], eps float64) bool {
	return m.rows == other.rows && m.cols == other.cols && approxEqual(m.data, other.data, eps)
}

func (m Matrix[T]) mustSameShape(other Matrix[T]) {
	if m.rows != other.rows || m.cols != other.cols {
		panic(fmt.Errorf("%w: %dx%d and %dx%d", ErrDimensionMismatch, m.rows, m.cols, other.rows, other.cols))
	}
}

// Add returns m + other.
func (m Matrix[T]) Add(other Matrix[T]) Matrix[T] {
	m.mustSameShape(other)
	out := m.Clone()
	for i := range out.data {
		out.data[i] += other.data[i]
	}
	return out
}

// Sub returns m - other.
func (m Matrix[T]) Sub(other Matrix[T]) Matrix[T] {
	m.mustSameShape(other)
	out := m.Clone()
	for i := range out.data {
		out.data[i] -= other.data[i]
	}
	return out
}

// Scale returns m * s.
func (m Matrix[T]) Scale(s T) Matrix[T] {
	out := m.Clone()
	for i := range out.data {
		out.data[i] *= s
	}
	return out
}

// Mul returns the product m * other. m.Cols() must equal other.Rows().
func (m Matrix[T]) Mul(other Matrix[T]) Matrix[T] {
	if m.cols != other.rows {
		panic(fmt.Errorf("%w: %dx%d * %dx%d", ErrDimensionMismatch, m.rows, m.cols, other.rows, other.cols))
	}
	out := MustMatrix[T](m.rows, other.cols)
	for c := 0; c < other.cols; c++ {
		for r := 0; r < m.rows; r++ {
			var sum T
			for k := 0; k < m.cols; k++ {
				sum += m.data[k*m.rows+r] * other.data[c*other.rows+k]
			}
			out.data[c*out.rows+r] = sum
		}
	}
	return out
}

// MulVector returns m * v, treating v as a column.
func (m Matrix[T]) MulVector(v Vector[T]) Vector[T] {
	mustMatch(m.cols, len(v))
	out := make(Vector[T], m.rows)
	for c, x := range v {
		for r := range out {
			out[r] += m.data[c*m.rows+r] * x
		}
	}
	return out
}

// Transpose returns the cols x rows transpose.
func (m Matrix[T]) Transpose() Matrix[T] {
	out := MustMatrix[T](m.cols, m.rows)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			out.Set(c, r, m.At(r, c))
		}
	}
	return out
}

// Minor returns m without row r and column c.
func (m Matrix[T]) Minor(r, c int) (Matrix[T], error) {
	if m.rows < 2 || m.cols < 2 {
		return Matrix[T]{}, fmt.Errorf("%w: minor of %dx%d matrix", ErrInvalidDimension, m.rows, m.cols)
	}
	m.index(r, c)

	out := MustMatrix[T](m.rows-1, m.cols-1)
	i := 0
	for cc := 0; cc < m.cols; cc++ {
		if cc == c {
			continue
		}
		for rr := 0; rr < m.rows; rr++ {
			if rr == r {
				continue
			}
			out.data[i] = m.data[cc*m.rows+rr]
			i++
		}
	}
	return out, nil
}

// Det returns the determinant by cofactor expansion along the first column.
// The cost grows factorially with the size; it is meant for small matrices.
func (m Matrix[T]) Det() (T, error) {
	if !m.IsSquare() {
		return 0, fmt.Errorf("%w: %dx%d", ErrNotSquare, m.rows, m.cols)
	}
	return m.det(), nil
}

func (m Matrix[T]) det() T {
	switch m.rows {
	case 1:
		return m.data[0]
	case 2:
		return m.data[0]*m.data[3] - m.data[2]*m.data[1]
	}

	var sum T
	sign := T(1)
	for r := 0; r < m.rows; r++ {
		minor, _ := m.Minor(r, 0)
		sum += sign * m.data[r] * minor.det()
		sign = -sign
	}
	return sum
}

// String prints one bracketed line per row.
func (m Matrix[T]) String() string {
	var sb strings.Builder
	for r := 0; r < m.rows; r++ {
		sb.WriteByte('[')
		for c := 0; c < m.cols; c++ {
			if c > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprint(&sb, m.At(r, c))
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
