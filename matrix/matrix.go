// SPDX-License-Identifier: MIT

// Package matrix: the immutable dense Matrix type, its constructors and
// read-only accessors.
//
// Storage is a flat row-major slice: element (row, col) lives at
// col + row*cols. Every constructor copies caller-provided data, and no
// exported method writes into an existing Matrix after construction.
package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opNew          = "New"
	opNewSquare    = "NewSquare"
	opNewZeros     = "NewZeros"
	opNewFromRows  = "NewFromRows"
	opCopy         = "Copy"
	opIdentity     = "Identity"
	opAt           = "At"
	opRow          = "Row"
	opCol          = "Col"
	opAdd          = "Add"
	opSub          = "Sub"
	opScale        = "Scale"
	opNegative     = "Negative"
	opMul          = "Mul"
	opDot          = "Dot"
	opTranspose    = "Transpose"
	opValidateSize = "validateSize"
)

// Matrix is an immutable rows×cols matrix of float64 values.
// The zero value is not usable; build one with New, NewSquare, NewZeros,
// NewFromRows, Identity or Rotate2D.
type Matrix struct {
	rows, cols int       // both > 0
	data       []float64 // row-major, len(data) == rows*cols
}

// newMatrix wraps data without copying. Callers guarantee len(data) == r*c
// and that nobody else holds data.
func newMatrix(r, c int, data []float64) *Matrix {
	return &Matrix{rows: r, cols: c, data: data}
}

// NewSquare builds an n×n matrix from len(values) == n*n values in row-major
// order. Returns ErrBadShape when len(values) is zero or not a perfect square.
// Complexity: O(n²).
func NewSquare(values ...float64) (*Matrix, error) {
	n, ok := squareSide(len(values))
	if !ok {
		return nil, matrixErrorf(opNewSquare, fmt.Errorf("length %d is not a perfect square: %w", len(values), ErrBadShape))
	}

	return newMatrix(n, n, cloneValues(values)), nil
}

// New builds a matrix with the given row count; the column count is
// len(values)/rows. Returns ErrBadShape when rows <= 0, values is empty, or
// len(values) is not an exact multiple of rows.
// Complexity: O(len(values)).
func New(rows int, values ...float64) (*Matrix, error) {
	if err := validateSize(rows, len(values)); err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return newMatrix(rows, len(values)/rows, cloneValues(values)), nil
}

// NewZeros builds a rows×cols matrix of zeros.
// Returns ErrBadShape when rows <= 0 or cols <= 0.
func NewZeros(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opNewZeros, ErrBadShape)
	}

	return newMatrix(rows, cols, make([]float64, rows*cols)), nil
}

// NewFromRows builds a matrix from a slice of equally long rows.
// Returns ErrBadShape for empty input, an empty first row, or jagged rows.
func NewFromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opNewFromRows, ErrBadShape)
	}
	r, c := len(rows), len(rows[0])
	data := make([]float64, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(fmt.Sprintf("%s: row %d has %d values, want %d", opNewFromRows, i, len(row), c), ErrBadShape)
		}
		data = append(data, row...)
	}

	return newMatrix(r, c, data), nil
}

// Copy returns an independent matrix with the same shape and values as m.
// Returns ErrNilMatrix when m is nil.
func Copy(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCopy, err)
	}

	return m.Clone(), nil
}

// Clone returns a deep copy of m. Clone of a nil matrix is nil.
// Complexity: O(rows*cols).
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}

	return newMatrix(m.rows, m.cols, cloneValues(m.data))
}

// Rows returns the number of rows. A nil matrix has 0 rows.
// Complexity: O(1).
func (m *Matrix) Rows() int {
	if m == nil {
		return 0
	}

	return m.rows
}

// Cols returns the number of columns. A nil matrix has 0 columns.
// Complexity: O(1).
func (m *Matrix) Cols() int {
	if m == nil {
		return 0
	}

	return m.cols
}

// Dims returns (rows, cols); (0, 0) for a nil matrix.
func (m *Matrix) Dims() (int, int) { return m.Rows(), m.Cols() }

// At retrieves the element at (row, col).
// Returns ErrOutOfRange if row ∉ [0,Rows) or col ∉ [0,Cols).
// Complexity: O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	if err := ValidateIndex(m, row, col); err != nil {
		return 0, matrixErrorf(opAt, err)
	}

	return m.data[m.indexOf(row, col)], nil
}

// Values returns a copy of the flat row-major backing data.
// Mutating the result never affects m. A nil matrix has no values (nil).
// Complexity: O(r·c).
func (m *Matrix) Values() []float64 {
	if m == nil {
		return nil
	}

	return cloneValues(m.data)
}

// Row returns a copy of row r.
func (m *Matrix) Row(r int) ([]float64, error) {
	if err := ValidateIndex(m, r, 0); err != nil {
		return nil, matrixErrorf(opRow, err)
	}
	base := r * m.cols

	return cloneValues(m.data[base : base+m.cols]), nil
}

// Col returns a copy of column c.
func (m *Matrix) Col(c int) ([]float64, error) {
	if err := ValidateIndex(m, 0, c); err != nil {
		return nil, matrixErrorf(opCol, err)
	}
	out := make([]float64, m.rows)
	for i := range out {
		out[i] = m.data[m.indexOf(i, c)]
	}

	return out, nil
}

// indexOf maps (row, col) to the flat offset. No bounds check.
func (m *Matrix) indexOf(row, col int) int {
	return col + row*m.cols
}

// validateSize checks that n values can be laid out in rows rows.
func validateSize(rows, n int) error {
	if rows <= 0 {
		return validatorErrorf(fmt.Sprintf("%s: rows=%d", opValidateSize, rows), ErrBadShape)
	}
	if n == 0 {
		return validatorErrorf(fmt.Sprintf("%s: no values", opValidateSize), ErrBadShape)
	}
	if n%rows != 0 {
		return validatorErrorf(fmt.Sprintf("%s: %d values not divisible by %d rows", opValidateSize, n, rows), ErrBadShape)
	}

	return nil
}

// squareSide returns n with n*n == length, n > 0.
func squareSide(length int) (int, bool) {
	if length <= 0 {
		return 0, false
	}
	n := int(math.Round(math.Sqrt(float64(length))))

	return n, n*n == length
}

func cloneValues(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)

	return out
}
