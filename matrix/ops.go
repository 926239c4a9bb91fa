// SPDX-License-Identifier: MIT

// Package matrix: arithmetic and factories.
//
// All functions perform strict fail-fast validation and return wrapped
// sentinels on dimension mismatches. Results are freshly allocated; operands
// are never mutated. Loops run in fixed row-major order so results are
// deterministic.
package matrix

import "math"

// Add returns a new matrix containing the element-wise sum a + b.
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Execute): single pass over the flat buffers.
// Complexity: O(r·c) time and memory.
func Add(a, b *Matrix) (*Matrix, error) {
	return addSub(opAdd, a, b, 1)
}

// Sub returns a new matrix containing the element-wise difference a - b.
// Complexity: O(r·c) time and memory.
func Sub(a, b *Matrix) (*Matrix, error) {
	return addSub(opSub, a, b, -1)
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
func addSub(op string, a, b *Matrix, sign float64) (*Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(op, err)
	}
	out := make([]float64, len(a.data))
	for i, v := range a.data {
		out[i] = v + sign*b.data[i]
	}

	return newMatrix(a.rows, a.cols, out), nil
}

// Scale returns a new matrix with every element of m multiplied by alpha.
// Complexity: O(r·c).
func Scale(m *Matrix, alpha float64) (*Matrix, error) {
	return scaleBy(opScale, m, alpha)
}

// Negative returns -m, i.e. Scale(m, -1).
// Complexity: O(r·c).
func Negative(m *Matrix) (*Matrix, error) {
	return scaleBy(opNegative, m, -1)
}

// scaleBy computes out = alpha*m, tagging errors with op.
func scaleBy(op string, m *Matrix, alpha float64) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(op, err)
	}
	out := make([]float64, len(m.data))
	for i, v := range m.data {
		out[i] = v * alpha
	}

	return newMatrix(m.rows, m.cols, out), nil
}

// Mul performs standard matrix multiplication a × b.
// Requires a.Cols() == b.Rows(); the result is a.Rows()×b.Cols() and element
// (r, c) is the dot product of row r of a and column c of b.
// Complexity: O(r·n·c) time and O(r·c) memory.
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	r, c := a.rows, b.cols
	out := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out[j+i*c] = dot(a, i, b, j)
		}
	}

	return newMatrix(r, c, out), nil
}

// Dot returns Σ_i a(row,i)·b(i,col), the (row, col) element of a × b.
// Errors: ErrNilMatrix, ErrDimensionMismatch if a.Cols() != b.Rows(),
// ErrOutOfRange if row is not a row of a or col is not a column of b.
func Dot(a *Matrix, row int, b *Matrix, col int) (float64, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return 0, matrixErrorf(opDot, err)
	}
	if err := ValidateIndex(a, row, 0); err != nil {
		return 0, matrixErrorf(opDot, err)
	}
	if err := ValidateIndex(b, 0, col); err != nil {
		return 0, matrixErrorf(opDot, err)
	}

	return dot(a, row, b, col), nil
}

// dot assumes validated operands.
func dot(a *Matrix, row int, b *Matrix, col int) float64 {
	sum := 0.0
	base := row * a.cols
	for i := 0; i < a.cols; i++ {
		sum += a.data[base+i] * b.data[b.indexOf(i, col)]
	}

	return sum
}

// Transpose returns a new matrix with rows and columns of m swapped.
// Complexity: O(r·c).
func Transpose(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out := make([]float64, len(m.data))
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out[i+j*m.rows] = m.data[m.indexOf(i, j)]
		}
	}

	return newMatrix(m.cols, m.rows, out), nil
}

// Identity returns the n×n identity matrix.
// Returns ErrBadShape when n <= 0.
func Identity(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, matrixErrorf(opIdentity, ErrBadShape)
	}
	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		out[i+i*n] = 1
	}

	return newMatrix(n, n, out), nil
}

// Rotate2D returns the counter-clockwise 2×2 rotation matrix
//
//	[cos θ, -sin θ]
//	[sin θ,  cos θ]
//
// Results carry ordinary floating-point rounding; compare with EqualApprox.
func Rotate2D(radians float64) *Matrix {
	sin, cos := math.Sincos(radians)

	return newMatrix(2, 2, []float64{cos, -sin, sin, cos})
}

// Add returns m + o. See Add.
func (m *Matrix) Add(o *Matrix) (*Matrix, error) { return Add(m, o) }

// Sub returns m - o. See Sub.
func (m *Matrix) Sub(o *Matrix) (*Matrix, error) { return Sub(m, o) }

// Scale returns alpha·m. See Scale.
func (m *Matrix) Scale(alpha float64) (*Matrix, error) { return Scale(m, alpha) }

// Negative returns -m. See Negative.
func (m *Matrix) Negative() (*Matrix, error) { return Negative(m) }

// Mul returns m × o. See Mul.
func (m *Matrix) Mul(o *Matrix) (*Matrix, error) { return Mul(m, o) }

// T returns the transpose of m. See Transpose.
func (m *Matrix) T() (*Matrix, error) { return Transpose(m) }
