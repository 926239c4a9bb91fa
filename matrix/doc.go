// Package matrix offers a small, immutable, dense float64 matrix.
//
// The matrix package provides:
//
//   - Constructors: NewSquare (shape inferred from a perfect-square length),
//     New (explicit row count), NewZeros, NewFromRows, Copy.
//   - Factories: Identity and Rotate2D.
//   - Arithmetic: Add, Sub, Scale, Negative, Mul, Dot, Transpose. Every
//     operation allocates a fresh result; operands are never modified, so a
//     *Matrix may be shared freely between goroutines.
//   - Comparison: Equal and Hash (exact), EqualApprox (absolute tolerance).
//   - Display: String renders "[1.0,2.0],[3.0,4.0]".
//
// Misuse is reported through wrapped sentinels (ErrBadShape,
// ErrDimensionMismatch, ErrOutOfRange, ErrNilMatrix); match them with errors.Is.
//
// Matrices are meant for small shapes: multiplication is the plain O(n³)
// triple loop.
package matrix
