// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for common validation checks.
//  - Keep operations minimal by delegating nil/shape/index checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic, O(1) and allocate nothing on success.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape).
//  - Errors are returned wrapped with the validator name; callers wrap again
//    with their operation name and errors.Is still matches the sentinel.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to keep sentinel violations labeled consistently.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Inputs: a *Matrix, possibly nil.
// Returns: nil, or ErrNilMatrix wrapped as "ValidateNotNil: ...".
// Complexity: O(1).
// Use it as the first step in composite validations.
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
//
// Inputs: two matrices.
// Errors: ErrNilMatrix if either is nil; ErrDimensionMismatch if rows or
// columns differ (rows are checked first).
// Complexity: O(1).
// Guards Add/Sub and other element-wise kernels.
func ValidateSameShape(a, b *Matrix) error {
	if err := validatePair("ValidateSameShape", a, b); err != nil {
		return err
	}
	if a.rows != b.rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols() == b.Rows() so that a×b is defined.
//
// Inputs: left operand a, right operand b.
// Errors: ErrNilMatrix if either is nil; ErrDimensionMismatch otherwise.
// Complexity: O(1).
// Guards Mul and Dot.
func ValidateMulCompatible(a, b *Matrix) error {
	if err := validatePair("ValidateMulCompatible", a, b); err != nil {
		return err
	}
	if a.cols != b.rows {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Inputs: a *Matrix.
// Errors: ErrNilMatrix if nil, ErrDimensionMismatch if not square.
// Complexity: O(1).
func ValidateSquare(m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.rows != m.cols {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateIndex checks 0 ≤ row < Rows and 0 ≤ col < Cols.
//
// Inputs: a *Matrix and a (row, col) coordinate.
// Errors: ErrNilMatrix if m is nil; ErrOutOfRange if either coordinate is
// outside the shape. The message names the failing coordinate.
// Complexity: O(1).
// Every public indexer (At, Row, Col, Dot) goes through here, so no flat
// offset is computed from an unchecked pair.
func ValidateIndex(m *Matrix, row, col int) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateIndex", err)
	}
	if row < 0 || row >= m.rows {
		return validatorErrorf(fmt.Sprintf("ValidateIndex(%d,%d): Row", row, col), ErrOutOfRange)
	}
	if col < 0 || col >= m.cols {
		return validatorErrorf(fmt.Sprintf("ValidateIndex(%d,%d): Column", row, col), ErrOutOfRange)
	}

	return nil
}

// validatePair is the NotNil(a) → NotNil(b) prefix shared by binary validators.
func validatePair(tag string, a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf(tag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf(tag, err)
	}

	return nil
}
