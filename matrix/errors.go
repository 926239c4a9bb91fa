// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package and by its dependants (vector, converters). Operations return these
// sentinels wrapped with the operation name; tests MUST check them via
// errors.Is. No operation panics on user-triggered error conditions.
// Panics are reserved for invalid option parameters (programmer error).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Operations wrap with matrixErrorf("Op", ErrX), so
// the message reads "Op: Validator: matrix: ..." while errors.Is(err, ErrX)
// still matches. Each operation tags its own name exactly once.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> shape -> dimension mismatch -> index.

var (
	// ErrBadShape is returned when a flat value sequence cannot be reshaped
	// into a valid matrix: non-square length for an inferred square shape,
	// non-exact division by an explicit row count, empty input, or
	// non-positive dimensions. Constructors validate before allocating.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, Mul/Dot where a.Cols != b.Rows, or a
	// vector transform by a matrix that does not have exactly two columns.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Row/Col/Dot) MUST return this, not panic, and never
	// fall back to reading a neighbouring flat offset.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Matrix was used as an operand.
	// Read-only accessors (Rows/Cols/Dims/Values/String/Hash/Clone) tolerate a
	// nil receiver and return zero values instead.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// matrixErrorf wraps an underlying error with the given operation tag.
//
// Inputs: tag, the exported operation name (see op* constants); err, a
// sentinel or an already-tagged validator error.
// Complexity: O(len(message)).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
