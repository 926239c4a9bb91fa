// SPDX-License-Identifier: MIT

// Package vector provides Vector2, an immutable 2D point/direction that can be
// transformed by a matrix.Matrix.
//
// Vector2 is a plain comparable value: == is its equality, and every method
// returns a new value.
package vector

import (
	"fmt"
	"math"

	"github.com/nielsutrecht/lib/matrix"
)

const opTransform = "Transform"

// Vector2 is a 2-component float64 value.
type Vector2 struct {
	X, Y float64
}

// New returns the vector (x, y). Every real pair is valid.
func New(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Column returns v as the 2×1 column matrix [x; y].
func (v Vector2) Column() *matrix.Matrix {
	col, _ := matrix.New(2, v.X, v.Y) // 2 values over 2 rows always fit

	return col
}

// Transform computes m × [x; y] and returns the first two elements of the
// product's flat row-major values as the new (x, y).
// Requires m.Cols() == 2 and at least two elements in the product
// (m.Rows() >= 2); otherwise returns matrix.ErrDimensionMismatch.
func Transform(v Vector2, m *matrix.Matrix) (Vector2, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return Vector2{}, fmt.Errorf("%s: %w", opTransform, err)
	}
	if m.Cols() != 2 {
		return Vector2{}, fmt.Errorf("%s: matrix has %d columns, want 2: %w", opTransform, m.Cols(), matrix.ErrDimensionMismatch)
	}
	p, err := matrix.Mul(m, v.Column())
	if err != nil {
		return Vector2{}, fmt.Errorf("%s: %w", opTransform, err)
	}
	flat := p.Values()
	if len(flat) < 2 {
		return Vector2{}, fmt.Errorf("%s: product has %d values, want 2: %w", opTransform, len(flat), matrix.ErrDimensionMismatch)
	}

	return Vector2{X: flat[0], Y: flat[1]}, nil
}

// Multiply returns m applied to v. See Transform.
func (v Vector2) Multiply(m *matrix.Matrix) (Vector2, error) {
	return Transform(v, m)
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{v.X - o.X, v.Y - o.Y} }

// Scale returns s·v.
func (v Vector2) Scale(s float64) Vector2 { return Vector2{v.X * s, v.Y * s} }

// Dot returns the dot product v·o.
func (v Vector2) Dot(o Vector2) float64 { return v.X*o.X + v.Y*o.Y }

// Len returns the Euclidean length of v.
func (v Vector2) Len() float64 { return math.Hypot(v.X, v.Y) }

// String renders v as "[x, y]", e.g. "[1.0, -2.5]".
func (v Vector2) String() string {
	return "[" + matrix.FormatFloat(v.X) + ", " + matrix.FormatFloat(v.Y) + "]"
}
