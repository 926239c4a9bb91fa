package converters

import (
	"fmt"

	"github.com/nielsutrecht/lib/matrix"
	"github.com/nielsutrecht/lib/vector"
	"golang.org/x/image/math/f32"
)

// narrow copies m into dst after checking m is exactly rows×cols.
// f32 types share the row-major layout, so the copy is element-for-element.
func narrow(op string, m *matrix.Matrix, rows, cols int, dst []float32) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if m.Rows() != rows || m.Cols() != cols {
		return fmt.Errorf("%s: got %dx%d, want %dx%d: %w", op, m.Rows(), m.Cols(), rows, cols, matrix.ErrDimensionMismatch)
	}
	for i, v := range m.Values() {
		dst[i] = float32(v)
	}

	return nil
}

func widen(rows int, src []float32) (*matrix.Matrix, error) {
	vals := make([]float64, len(src))
	for i, v := range src {
		vals[i] = float64(v)
	}

	return matrix.New(rows, vals...)
}

// ToMat3 narrows a 3×3 matrix to f32.Mat3.
func ToMat3(m *matrix.Matrix) (f32.Mat3, error) {
	var out f32.Mat3
	err := narrow("ToMat3", m, 3, 3, out[:])

	return out, err
}

// FromMat3 widens an f32.Mat3 to a 3×3 matrix.
func FromMat3(a f32.Mat3) *matrix.Matrix {
	m, _ := widen(3, a[:]) // 9 values over 3 rows

	return m
}

// ToMat4 narrows a 4×4 matrix to f32.Mat4.
func ToMat4(m *matrix.Matrix) (f32.Mat4, error) {
	var out f32.Mat4
	err := narrow("ToMat4", m, 4, 4, out[:])

	return out, err
}

// FromMat4 widens an f32.Mat4 to a 4×4 matrix.
func FromMat4(a f32.Mat4) *matrix.Matrix {
	m, _ := widen(4, a[:]) // 16 values over 4 rows

	return m
}

// ToAff3 narrows a 2×3 matrix (the top two rows of a 2D affine transform)
// to f32.Aff3, whose implicit bottom row is [0 0 1].
func ToAff3(m *matrix.Matrix) (f32.Aff3, error) {
	var out f32.Aff3
	err := narrow("ToAff3", m, 2, 3, out[:])

	return out, err
}

// FromAff3 widens an f32.Aff3 to its explicit 2×3 form.
func FromAff3(a f32.Aff3) *matrix.Matrix {
	m, _ := widen(2, a[:]) // 6 values over 2 rows

	return m
}

// ToVec2 narrows v to f32.Vec2.
func ToVec2(v vector.Vector2) f32.Vec2 {
	return f32.Vec2{float32(v.X), float32(v.Y)}
}

// FromVec2 widens an f32.Vec2.
func FromVec2(v f32.Vec2) vector.Vector2 {
	return vector.New(float64(v[0]), float64(v[1]))
}
