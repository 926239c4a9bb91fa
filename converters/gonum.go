package converters

import (
	"fmt"

	"github.com/nielsutrecht/lib/matrix"
	"github.com/nielsutrecht/lib/vector"
	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a new *mat.Dense of the same shape.
func ToGonum(m *matrix.Matrix) (*mat.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ToGonum: %w", err)
	}

	return mat.NewDense(m.Rows(), m.Cols(), m.Values()), nil
}

// FromGonum copies any mat.Matrix into a new matrix.Matrix.
// A nil or empty (0×0) input is matrix.ErrBadShape.
func FromGonum(a mat.Matrix) (*matrix.Matrix, error) {
	if a == nil {
		return nil, fmt.Errorf("FromGonum: %w", matrix.ErrNilMatrix)
	}
	if d, ok := a.(*mat.Dense); ok && d.IsEmpty() {
		return nil, fmt.Errorf("FromGonum: empty dense: %w", matrix.ErrBadShape)
	}
	r, c := a.Dims()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("FromGonum: %dx%d: %w", r, c, matrix.ErrBadShape)
	}
	vals := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			vals = append(vals, a.At(i, j))
		}
	}

	return matrix.New(r, vals...)
}

// ToGonumVec returns v as a length-2 *mat.VecDense.
func ToGonumVec(v vector.Vector2) *mat.VecDense {
	return mat.NewVecDense(2, []float64{v.X, v.Y})
}

// FromGonumVec reads a length-2 mat.Vector. Other lengths are
// matrix.ErrDimensionMismatch.
func FromGonumVec(v mat.Vector) (vector.Vector2, error) {
	if v == nil {
		return vector.Vector2{}, fmt.Errorf("FromGonumVec: %w", matrix.ErrNilMatrix)
	}
	if v.Len() != 2 {
		return vector.Vector2{}, fmt.Errorf("FromGonumVec: length %d: %w", v.Len(), matrix.ErrDimensionMismatch)
	}

	return vector.New(v.AtVec(0), v.AtVec(1)), nil
}
