package converters

import (
	"fmt"

	"gioui.org/f32"

	"github.com/nielsutrecht/lib/matrix"
	"github.com/nielsutrecht/lib/vector"
)

// ToAffine2D converts a 2×2 linear map (zero translation) or a 2×3 affine
// map [[sx hx ox] [hy sy oy]] to a gioui f32.Affine2D.
// Other shapes are matrix.ErrDimensionMismatch.
func ToAffine2D(m *matrix.Matrix) (f32.Affine2D, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return f32.Affine2D{}, fmt.Errorf("ToAffine2D: %w", err)
	}
	v := m.Values()
	switch r, c := m.Dims(); {
	case r == 2 && c == 2:
		return f32.NewAffine2D(float32(v[0]), float32(v[1]), 0, float32(v[2]), float32(v[3]), 0), nil
	case r == 2 && c == 3:
		return f32.NewAffine2D(float32(v[0]), float32(v[1]), float32(v[2]), float32(v[3]), float32(v[4]), float32(v[5])), nil
	default:
		return f32.Affine2D{}, fmt.Errorf("ToAffine2D: got %dx%d, want 2x2 or 2x3: %w", r, c, matrix.ErrDimensionMismatch)
	}
}

// FromAffine2D returns the explicit 2×3 form of a.
func FromAffine2D(a f32.Affine2D) *matrix.Matrix {
	sx, hx, ox, hy, sy, oy := a.Elems()
	m, _ := matrix.New(2,
		float64(sx), float64(hx), float64(ox),
		float64(hy), float64(sy), float64(oy),
	)

	return m
}

// ToPoint narrows v to a gioui f32.Point.
func ToPoint(v vector.Vector2) f32.Point {
	return f32.Pt(float32(v.X), float32(v.Y))
}

// FromPoint widens a gioui f32.Point.
func FromPoint(p f32.Point) vector.Vector2 {
	return vector.New(float64(p.X), float64(p.Y))
}
