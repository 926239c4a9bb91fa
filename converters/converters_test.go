package converters_test

import (
	"testing"

	giof32 "gioui.org/f32"
	"github.com/stretchr/testify/require"
	imgf32 "golang.org/x/image/math/f32"
	"gonum.org/v1/gonum/mat"

	"github.com/nielsutrecht/lib/converters"
	"github.com/nielsutrecht/lib/matrix"
	"github.com/nielsutrecht/lib/vector"
)

func mustNew(t *testing.T, rows int, values ...float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(rows, values...)
	require.NoError(t, err)

	return m
}

func TestGonum_RoundTrip(t *testing.T) {
	m := mustNew(t, 2, 1, 2, 3, 4, 5, 6)

	d, err := converters.ToGonum(m)
	require.NoError(t, err)
	r, c := d.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 6.0, d.At(1, 2))

	// the gonum copy is independent
	d.Set(0, 0, 100)
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.Values())

	back, err := converters.FromGonum(d.T())
	require.NoError(t, err)
	require.True(t, matrix.Equal(mustNew(t, 3, 100, 4, 2, 5, 3, 6), back), "got %v", back)
}

// TestGonum_MulAgrees checks our product against gonum's.
func TestGonum_MulAgrees(t *testing.T) {
	a := mustNew(t, 2, 1, 2, 3, 4, 5, 6)
	b := mustNew(t, 3, 7, 8, 9, 10, 11, 12)
	ours, err := matrix.Mul(a, b)
	require.NoError(t, err)

	ga, err := converters.ToGonum(a)
	require.NoError(t, err)
	gb, err := converters.ToGonum(b)
	require.NoError(t, err)
	var gp mat.Dense
	gp.Mul(ga, gb)

	theirs, err := converters.FromGonum(&gp)
	require.NoError(t, err)
	require.True(t, matrix.Equal(ours, theirs))
}

func TestGonum_Errors(t *testing.T) {
	_, err := converters.ToGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = converters.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = converters.FromGonum(&mat.Dense{})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = converters.FromGonumVec(mat.NewVecDense(3, nil))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestGonumVec_RoundTrip(t *testing.T) {
	v := vector.New(1.5, -2)
	got, err := converters.FromGonumVec(converters.ToGonumVec(v))
	require.NoError(t, err)
	require.Equal(t, v, got)
}

func TestImageF32(t *testing.T) {
	m3 := mustNew(t, 3, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	a, err := converters.ToMat3(m3)
	require.NoError(t, err)
	require.Equal(t, imgf32.Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}, a)
	require.True(t, matrix.Equal(m3, converters.FromMat3(a)))

	id4, err := matrix.Identity(4)
	require.NoError(t, err)
	b, err := converters.ToMat4(id4)
	require.NoError(t, err)
	require.Equal(t, float32(1), b[5])
	require.True(t, matrix.Equal(id4, converters.FromMat4(b)))

	aff := mustNew(t, 2, 1, 0, 0.5, 0, 1, -2)
	c, err := converters.ToAff3(aff)
	require.NoError(t, err)
	require.Equal(t, imgf32.Aff3{1, 0, 0.5, 0, 1, -2}, c)
	require.True(t, matrix.Equal(aff, converters.FromAff3(c)))

	_, err = converters.ToMat3(id4)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = converters.ToAff3(m3)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = converters.ToMat4(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	v := vector.New(0.25, -8)
	require.Equal(t, v, converters.FromVec2(converters.ToVec2(v)))
}

// TestGioui_TransformAgrees checks that a converted affine moves a point the
// same way vector.Transform does.
func TestGioui_TransformAgrees(t *testing.T) {
	quarter, err := matrix.NewSquare(0, -1, 1, 0)
	require.NoError(t, err)

	aff, err := converters.ToAffine2D(quarter)
	require.NoError(t, err)
	p := aff.Transform(converters.ToPoint(vector.New(0, -10)))

	want, err := vector.New(0, -10).Multiply(quarter)
	require.NoError(t, err)
	require.Equal(t, want, converters.FromPoint(p))
}

func TestGioui_RoundTrip(t *testing.T) {
	m := mustNew(t, 2, 2, 0.5, 3, -1, 4, -7)
	aff, err := converters.ToAffine2D(m)
	require.NoError(t, err)
	require.True(t, matrix.Equal(m, converters.FromAffine2D(aff)))

	require.True(t, matrix.Equal(mustNew(t, 2, 1, 0, 0, 0, 1, 0), converters.FromAffine2D(giof32.Affine2D{})))

	_, err = converters.ToAffine2D(mustNew(t, 3, 1, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = converters.ToAffine2D(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
