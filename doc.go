// Package lib is a small dense linear-algebra toolkit for geometric and
// numeric code.
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/     — immutable dense float64 Matrix: arithmetic, Identity,
//	              Rotate2D, exact and approximate equality, formatting
//	vector/     — Vector2 and its transform by a Matrix
//	converters/ — adapters to gonum/mat, x/image/math/f32 and gioui f32
//
// Quick example:
//
//	v, err := vector.New(0, -10).Multiply(matrix.Rotate2D(math.Pi / 2))
//	// v ≈ [10.0, 0.0]
//
//	go get github.com/nielsutrecht/lib
package lib
