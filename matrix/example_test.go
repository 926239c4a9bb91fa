package matrix_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/nielsutrecht/lib/matrix"
)

// ExampleMul multiplies a 2×3 matrix by a 3×2 matrix.
func ExampleMul() {
	a, _ := matrix.New(2, 1, 2, 3, 4, 5, 6)
	b, _ := matrix.New(3, 7, 8, 9, 10, 11, 12)

	p, err := matrix.Mul(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p)

	_, err = matrix.Mul(a, a)
	fmt.Println(errors.Is(err, matrix.ErrDimensionMismatch))

	// Output:
	// [58.0,64.0],[139.0,154.0]
	// true
}

// ExampleRotate2D shows why rotations are compared with a tolerance.
func ExampleRotate2D() {
	quarter, _ := matrix.NewSquare(0, -1, 1, 0)
	r := matrix.Rotate2D(math.Pi / 2)

	fmt.Println(matrix.Equal(quarter, r))
	fmt.Println(matrix.EqualApprox(quarter, r, matrix.WithEpsilon(1e-6)))

	// Output:
	// false
	// true
}
