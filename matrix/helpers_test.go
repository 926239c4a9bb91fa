// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the matrix tests.
//   • Fail fast on fixture construction so individual tests stay short.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/nielsutrecht/lib/matrix"
	"github.com/stretchr/testify/require"
)

// rotationTol is the absolute tolerance for anything built by Rotate2D.
const rotationTol = 1e-6

// mustSquare builds a square matrix or fails the test.
func mustSquare(tb testing.TB, values ...float64) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.NewSquare(values...)
	require.NoError(tb, err)

	return m
}

// mustNew builds a matrix with an explicit row count or fails the test.
func mustNew(tb testing.TB, rows int, values ...float64) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.New(rows, values...)
	require.NoError(tb, err)

	return m
}

// mustIdentity builds an n×n identity or fails the test.
func mustIdentity(tb testing.TB, n int) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.Identity(n)
	require.NoError(tb, err)

	return m
}

// sequential returns [1, 2, ..., n].
func sequential(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i + 1)
	}

	return out
}

// randomMatrix fills an r×c matrix with small integers from a seeded source,
// so sums and products stay exact in float64.
func randomMatrix(tb testing.TB, r, c int, seed int64) *matrix.Matrix {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = float64(rng.Intn(21) - 10)
	}

	return mustNew(tb, r, vals...)
}
