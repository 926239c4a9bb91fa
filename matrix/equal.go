// SPDX-License-Identifier: MIT

// Package matrix: structural equality and hashing.
//
// Two comparison tiers exist:
//   - Equal / Hash: exact, for values built from exact inputs.
//   - EqualApprox: absolute tolerance, for anything derived from trig or
//     other rounding-prone arithmetic.
package matrix

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Equal reports whether a and b have the same row count and bit-identical
// flat values. Elements are compared by their IEEE-754 bit pattern with every
// NaN collapsed to one canonical pattern, so NaN equals NaN (Equal is
// reflexive across Clone) and +0 differs from -0.
// Two nil matrices are equal; nil never equals a non-nil matrix.
//
// Inputs: two matrices, either may be nil.
// Complexity: O(r·c).
func Equal(a, b *Matrix) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.rows != b.rows || len(a.data) != len(b.data) {
		return false
	}
	for i, v := range a.data {
		if elemBits(v) != elemBits(b.data[i]) {
			return false
		}
	}

	return true
}

// Equal reports whether m and o are structurally equal. See Equal.
func (m *Matrix) Equal(o *Matrix) bool { return Equal(m, o) }

// EqualApprox reports whether a and b have the same shape and every pair of
// elements differs by at most eps (DefaultEpsilon unless WithEpsilon is given).
// Nil handling matches Equal.
func EqualApprox(a, b *Matrix, opts ...Option) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	eps := gatherOptions(opts...).eps
	for i, v := range a.data {
		if !(math.Abs(v-b.data[i]) <= eps) { // NaN fails the comparison
			return false
		}
	}

	return true
}

// Hash returns a 64-bit FNV-1a hash of the row count and the bit pattern of
// every element, the same bits Equal compares, so Equal matrices hash
// identically. A nil matrix hashes to 0.
func (m *Matrix) Hash() uint64 {
	if m == nil {
		return 0
	}
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(m.rows))
	_, _ = h.Write(buf[:]) // hash.Hash never returns an error
	for _, v := range m.data {
		binary.LittleEndian.PutUint64(buf[:], elemBits(v))
		_, _ = h.Write(buf[:])
	}

	return h.Sum64()
}

// canonicalNaN is the bit pattern every NaN is mapped to by elemBits.
var canonicalNaN = math.Float64bits(math.NaN())

// elemBits is the per-element key shared by Equal and Hash.
func elemBits(v float64) uint64 {
	if v != v { // NaN
		return canonicalNaN
	}

	return math.Float64bits(v)
}
