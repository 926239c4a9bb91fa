// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"strconv"
	"strings"
)

// Thresholds between plain decimal and scientific rendering in FormatFloat.
const (
	plainMin = 1e-3
	plainMax = 1e7
)

// String renders m as comma-separated bracketed rows, e.g. a 2×2 matrix of
// 1, 2, 3, 4 renders as "[1.0,2.0],[3.0,4.0]". Elements use FormatFloat.
// Complexity: O(r·c).
func (m *Matrix) String() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(FormatFloat(m.data[m.indexOf(i, j)]))
		}
		sb.WriteByte(']')
	}

	return sb.String()
}

// FormatFloat renders v as the shortest decimal that round-trips, always
// with a fractional part: 1 → "1.0", 0.5 → "0.5". Magnitudes outside
// [1e-3, 1e7) use scientific form "1.0E7", "2.5E-4". Non-finite values
// render as "NaN", "Infinity" and "-Infinity".
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	abs := math.Abs(v)
	if abs == 0 || (abs >= plainMin && abs < plainMax) {
		return withFraction(strconv.FormatFloat(v, 'f', -1, 64))
	}

	s := strconv.FormatFloat(v, 'E', -1, 64) // e.g. "1.5E-04"
	mant, exp, _ := strings.Cut(s, "E")
	e, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}

	return withFraction(mant) + "E" + strconv.Itoa(e)
}

func withFraction(s string) string {
	if strings.IndexByte(s, '.') < 0 {
		return s + ".0"
	}

	return s
}
