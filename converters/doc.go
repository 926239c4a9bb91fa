// Package converters provides two-way adapters between matrix.Matrix /
// vector.Vector2 and popular Go geometry and numeric types:
//   - gonum.org/v1/gonum/mat (Dense, VecDense)
//   - golang.org/x/image/math/f32 (Mat3, Mat4, Aff3, Vec2)
//   - gioui.org/f32 (Affine2D, Point)
//
// Every conversion copies; nothing returned here aliases a matrix's storage.
// Conversions to float32 types narrow each element and are lossy.
// Shape problems are reported with the matrix package sentinels.
package converters
