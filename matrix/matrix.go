// Copyright 2026 The Reural Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"github.com/reural-ml/reural/internal/matrix"
)

// Element is the constraint for supported matrix element types: all signed
// and unsigned integers and both float sizes.
type Element = matrix.Element

// Integer is the subset of Element supporting remainder, bitwise and shift
// operations.
type Integer = matrix.Integer

// Source produces independent pseudo-random values of the element type.
// It is consumed by FromRandom; the distribution is up to the caller.
type Source[T Element] = matrix.Source[T]

// Matrix is a dense rows x cols container of T in row-major order.
// Both dimensions are strictly positive for every constructible matrix.
type Matrix[T Element] = matrix.Matrix[T]

// Sentinel errors. Match with errors.Is; the returned errors carry the
// offending dimensions or indices in their message.
var (
	ErrCellOutOfBounds    = matrix.ErrCellOutOfBounds
	ErrDimensionMismatch  = matrix.ErrDimensionMismatch
	ErrDimensionsTooLarge = matrix.ErrDimensionsTooLarge
	ErrInvalidDimensions  = matrix.ErrInvalidDimensions
)

// Creation functions

// New creates a rows x cols matrix with every element set to fill.
//
// Example:
//
//	m, err := matrix.New(2, 3, 0.25)
func New[T Element](rows, cols int, fill T) (*Matrix[T], error) {
	return matrix.New(rows, cols, fill)
}

// FromSlice creates a rows x cols matrix from a row-major slice of exactly
// rows*cols elements. The slice is copied.
//
// Example:
//
//	m, err := matrix.FromSlice(2, 3, []int{0, 1, 2, 3, 4, 5})
func FromSlice[T Element](rows, cols int, data []T) (*Matrix[T], error) {
	return matrix.FromSlice(rows, cols, data)
}

// FromRandom creates a rows x cols matrix with every element drawn
// independently from src.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	m, err := matrix.FromRandom(2, 3, rng.Float64)
func FromRandom[T Element](rows, cols int, src Source[T]) (*Matrix[T], error) {
	return matrix.FromRandom(rows, cols, src)
}

// Integer-only operations. Remainder, bitwise and shift operators exist only
// for integer element types, so these are functions constrained on Integer
// instead of methods on Matrix.

// Rem returns the elementwise remainder of a divided by b.
func Rem[T Integer](a, b *Matrix[T]) (*Matrix[T], error) { return matrix.Rem(a, b) }

// And returns the elementwise bitwise AND of a and b.
func And[T Integer](a, b *Matrix[T]) (*Matrix[T], error) { return matrix.And(a, b) }

// Or returns the elementwise bitwise OR of a and b.
func Or[T Integer](a, b *Matrix[T]) (*Matrix[T], error) { return matrix.Or(a, b) }

// Xor returns the elementwise bitwise XOR of a and b.
func Xor[T Integer](a, b *Matrix[T]) (*Matrix[T], error) { return matrix.Xor(a, b) }

// Shl returns a with every element shifted left by the corresponding element of b.
func Shl[T Integer](a, b *Matrix[T]) (*Matrix[T], error) { return matrix.Shl(a, b) }

// Shr returns a with every element shifted right by the corresponding element of b.
func Shr[T Integer](a, b *Matrix[T]) (*Matrix[T], error) { return matrix.Shr(a, b) }

// RemScalar returns the remainder of every element of m divided by s.
func RemScalar[T Integer](m *Matrix[T], s T) *Matrix[T] { return matrix.RemScalar(m, s) }

// AndScalar returns the bitwise AND of every element of m with s.
func AndScalar[T Integer](m *Matrix[T], s T) *Matrix[T] { return matrix.AndScalar(m, s) }

// OrScalar returns the bitwise OR of every element of m with s.
func OrScalar[T Integer](m *Matrix[T], s T) *Matrix[T] { return matrix.OrScalar(m, s) }

// XorScalar returns the bitwise XOR of every element of m with s.
func XorScalar[T Integer](m *Matrix[T], s T) *Matrix[T] { return matrix.XorScalar(m, s) }

// ShlScalar returns m with every element shifted left by s.
func ShlScalar[T Integer](m *Matrix[T], s T) *Matrix[T] { return matrix.ShlScalar(m, s) }

// ShrScalar returns m with every element shifted right by s.
func ShrScalar[T Integer](m *Matrix[T], s T) *Matrix[T] { return matrix.ShrScalar(m, s) }

// RemInPlace stores the elementwise remainder of a divided by b in a.
func RemInPlace[T Integer](a, b *Matrix[T]) error { return matrix.RemInPlace(a, b) }

// AndInPlace stores the elementwise bitwise AND of a and b in a.
func AndInPlace[T Integer](a, b *Matrix[T]) error { return matrix.AndInPlace(a, b) }

// OrInPlace stores the elementwise bitwise OR of a and b in a.
func OrInPlace[T Integer](a, b *Matrix[T]) error { return matrix.OrInPlace(a, b) }

// XorInPlace stores the elementwise bitwise XOR of a and b in a.
func XorInPlace[T Integer](a, b *Matrix[T]) error { return matrix.XorInPlace(a, b) }

// ShlInPlace shifts every element of a left by the corresponding element of b.
func ShlInPlace[T Integer](a, b *Matrix[T]) error { return matrix.ShlInPlace(a, b) }

// ShrInPlace shifts every element of a right by the corresponding element of b.
func ShrInPlace[T Integer](a, b *Matrix[T]) error { return matrix.ShrInPlace(a, b) }

// RemScalarInPlace replaces every element of m with its remainder divided by s.
func RemScalarInPlace[T Integer](m *Matrix[T], s T) { matrix.RemScalarInPlace(m, s) }

// AndScalarInPlace replaces every element of m with its bitwise AND with s.
func AndScalarInPlace[T Integer](m *Matrix[T], s T) { matrix.AndScalarInPlace(m, s) }

// OrScalarInPlace replaces every element of m with its bitwise OR with s.
func OrScalarInPlace[T Integer](m *Matrix[T], s T) { matrix.OrScalarInPlace(m, s) }

// XorScalarInPlace replaces every element of m with its bitwise XOR with s.
func XorScalarInPlace[T Integer](m *Matrix[T], s T) { matrix.XorScalarInPlace(m, s) }

// ShlScalarInPlace shifts every element of m left by s.
func ShlScalarInPlace[T Integer](m *Matrix[T], s T) { matrix.ShlScalarInPlace(m, s) }

// ShrScalarInPlace shifts every element of m right by s.
func ShrScalarInPlace[T Integer](m *Matrix[T], s T) { matrix.ShrScalarInPlace(m, s) }

// Not returns a new matrix with every element bitwise-complemented.
func Not[T Integer](m *Matrix[T]) *Matrix[T] { return matrix.Not(m) }
