// Copyright 2026 The Reural Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides checked dense matrices over numeric element types.
//
// # Overview
//
// Matrix[T] is a 2-dimensional row-major container with strictly positive
// dimensions, checked construction and checked element access. It supports:
//   - Elementwise arithmetic between matrices and scalars, with fallible
//     in-place variants
//   - The matrix product (MatMul) and transposition
//   - Remainder, bitwise and shift operations for integer element types
//   - Pure (Map) and in-place (MapInPlace) whole-matrix transforms
//
// # Basic Usage
//
//	import "github.com/reural-ml/reural/matrix"
//
//	func main() {
//		m, _ := matrix.FromSlice(2, 3, []float64{0.25, 1.33, -0.1, 1.0, -2.73, 1.2})
//		sum := m.AddScalar(7.3)
//		fmt.Println(sum.Transpose())
//	}
//
// # Element Types
//
// Operations are generic over the Element constraint: all signed and unsigned
// integer types plus float32 and float64. Remainder, bitwise and shift
// operations additionally require the Integer constraint and are exposed as
// package-level functions (matrix.And, matrix.Shl, ...), since Go defines
// those operators only for integers.
//
// # Error Handling
//
// Fallible operations return one of the package's sentinel errors, wrapped
// with the offending dimensions or indices. Match them with errors.Is:
//
//	if _, err := a.Add(b); errors.Is(err, matrix.ErrDimensionMismatch) {
//		// shapes differ
//	}
//
// GetUnchecked is the single exception: it skips bounds validation entirely
// and its precondition is a hard caller contract.
//
// # Size Limits
//
// A matrix holds at most math.MaxInt elements. Constructors reject dimension
// pairs whose product would overflow with ErrDimensionsTooLarge.
package matrix
