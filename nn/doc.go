// Copyright 2026 The Reural Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a minimal feed-forward neural network on top of the
// matrix package.
//
// # Overview
//
// A Network is an ordered sequence of randomly initialized weight matrices,
// one per transition between consecutive layer sizes. Prediction is a pure
// chain of matrix products through those weights: no activation function,
// normalization or bias term is applied, and the package performs forward
// inference only — there is no training.
//
// # Basic Usage
//
//	import (
//		"math/rand"
//
//		"github.com/reural-ml/reural/matrix"
//		"github.com/reural-ml/reural/nn"
//	)
//
//	func main() {
//		rng := rand.New(rand.NewSource(42))
//
//		network, err := nn.NewBuilder[float64](3).
//			AddHiddenLayer(4).
//			AddOutputLayer(2, rng.Float64)
//		if err != nil {
//			...
//		}
//
//		input, _ := matrix.FromSlice(3, 1, []float64{1.0, 1.1, 1.2})
//		output, err := network.Predict(input) // 2x1 column vector
//	}
//
// # Weight Initialization
//
// The builder draws every weight from the matrix.Source passed to
// AddOutputLayer. The distribution is entirely up to the caller; a seeded
// rand.Float64 gives reproducible networks.
//
// # Dimensions
//
// For the size sequence (input, hidden..., output) the weight matrix of each
// transition has destination-size rows and source-size columns, so the input
// to Predict must be an input-size x 1 column vector and the output is an
// output-size x 1 column vector.
package nn
