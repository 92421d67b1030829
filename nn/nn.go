// Copyright 2026 The Reural Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/reural-ml/reural/internal/nn"
	"github.com/reural-ml/reural/matrix"
)

// Network is a feed-forward neural network: an immutable ordered sequence of
// weight matrices, one per transition between consecutive layer sizes.
// Networks are created through Builder and are safe to share across
// goroutines, since Predict never mutates the weights.
type Network[T matrix.Element] = nn.Network[T]

// Builder accumulates layer sizes before the weight matrices are materialized.
// Its lifecycle is one-way: NewBuilder, any number of AddHiddenLayer calls,
// then exactly one AddOutputLayer.
type Builder[T matrix.Element] = nn.Builder[T]

// Sentinel errors. Match with errors.Is.
var (
	// ErrEmptyNetwork is returned when a network is finalized with no layers.
	ErrEmptyNetwork = nn.ErrEmptyNetwork

	// ErrBuilderFinalized is returned when a builder is finalized twice.
	ErrBuilderFinalized = nn.ErrBuilderFinalized
)

// NewBuilder starts building a network with the given number of input nodes.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	network, err := nn.NewBuilder[float64](3).
//		AddHiddenLayer(4).
//		AddOutputLayer(2, rng.Float64)
func NewBuilder[T matrix.Element](inputNodes int) *Builder[T] {
	return nn.NewBuilder[T](inputNodes)
}
