// Package nn implements the feed-forward network built on the matrix package.
package nn

import (
	"errors"
	"fmt"

	"github.com/reural-ml/reural/internal/matrix"
)

// Sentinel errors returned by the nn package.
var (
	// ErrEmptyNetwork is returned when a network is finalized with no layers.
	ErrEmptyNetwork = errors.New("nn: network has no layers")

	// ErrBuilderFinalized is returned when AddOutputLayer is called on a
	// builder that has already produced a network.
	ErrBuilderFinalized = errors.New("nn: builder already finalized")
)

// Network is a feed-forward neural network: an immutable ordered sequence of
// weight matrices, one per transition between consecutive layer sizes.
//
// Weight matrix i has one row per node of the destination layer and one column
// per node of the source layer, so left-multiplying a column vector of source
// activations yields the destination activations. Consecutive matrices are
// dimensionally chainable by construction.
//
// A Network is safe for concurrent use: Predict never mutates the weights.
type Network[T matrix.Element] struct {
	layers []*matrix.Matrix[T]
}

// newNetwork creates a network from the given weight matrices, in order.
// At least one layer is required, or ErrEmptyNetwork is returned.
func newNetwork[T matrix.Element](layers []*matrix.Matrix[T]) (*Network[T], error) {
	if len(layers) == 0 {
		return nil, ErrEmptyNetwork
	}
	return &Network[T]{layers: layers}, nil
}

// Layers returns the ordered weight matrices of the network.
// The returned slice and matrices must be treated as read-only.
func (n *Network[T]) Layers() []*matrix.Matrix[T] {
	return n.layers
}

// Predict runs the forward pass for the given input and returns the network's
// output.
//
// The input must be an i x 1 column vector where i is the network's number of
// input nodes; matrix.ErrDimensionMismatch is returned otherwise. The output
// is an o x 1 column vector where o is the number of output nodes.
//
// The pass is a pure chain of matrix products through the weight matrices.
// No activation function or bias is applied.
func (n *Network[T]) Predict(input *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	if input.Cols() != 1 {
		return nil, fmt.Errorf("predict: input is %dx%d, want a column vector: %w",
			input.Rows(), input.Cols(), matrix.ErrDimensionMismatch)
	}
	if want := n.layers[0].Cols(); input.Rows() != want {
		return nil, fmt.Errorf("predict: input has %d rows, network expects %d: %w",
			input.Rows(), want, matrix.ErrDimensionMismatch)
	}

	output := input
	for _, layer := range n.layers {
		var err error
		if output, err = layer.MatMul(output); err != nil {
			return nil, err
		}
	}
	return output, nil
}
