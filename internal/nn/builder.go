package nn

import (
	"fmt"

	"github.com/reural-ml/reural/internal/matrix"
)

// Builder accumulates the layer sizes of a network before the weight matrices
// are materialized.
//
// The lifecycle is one-way: create the builder with the input size, append any
// number of hidden layers, then finalize once with AddOutputLayer. A finalized
// builder cannot be reused.
type Builder[T matrix.Element] struct {
	inputNodes  int
	hiddenNodes []int
	finalized   bool
}

// NewBuilder starts building a network with the given number of input nodes.
//
// Sizes are validated when the weight matrices are created: AddOutputLayer
// fails with matrix.ErrInvalidDimensions if any size is not positive.
func NewBuilder[T matrix.Element](inputNodes int) *Builder[T] {
	return &Builder[T]{inputNodes: inputNodes}
}

// AddHiddenLayer appends a hidden layer with the given number of nodes.
// Layers are ordered by insertion. Returns the builder for chaining.
func (b *Builder[T]) AddHiddenLayer(nodes int) *Builder[T] {
	b.hiddenNodes = append(b.hiddenNodes, nodes)
	return b
}

// AddOutputLayer appends the output layer, materializes one randomly
// initialized weight matrix per consecutive pair of layer sizes and returns
// the finished network. Every weight is drawn from src.
//
// For the size sequence (input, hidden..., output), the weight matrix of each
// transition has destination-size rows and source-size columns. Any
// matrix.ErrInvalidDimensions or matrix.ErrDimensionsTooLarge from the weight
// construction is propagated.
//
// The builder is consumed: a second call fails with ErrBuilderFinalized.
func (b *Builder[T]) AddOutputLayer(nodes int, src matrix.Source[T]) (*Network[T], error) {
	if b.finalized {
		return nil, ErrBuilderFinalized
	}
	b.finalized = true

	sizes := make([]int, 0, len(b.hiddenNodes)+2)
	sizes = append(sizes, b.inputNodes)
	sizes = append(sizes, b.hiddenNodes...)
	sizes = append(sizes, nodes)

	layers := make([]*matrix.Matrix[T], 0, len(sizes)-1)
	for i := 1; i < len(sizes); i++ {
		source, destination := sizes[i-1], sizes[i]
		weights, err := matrix.FromRandom(destination, source, src)
		if err != nil {
			return nil, fmt.Errorf("layer %d (%d -> %d nodes): %w", i-1, source, destination, err)
		}
		layers = append(layers, weights)
	}

	return newNetwork(layers)
}
