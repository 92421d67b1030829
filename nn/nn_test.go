// Copyright 2026 The Reural Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/reural-ml/reural/matrix"
	"github.com/reural-ml/reural/nn"
)

// TestEndToEnd builds a network through the public API and runs a forward
// pass.
func TestEndToEnd(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	network, err := nn.NewBuilder[float64](3).
		AddHiddenLayer(4).
		AddOutputLayer(2, rng.Float64)
	if err != nil {
		t.Fatalf("building network failed: %v", err)
	}

	input, err := matrix.FromSlice(3, 1, []float64{1.0, 1.1, 1.2})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	output, err := network.Predict(input)
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if output.Rows() != 2 || output.Cols() != 1 {
		t.Errorf("prediction is %dx%d, want 2x1", output.Rows(), output.Cols())
	}
}

func TestBuilderIsConsumed(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	builder := nn.NewBuilder[float64](3)

	if _, err := builder.AddOutputLayer(2, rng.Float64); err != nil {
		t.Fatalf("first AddOutputLayer failed: %v", err)
	}
	if _, err := builder.AddOutputLayer(2, rng.Float64); !errors.Is(err, nn.ErrBuilderFinalized) {
		t.Errorf("second AddOutputLayer = %v, want ErrBuilderFinalized", err)
	}
}

func TestPredictRejectsWrongInput(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	network, err := nn.NewBuilder[float64](3).AddOutputLayer(2, rng.Float64)
	if err != nil {
		t.Fatalf("building network failed: %v", err)
	}

	input, err := matrix.New(4, 1, 1.0)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := network.Predict(input); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Errorf("Predict(4x1) = %v, want ErrDimensionMismatch", err)
	}
}
