// Copyright 2026 The Reural Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package main provides the Reural command line interface.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/reural-ml/reural/matrix"
	"github.com/reural-ml/reural/nn"
)

const version = "v0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "reural:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "reural",
		Short:         "Reural - dense matrices and feed-forward inference",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newPredictCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Reural %s\n", version)
		},
	}
}

func newPredictCmd() *cobra.Command {
	var (
		inputs  int
		hidden  []int
		outputs int
		seed    int64
	)

	cmd := &cobra.Command{
		Use:   "predict [value...]",
		Short: "Run a forward pass through a randomly initialized network",
		Long: `Build a feed-forward network with uniformly random weights in [0, 1) and
run a single forward pass.

The input vector is taken from the positional arguments, one value per input
node. Without arguments, an all-ones vector is used. The same seed always
yields the same weights and therefore the same prediction.`,
		Example: `  reural predict --inputs 3 --hidden 4 --outputs 2 -- 1.0 1.1 1.2
  reural predict --inputs 5 --hidden 8,8 --outputs 3 --seed 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]float64, inputs)
			for i := range values {
				values[i] = 1
			}
			if len(args) > 0 {
				if len(args) != inputs {
					return fmt.Errorf("got %d input values for %d input nodes", len(args), inputs)
				}
				for i, arg := range args {
					v, err := strconv.ParseFloat(arg, 64)
					if err != nil {
						return fmt.Errorf("input value %q: %w", arg, err)
					}
					values[i] = v
				}
			}

			builder := nn.NewBuilder[float64](inputs)
			for _, nodes := range hidden {
				builder.AddHiddenLayer(nodes)
			}

			rng := rand.New(rand.NewSource(seed)) //nolint:gosec // weight initialization wants reproducibility, not secrecy
			network, err := builder.AddOutputLayer(outputs, rng.Float64)
			if err != nil {
				return err
			}

			input, err := matrix.FromSlice(inputs, 1, values)
			if err != nil {
				return err
			}
			output, err := network.Predict(input)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "input:\n%v\n\nprediction:\n%v\n", input, output)
			return nil
		},
	}

	cmd.Flags().IntVar(&inputs, "inputs", 3, "number of input nodes")
	cmd.Flags().IntSliceVar(&hidden, "hidden", nil, "hidden layer sizes, in network order")
	cmd.Flags().IntVar(&outputs, "outputs", 2, "number of output nodes")
	cmd.Flags().Int64Var(&seed, "seed", 1, "seed for the random weight source")
	return cmd
}
