// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package mlp provides a bias-free multi-layer perceptron and its training
// loops.
//
// # Overview
//
// A Network is sized from its input and output counts alone:
//
//	layers = inputs + outputs
//	width  = inputs * outputs
//
// Internal layers use the sigmoid activation; the output layer is linear.
//
// This package contains:
//   - Network: weights, activation caches and hyperparameters
//   - Forward: one inference pass
//   - Backward: delta-rule update in a single pass
//   - ComputeGradients + ApplyGradientUpdate/ApplyL1Update/ApplyL2Update
//   - RunRprop: resilient propagation on the output and input weights
//   - Train, TrainDataset, Fit: training loops
//
// # Basic Usage
//
//	import "github.com/born-ml/perceptron/mlp"
//
//	func main() {
//	    net, err := mlp.New(2, 1, 5000, 0.1, mlp.WithSeed(42))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    result, err := net.Fit(samples, mlp.Rprop)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("trained=%v after %d epochs, mse=%.4f\n",
//	        result.Trained, result.Epochs, result.MSE)
//	}
//
// # Update Policies
//
// Callers pick one backward strategy per step:
//
//	net.Forward()
//	net.Backward()               // delta rule, resets caches
//
//	net.Forward()
//	net.ComputeGradients()       // fills gradient tensors only
//	net.ApplyL2Update()          // consumes them
//
// The delta rule never fills the gradient tensors, so the two families are
// not mixed on one forward pass. Step and Fit take a Policy and do this
// bookkeeping themselves.
//
// # Errors
//
// Size mismatches, backward calls without a forward pass and updates without
// gradients return sentinel errors that can be checked with errors.Is.
// Training loops return ErrDiverged as soon as the error stops being finite.
package mlp
