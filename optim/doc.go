// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the weight-update policies used to train a
// perceptron.
//
// # Overview
//
// This package contains:
//   - SGD: gradient descent with an optional L1 or L2 penalty
//   - Rprop: resilient propagation with per-weight adaptive steps
//   - Optimizer interface for custom policies
//
// Parameters and gradients are gonum matrices of identical dimensions.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/perceptron/mlp"
//	    "github.com/born-ml/perceptron/optim"
//	)
//
//	func main() {
//	    net, _ := mlp.New(2, 1, 1000, 0.1)
//	    optimizer := optim.NewSGD(optim.SGDConfig{
//	        LR:      0.1,
//	        Penalty: optim.PenaltyL2,
//	    })
//
//	    for epoch := range 100 {
//	        net.Forward()
//	        if err := net.ComputeGradients(); err != nil {
//	            log.Fatal(err)
//	        }
//	        if err := optimizer.Step(net.WeightTensors(), net.GradientTensors()); err != nil {
//	            log.Fatal(err)
//	        }
//	    }
//	}
//
// # Optimizers
//
// SGD:
//
//	none: w = w - lr * g
//	l1:   w = w - lr * (±λ + g)
//	l2:   w = w - lr * (λ*w + g)
//
// Rprop:
//
//	optimizer := optim.NewRprop(optim.RpropConfig{
//	    EtaPlus:  1.2,
//	    EtaMinus: 0.5,
//	    StepMin:  1e-6,
//	    StepMax:  50,
//	})
package optim
