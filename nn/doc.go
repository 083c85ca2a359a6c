// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the activation functions, error metrics and
// regularised losses used by the perceptron.
//
// # Overview
//
// This package contains:
//   - Activations: Sigmoid, ReLU, SeLU, Softmax and their derivatives
//   - Metrics: MSE, RMSE
//   - Penalties: L1Penalty, L2Penalty over any Weighted value
//   - Losses: LossWithL1, LossWithL2, DropoutGeneralisation
//
// # Activations
//
//	y := nn.Sigmoid(x)
//	probs, err := nn.Softmax(logits, 1.0)
//
// Softmax subtracts the maximum before exponentiating and rejects a
// non-positive temperature. SoftmaxDerivative is the element-wise
// approximation s_i(1-s_i) - Σ_{j≠i} s_j, not the Jacobian.
//
// # Loss Functions
//
//	mse, err := nn.MSE(output, expected)
//	loss, err := nn.LossWithL2(output, expected, net, nn.Lambda)
package nn
