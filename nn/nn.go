// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/perceptron/internal/activation"
	"github.com/born-ml/perceptron/internal/loss"
)

// Errors returned by activations, metrics and losses.
var (
	ErrSizeMismatch       = activation.ErrSizeMismatch
	ErrInvalidTemperature = activation.ErrInvalidTemperature
	ErrEmptyInput         = activation.ErrEmptyInput
	ErrLossSizeMismatch   = loss.ErrSizeMismatch
	ErrInvalidDropout     = loss.ErrInvalidDropout
)

// Lambda is the fixed regularisation strength of the L1/L2 updates.
const Lambda = loss.Lambda

// Weighted is anything that can enumerate its weight tensors.
type Weighted = loss.Weighted

// Activations

// Sigmoid returns 1 / (1 + e^-x).
func Sigmoid(x float64) float64 { return activation.Sigmoid(x) }

// SigmoidDerivative returns σ(x)(1-σ(x)) for a pre-activation x.
func SigmoidDerivative(x float64) float64 { return activation.SigmoidDerivative(x) }

// ReLU returns max(0, x).
func ReLU(x float64) float64 { return activation.ReLU(x) }

// ReLUDerivative returns 1 for x > 0 and 0 otherwise.
func ReLUDerivative(x float64) float64 { return activation.ReLUDerivative(x) }

// SeLU returns x for x > 0 and 0.1x otherwise.
func SeLU(x float64) float64 { return activation.SeLU(x) }

// SeLUDerivative returns 1 for x > 0 and 0.1 otherwise.
func SeLUDerivative(x float64) float64 { return activation.SeLUDerivative(x) }

// SigmoidVec applies Sigmoid to every element of x.
func SigmoidVec(x []float64) []float64 { return activation.SigmoidVec(x) }

// Softmax returns exp(x_i/T) / Σ exp(x_j/T).
func Softmax(x []float64, temperature float64) ([]float64, error) {
	return activation.Softmax(x, temperature)
}

// SoftmaxDerivative returns the element-wise softmax derivative approximation.
func SoftmaxDerivative(x []float64, temperature float64) ([]float64, error) {
	return activation.SoftmaxDerivative(x, temperature)
}

// SoftmaxRows applies Softmax to every row of m.
func SoftmaxRows(m mat.Matrix, temperature float64) (*mat.Dense, error) {
	return activation.SoftmaxRows(m, temperature)
}

// SoftmaxDerivativeRows applies SoftmaxDerivative to every row of m.
func SoftmaxDerivativeRows(m mat.Matrix, temperature float64) (*mat.Dense, error) {
	return activation.SoftmaxDerivativeRows(m, temperature)
}

// Metrics

// MSE returns the mean squared error between a and b.
func MSE(a, b []float64) (float64, error) { return activation.MSE(a, b) }

// RMSE returns the square root of MSE.
func RMSE(a, b []float64) (float64, error) { return activation.RMSE(a, b) }

// Penalties and losses

// L1Penalty returns Σ|w| over every weight tensor of w.
func L1Penalty(w Weighted) float64 { return loss.L1Penalty(w) }

// L2Penalty returns Σw² over every weight tensor of w.
func L2Penalty(w Weighted) float64 { return loss.L2Penalty(w) }

// LossWithL1 returns Σ|output-expected| + 0.5·λ·L1Penalty(w).
func LossWithL1(output, expected []float64, w Weighted, lambda float64) (float64, error) {
	return loss.WithL1(output, expected, w, lambda)
}

// LossWithL2 returns 0.5·Σ(output-expected)² + 0.5·λ·L2Penalty(w).
func LossWithL2(output, expected []float64, w Weighted, lambda float64) (float64, error) {
	return loss.WithL2(output, expected, w, lambda)
}

// DropoutGeneralisation returns Σ(output-expected)² / (1-p) for p in [0, 1).
func DropoutGeneralisation(output, expected []float64, p float64) (float64, error) {
	return loss.DropoutGeneralisation(output, expected, p)
}
