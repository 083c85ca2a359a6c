// Package loss implements the regularisation penalties and penalised
// losses reported while training a perceptron.
package loss

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/perceptron/internal/tensor"
)

// Errors returned by the loss functions.
var (
	ErrSizeMismatch   = errors.New("loss: output and expected sizes differ")
	ErrInvalidDropout = errors.New("loss: dropout probability must be in [0, 1)")
)

// Lambda is the fixed regularisation strength used by the L1/L2 updates.
const Lambda = 0.01

// Weighted is anything that can enumerate its weight tensors.
//
// The returned matrices are read only; penalties never modify them.
type Weighted interface {
	WeightTensors() []*mat.Dense
}

// L1Penalty returns Σ|w| over every weight tensor of w.
func L1Penalty(w Weighted) float64 {
	var penalty float64
	for _, m := range w.WeightTensors() {
		penalty += tensor.SumAbs(m)
	}
	return penalty
}

// L2Penalty returns Σw² over every weight tensor of w.
func L2Penalty(w Weighted) float64 {
	var penalty float64
	for _, m := range w.WeightTensors() {
		penalty += tensor.SumSquares(m)
	}
	return penalty
}

// WithL1 returns Σ|output_i - expected_i| + 0.5·λ·L1Penalty(w).
func WithL1(output, expected []float64, w Weighted, lambda float64) (float64, error) {
	if err := checkSizes(output, expected); err != nil {
		return 0, err
	}
	return floats.Distance(output, expected, 1) + 0.5*lambda*L1Penalty(w), nil
}

// WithL2 returns 0.5·Σ(output_i - expected_i)² + 0.5·λ·L2Penalty(w).
func WithL2(output, expected []float64, w Weighted, lambda float64) (float64, error) {
	if err := checkSizes(output, expected); err != nil {
		return 0, err
	}
	return 0.5*sumSquaredError(output, expected) + 0.5*lambda*L2Penalty(w), nil
}

// DropoutGeneralisation returns Σ(output_i - expected_i)² / (1 - p).
//
// p is the dropout probability. p = 1 would divide by zero, so any p
// outside [0, 1) is rejected with ErrInvalidDropout.
func DropoutGeneralisation(output, expected []float64, p float64) (float64, error) {
	if err := checkSizes(output, expected); err != nil {
		return 0, err
	}
	if !(p >= 0 && p < 1) {
		return 0, errors.Wrapf(ErrInvalidDropout, "got %v", p)
	}
	return sumSquaredError(output, expected) / (1 - p), nil
}

func sumSquaredError(output, expected []float64) float64 {
	diff := make([]float64, len(output))
	floats.SubTo(diff, output, expected)
	return floats.Dot(diff, diff)
}

func checkSizes(output, expected []float64) error {
	if len(output) != len(expected) {
		return errors.Wrapf(ErrSizeMismatch, "output has %d values, expected has %d", len(output), len(expected))
	}
	return nil
}
