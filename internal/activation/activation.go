// Package activation implements the scalar, vector and matrix activation
// functions used by the perceptron engine, their derivatives, and the
// MSE/RMSE error metrics.
package activation

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Errors returned by the vector functions.
var (
	ErrSizeMismatch       = errors.New("activation: vectors must be of the same length")
	ErrInvalidTemperature = errors.New("activation: softmax temperature must be positive")
	ErrEmptyInput         = errors.New("activation: empty input")
)

// Sigmoid computes σ(x) = 1 / (1 + exp(-x)).
func Sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// SigmoidDerivative computes σ'(x) = σ(x)·(1 - σ(x)).
//
// x is the pre-activation value, not the sigmoid output.
func SigmoidDerivative(x float64) float64 {
	s := Sigmoid(x)
	return s * (1 - s)
}

// SigmoidFromOutput returns a·(1 - a), the sigmoid derivative expressed in
// terms of an already activated value a = σ(x). Only valid when a really
// is a sigmoid output.
func SigmoidFromOutput(a float64) float64 {
	return a * (1 - a)
}

// ReLU computes max(0, x).
func ReLU(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

// ReLUDerivative returns 1 for x > 0 and 0 otherwise.
func ReLUDerivative(x float64) float64 {
	if x > 0 {
		return 1
	}
	return 0
}

// SeLU is the leaky variant used by the engine: x for x > 0, 0.1·x otherwise.
func SeLU(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0.1 * x
}

// SeLUDerivative returns 1 for x > 0 and 0.1 otherwise.
func SeLUDerivative(x float64) float64 {
	if x > 0 {
		return 1
	}
	return 0.1
}

// SigmoidVec applies Sigmoid element-wise and returns a new slice.
func SigmoidVec(x []float64) []float64 {
	return mapVec(Sigmoid, x)
}

// SigmoidDerivativeVec applies SigmoidDerivative element-wise.
func SigmoidDerivativeVec(x []float64) []float64 {
	return mapVec(SigmoidDerivative, x)
}

// SigmoidMat applies Sigmoid element-wise to m and returns a new matrix.
func SigmoidMat(m mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(r, c, nil)
	out.Apply(func(_, _ int, v float64) float64 { return Sigmoid(v) }, m)
	return out
}

// Softmax maps x to a probability distribution:
//
//	softmax(x)_i = exp(x_i/T) / Σ_j exp(x_j/T)
//
// The maximum is subtracted before exponentiating, which leaves the result
// unchanged but keeps exp from overflowing. A higher temperature T gives a
// more uniform distribution; T must be positive.
func Softmax(x []float64, temperature float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	if !(temperature > 0) {
		return nil, errors.Wrapf(ErrInvalidTemperature, "got %v", temperature)
	}

	out := make([]float64, len(x))
	copy(out, x)
	floats.Scale(1/temperature, out)
	floats.AddConst(-floats.Max(out), out)
	for i, v := range out {
		out[i] = math.Exp(v)
	}
	floats.Scale(1/floats.Sum(out), out)
	return out, nil
}

// SoftmaxDerivative returns the diagonal-style approximation
//
//	d_i = s_i·(1 - s_i) - Σ_{j≠i} s_j
//
// where s = Softmax(x, temperature). This is not the softmax Jacobian; it
// is the engine's fixed simplification and callers depend on its values.
func SoftmaxDerivative(x []float64, temperature float64) ([]float64, error) {
	s, err := Softmax(x, temperature)
	if err != nil {
		return nil, err
	}

	total := floats.Sum(s)
	out := make([]float64, len(s))
	for i, si := range s {
		out[i] = si*(1-si) - (total - si)
	}
	return out, nil
}

// SoftmaxRows applies Softmax independently to every row of m.
func SoftmaxRows(m mat.Matrix, temperature float64) (*mat.Dense, error) {
	return mapRows(m, temperature, Softmax)
}

// SoftmaxDerivativeRows applies SoftmaxDerivative independently to every row of m.
func SoftmaxDerivativeRows(m mat.Matrix, temperature float64) (*mat.Dense, error) {
	return mapRows(m, temperature, SoftmaxDerivative)
}

func mapRows(m mat.Matrix, temperature float64, fn func([]float64, float64) ([]float64, error)) (*mat.Dense, error) {
	r, c := m.Dims()
	out := mat.NewDense(r, c, nil)
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat.Row(row, i, m)
		v, err := fn(row, temperature)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}
		out.SetRow(i, v)
	}
	return out, nil
}

func mapVec(fn func(float64) float64, x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = fn(v)
	}
	return out
}
