// Package optim implements the weight-update policies that consume stored
// gradients.
//
// This package provides:
//   - Optimizer interface: Base interface for all update policies
//   - SGD: plain gradient descent with optional L1 or L2 penalty
//   - Rprop: resilient propagation with per-weight adaptive step sizes
//
// Parameters and gradients are gonum matrices; a gradient must have the
// same dimensions as the parameter it updates.
//
// Example usage:
//
//	optimizer := optim.NewSGD(optim.SGDConfig{
//	    LR:      0.1,
//	    Penalty: optim.PenaltyL2,
//	})
//
//	// after the network has filled its gradient tensors
//	if err := optimizer.Step(net.WeightTensors(), net.GradientTensors()); err != nil {
//	    return err
//	}
package optim

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/perceptron/internal/tensor"
)

// ErrShapeMismatch is returned when parameters and gradients disagree in
// count or dimensions.
var ErrShapeMismatch = errors.New("optim: parameter and gradient shapes differ")

// Optimizer is the base interface for all weight-update policies.
//
// Optimizers update parameters in place from gradients of the loss with
// respect to those parameters, so a step moves against the gradient.
type Optimizer interface {
	// Step applies one update to every parameter.
	//
	// params[i] is updated from grads[i]. Both slices must have the same
	// length and pairwise identical dimensions.
	Step(params, grads []*mat.Dense) error

	// GetLR returns the current learning rate.
	//
	// Policies without a learning rate (Rprop) return 0.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

// checkPairs verifies that params and grads line up one to one.
func checkPairs(params, grads []*mat.Dense) error {
	if len(params) != len(grads) {
		return errors.Wrapf(ErrShapeMismatch, "%d parameters, %d gradients", len(params), len(grads))
	}
	for i := range params {
		if !tensor.SameDims(params[i], grads[i]) {
			return errors.Wrapf(ErrShapeMismatch, "parameter %d is %v, gradient is %v",
				i, tensor.ShapeOf(params[i]), tensor.ShapeOf(grads[i]))
		}
	}
	return nil
}

// sign returns -1, 0 or +1.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
