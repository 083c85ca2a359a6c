package optim

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Penalty selects the regularisation term folded into an SGD step.
type Penalty int

// Supported penalties.
const (
	PenaltyNone Penalty = iota // weight -= lr * grad
	PenaltyL1                  // weight -= lr * (±λ + grad)
	PenaltyL2                  // weight -= lr * (λ*weight + grad)
)

// String returns the penalty name.
func (p Penalty) String() string {
	switch p {
	case PenaltyNone:
		return "none"
	case PenaltyL1:
		return "l1"
	case PenaltyL2:
		return "l2"
	default:
		return fmt.Sprintf("Penalty(%d)", int(p))
	}
}

// DefaultLambda is the regularisation strength used when SGDConfig.Lambda is 0.
const DefaultLambda = 0.01

// SGD implements gradient descent with an optional L1 or L2 penalty.
//
// Update rules:
//
//	none: w = w - lr * g
//	l1:   w = w - lr * (λ + g)    if w > 0
//	      w = w - lr * (-λ + g)   otherwise
//	l2:   w = w - lr * (λ*w + g)
//
// The L1 rule treats a zero weight as negative, so it is pushed up by λ
// rather than left alone.
//
// Example:
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.1, Penalty: optim.PenaltyL1})
//	err := sgd.Step(params, grads)
type SGD struct {
	lr      float64
	penalty Penalty
	lambda  float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR      float64 // Learning rate (default: 0.01)
	Penalty Penalty // Regularisation term (default: none)
	Lambda  float64 // Regularisation strength (default: 0.01)
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	if config.Lambda == 0 {
		config.Lambda = DefaultLambda
	}

	return &SGD{
		lr:      config.LR,
		penalty: config.Penalty,
		lambda:  config.Lambda,
	}
}

// Step applies one penalised descent update to every parameter.
func (s *SGD) Step(params, grads []*mat.Dense) error {
	if err := checkPairs(params, grads); err != nil {
		return err
	}

	for i, param := range params {
		grad := grads[i]
		param.Apply(func(r, c int, w float64) float64 {
			return w - s.lr*(s.regularizer(w)+grad.At(r, c))
		}, param)
	}
	return nil
}

// regularizer returns the penalty's contribution to the update for weight w.
func (s *SGD) regularizer(w float64) float64 {
	switch s.penalty {
	case PenaltyL1:
		if w > 0 {
			return s.lambda
		}
		return -s.lambda
	case PenaltyL2:
		return s.lambda * w
	default:
		return 0
	}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

// Penalty returns the configured penalty.
func (s *SGD) Penalty() Penalty {
	return s.penalty
}

// Lambda returns the configured regularisation strength.
func (s *SGD) Lambda() float64 {
	return s.lambda
}
