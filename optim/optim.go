// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/perceptron/internal/optim"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// Config represents the base configuration for optimizers.
type Config = optim.Config

// ErrShapeMismatch is returned when parameters and gradients disagree.
var ErrShapeMismatch = optim.ErrShapeMismatch

// SGD (Stochastic Gradient Descent)

// SGD represents gradient descent with an optional penalty.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig = optim.SGDConfig

// Penalty selects the regularisation term of an SGD step.
type Penalty = optim.Penalty

// Supported penalties.
const (
	PenaltyNone = optim.PenaltyNone
	PenaltyL1   = optim.PenaltyL1
	PenaltyL2   = optim.PenaltyL2
)

// DefaultLambda is the regularisation strength used when SGDConfig.Lambda is 0.
const DefaultLambda = optim.DefaultLambda

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	optimizer := optim.NewSGD(optim.SGDConfig{
//	    LR:      0.01,
//	    Penalty: optim.PenaltyL1,
//	})
func NewSGD(config SGDConfig) *SGD {
	return optim.NewSGD(config)
}

// Rprop (Resilient Propagation)

// Rprop represents the resilient propagation optimizer.
type Rprop = optim.Rprop

// RpropConfig contains configuration for Rprop optimizer.
type RpropConfig = optim.RpropConfig

// DefaultRpropConfig returns the standard Rprop constants.
func DefaultRpropConfig() RpropConfig {
	return optim.DefaultRpropConfig()
}

// NewRprop creates a new Rprop optimizer.
//
// Example:
//
//	optimizer := optim.NewRprop(optim.DefaultRpropConfig())
func NewRprop(config RpropConfig) *Rprop {
	return optim.NewRprop(config)
}
