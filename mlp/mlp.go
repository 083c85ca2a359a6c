// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package mlp

import (
	"log/slog"

	"golang.org/x/exp/rand"

	"github.com/born-ml/perceptron/internal/mlp"
	"github.com/born-ml/perceptron/internal/optim"
)

// Network is a bias-free multi-layer perceptron.
type Network = mlp.Network

// Sample is one input with its target.
type Sample = mlp.Sample

// Result summarises a training loop.
type Result = mlp.Result

// Option configures a Network.
type Option = mlp.Option

// Policy selects the backward strategy and weight update.
type Policy = mlp.Policy

// Initializer selects how weights are drawn at construction.
type Initializer = mlp.Initializer

// Update policies.
const (
	DeltaRule  = mlp.DeltaRule
	Gradient   = mlp.Gradient
	GradientL1 = mlp.GradientL1
	GradientL2 = mlp.GradientL2
	Rprop      = mlp.Rprop
)

// Initialisation schemes.
const (
	InitScaledNormal = mlp.InitScaledNormal
	InitUniform      = mlp.InitUniform
)

// Training thresholds.
const (
	TrainThreshold       = mlp.TrainThreshold
	DatasetStopThreshold = mlp.DatasetStopThreshold
	DefaultThreshold     = mlp.DefaultThreshold
)

// Errors returned by Network operations.
var (
	ErrInvalidSize         = mlp.ErrInvalidSize
	ErrInvalidLearningRate = mlp.ErrInvalidLearningRate
	ErrSizeMismatch        = mlp.ErrSizeMismatch
	ErrNotForwarded        = mlp.ErrNotForwarded
	ErrNoGradients         = mlp.ErrNoGradients
	ErrDiverged            = mlp.ErrDiverged
	ErrEmptyDataset        = mlp.ErrEmptyDataset
	ErrUnknownPolicy       = mlp.ErrUnknownPolicy
	ErrUnknownInitializer  = mlp.ErrUnknownInitializer
)

// New creates a network for the given input and output counts.
//
// Example:
//
//	net, err := mlp.New(2, 1, 1000, 0.1, mlp.WithSeed(1))
func New(inputs, outputs, epochs int, learningRate float64, opts ...Option) (*Network, error) {
	return mlp.New(inputs, outputs, epochs, learningRate, opts...)
}

// NewWithData creates a network sized from an input, expected and output
// triple. expected and output must have the same length.
func NewWithData(input, expected, output []float64, epochs int, learningRate float64, opts ...Option) (*Network, error) {
	return mlp.NewWithData(input, expected, output, epochs, learningRate, opts...)
}

// ParsePolicy returns the policy with the given name
// (delta, gradient, l1, l2, rprop).
func ParsePolicy(name string) (Policy, error) {
	return mlp.ParsePolicy(name)
}

// ParseInitializer returns the initializer with the given name
// (scaled-normal, uniform).
func ParseInitializer(name string) (Initializer, error) {
	return mlp.ParseInitializer(name)
}

// WithSeed seeds the network's own random source.
func WithSeed(seed uint64) Option {
	return mlp.WithSeed(seed)
}

// WithRandSource sets the random source used for weight initialisation.
func WithRandSource(src rand.Source) Option {
	return mlp.WithRandSource(src)
}

// WithInitializer selects the weight initialisation scheme.
func WithInitializer(scheme Initializer) Option {
	return mlp.WithInitializer(scheme)
}

// WithLogger sets the logger training loops report to.
func WithLogger(logger *slog.Logger) Option {
	return mlp.WithLogger(logger)
}

// WithRpropConfig overrides the Rprop constants.
func WithRpropConfig(config optim.RpropConfig) Option {
	return mlp.WithRpropConfig(config)
}

// WithThreshold sets the epoch-mean MSE at which RunRprop and Fit stop.
func WithThreshold(threshold float64) Option {
	return mlp.WithThreshold(threshold)
}
