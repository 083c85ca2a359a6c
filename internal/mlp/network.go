// Package mlp implements a fully connected feed-forward network without
// bias terms, together with its forward pass, two backward strategies and
// the training loops built on them.
//
// The network shape is derived from its input and output counts alone:
//
//	layers = inputs + outputs
//	width  = inputs * outputs
//
// Every internal layer has the same width. Internal layers use the sigmoid
// activation; the output layer is linear.
//
// A Network is not safe for concurrent use. Forward, backward and update
// calls share the activation caches, so one caller must drive the whole
// forward -> backward -> reset cycle.
package mlp

import (
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/perceptron/internal/optim"
	"github.com/born-ml/perceptron/internal/tensor"
)

// Network is a bias-free multi-layer perceptron.
//
// Weight layout, with rows indexing the receiving unit:
//
//	inputToHidden:  width x inputs
//	hiddenToHidden: (layers-1) x width x width
//	hiddenToOutput: outputs x width
//
// Gradient tensors mirror the weights and are only filled by
// ComputeGradients. The delta-rule Backward never touches them.
type Network struct {
	in     int
	out    int
	layers int
	width  int

	epochBudget  int
	epochs       int // epochs run by the last training loop
	learningRate float64
	mse          float64
	trained      bool

	input    []float64
	output   []float64
	expected []float64

	inputToHidden  *mat.Dense
	hiddenToHidden *tensor.Stack
	hiddenToOutput *mat.Dense

	gradInputToHidden  *mat.Dense
	gradHiddenToHidden *tensor.Stack
	gradHiddenToOutput *mat.Dense

	// layers x width caches, overwritten by every forward pass.
	preActivations  *mat.Dense
	postActivations *mat.Dense

	forwarded      bool
	gradientsReady bool

	src       rand.Source
	init      Initializer
	logger    *slog.Logger
	rprop     *optim.Rprop
	rpropCfg  optim.RpropConfig
	threshold float64
}

// New creates a network for the given input and output counts and
// initialises its weights.
//
// Input, output and expected vectors start zeroed.
//
// Example:
//
//	net, err := mlp.New(2, 1, 1000, 0.1, mlp.WithSeed(42))
//	if err != nil {
//	    return err
//	}
//	net.SetInput([]float64{1, 0})
func New(inputs, outputs, epochs int, learningRate float64, opts ...Option) (*Network, error) {
	if inputs <= 0 || outputs <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "inputs=%d outputs=%d", inputs, outputs)
	}
	return newNetwork(
		make([]float64, inputs),
		make([]float64, outputs),
		make([]float64, outputs),
		epochs, learningRate, opts,
	)
}

// NewWithData creates a network sized from an initial input, expected and
// output triple.
//
// The slices are copied. expected and output must have the same length.
func NewWithData(input, expected, output []float64, epochs int, learningRate float64, opts ...Option) (*Network, error) {
	if len(expected) != len(output) {
		return nil, errors.Wrapf(ErrSizeMismatch, "expected has %d values, output has %d", len(expected), len(output))
	}
	if len(input) == 0 || len(output) == 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "inputs=%d outputs=%d", len(input), len(output))
	}
	return newNetwork(
		append([]float64(nil), input...),
		append([]float64(nil), expected...),
		append([]float64(nil), output...),
		epochs, learningRate, opts,
	)
}

func newNetwork(input, expected, output []float64, epochs int, learningRate float64, opts []Option) (*Network, error) {
	if epochs <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "epochs=%d", epochs)
	}
	if !(learningRate > 0) || math.IsInf(learningRate, 0) {
		return nil, errors.Wrapf(ErrInvalidLearningRate, "got %v", learningRate)
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	if options.src == nil {
		options.src = rand.NewSource(uint64(time.Now().UnixNano()))
	}
	if options.logger == nil {
		options.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	in, out := len(input), len(output)
	layers := in + out
	width := in * out

	n := &Network{
		in:           in,
		out:          out,
		layers:       layers,
		width:        width,
		epochBudget:  epochs,
		learningRate: learningRate,
		input:        input,
		output:       output,
		expected:     expected,

		inputToHidden:  mat.NewDense(width, in, nil),
		hiddenToHidden: tensor.NewStack(layers-1, width, width),
		hiddenToOutput: mat.NewDense(out, width, nil),

		gradInputToHidden:  mat.NewDense(width, in, nil),
		gradHiddenToHidden: tensor.NewStack(layers-1, width, width),
		gradHiddenToOutput: mat.NewDense(out, width, nil),

		preActivations:  mat.NewDense(layers, width, nil),
		postActivations: mat.NewDense(layers, width, nil),

		src:       options.src,
		init:      options.init,
		logger:    options.logger,
		rpropCfg:  options.rprop,
		threshold: options.threshold,
	}

	if err := n.initWeights(); err != nil {
		return nil, err
	}
	return n, nil
}

// Inputs returns the number of inputs.
func (n *Network) Inputs() int { return n.in }

// Outputs returns the number of outputs.
func (n *Network) Outputs() int { return n.out }

// Layers returns the number of internal layers (inputs + outputs).
func (n *Network) Layers() int { return n.layers }

// Width returns the number of units per internal layer (inputs * outputs).
func (n *Network) Width() int { return n.width }

// EpochBudget returns the maximum number of epochs a training loop runs.
func (n *Network) EpochBudget() int { return n.epochBudget }

// Epochs returns the number of epochs the last training loop ran.
func (n *Network) Epochs() int { return n.epochs }

// LearningRate returns the learning rate.
func (n *Network) LearningRate() float64 { return n.learningRate }

// MSE returns the error recorded by the last training loop.
func (n *Network) MSE() float64 { return n.mse }

// Trained reports whether a training loop reached its error threshold.
func (n *Network) Trained() bool { return n.trained }

// Input returns a copy of the current input vector.
func (n *Network) Input() []float64 { return append([]float64(nil), n.input...) }

// Output returns a copy of the output vector of the last forward pass.
func (n *Network) Output() []float64 { return append([]float64(nil), n.output...) }

// Expected returns a copy of the current target vector.
func (n *Network) Expected() []float64 { return append([]float64(nil), n.expected...) }

// SetInput replaces the input vector.
func (n *Network) SetInput(input []float64) error {
	if len(input) != n.in {
		return errors.Wrapf(ErrSizeMismatch, "input has %d values, network takes %d", len(input), n.in)
	}
	copy(n.input, input)
	return nil
}

// SetExpected replaces the target vector.
func (n *Network) SetExpected(expected []float64) error {
	if len(expected) != n.out {
		return errors.Wrapf(ErrSizeMismatch, "expected has %d values, network produces %d", len(expected), n.out)
	}
	copy(n.expected, expected)
	return nil
}

// InputToHidden returns the width x inputs input weight matrix.
//
// The matrix is owned by the network; writes through it change the weights.
func (n *Network) InputToHidden() *mat.Dense { return n.inputToHidden }

// HiddenToHidden returns the width x width weight matrix of connection l.
func (n *Network) HiddenToHidden(l int) *mat.Dense { return n.hiddenToHidden.Layer(l) }

// HiddenToOutput returns the outputs x width output weight matrix.
func (n *Network) HiddenToOutput() *mat.Dense { return n.hiddenToOutput }

// HiddenStack returns the stacked inter-hidden weights.
func (n *Network) HiddenStack() *tensor.Stack { return n.hiddenToHidden }

// GradInputToHidden returns the gradient of the input weights.
func (n *Network) GradInputToHidden() *mat.Dense { return n.gradInputToHidden }

// GradHiddenToHidden returns the gradient of inter-hidden connection l.
func (n *Network) GradHiddenToHidden(l int) *mat.Dense { return n.gradHiddenToHidden.Layer(l) }

// GradHiddenToOutput returns the gradient of the output weights.
func (n *Network) GradHiddenToOutput() *mat.Dense { return n.gradHiddenToOutput }

// PreActivations returns the layers x width weighted-sum cache.
func (n *Network) PreActivations() *mat.Dense { return n.preActivations }

// PostActivations returns the layers x width sigmoid cache.
func (n *Network) PostActivations() *mat.Dense { return n.postActivations }

// WeightTensors returns every weight matrix: the inter-hidden connections
// in order, then the input weights, then the output weights.
func (n *Network) WeightTensors() []*mat.Dense {
	return append(n.hiddenToHidden.Layers(), n.inputToHidden, n.hiddenToOutput)
}

// GradientTensors returns the gradient matrices in WeightTensors order.
func (n *Network) GradientTensors() []*mat.Dense {
	return append(n.gradHiddenToHidden.Layers(), n.gradInputToHidden, n.gradHiddenToOutput)
}

// FillWeights sets every weight to v.
func (n *Network) FillWeights(v float64) {
	n.hiddenToHidden.Fill(v)
	tensor.Fill(n.inputToHidden, v)
	tensor.Fill(n.hiddenToOutput, v)
}

// Reset zeroes the activation caches and the output vector.
//
// A forward pass is required again before the next backward call.
func (n *Network) Reset() {
	n.preActivations.Zero()
	n.postActivations.Zero()
	clear(n.output)
	n.forwarded = false
	n.gradientsReady = false
}
