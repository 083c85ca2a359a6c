package mlp

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/perceptron/internal/activation"
	"github.com/born-ml/perceptron/internal/loss"
	"github.com/born-ml/perceptron/internal/optim"
)

// ComputeGradients fills every gradient tensor from the last forward pass
// without modifying any weight.
//
// The chain mirrors Backward with the error taken as output - expected, so
// every gradient points uphill of 0.5·Σ(output-expected)². Derivatives are
// read from the cached sigmoid outputs as a·(1-a). The input gradient is
// delta[i]·input[j].
//
// Gradients stay valid until the next Forward, Reset or update call.
func (n *Network) ComputeGradients() error {
	if !n.forwarded {
		return errors.Wrap(ErrNotForwarded, "compute gradients")
	}
	last := n.layers - 2

	errSignal := make([]float64, n.out)
	floats.SubTo(errSignal, n.output, n.expected)
	e := mat.NewVecDense(n.out, errSignal)

	n.gradHiddenToOutput.Outer(1, e, mat.NewVecDense(n.width, n.postRow(last)))

	delta := backpropagate(e, n.hiddenToOutput, n.postRow(last), activation.SigmoidFromOutput)
	for l := last; l >= 0; l-- {
		n.gradHiddenToHidden.Layer(l).Outer(1, mat.NewVecDense(n.width, n.postRow(l)), delta)
		delta = backpropagate(delta, n.hiddenToHidden.Layer(l), n.postRow(l), activation.SigmoidFromOutput)
	}

	n.gradInputToHidden.Outer(1, delta, mat.NewVecDense(n.in, n.input))

	n.gradientsReady = true
	return nil
}

// ApplyGradientUpdate applies weight -= lr * gradient to every weight and
// returns 0.5·Σ(output-expected)².
func (n *Network) ApplyGradientUpdate() (float64, error) {
	return n.applyUpdate(optim.PenaltyNone)
}

// ApplyL1Update applies weight -= lr * (±λ + gradient) with λ = loss.Lambda,
// taking +λ for positive weights and -λ otherwise.
//
// It returns Σ|output-expected| + 0.5·λ·L1Penalty, measured on the updated
// weights.
func (n *Network) ApplyL1Update() (float64, error) {
	return n.applyUpdate(optim.PenaltyL1)
}

// ApplyL2Update applies weight -= lr * (λ·weight + gradient) with
// λ = loss.Lambda.
//
// It returns 0.5·Σ(output-expected)² + 0.5·λ·L2Penalty, measured on the
// updated weights.
func (n *Network) ApplyL2Update() (float64, error) {
	return n.applyUpdate(optim.PenaltyL2)
}

func (n *Network) applyUpdate(penalty optim.Penalty) (float64, error) {
	if !n.gradientsReady {
		return 0, errors.Wrapf(ErrNoGradients, "%s update", penalty)
	}

	sgd := optim.NewSGD(optim.SGDConfig{
		LR:      n.learningRate,
		Penalty: penalty,
		Lambda:  loss.Lambda,
	})
	if err := sgd.Step(n.WeightTensors(), n.GradientTensors()); err != nil {
		return 0, err
	}
	n.gradientsReady = false

	var (
		l   float64
		err error
	)
	switch penalty {
	case optim.PenaltyL1:
		l, err = loss.WithL1(n.output, n.expected, n, loss.Lambda)
	case optim.PenaltyL2:
		l, err = loss.WithL2(n.output, n.expected, n, loss.Lambda)
	default:
		l, err = loss.WithL2(n.output, n.expected, n, 0)
	}
	if err != nil {
		return 0, err
	}

	n.logger.Debug("weights updated", "penalty", penalty.String(), "loss", l)
	return l, nil
}

// L1Penalty returns Σ|w| over every weight tensor.
func (n *Network) L1Penalty() float64 {
	return loss.L1Penalty(n)
}

// L2Penalty returns Σw² over every weight tensor.
func (n *Network) L2Penalty() float64 {
	return loss.L2Penalty(n)
}
