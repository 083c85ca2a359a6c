package mlp

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/perceptron/internal/optim"
)

// RunRprop trains on dataset with resilient propagation.
//
// Each row is used as the input against the current expected vector. Only
// the output weights and the input weights are updated; inter-hidden
// weights keep their values. Step-size state starts fresh on every call.
// Training stops when the epoch-mean MSE drops below the threshold
// (default 0.01) or the epoch budget is spent.
func (n *Network) RunRprop(dataset [][]float64) (Result, error) {
	if len(dataset) == 0 {
		return Result{}, errors.Wrap(ErrEmptyDataset, "rprop")
	}
	n.rprop = optim.NewRprop(n.rpropCfg)

	epoch := 0
	for epoch < n.epochBudget {
		var total float64
		for _, row := range dataset {
			if err := n.SetInput(row); err != nil {
				return n.result(), err
			}
			mse, err := n.Step(Rprop)
			if err != nil {
				return n.result(), err
			}
			total += mse
		}
		epoch++

		if err := n.record(epoch, total/float64(len(dataset)), Rprop); err != nil {
			n.epochs = epoch
			return n.result(), err
		}
		if n.mse < n.threshold {
			n.converged(Rprop)
			break
		}
	}

	n.epochs = epoch
	return n.result(), nil
}

// rpropStep computes gradients and feeds the output and input weight
// gradients to the network's Rprop state.
func (n *Network) rpropStep() error {
	if err := n.ComputeGradients(); err != nil {
		return err
	}
	if n.rprop == nil {
		n.rprop = optim.NewRprop(n.rpropCfg)
	}

	err := n.rprop.Step(
		[]*mat.Dense{n.hiddenToOutput, n.inputToHidden},
		[]*mat.Dense{n.gradHiddenToOutput, n.gradInputToHidden},
	)
	n.gradientsReady = false
	return err
}

// RpropStepSizes returns a copy of the current Rprop step sizes of the
// output weights and the input weights. Both are nil before the first
// Rprop update.
func (n *Network) RpropStepSizes() (output, input *mat.Dense) {
	if n.rprop == nil {
		return nil, nil
	}
	return n.rprop.StepSizes(n.hiddenToOutput), n.rprop.StepSizes(n.inputToHidden)
}
