package mlp

import (
	"math"

	"github.com/pkg/errors"

	"github.com/born-ml/perceptron/internal/activation"
	"github.com/born-ml/perceptron/internal/optim"
)

// Stop thresholds of the delta-rule loops.
const (
	// TrainThreshold is the MSE below which Train stops.
	TrainThreshold = 1e-6

	// DatasetStopThreshold is the epoch-mean MSE above which TrainDataset
	// stops. The comparison is "greater than", so TrainDataset usually
	// stops after its first epoch.
	DatasetStopThreshold = 1e-7
)

// Result summarises a training loop.
type Result struct {
	Epochs  int     // Epochs run
	MSE     float64 // Last recorded error
	Trained bool    // Whether the error threshold was reached
}

// Sample is one input with its target.
type Sample struct {
	Input    []float64
	Expected []float64
}

// Train runs the delta rule on the current input until the MSE drops below
// TrainThreshold or the epoch budget is spent.
//
// Each epoch is Forward, MSE check, Backward. A final Forward leaves the
// output of the trained weights in place.
func (n *Network) Train() (Result, error) {
	epoch := 0
	for epoch < n.epochBudget {
		n.Forward()
		mse, err := activation.MSE(n.output, n.expected)
		if err != nil {
			return n.result(), err
		}
		if err := n.record(epoch, mse, DeltaRule); err != nil {
			n.epochs = epoch
			return n.result(), err
		}
		if mse < TrainThreshold {
			n.converged(DeltaRule)
			break
		}
		if err := n.Backward(); err != nil {
			return n.result(), err
		}
		epoch++
	}

	n.epochs = epoch
	n.Forward()
	return n.result(), nil
}

// TrainDataset runs the delta rule over every row of inputs per epoch,
// against the current expected vector.
//
// The loop stops once the epoch-mean MSE exceeds DatasetStopThreshold, or
// when the epoch budget is spent. It never marks the network as trained.
func (n *Network) TrainDataset(inputs [][]float64) (Result, error) {
	if len(inputs) == 0 {
		return Result{}, errors.Wrap(ErrEmptyDataset, "train dataset")
	}

	epoch := 0
	for epoch < n.epochBudget {
		var total float64
		for _, row := range inputs {
			if err := n.SetInput(row); err != nil {
				return n.result(), err
			}
			mse, err := n.Step(DeltaRule)
			if err != nil {
				return n.result(), err
			}
			total += mse
		}
		epoch++

		mean := total / float64(len(inputs))
		if err := n.record(epoch, mean, DeltaRule); err != nil {
			n.epochs = epoch
			return n.result(), err
		}
		if mean > DatasetStopThreshold {
			break
		}
	}

	n.epochs = epoch
	return n.result(), nil
}

// Fit trains on samples with the given policy until the epoch-mean MSE
// drops below the threshold (default 0.01) or the epoch budget is spent.
//
// Unlike TrainDataset, every sample carries its own target.
//
// Example:
//
//	result, err := net.Fit(dataset.XOR(), mlp.GradientL2)
//	if errors.Is(err, mlp.ErrDiverged) {
//	    // lower the learning rate
//	}
func (n *Network) Fit(samples []Sample, policy Policy) (Result, error) {
	if len(samples) == 0 {
		return Result{}, errors.Wrap(ErrEmptyDataset, "fit")
	}
	if _, ok := policyNames[policy]; !ok {
		return Result{}, errors.Wrapf(ErrUnknownPolicy, "%d", int(policy))
	}
	if policy == Rprop {
		n.rprop = optim.NewRprop(n.rpropCfg)
	}

	epoch := 0
	for epoch < n.epochBudget {
		var total float64
		for i, s := range samples {
			if err := n.setSample(s); err != nil {
				return n.result(), errors.Wrapf(err, "sample %d", i)
			}
			mse, err := n.Step(policy)
			if err != nil {
				return n.result(), err
			}
			total += mse
		}
		epoch++

		if err := n.record(epoch, total/float64(len(samples)), policy); err != nil {
			n.epochs = epoch
			return n.result(), err
		}
		if n.mse < n.threshold {
			n.converged(policy)
			break
		}
	}

	n.epochs = epoch
	return n.result(), nil
}

// Evaluate runs a forward pass on input and reports the output and its
// MSE against expected. Weights are not changed, but input, expected and
// the caches are overwritten.
func (n *Network) Evaluate(input, expected []float64) ([]float64, float64, error) {
	if err := n.setSample(Sample{Input: input, Expected: expected}); err != nil {
		return nil, 0, err
	}

	n.Forward()
	mse, err := activation.MSE(n.output, n.expected)
	if err != nil {
		return nil, 0, err
	}
	return n.Output(), mse, nil
}

func (n *Network) setSample(s Sample) error {
	if err := n.SetInput(s.Input); err != nil {
		return err
	}
	return n.SetExpected(s.Expected)
}

// record stores mse as the network error and fails if it is not finite.
func (n *Network) record(epoch int, mse float64, policy Policy) error {
	n.mse = mse
	if math.IsNaN(mse) || math.IsInf(mse, 0) {
		n.logger.Warn("training diverged", "epoch", epoch, "mse", mse, "policy", policy.String())
		return errors.Wrapf(ErrDiverged, "epoch %d: mse %v", epoch, mse)
	}
	n.logger.Debug("epoch", "epoch", epoch, "mse", mse, "policy", policy.String())
	return nil
}

func (n *Network) converged(policy Policy) {
	n.trained = true
	n.logger.Info("training converged", "mse", n.mse, "policy", policy.String())
}

func (n *Network) result() Result {
	return Result{
		Epochs:  n.epochs,
		MSE:     n.mse,
		Trained: n.trained,
	}
}
