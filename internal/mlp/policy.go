package mlp

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/born-ml/perceptron/internal/activation"
)

// Policy selects the backward strategy and weight update used by Step.
//
// The delta rule updates weights while propagating and never fills the
// gradient tensors. Every other policy computes gradients first and then
// consumes them, so the two families are never mixed on one pass.
type Policy int

// Supported update policies.
const (
	DeltaRule  Policy = iota // Backward
	Gradient                 // ComputeGradients + ApplyGradientUpdate
	GradientL1               // ComputeGradients + ApplyL1Update
	GradientL2               // ComputeGradients + ApplyL2Update
	Rprop                    // ComputeGradients + resilient propagation
)

var policyNames = map[Policy]string{
	DeltaRule:  "delta",
	Gradient:   "gradient",
	GradientL1: "l1",
	GradientL2: "l2",
	Rprop:      "rprop",
}

// String returns the policy name accepted by ParsePolicy.
func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy returns the policy with the given name.
func ParsePolicy(name string) (Policy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for p, n := range policyNames {
		if n == name {
			return p, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownPolicy, "%q", name)
}

// Step runs one forward pass on the current input and applies policy.
//
// It returns the MSE of the forward pass, measured before any weight
// changed.
func (n *Network) Step(policy Policy) (float64, error) {
	if _, ok := policyNames[policy]; !ok {
		return 0, errors.Wrapf(ErrUnknownPolicy, "%d", int(policy))
	}

	n.Forward()
	mse, err := activation.MSE(n.output, n.expected)
	if err != nil {
		return 0, err
	}

	switch policy {
	case DeltaRule:
		err = n.Backward()
	case Gradient:
		err = n.gradientStep(n.ApplyGradientUpdate)
	case GradientL1:
		err = n.gradientStep(n.ApplyL1Update)
	case GradientL2:
		err = n.gradientStep(n.ApplyL2Update)
	case Rprop:
		err = n.rpropStep()
	}
	return mse, err
}

func (n *Network) gradientStep(apply func() (float64, error)) error {
	if err := n.ComputeGradients(); err != nil {
		return err
	}
	_, err := apply()
	return err
}
