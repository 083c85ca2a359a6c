package mlp

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/perceptron/internal/activation"
)

// Backward runs the delta rule: it computes the error signal and updates
// every weight in the same pass, then calls Reset.
//
//	error          = expected - output
//	hiddenToOutput += lr * error ⊗ post[layers-2]
//
// The hidden delta starts at (hiddenToOutputᵀ·error) ⊙ σ'(pre[layers-2]).
// Walking l from layers-2 down to 0, connection l receives
// lr * post[l] ⊗ delta and the delta is carried back through
// hiddenToHidden[l]ᵀ and σ'(pre[l]). All inter-hidden deltas use the
// weights as they were before the call. Input weights finally receive
// lr * delta[i] on every column.
//
// Gradient tensors are left untouched. Backward returns ErrNotForwarded
// unless Forward ran since the last Reset.
func (n *Network) Backward() error {
	if !n.forwarded {
		return errors.Wrap(ErrNotForwarded, "delta rule")
	}
	last := n.layers - 2

	errSignal := make([]float64, n.out)
	floats.SubTo(errSignal, n.expected, n.output)
	e := mat.NewVecDense(n.out, errSignal)

	var outputDelta mat.Dense
	outputDelta.Outer(1, e, mat.NewVecDense(n.width, n.postRow(last)))

	delta := backpropagate(e, n.hiddenToOutput, n.preRow(last), activation.SigmoidDerivative)
	outputDelta.Scale(n.learningRate, &outputDelta)
	n.hiddenToOutput.Add(n.hiddenToOutput, &outputDelta)

	hiddenDeltas := make([]mat.Dense, n.hiddenToHidden.Depth())
	for l := last; l >= 0; l-- {
		hiddenDeltas[l].Outer(1, mat.NewVecDense(n.width, n.postRow(l)), delta)
		delta = backpropagate(delta, n.hiddenToHidden.Layer(l), n.preRow(l), activation.SigmoidDerivative)
	}
	for l := range hiddenDeltas {
		hiddenDeltas[l].Scale(n.learningRate, &hiddenDeltas[l])
		w := n.hiddenToHidden.Layer(l)
		w.Add(w, &hiddenDeltas[l])
	}

	for i := 0; i < n.width; i++ {
		floats.AddConst(n.learningRate*delta.AtVec(i), n.inputToHidden.RawRowView(i))
	}

	n.Reset()
	return nil
}

// backpropagate carries delta back through w: (wᵀ·delta)[j] * deriv(cache[j]).
func backpropagate(delta *mat.VecDense, w *mat.Dense, cache []float64, deriv func(float64) float64) *mat.VecDense {
	_, cols := w.Dims()
	next := mat.NewVecDense(cols, nil)
	next.MulVec(w.T(), delta)
	for j := 0; j < cols; j++ {
		next.SetVec(j, next.AtVec(j)*deriv(cache[j]))
	}
	return next
}
