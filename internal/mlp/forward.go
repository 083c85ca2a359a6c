package mlp

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/perceptron/internal/activation"
)

// Forward runs one inference pass over the current input.
//
//	pre[0]  = inputToHidden · input
//	pre[l]  = hiddenToHidden[l-1] · post[l-1]     for l in [1, layers-2]
//	post[l] = sigmoid(pre[l])
//	output  = hiddenToOutput · post[layers-2]
//
// The output layer is linear. Cache row layers-1 is never written.
func (n *Network) Forward() {
	last := n.layers - 2

	n.affine(n.preRow(0), n.inputToHidden, n.input)
	n.activate(0)

	for l := 1; l <= last; l++ {
		n.affine(n.preRow(l), n.hiddenToHidden.Layer(l-1), n.postRow(l-1))
		n.activate(l)
	}

	n.affine(n.output, n.hiddenToOutput, n.postRow(last))

	n.forwarded = true
	n.gradientsReady = false
}

// affine writes w·x into dst.
func (n *Network) affine(dst []float64, w *mat.Dense, x []float64) {
	out := mat.NewVecDense(len(dst), dst)
	out.MulVec(w, mat.NewVecDense(len(x), x))
}

func (n *Network) activate(l int) {
	post := n.postRow(l)
	for i, z := range n.preRow(l) {
		post[i] = activation.Sigmoid(z)
	}
}

func (n *Network) preRow(l int) []float64 {
	return n.preActivations.RawRowView(l)
}

func (n *Network) postRow(l int) []float64 {
	return n.postActivations.RawRowView(l)
}
