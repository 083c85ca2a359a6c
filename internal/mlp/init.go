package mlp

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Initializer selects how weights are drawn at construction.
type Initializer int

// Supported initialisation schemes.
const (
	// InitScaledNormal draws from N(0,1) and scales by position:
	//
	//	inputToHidden[i][j]     = N(0,1) * (j+1)
	//	hiddenToHidden[l][j][k] = (l + j + N(0,1)) / (k+1)
	//	hiddenToOutput[i][j]    = N(0,1) * (j+1)
	InitScaledNormal Initializer = iota

	// InitUniform draws every weight from U(-1/√fanIn, 1/√fanIn), where
	// fanIn is the number of columns of the weight matrix.
	InitUniform
)

// String returns the initializer name.
func (i Initializer) String() string {
	switch i {
	case InitScaledNormal:
		return "scaled-normal"
	case InitUniform:
		return "uniform"
	default:
		return fmt.Sprintf("Initializer(%d)", int(i))
	}
}

// ParseInitializer returns the initializer with the given name.
func ParseInitializer(name string) (Initializer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "scaled-normal", "normal", "":
		return InitScaledNormal, nil
	case "uniform":
		return InitUniform, nil
	default:
		return 0, errors.Wrapf(ErrUnknownInitializer, "%q", name)
	}
}

// initWeights fills every weight tensor from the network's random source.
//
// Matrices are filled in row-major order, so the result only depends on
// the sizes, the scheme and the source state.
func (n *Network) initWeights() error {
	switch n.init {
	case InitScaledNormal:
		normal := distuv.Normal{Mu: 0, Sigma: 1, Src: n.src}
		scaleByColumn := func(_, j int, _ float64) float64 {
			return normal.Rand() * float64(j+1)
		}

		n.inputToHidden.Apply(scaleByColumn, n.inputToHidden)
		for l, w := range n.hiddenToHidden.Layers() {
			w.Apply(func(j, k int, _ float64) float64 {
				return (float64(l+j) + normal.Rand()) / float64(k+1)
			}, w)
		}
		n.hiddenToOutput.Apply(scaleByColumn, n.hiddenToOutput)

	case InitUniform:
		for _, w := range n.WeightTensors() {
			n.fillUniform(w)
		}

	default:
		return errors.Wrapf(ErrUnknownInitializer, "%d", int(n.init))
	}
	return nil
}

func (n *Network) fillUniform(w *mat.Dense) {
	_, fanIn := w.Dims()
	limit := 1 / math.Sqrt(float64(fanIn))
	uniform := distuv.Uniform{Min: -limit, Max: limit, Src: n.src}

	w.Apply(func(_, _ int, _ float64) float64 {
		return uniform.Rand()
	}, w)
}
