package optim_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/perceptron/internal/optim"
)

func scalar(v float64) *mat.Dense {
	return mat.NewDense(1, 1, []float64{v})
}

// TestSGD_SimpleUpdate tests SGD without a penalty.
func TestSGD_SimpleUpdate(t *testing.T) {
	x := scalar(2.0)
	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.1})

	require.NoError(t, sgd.Step([]*mat.Dense{x}, []*mat.Dense{scalar(1.0)}))

	// x_new = x_old - lr * grad = 2.0 - 0.1 * 1.0
	assert.InDelta(t, 1.9, x.At(0, 0), 1e-12)
}

// TestSGD_Defaults tests zero-valued config fields.
func TestSGD_Defaults(t *testing.T) {
	sgd := optim.NewSGD(optim.SGDConfig{})

	assert.Equal(t, 0.01, sgd.GetLR())
	assert.Equal(t, optim.DefaultLambda, sgd.Lambda())
	assert.Equal(t, optim.PenaltyNone, sgd.Penalty())

	sgd.SetLR(0.5)
	assert.Equal(t, 0.5, sgd.GetLR())
}

func TestSGD_L1(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		grad   float64
		want   float64
	}{
		// w - lr * (λ + g)
		{"positive weight", 0.5, 0.2, 0.5 - 0.1*(0.01+0.2)},
		// w - lr * (-λ + g)
		{"negative weight", -0.5, 0.2, -0.5 - 0.1*(-0.01+0.2)},
		// zero takes the non-positive branch
		{"zero weight", 0, 0, 0.1 * 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := scalar(tt.weight)
			sgd := optim.NewSGD(optim.SGDConfig{LR: 0.1, Penalty: optim.PenaltyL1})

			require.NoError(t, sgd.Step([]*mat.Dense{w}, []*mat.Dense{scalar(tt.grad)}))
			assert.InDelta(t, tt.want, w.At(0, 0), 1e-15)
		})
	}
}

func TestSGD_L2(t *testing.T) {
	w := mat.NewDense(1, 2, []float64{0.5, -2})
	g := mat.NewDense(1, 2, []float64{0.1, 0.3})
	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.1, Penalty: optim.PenaltyL2})

	require.NoError(t, sgd.Step([]*mat.Dense{w}, []*mat.Dense{g}))

	assert.InDelta(t, 0.5-0.1*(0.01*0.5+0.1), w.At(0, 0), 1e-15)
	assert.InDelta(t, -2-0.1*(0.01*-2+0.3), w.At(0, 1), 1e-15)
}

// TestSGD_L1L2Diverge checks that a small gradient against a positive
// weight is overpowered by the constant L1 pull but not by the
// proportional L2 pull.
func TestSGD_L1L2Diverge(t *testing.T) {
	const (
		weight = 0.5
		grad   = -0.007
	)

	l1w := scalar(weight)
	l2w := scalar(weight)
	l1 := optim.NewSGD(optim.SGDConfig{LR: 1, Penalty: optim.PenaltyL1})
	l2 := optim.NewSGD(optim.SGDConfig{LR: 1, Penalty: optim.PenaltyL2})

	require.NoError(t, l1.Step([]*mat.Dense{l1w}, []*mat.Dense{scalar(grad)}))
	require.NoError(t, l2.Step([]*mat.Dense{l2w}, []*mat.Dense{scalar(grad)}))

	// L1: 0.5 - (0.01 - 0.007) = 0.497
	// L2: 0.5 - (0.005 - 0.007) = 0.502
	assert.InDelta(t, 0.497, l1w.At(0, 0), 1e-12)
	assert.InDelta(t, 0.502, l2w.At(0, 0), 1e-12)
	assert.Less(t, l1w.At(0, 0), weight)
	assert.Greater(t, l2w.At(0, 0), weight)
}

func TestSGD_ShapeMismatch(t *testing.T) {
	sgd := optim.NewSGD(optim.SGDConfig{})

	err := sgd.Step([]*mat.Dense{scalar(1)}, nil)
	assert.ErrorIs(t, err, optim.ErrShapeMismatch)

	err = sgd.Step([]*mat.Dense{scalar(1)}, []*mat.Dense{mat.NewDense(1, 2, nil)})
	assert.ErrorIs(t, err, optim.ErrShapeMismatch)
}

func TestPenalty_String(t *testing.T) {
	assert.Equal(t, "none", optim.PenaltyNone.String())
	assert.Equal(t, "l1", optim.PenaltyL1.String())
	assert.Equal(t, "l2", optim.PenaltyL2.String())
	assert.Equal(t, "Penalty(7)", optim.Penalty(7).String())
}

// TestRprop_Cases walks one weight through every sign case.
func TestRprop_Cases(t *testing.T) {
	tests := []struct {
		name    string
		initial float64
		weights []float64 // after each of the four steps
		steps   []float64
	}{
		{
			// A shrink from 1.2e-6 stops at the 1e-6 floor.
			name:    "default step floor",
			initial: 0,
			weights: []float64{-1e-6, -2.2e-6, -1.2e-6, -0.2e-6},
			steps:   []float64{1e-6, 1.2e-6, 1e-6, 1e-6},
		},
		{
			name:    "above floor",
			initial: 1e-3,
			weights: []float64{-1e-3, -2.2e-3, -1.6e-3, -1.0e-3},
			steps:   []float64{1e-3, 1.2e-3, 0.6e-3, 0.6e-3},
		},
	}

	// Gradients: neutral start, same sign (grow), sign change (shrink and
	// forget), neutral again.
	grads := []float64{1, 1, -1, -1}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := scalar(0)
			rprop := optim.NewRprop(optim.RpropConfig{InitialStep: tt.initial})

			for i, g := range grads {
				require.NoError(t, rprop.Step([]*mat.Dense{w}, []*mat.Dense{scalar(g)}))
				assert.InDelta(t, tt.weights[i], w.At(0, 0), 1e-15, "weight after step %d", i+1)
				assert.InDelta(t, tt.steps[i], rprop.StepSizes(w).At(0, 0), 1e-15, "step after step %d", i+1)
			}
		})
	}
}

func TestRprop_IgnoresMagnitude(t *testing.T) {
	small := scalar(0)
	large := scalar(0)
	rprop := optim.NewRprop(optim.RpropConfig{InitialStep: 0.1})

	require.NoError(t, rprop.Step(
		[]*mat.Dense{small, large},
		[]*mat.Dense{scalar(1e-9), scalar(1e9)},
	))

	assert.Equal(t, small.At(0, 0), large.At(0, 0))
	assert.InDelta(t, -0.1, small.At(0, 0), 1e-15)
}

func TestRprop_ZeroGradientLeavesWeight(t *testing.T) {
	w := scalar(0.25)
	rprop := optim.NewRprop(optim.RpropConfig{InitialStep: 1})

	require.NoError(t, rprop.Step([]*mat.Dense{w}, []*mat.Dense{scalar(0)}))
	assert.Equal(t, 0.25, w.At(0, 0))
}

func TestRprop_StepBounds(t *testing.T) {
	t.Run("grows to max", func(t *testing.T) {
		w := scalar(0)
		rprop := optim.NewRprop(optim.RpropConfig{InitialStep: 40})
		for i := 0; i < 5; i++ {
			require.NoError(t, rprop.Step([]*mat.Dense{w}, []*mat.Dense{scalar(1)}))
		}
		assert.Equal(t, 50.0, rprop.StepSizes(w).At(0, 0))
	})

	t.Run("shrinks to min", func(t *testing.T) {
		w := scalar(0)
		rprop := optim.NewRprop(optim.RpropConfig{InitialStep: 1e-5})
		for i := 0; i < 40; i++ {
			g := 1.0
			if i%2 == 1 {
				g = -1
			}
			require.NoError(t, rprop.Step([]*mat.Dense{w}, []*mat.Dense{scalar(g)}))
		}
		assert.Equal(t, 1e-6, rprop.StepSizes(w).At(0, 0))
	})

	t.Run("random gradients", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		w := mat.NewDense(3, 3, nil)
		rprop := optim.NewRprop(optim.RpropConfig{InitialStep: 1})

		for iter := 0; iter < 2000; iter++ {
			data := make([]float64, 9)
			for i := range data {
				// Biased so long same-sign runs happen.
				data[i] = rng.NormFloat64() + 0.8
			}
			require.NoError(t, rprop.Step([]*mat.Dense{w}, []*mat.Dense{mat.NewDense(3, 3, data)}))

			steps := rprop.StepSizes(w)
			for _, s := range steps.RawMatrix().Data {
				require.GreaterOrEqual(t, s, 1e-6)
				require.LessOrEqual(t, s, 50.0)
			}
		}
	})
}

func TestRprop_InitialStepClamped(t *testing.T) {
	w := scalar(0)
	rprop := optim.NewRprop(optim.RpropConfig{InitialStep: 1000})

	require.NoError(t, rprop.Step([]*mat.Dense{w}, []*mat.Dense{scalar(1)}))
	assert.Equal(t, 50.0, rprop.StepSizes(w).At(0, 0))
}

func TestRprop_InvertedBoundsSwapped(t *testing.T) {
	w := scalar(0)
	rprop := optim.NewRprop(optim.RpropConfig{StepMin: 10, StepMax: 1})
	step := func(g float64) float64 {
		require.NoError(t, rprop.Step([]*mat.Dense{w}, []*mat.Dense{scalar(g)}))
		return rprop.StepSizes(w).At(0, 0)
	}

	assert.Equal(t, 1.0, step(1))
	for i := 0; i < 20; i++ {
		step(1)
	}
	assert.Equal(t, 10.0, step(1))

	// Shrink on every other step until the floor.
	for i := 0; i < 10; i++ {
		s := step(-1)
		assert.GreaterOrEqual(t, s, 1.0)
		assert.LessOrEqual(t, s, 10.0)
		step(1)
	}
	assert.Equal(t, 1.0, step(-1))
}

func TestRprop_Reset(t *testing.T) {
	w := scalar(0)
	rprop := optim.NewRprop(optim.RpropConfig{})

	assert.Nil(t, rprop.StepSizes(w))
	require.NoError(t, rprop.Step([]*mat.Dense{w}, []*mat.Dense{scalar(1)}))
	assert.NotNil(t, rprop.StepSizes(w))

	rprop.Reset()
	assert.Nil(t, rprop.StepSizes(w))
	assert.Equal(t, 0.0, rprop.GetLR())
}

func TestRprop_ShapeMismatch(t *testing.T) {
	rprop := optim.NewRprop(optim.RpropConfig{})

	err := rprop.Step([]*mat.Dense{scalar(1)}, []*mat.Dense{mat.NewDense(2, 1, nil)})
	assert.ErrorIs(t, err, optim.ErrShapeMismatch)
}
