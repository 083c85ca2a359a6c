package mlp

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/perceptron/internal/optim"
)

func TestTrain_Converges(t *testing.T) {
	net, err := New(2, 1, 10000, 0.1, WithSeed(1))
	require.NoError(t, err)
	net.FillWeights(0.1)
	require.NoError(t, net.SetInput([]float64{1, 1}))
	require.NoError(t, net.SetExpected([]float64{0.5}))

	result, err := net.Train()
	require.NoError(t, err)

	assert.True(t, result.Trained)
	assert.True(t, net.Trained())
	assert.Less(t, result.MSE, TrainThreshold)
	assert.InDelta(t, 105, result.Epochs, 3)
	assert.Equal(t, result.Epochs, net.Epochs())

	// The final forward pass leaves the trained output in place.
	assert.InDelta(t, 0.5, net.Output()[0], 1e-3)
}

func TestTrain_EpochBudget(t *testing.T) {
	net, err := New(2, 1, 5, 0.1, WithSeed(1))
	require.NoError(t, err)
	net.FillWeights(0.1)
	require.NoError(t, net.SetInput([]float64{1, 1}))
	require.NoError(t, net.SetExpected([]float64{0.5}))

	result, err := net.Train()
	require.NoError(t, err)

	assert.False(t, result.Trained)
	assert.Equal(t, 5, result.Epochs)
	assert.Equal(t, 5, net.EpochBudget())
}

func TestTrain_Diverged(t *testing.T) {
	net := fixedPointNetwork(t)
	net.FillWeights(math.NaN())

	_, err := net.Train()
	assert.ErrorIs(t, err, ErrDiverged)
	assert.True(t, math.IsNaN(net.MSE()))
}

// TestTrainDataset_StopsWhenErrorExceedsThreshold pins the stop condition:
// the loop ends as soon as the epoch-mean error is above 1e-7, so a poor
// network stops after one epoch while a perfect one runs the full budget.
func TestTrainDataset_StopsWhenErrorExceedsThreshold(t *testing.T) {
	inputs := [][]float64{{1, 1}, {1, 0}}

	poor, err := New(2, 1, 100, 0.1, WithSeed(1))
	require.NoError(t, err)
	poor.FillWeights(0.1)
	require.NoError(t, poor.SetExpected([]float64{0.5}))

	result, err := poor.TrainDataset(inputs)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Epochs)
	assert.False(t, result.Trained)
	assert.Greater(t, result.MSE, DatasetStopThreshold)

	perfect, err := New(2, 1, 100, 0.1, WithSeed(1))
	require.NoError(t, err)
	perfect.FillWeights(0)
	require.NoError(t, perfect.SetExpected([]float64{0}))

	result, err = perfect.TrainDataset(inputs)
	require.NoError(t, err)
	assert.Equal(t, 100, result.Epochs)
	assert.Equal(t, 0.0, result.MSE)
}

func TestTrainDataset_Errors(t *testing.T) {
	net := fixedPointNetwork(t)

	_, err := net.TrainDataset(nil)
	assert.ErrorIs(t, err, ErrEmptyDataset)

	_, err = net.TrainDataset([][]float64{{1, 2, 3}})
	assert.ErrorIs(t, err, ErrSizeMismatch)
}

func TestRunRprop(t *testing.T) {
	net := fixedPointNetwork(t)
	require.NoError(t, net.SetExpected([]float64{0.5}))
	hidden := mat.DenseCopyOf(net.HiddenToHidden(0))
	hiddenLast := mat.DenseCopyOf(net.HiddenToHidden(1))

	result, err := net.RunRprop([][]float64{{1, 1}, {1, 0}})
	require.NoError(t, err)

	assert.True(t, result.Trained)
	assert.Less(t, result.MSE, DefaultThreshold)
	assert.Less(t, result.Epochs, net.EpochBudget())

	// Inter-hidden weights are not part of the Rprop update.
	assert.True(t, mat.Equal(hidden, net.HiddenToHidden(0)))
	assert.True(t, mat.Equal(hiddenLast, net.HiddenToHidden(1)))

	outSteps, inSteps := net.RpropStepSizes()
	require.NotNil(t, outSteps)
	require.NotNil(t, inSteps)
	for _, steps := range []*mat.Dense{outSteps, inSteps} {
		for _, s := range steps.RawMatrix().Data {
			assert.GreaterOrEqual(t, s, 1e-6)
			assert.LessOrEqual(t, s, 50.0)
		}
	}
}

func TestRunRprop_CustomConfig(t *testing.T) {
	net := newTestNetwork(t, 2, 1, WithRpropConfig(optim.RpropConfig{InitialStep: 0.5, StepMax: 0.5}))
	net.FillWeights(0.1)
	require.NoError(t, net.SetExpected([]float64{0.5}))

	_, err := net.RunRprop([][]float64{{1, 1}})
	require.NoError(t, err)

	outSteps, _ := net.RpropStepSizes()
	for _, s := range outSteps.RawMatrix().Data {
		assert.LessOrEqual(t, s, 0.5)
	}
}

func TestRunRprop_Errors(t *testing.T) {
	net := fixedPointNetwork(t)

	_, err := net.RunRprop(nil)
	assert.ErrorIs(t, err, ErrEmptyDataset)

	_, err = net.RunRprop([][]float64{{1}})
	assert.ErrorIs(t, err, ErrSizeMismatch)

	out, in := newTestNetwork(t, 1, 1).RpropStepSizes()
	assert.Nil(t, out)
	assert.Nil(t, in)
}

func TestFit_AllPolicies(t *testing.T) {
	samples := []Sample{
		{Input: []float64{1, 1}, Expected: []float64{0.5}},
		{Input: []float64{1, 0}, Expected: []float64{0.45}},
	}

	for _, policy := range []Policy{DeltaRule, Gradient, GradientL1, GradientL2, Rprop} {
		t.Run(policy.String(), func(t *testing.T) {
			net, err := New(2, 1, 3000, 0.1, WithSeed(1))
			require.NoError(t, err)
			net.FillWeights(0.1)

			result, err := net.Fit(samples, policy)
			require.NoError(t, err)

			assert.True(t, result.Trained)
			assert.Less(t, result.MSE, DefaultThreshold)
			assert.Less(t, result.Epochs, 3000)
		})
	}
}

func TestFit_Errors(t *testing.T) {
	net := fixedPointNetwork(t)
	good := []Sample{{Input: []float64{1, 1}, Expected: []float64{0.5}}}

	_, err := net.Fit(nil, Gradient)
	assert.ErrorIs(t, err, ErrEmptyDataset)

	_, err = net.Fit(good, Policy(42))
	assert.ErrorIs(t, err, ErrUnknownPolicy)

	_, err = net.Fit([]Sample{{Input: []float64{1, 1}, Expected: []float64{1, 2}}}, Gradient)
	assert.ErrorIs(t, err, ErrSizeMismatch)

	net.FillWeights(math.Inf(1))
	_, err = net.Fit(good, GradientL2)
	assert.ErrorIs(t, err, ErrDiverged)
}

func TestFit_Threshold(t *testing.T) {
	net, err := New(2, 1, 3000, 0.1, WithSeed(1), WithThreshold(1e-4))
	require.NoError(t, err)
	net.FillWeights(0.1)

	result, err := net.Fit([]Sample{{Input: []float64{1, 1}, Expected: []float64{0.5}}}, Gradient)
	require.NoError(t, err)
	assert.True(t, result.Trained)
	assert.Less(t, result.MSE, 1e-4)
}

func TestEvaluate(t *testing.T) {
	net := fixedPointNetwork(t)
	before := snapshot(net.WeightTensors())

	output, mse, err := net.Evaluate([]float64{1, 1}, []float64{0})
	require.NoError(t, err)

	assert.InDelta(t, 0.10549280585200592, output[0], 1e-12)
	assert.InDelta(t, output[0]*output[0], mse, 1e-15)
	for i, w := range net.WeightTensors() {
		assert.True(t, mat.Equal(before[i], w))
	}

	_, _, err = net.Evaluate([]float64{1}, []float64{0})
	assert.ErrorIs(t, err, ErrSizeMismatch)
	_, _, err = net.Evaluate([]float64{1, 1}, []float64{0, 0})
	assert.ErrorIs(t, err, ErrSizeMismatch)
}

func TestStep(t *testing.T) {
	net := fixedPointNetwork(t)
	require.NoError(t, net.SetExpected([]float64{0.5}))

	mse, err := net.Step(GradientL2)
	require.NoError(t, err)
	d := 0.10549280585200592 - 0.5
	assert.InDelta(t, d*d, mse, 1e-12)

	_, err = net.Step(Policy(-1))
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}

func TestPolicy_StringAndParse(t *testing.T) {
	for _, p := range []Policy{DeltaRule, Gradient, GradientL1, GradientL2, Rprop} {
		parsed, err := ParsePolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}

	parsed, err := ParsePolicy(" RPROP ")
	require.NoError(t, err)
	assert.Equal(t, Rprop, parsed)

	_, err = ParsePolicy("adam")
	assert.ErrorIs(t, err, ErrUnknownPolicy)
	assert.Equal(t, "Policy(9)", Policy(9).String())
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	net, err := New(2, 1, 10000, 0.1, WithSeed(1), WithLogger(logger))
	require.NoError(t, err)
	net.FillWeights(0.1)
	require.NoError(t, net.SetInput([]float64{1, 1}))
	require.NoError(t, net.SetExpected([]float64{0.5}))

	_, err = net.Train()
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "msg=epoch")
	assert.Contains(t, out, "policy=delta")
	assert.Contains(t, out, "training converged")
}
