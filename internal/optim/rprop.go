package optim

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Rprop implements resilient propagation.
//
// Every weight owns an adaptive step size. Only the sign of the product of
// the current and previous gradient matters, never the gradient magnitude:
//
//	g * prev > 0:  step = min(step * etaPlus, stepMax);  w -= sign(g) * step;  prev = g
//	g * prev < 0:  step = max(step * etaMinus, stepMin); w -= sign(g) * step;  prev = 0
//	g * prev == 0: w -= sign(g) * step;                                        prev = g
//
// Resetting prev to zero after a sign change makes the following step
// neutral. Step sizes never leave [stepMin, stepMax].
//
// State is kept per parameter matrix, so one Rprop must always be stepped
// with the same parameters.
//
// Example:
//
//	rprop := optim.NewRprop(optim.RpropConfig{})
//	for _, sample := range samples {
//	    // forward + gradient computation ...
//	    if err := rprop.Step(params, grads); err != nil {
//	        return err
//	    }
//	}
type Rprop struct {
	etaPlus     float64
	etaMinus    float64
	stepMin     float64
	stepMax     float64
	initialStep float64
	steps       map[*mat.Dense]*mat.Dense // Per-weight step sizes
	prev        map[*mat.Dense]*mat.Dense // Previous gradients
}

// RpropConfig holds configuration for the Rprop optimizer.
type RpropConfig struct {
	EtaPlus     float64 // Step growth factor (default: 1.2)
	EtaMinus    float64 // Step shrink factor (default: 0.5)
	StepMin     float64 // Lower step bound (default: 1e-6)
	StepMax     float64 // Upper step bound (default: 50)
	InitialStep float64 // Starting step for every weight (default: StepMin)
}

// DefaultRpropConfig returns the standard Rprop constants.
func DefaultRpropConfig() RpropConfig {
	return RpropConfig{
		EtaPlus:     1.2,
		EtaMinus:    0.5,
		StepMin:     1e-6,
		StepMax:     50,
		InitialStep: 1e-6,
	}
}

// NewRprop creates a new Rprop optimizer.
//
// Zero fields fall back to DefaultRpropConfig. Inverted step bounds are
// swapped, and the initial step is clamped into [StepMin, StepMax].
func NewRprop(config RpropConfig) *Rprop {
	defaults := DefaultRpropConfig()
	if config.EtaPlus == 0 {
		config.EtaPlus = defaults.EtaPlus
	}
	if config.EtaMinus == 0 {
		config.EtaMinus = defaults.EtaMinus
	}
	if config.StepMin == 0 {
		config.StepMin = defaults.StepMin
	}
	if config.StepMax == 0 {
		config.StepMax = defaults.StepMax
	}
	if config.StepMin > config.StepMax {
		config.StepMin, config.StepMax = config.StepMax, config.StepMin
	}
	if config.InitialStep == 0 {
		config.InitialStep = config.StepMin
	}

	return &Rprop{
		etaPlus:     config.EtaPlus,
		etaMinus:    config.EtaMinus,
		stepMin:     config.StepMin,
		stepMax:     config.StepMax,
		initialStep: math.Min(math.Max(config.InitialStep, config.StepMin), config.StepMax),
		steps:       make(map[*mat.Dense]*mat.Dense),
		prev:        make(map[*mat.Dense]*mat.Dense),
	}
}

// Step applies one resilient-propagation update to every parameter.
func (r *Rprop) Step(params, grads []*mat.Dense) error {
	if err := checkPairs(params, grads); err != nil {
		return err
	}

	for i, param := range params {
		steps, prev := r.state(param)
		r.updateParameter(param, grads[i], steps, prev)
	}
	return nil
}

// state returns the step and previous-gradient matrices of param,
// allocating them on first use.
func (r *Rprop) state(param *mat.Dense) (steps, prev *mat.Dense) {
	steps, ok := r.steps[param]
	if !ok {
		rows, cols := param.Dims()
		data := make([]float64, rows*cols)
		for i := range data {
			data[i] = r.initialStep
		}
		steps = mat.NewDense(rows, cols, data)
		prev = mat.NewDense(rows, cols, nil)
		r.steps[param] = steps
		r.prev[param] = prev
	}
	return steps, r.prev[param]
}

func (r *Rprop) updateParameter(param, grad, steps, prev *mat.Dense) {
	rows, cols := param.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			g := grad.At(i, j)
			step := steps.At(i, j)
			next := g

			switch product := g * prev.At(i, j); {
			case product > 0:
				step = math.Min(step*r.etaPlus, r.stepMax)
			case product < 0:
				step = math.Max(step*r.etaMinus, r.stepMin)
				next = 0
			}

			steps.Set(i, j, step)
			prev.Set(i, j, next)
			param.Set(i, j, param.At(i, j)-sign(g)*step)
		}
	}
}

// StepSizes returns a copy of the current step sizes of param, or nil if
// param has never been stepped.
func (r *Rprop) StepSizes(param *mat.Dense) *mat.Dense {
	steps, ok := r.steps[param]
	if !ok {
		return nil
	}
	return mat.DenseCopyOf(steps)
}

// Reset forgets all per-weight state.
func (r *Rprop) Reset() {
	clear(r.steps)
	clear(r.prev)
}

// GetLR returns 0; Rprop has no learning rate.
func (r *Rprop) GetLR() float64 {
	return 0
}
