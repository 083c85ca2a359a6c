package activation

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// MSE returns mean((predicted_i - target_i)²).
//
// Returns ErrSizeMismatch when the lengths differ and ErrEmptyInput for
// empty vectors.
func MSE(predicted, target []float64) (float64, error) {
	if len(predicted) != len(target) {
		return 0, errors.Wrapf(ErrSizeMismatch, "predicted has %d values, target has %d", len(predicted), len(target))
	}
	if len(predicted) == 0 {
		return 0, ErrEmptyInput
	}

	diff := make([]float64, len(predicted))
	floats.SubTo(diff, predicted, target)
	return floats.Dot(diff, diff) / float64(len(predicted)), nil
}

// RMSE returns sqrt(MSE(predicted, target)).
func RMSE(predicted, target []float64) (float64, error) {
	mse, err := MSE(predicted, target)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}
