// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/perceptron/tensor"
)

func TestStack(t *testing.T) {
	s := tensor.NewStack(2, 3, 3)
	assert.Equal(t, tensor.Shape{2, 3, 3}, s.Shape())

	s.Set(1, 0, 2, 0.5)
	assert.Equal(t, 0.5, s.Layer(1).At(0, 2))
}

func TestDenseHelpers(t *testing.T) {
	m := mat.NewDense(2, 2, nil)
	tensor.Fill(m, -2)

	assert.Equal(t, 8.0, tensor.SumAbs(m))
	assert.Equal(t, 16.0, tensor.SumSquares(m))
	assert.True(t, tensor.SameDims(m, mat.NewDense(2, 2, nil)))
	assert.False(t, tensor.SameDims(m, mat.NewDense(1, 2, nil)))
	assert.Equal(t, tensor.Shape{2, 2}, tensor.ShapeOf(m))
}
