// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/perceptron/internal/tensor"
)

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// Stack is a 3-D tensor of shape [depth, rows, cols].
type Stack = tensor.Stack

// ErrInvalidShape is returned for shapes with non-positive dimensions.
var ErrInvalidShape = tensor.ErrInvalidShape

// NewStack allocates a zero-filled stack of depth rows x cols matrices.
func NewStack(depth, rows, cols int) *Stack {
	return tensor.NewStack(depth, rows, cols)
}

// Fill sets every element of m to v.
func Fill(m *mat.Dense, v float64) {
	tensor.Fill(m, v)
}

// SumAbs returns Σ|m_ij|.
func SumAbs(m *mat.Dense) float64 {
	return tensor.SumAbs(m)
}

// SumSquares returns Σm_ij².
func SumSquares(m *mat.Dense) float64 {
	return tensor.SumSquares(m)
}

// SameDims reports whether a and b have identical dimensions.
func SameDims(a, b mat.Matrix) bool {
	return tensor.SameDims(a, b)
}

// ShapeOf returns the [rows, cols] shape of m.
func ShapeOf(m mat.Matrix) Shape {
	return tensor.ShapeOf(m)
}
