// Package tensor provides the shape-tagged dense storage used by the
// perceptron engine.
//
// Every 2-D tensor is a gonum *mat.Dense. A Stack holds a fixed number of
// equally sized matrices in one flat arena so that a 3-D weight tensor
// (one width x width matrix per inter-layer connection) is allocated once,
// indexed with explicit strides and never aliased by another tensor.
package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Stack is a 3-D tensor of shape [depth, rows, cols] stored row-major in a
// single slice. Layer(i) returns a *mat.Dense view that shares the arena,
// so writes through the view are visible through At and RawData.
type Stack struct {
	shape   Shape
	strides []int
	data    []float64
	layers  []*mat.Dense
}

// NewStack allocates a zero-filled stack of depth matrices, each rows x cols.
//
// Panics if any dimension is not positive; sizes are derived from the
// network's input/output counts, which are validated before allocation.
func NewStack(depth, rows, cols int) *Stack {
	shape := Shape{depth, rows, cols}
	if err := shape.Validate(); err != nil {
		panic(fmt.Sprintf("tensor.NewStack: %v", err))
	}

	s := &Stack{
		shape:   shape,
		strides: shape.ComputeStrides(),
		data:    make([]float64, shape.NumElements()),
		layers:  make([]*mat.Dense, depth),
	}
	size := rows * cols
	for i := range s.layers {
		s.layers[i] = mat.NewDense(rows, cols, s.data[i*size:(i+1)*size:(i+1)*size])
	}
	return s
}

// Shape returns the [depth, rows, cols] shape of the stack.
func (s *Stack) Shape() Shape {
	return Shape{s.shape[0], s.shape[1], s.shape[2]}
}

// Depth returns the number of matrices in the stack.
func (s *Stack) Depth() int {
	return s.shape[0]
}

// Layer returns the i-th matrix as a view into the stack's arena.
func (s *Stack) Layer(i int) *mat.Dense {
	return s.layers[i]
}

// Layers returns every matrix view in depth order.
func (s *Stack) Layers() []*mat.Dense {
	out := make([]*mat.Dense, len(s.layers))
	copy(out, s.layers)
	return out
}

// At returns the element at [i, j, k].
func (s *Stack) At(i, j, k int) float64 {
	return s.data[s.offset(i, j, k)]
}

// Set stores v at [i, j, k].
func (s *Stack) Set(i, j, k int, v float64) {
	s.data[s.offset(i, j, k)] = v
}

// RawData exposes the backing arena in row-major order.
func (s *Stack) RawData() []float64 {
	return s.data
}

// Zero resets every element to 0.
func (s *Stack) Zero() {
	clear(s.data)
}

// Fill sets every element to v.
func (s *Stack) Fill(v float64) {
	for i := range s.data {
		s.data[i] = v
	}
}

func (s *Stack) offset(i, j, k int) int {
	if i < 0 || i >= s.shape[0] || j < 0 || j >= s.shape[1] || k < 0 || k >= s.shape[2] {
		panic(fmt.Sprintf("tensor.Stack: index [%d %d %d] out of bounds for shape %v", i, j, k, s.shape))
	}
	return i*s.strides[0] + j*s.strides[1] + k*s.strides[2]
}
