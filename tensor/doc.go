// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense storage behind the perceptron's
// weights, gradients and activation caches.
//
// Two-dimensional tensors are plain gonum *mat.Dense values. A Stack is
// a 3-D tensor of equally sized matrices stored in one contiguous arena,
// used for the hidden-to-hidden weights and their gradients.
//
// # Basic Usage
//
//	s := tensor.NewStack(2, 3, 3)
//	s.Set(1, 0, 2, 0.5)
//	layer := s.Layer(1) // *mat.Dense view sharing the arena
//	fmt.Println(layer.At(0, 2)) // 0.5
//
// # Helpers
//
//	tensor.Fill(m, 0.1)
//	l1 := tensor.SumAbs(m)
//	l2 := tensor.SumSquares(m)
package tensor
