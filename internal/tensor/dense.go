package tensor

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Fill sets every element of m to v.
func Fill(m *mat.Dense, v float64) {
	r, _ := m.Dims()
	for i := 0; i < r; i++ {
		row := m.RawRowView(i)
		for j := range row {
			row[j] = v
		}
	}
}

// SumAbs returns the sum of absolute values of every element of m.
func SumAbs(m *mat.Dense) float64 {
	var sum float64
	r, _ := m.Dims()
	for i := 0; i < r; i++ {
		sum += floats.Norm(m.RawRowView(i), 1)
	}
	return sum
}

// SumSquares returns the sum of squared elements of m.
func SumSquares(m *mat.Dense) float64 {
	var sum float64
	r, _ := m.Dims()
	for i := 0; i < r; i++ {
		row := m.RawRowView(i)
		sum += floats.Dot(row, row)
	}
	return sum
}

// SameDims reports whether a and b have identical dimensions.
func SameDims(a, b mat.Matrix) bool {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	return ar == br && ac == bc
}

// ShapeOf returns the [rows, cols] shape of m.
func ShapeOf(m mat.Matrix) Shape {
	r, c := m.Dims()
	return Shape{r, c}
}
