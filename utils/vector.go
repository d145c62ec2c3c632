package utils

import "fmt"

// Linspace returns a 1 x n row of n evenly spaced values from start to end
// inclusive: element i is start + i*(end-start)/(n-1).
func Linspace(start, end float64, n int) (R Matrix, err error) {
	if n < 2 {
		err = fmt.Errorf("%w: n = %d", ErrDegenerateLinspace, n)
		return
	}
	var (
		step = (end - start) / float64(n-1)
	)
	R = NewMatrix(1, n)
	for i := range R.data {
		R.data[i] = start + step*float64(i)
	}
	return
}

// LinspaceFixed is Linspace with the point count carried by the type N.
func LinspaceFixed[N Dim](start, end float64) (F Fixed[D1, N], err error) {
	var (
		m Matrix
	)
	if m, err = Linspace(start, end, DimLen[N]()); err != nil {
		return
	}
	return FromMatrix[D1, N](m)
}

// NewRowVector wraps v as a 1 x len(v) matrix.
func NewRowVector(v []float64) Matrix {
	return NewMatrix(1, len(v), v)
}

// NewColVector wraps v as a len(v) x 1 matrix.
func NewColVector(v []float64) Matrix {
	return NewMatrix(len(v), 1, v)
}
