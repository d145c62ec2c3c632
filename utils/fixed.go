package utils

import "fmt"

// Dim carries a matrix dimension in the type system. Implementations are
// empty structs whose Len method returns a constant, for example:
//
//	type N20 struct{}
//
//	func (N20) Len() int { return 20 }
type Dim interface {
	Len() int
}

type (
	D1 struct{}
	D2 struct{}
	D3 struct{}
	D4 struct{}
)

func (D1) Len() int { return 1 }
func (D2) Len() int { return 2 }
func (D3) Len() int { return 3 }
func (D4) Len() int { return 4 }

// DimLen returns the length carried by the dimension type D.
func DimLen[D Dim]() int {
	var d D
	return d.Len()
}

// Fixed is a Matrix whose shape is part of its type: R rows by C columns.
// Operations between Fixed values only compile when the shapes agree, so the
// runtime shape checks of Matrix can never fire through this API.
// The zero value is the R x C zero matrix.
type Fixed[R, C Dim] struct {
	m Matrix
}

func Zero[R, C Dim]() Fixed[R, C] {
	return Fixed[R, C]{m: NewMatrix(DimLen[R](), DimLen[C]())}
}

// NewFixed builds an R x C matrix from rows, failing if rows is not R x C.
func NewFixed[R, C Dim](rows [][]float64) (F Fixed[R, C], err error) {
	var (
		nr = DimLen[R]()
		m  Matrix
	)
	if len(rows) != nr {
		err = fmt.Errorf("%w: %d rows, expected %d", ErrShapeMismatch, len(rows), nr)
		return
	}
	if nr == 0 {
		return Zero[R, C](), nil
	}
	if m, err = NewMatrixFromRows(rows); err != nil {
		return
	}
	return FromMatrix[R, C](m)
}

// FromMatrix wraps a runtime shaped Matrix, checking it is R x C.
func FromMatrix[R, C Dim](m Matrix) (F Fixed[R, C], err error) {
	var (
		nr, nc = DimLen[R](), DimLen[C]()
	)
	if r, c := m.Dims(); r != nr || c != nc {
		err = fmt.Errorf("%w: have %d x %d, expected %d x %d", ErrShapeMismatch, r, c, nr, nc)
		return
	}
	F = Fixed[R, C]{m: m}
	return
}

// Matrix returns the runtime shaped view of f.
func (f Fixed[R, C]) Matrix() Matrix {
	if r, c := f.m.Dims(); r != DimLen[R]() || c != DimLen[C]() {
		return NewMatrix(DimLen[R](), DimLen[C]())
	}
	return f.m
}

func (f Fixed[R, C]) Dims() (r, c int)    { return DimLen[R](), DimLen[C]() }
func (f Fixed[R, C]) At(i, j int) float64 { return f.Matrix().At(i, j) }
func (f Fixed[R, C]) String() string      { return f.Matrix().String() }

func (f Fixed[R, C]) Transpose() Fixed[C, R] {
	return Fixed[C, R]{m: f.Matrix().Transpose()}
}

func (f Fixed[R, C]) Map(fn func(float64) float64) Fixed[R, C] {
	return Fixed[R, C]{m: f.Matrix().Map(fn)}
}

func (f Fixed[R, C]) Add(A Fixed[R, C]) Fixed[R, C] {
	return Fixed[R, C]{m: f.Matrix().Add(A.Matrix())}
}

func (f Fixed[R, C]) Scale(a float64) Fixed[R, C] {
	return Fixed[R, C]{m: f.Matrix().Scale(a)}
}

func (f Fixed[R, C]) Equal(A Fixed[R, C]) bool {
	return f.Matrix().Equal(A.Matrix())
}

// Mul is the product A*B. It is a function rather than a method because the
// result column dimension N is a new type parameter.
func Mul[R, C, N Dim](A Fixed[R, C], B Fixed[C, N]) Fixed[R, N] {
	return Fixed[R, N]{m: A.Matrix().Mul(B.Matrix())}
}
