package utils

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense row-major matrix of float64 with a shape fixed at
// construction. All methods leave the receiver untouched and return freshly
// allocated results, so a result never shares storage with an operand.
// Zero row or zero column shapes are valid and hold no data.
type Matrix struct {
	nr, nc int
	data   []float64
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	if nr < 0 || nc < 0 {
		panic(fmt.Errorf("%w: NewMatrix nr,nc = %v,%v", ErrBadShape, nr, nc))
	}
	R = Matrix{nr: nr, nc: nc, data: make([]float64, nr*nc)}
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			panic(fmt.Errorf("%w: NewMatrix nr,nc = %v,%v, len(data[0]) = %v",
				ErrShapeMismatch, nr, nc, len(dataO[0])))
		}
		copy(R.data, dataO[0])
	}
	return
}

// NewMatrixFromRows builds a matrix from a slice of equal length rows.
func NewMatrixFromRows(rows [][]float64) (R Matrix, err error) {
	var (
		nr = len(rows)
		nc int
	)
	if nr != 0 {
		nc = len(rows[0])
	}
	R = NewMatrix(nr, nc)
	for i, row := range rows {
		if len(row) != nc {
			err = fmt.Errorf("%w: row %d has %d columns, expected %d",
				ErrShapeMismatch, i, len(row), nc)
			return Matrix{}, err
		}
		copy(R.data[i*nc:], row)
	}
	return
}

// Dims, At and T satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)    { return m.nr, m.nc }
func (m Matrix) At(i, j int) float64 { return m.data[m.index(i, j)] }
func (m Matrix) T() mat.Matrix       { return m.Transpose() }

func (m Matrix) IsEmpty() bool { return m.nr == 0 || m.nc == 0 }

// Data returns a copy of the row-major storage.
func (m Matrix) Data() (d []float64) {
	d = make([]float64, len(m.data))
	copy(d, m.data)
	return
}

// Row returns a copy of row i.
func (m Matrix) Row(i int) (r []float64) {
	if i < 0 || i >= m.nr {
		panic(fmt.Errorf("row index %d out of range [0,%d)", i, m.nr))
	}
	r = make([]float64, m.nc)
	copy(r, m.rowView(i))
	return
}

func (m Matrix) Rows() (rows [][]float64) {
	rows = make([][]float64, m.nr)
	for i := range rows {
		rows[i] = m.Row(i)
	}
	return
}

func (m Matrix) Transpose() (R Matrix) {
	R = NewMatrix(m.nc, m.nr)
	for i := 0; i < m.nr; i++ {
		for j := 0; j < m.nc; j++ {
			R.data[j*m.nr+i] = m.data[i*m.nc+j]
		}
	}
	return
}

func (m Matrix) Map(f func(float64) float64) (R Matrix) {
	R = NewMatrix(m.nr, m.nc)
	for i, val := range m.data {
		R.data[i] = f(val)
	}
	return
}

func (m Matrix) Add(A Matrix) (R Matrix) {
	m.checkSameShape("Add", A)
	R = NewMatrix(m.nr, m.nc)
	floats.AddTo(R.data, m.data, A.data)
	return
}

// Scale is the scalar product a*m, identical to m.Map(func(x) { return a*x }).
func (m Matrix) Scale(a float64) (R Matrix) {
	R = NewMatrix(m.nr, m.nc)
	floats.ScaleTo(R.data, a, m.data)
	return
}

// Mul computes the product m*A. A is transposed once so that every entry of
// the result is the dot product of two contiguous rows.
func (m Matrix) Mul(A Matrix) (R Matrix) {
	if m.nc != A.nr {
		panic(fmt.Errorf("%w: Mul (%d x %d) * (%d x %d)",
			ErrShapeMismatch, m.nr, m.nc, A.nr, A.nc))
	}
	var (
		AT = A.Transpose()
	)
	R = NewMatrix(m.nr, A.nc)
	for i := 0; i < m.nr; i++ {
		row := m.rowView(i)
		for j := 0; j < A.nc; j++ {
			R.data[i*A.nc+j] = floats.Dot(row, AT.rowView(j))
		}
	}
	return
}

// Equal reports exact element-wise equality of two same shaped matrices.
func (m Matrix) Equal(A Matrix) bool {
	if m.nr != A.nr || m.nc != A.nc {
		return false
	}
	return floats.Equal(m.data, A.data)
}

// EqualApprox reports element-wise equality within an absolute tolerance.
func (m Matrix) EqualApprox(A Matrix, tol float64) bool {
	if m.nr != A.nr || m.nc != A.nc {
		return false
	}
	return floats.EqualApprox(m.data, A.data, tol)
}

func (m Matrix) Min() (min float64) {
	if len(m.data) == 0 {
		panic("min of an empty matrix")
	}
	return floats.Min(m.data)
}

func (m Matrix) Max() (max float64) {
	if len(m.data) == 0 {
		panic("max of an empty matrix")
	}
	return floats.Max(m.data)
}

// Dense returns a *mat.Dense copy for use with gonum routines. gonum does not
// allow zero length dimensions, so an empty matrix yields nil.
func (m Matrix) Dense() *mat.Dense {
	if m.IsEmpty() {
		return nil
	}
	return mat.NewDense(m.nr, m.nc, m.Data())
}

func (m Matrix) String() string {
	if m.IsEmpty() {
		return fmt.Sprintf("[%d x %d]", m.nr, m.nc)
	}
	return fmt.Sprintf("%v", mat.Formatted(m, mat.Squeeze()))
}

func (m Matrix) rowView(i int) []float64 {
	return m.data[i*m.nc : (i+1)*m.nc]
}

func (m Matrix) index(i, j int) int {
	if i < 0 || i >= m.nr || j < 0 || j >= m.nc {
		panic(fmt.Errorf("index (%d,%d) out of range for %d x %d matrix", i, j, m.nr, m.nc))
	}
	return i*m.nc + j
}

func (m Matrix) checkSameShape(op string, A Matrix) {
	if m.nr != A.nr || m.nc != A.nc {
		panic(fmt.Errorf("%w: %s (%d x %d) and (%d x %d)",
			ErrShapeMismatch, op, m.nr, m.nc, A.nr, A.nc))
	}
}
