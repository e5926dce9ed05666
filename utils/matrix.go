package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Matrix struct {
	M        *mat.Dense
	DataP    []float64 // Raw row-major backing slice, aliases M
	readOnly bool
	name     string
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v\n",
				nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{
		m,
		m.RawMatrix().Data,
		false,
		"unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }
func (m Matrix) Data() []float64           { return m.DataP }

func (m *Matrix) SetReadOnly(name ...string) Matrix {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return *m
}

func (m *Matrix) SetWritable() Matrix {
	m.readOnly = false
	return *m
}

func (m Matrix) IsEmpty() bool { return m.M == nil }

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nr, nc)
	copy(R.DataP, m.DataP)
	return
}

// CopyInto overwrites R with the receiver's values, without allocating.
// Shapes must match.
func (m Matrix) CopyInto(R Matrix) Matrix {
	var (
		nr, nc   = m.Dims()
		nrR, ncR = R.Dims()
	)
	if nr != nrR || nc != ncR {
		err := fmt.Errorf("dimension mismatch in CopyInto: [%d,%d] into [%d,%d]", nr, nc, nrR, ncR)
		panic(err)
	}
	R.checkWritable()
	copy(R.DataP, m.DataP)
	return R
}

func (m Matrix) Set(i, j int, val float64) Matrix { // Changes receiver
	m.checkWritable()
	m.M.Set(i, j, val)
	return m
}

func (m Matrix) SetRange(i1, i2, j1, j2 int, val float64) Matrix { // Changes receiver
	var (
		nr, nc = m.Dims()
		data   = m.DataP
	)
	m.checkWritable()
	i1, i2, j1, j2 = limRange(i1, i2, j1, j2, nr, nc)
	for i := i1; i < i2; i++ {
		for j := j1; j < j2; j++ {
			ind := i*nc + j
			data[ind] = val
		}
	}
	return m
}

func (m Matrix) SetRow(i int, valI interface{}) Matrix { // Changes receiver
	var (
		nr, nc = m.Dims()
	)
	m.checkWritable()
	i = lim(i, nr)
	switch val := valI.(type) {
	case float64:
		m.SetRange(i, i+1, 0, nc, val)
	case []float64:
		m.M.SetRow(i, val)
	}
	return m
}

func (m Matrix) SetCol(j int, valI interface{}) Matrix { // Changes receiver
	var (
		nr, nc = m.Dims()
	)
	m.checkWritable()
	j = lim(j, nc)
	switch val := valI.(type) {
	case float64:
		m.SetRange(0, nr, j, j+1, val)
	case []float64:
		m.M.SetCol(j, val)
	}
	return m
}

func (m Matrix) Add(A Matrix) Matrix { // Changes receiver
	var (
		dataM = m.DataP
		dataA = A.DataP
	)
	m.checkWritable()
	for i, val := range dataA {
		dataM[i] += val
	}
	return m
}

func (m Matrix) Subtract(a Matrix) Matrix { // Changes receiver
	var (
		data  = m.DataP
		dataA = a.DataP
	)
	m.checkWritable()
	for i := range data {
		data[i] -= dataA[i]
	}
	return m
}

func (m Matrix) Scale(a float64) Matrix { // Changes receiver
	var (
		data = m.DataP
	)
	m.checkWritable()
	for i := range data {
		data[i] *= a
	}
	return m
}

func (m Matrix) AddScalar(a float64) Matrix { // Changes receiver
	var (
		data = m.DataP
	)
	m.checkWritable()
	for i := range data {
		data[i] += a
	}
	return m
}

func (m Matrix) Apply(f func(float64) float64) Matrix { // Changes receiver
	var (
		data = m.DataP
	)
	m.checkWritable()
	for i, val := range data {
		data[i] = f(val)
	}
	return m
}

func (m Matrix) Apply2(A Matrix, f func(float64, float64) float64) Matrix { // Changes receiver
	var (
		dataM = m.DataP
		dataA = A.DataP
	)
	m.checkWritable()
	for i, val := range dataM {
		dataM[i] = f(val, dataA[i])
	}
	return m
}

func (m Matrix) Col(j int) Vector {
	var (
		data   = m.DataP
		nr, nc = m.Dims()
		vData  = make([]float64, nr)
	)
	j = lim(j, nc)
	for i := range vData {
		vData[i] = data[i*nc+j]
	}
	return NewVector(nr, vData)
}

func (m Matrix) Row(i int) Vector {
	var (
		data   = m.DataP
		nr, nc = m.Dims()
		vData  = make([]float64, nc)
	)
	i = lim(i, nr)
	for j := range vData {
		vData[j] = data[j+i*nc]
	}
	return NewVector(nc, vData)
}

func (m Matrix) Min() (min float64) {
	var (
		data = m.DataP
	)
	min = data[0]
	for _, val := range data {
		if val < min {
			min = val
		}
	}
	return
}

func (m Matrix) Max() (max float64) {
	var (
		data = m.DataP
	)
	max = data[0]
	for _, val := range data {
		if val > max {
			max = val
		}
	}
	return
}

func (m Matrix) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}

func lim(i, imax int) int {
	if i < 0 {
		i += imax // Support indexing from the end, e.g. -1 is the last position
	}
	if i < 0 || i > imax-1 {
		err := fmt.Errorf("index out of bounds: index = %d, max_bounds = %d", i, imax-1)
		panic(err)
	}
	return i
}

func limRange(i1, i2, j1, j2, nr, nc int) (ii1, ii2, jj1, jj2 int) {
	ii1, jj1 = lim(i1, nr), lim(j1, nc)
	ii2, jj2 = i2, j2
	if ii2 < 0 {
		ii2 += nr + 1
	}
	if jj2 < 0 {
		jj2 += nc + 1
	}
	if ii2 < ii1 || ii2 > nr || jj2 < jj1 || jj2 > nc {
		err := fmt.Errorf("range out of bounds: [%d:%d,%d:%d] in [%d,%d]", i1, i2, j1, j2, nr, nc)
		panic(err)
	}
	return
}
