package utils

import (
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V     *mat.VecDense
	DataP []float64
}

func NewVector(n int, dataO ...[]float64) (R Vector) {
	var v *mat.VecDense
	if len(dataO) != 0 {
		v = mat.NewVecDense(n, dataO[0])
	} else {
		v = mat.NewVecDense(n, make([]float64, n))
	}
	R = Vector{
		v,
		v.RawVector().Data,
	}
	return
}

func NewVectorConstant(n int, val float64) (R Vector) {
	var (
		x = make([]float64, n)
	)
	for i := 0; i < n; i++ {
		x[i] = val
	}
	R = NewVector(n, x)
	return
}

// NewVectorLinspace returns n evenly spaced values spanning
// [xmin,xmax], both endpoints included.
func NewVectorLinspace(xmin, xmax float64, n int) (R Vector) {
	var (
		x = make([]float64, n)
	)
	if n == 1 {
		x[0] = xmin
		return NewVector(n, x)
	}
	h := (xmax - xmin) / float64(n-1)
	for i := 0; i < n; i++ {
		x[i] = xmin + float64(i)*h
	}
	x[n-1] = xmax // guard against rounding drift at the endpoint
	R = NewVector(n, x)
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)         { return v.V.Dims() }
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) AtVec(i int) float64      { return v.V.AtVec(i) }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }
func (v Vector) Len() int                 { return v.V.Len() }

func (v Vector) Copy() (R Vector) {
	R = NewVector(v.Len())
	copy(R.DataP, v.DataP)
	return
}

func (v Vector) Apply(f func(float64) float64) Vector {
	var (
		data = v.DataP
	)
	for i, val := range data {
		data[i] = f(val)
	}
	return v
}

func (v Vector) Min() (min float64) {
	var (
		data = v.DataP
	)
	min = data[0]
	for _, val := range data {
		if val < min {
			min = val
		}
	}
	return
}

func (v Vector) Max() (max float64) {
	var (
		data = v.DataP
	)
	max = data[0]
	for _, val := range data {
		if val > max {
			max = val
		}
	}
	return
}
