package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	// Basic allocation and the raw data alias
	{
		M := NewMatrix(2, 3, []float64{1, 2, 3, 4, 5, 6})
		nr, nc := M.Dims()
		assert.Equal(t, 2, nr)
		assert.Equal(t, 3, nc)
		assert.Equal(t, 5., M.At(1, 1))
		M.DataP[4] = 50.
		assert.Equal(t, 50., M.At(1, 1)) // DataP aliases the matrix storage
		assert.Panics(t, func() { NewMatrix(2, 3, []float64{1, 2}) })
	}
	// Copy is independent, CopyInto reuses the target's storage
	{
		A := NewMatrix(2, 2, []float64{1, 2, 3, 4})
		B := A.Copy()
		B.Set(0, 0, 99)
		assert.Equal(t, 1., A.At(0, 0))
		C := NewMatrix(2, 2)
		cp := C.DataP
		A.CopyInto(C)
		assert.Equal(t, A.DataP, C.DataP)
		assert.Equal(t, 1., cp[0]) // written in place, no reallocation
		assert.Panics(t, func() { A.CopyInto(NewMatrix(2, 3)) })
	}
	// Row/Col extraction and negative indexing from the end
	{
		M := NewMatrix(3, 3, []float64{
			1, 2, 3,
			4, 5, 6,
			7, 8, 9,
		})
		assert.Equal(t, []float64{4, 5, 6}, M.Row(1).DataP)
		assert.Equal(t, []float64{3, 6, 9}, M.Col(-1).DataP)
		assert.Equal(t, []float64{7, 8, 9}, M.Row(-1).DataP)
		assert.Panics(t, func() { M.Row(3) })
	}
	// SetRow/SetCol accept a scalar or a full slice
	{
		M := NewMatrix(3, 3)
		M.SetRow(-1, 2.)
		assert.Equal(t, []float64{2, 2, 2}, M.Row(2).DataP)
		M.SetCol(0, []float64{7, 8, 9})
		assert.Equal(t, []float64{7, 8, 9}, M.Col(0).DataP)
		assert.Equal(t, 2., M.At(2, 1)) // row write outside col 0 survives
	}
	// SetRange with negative bounds covers the interior
	{
		M := NewMatrix(4, 4)
		M.SetRange(1, -1, 1, -1, 5.)
		assert.Equal(t, 5., M.At(1, 1))
		assert.Equal(t, 5., M.At(2, 2))
		assert.Equal(t, 0., M.At(0, 0))
		assert.Equal(t, 0., M.At(3, 3))
		assert.Equal(t, 0., M.At(1, 0))
	}
	// Elementwise operations chain and mutate the receiver
	{
		A := NewMatrix(2, 2, []float64{1, 2, 3, 4})
		B := NewMatrix(2, 2, []float64{1, 1, 1, 1})
		A.Add(B).Scale(2.)
		assert.Equal(t, []float64{4, 6, 8, 10}, A.DataP)
		A.Subtract(B).AddScalar(-3.)
		assert.Equal(t, []float64{0, 2, 4, 6}, A.DataP)
		A.Apply(func(v float64) float64 { return v * v })
		assert.Equal(t, []float64{0, 4, 16, 36}, A.DataP)
		A.Apply2(B, func(a, b float64) float64 { return a + b })
		assert.Equal(t, []float64{1, 5, 17, 37}, A.DataP)
		assert.Equal(t, 1., A.Min())
		assert.Equal(t, 37., A.Max())
	}
	// Read-only protection
	{
		M := NewMatrix(2, 2)
		M.SetReadOnly("M")
		assert.Panics(t, func() { M.Set(0, 0, 1.) })
		assert.Panics(t, func() { M.Scale(2.) })
		M.SetWritable()
		assert.NotPanics(t, func() { M.Set(0, 0, 1.) })
	}
}

func TestVector(t *testing.T) {
	{
		v := NewVectorLinspace(0, 2, 41)
		assert.Equal(t, 41, v.Len())
		assert.Equal(t, 0., v.AtVec(0))
		assert.Equal(t, 2., v.AtVec(40)) // exact endpoint, no rounding drift
		assert.True(t, math.Abs(v.AtVec(1)-0.05) < 1.e-14)
	}
	{
		v := NewVectorConstant(5, 3.5)
		assert.Equal(t, 3.5, v.Min())
		assert.Equal(t, 3.5, v.Max())
		w := v.Copy()
		w.DataP[0] = -1
		assert.Equal(t, 3.5, v.AtVec(0))
		assert.Equal(t, -1., w.Min())
	}
	{
		v := NewVector(3, []float64{1, 2, 3})
		v.Apply(func(x float64) float64 { return -x })
		assert.Equal(t, []float64{-1, -2, -3}, v.DataP)
	}
}
