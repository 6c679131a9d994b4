package jitterbug

import "gonum.org/v1/gonum/mat"

// scalar returns a 1-vector holding v
func scalar(v float64) *mat.VecDense {
	return mat.NewVecDense(1, []float64{v})
}
