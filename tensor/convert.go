// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"
)

// Mat returns a newly allocated [3][3] matrix with the given values
func Mat(v [3][3]float64) (m [][]float64) {
	m = utl.Alloc(3, 3)
	for i := 0; i < 3; i++ {
		copy(m[i], v[i][:])
	}
	return
}

// Flat returns the values in row-major order
func Flat(v [3][3]float64) []float64 {
	return []float64{
		v[0][0], v[0][1], v[0][2],
		v[1][0], v[1][1], v[1][2],
		v[2][0], v[2][1], v[2][2],
	}
}

// IsSym checks whether v is symmetric within tolerance tol
func IsSym(v [3][3]float64, tol float64) bool {
	return math.Abs(v[0][1]-v[1][0]) <= tol && math.Abs(v[0][2]-v[2][0]) <= tol && math.Abs(v[1][2]-v[2][1]) <= tol
}

// Mandel returns the Mandel representation of a symmetric tensor
//  m = [a00, a11, a22, √2 a01, √2 a12, √2 a02]
func Mandel(v [3][3]float64) (m []float64, err error) {
	if !IsSym(v, 1e-12) {
		return nil, chk.Err("cannot compute Mandel representation of non-symmetric tensor:\n%v", v)
	}
	m = []float64{v[0][0], v[1][1], v[2][2], math.Sqrt2 * v[0][1], math.Sqrt2 * v[1][2], math.Sqrt2 * v[0][2]}
	return
}

// Principal returns the eigenvalues of a symmetric tensor in ascending order
func Principal(v [3][3]float64) (λ []float64, err error) {
	if !IsSym(v, 1e-12) {
		return nil, chk.Err("cannot compute principal values of non-symmetric tensor:\n%v", v)
	}
	a := mat.NewSymDense(3, []float64{
		v[0][0], v[0][1], v[0][2],
		v[0][1], v[1][1], v[1][2],
		v[0][2], v[1][2], v[2][2],
	})
	var eig mat.EigenSym
	if ok := eig.Factorize(a, false); !ok {
		return nil, chk.Err("eigen-decomposition of symmetric tensor failed:\n%v", v)
	}
	λ = eig.Values(nil)
	return
}

// Determinant returns det(v) computed by LU factorisation
func Determinant(v [3][3]float64) float64 {
	return mat.Det(mat.NewDense(3, 3, Flat(v)))
}
