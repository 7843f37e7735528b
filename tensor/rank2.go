// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tensor implements 3×3 second order tensors, fourth order tensors and vectors
// for continuum mechanics, generic over the numeric mode (see package ad)
package tensor

import (
	"github.com/cprakashj01/raccoon/ad"
)

// R2 holds a second order tensor with components a[i][j]
//  Note: in 2D analyses the tensor is still 3×3; out-of-plane components are zero unless set
type R2[T ad.Number[T]] [3][3]T

// Zero returns the zero tensor
func Zero[T ad.Number[T]]() (a R2[T]) {
	var z T
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a[i][j] = z.Const(0)
		}
	}
	return
}

// Identity returns the second order identity tensor I
func Identity[T ad.Number[T]]() (a R2[T]) {
	return FromFloats[T]([3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
}

// FromRows builds a tensor whose rows are the given vectors
//  a[i][j] = rows[i][j]
func FromRows[T ad.Number[T]](r0, r1, r2 V3[T]) (a R2[T]) {
	a[0], a[1], a[2] = r0, r1, r2
	return
}

// FromFloats builds a (constant) tensor from float64 values
func FromFloats[T ad.Number[T]](v [3][3]float64) (a R2[T]) {
	var z T
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a[i][j] = z.Const(v[i][j])
		}
	}
	return
}

// Trace returns a[0][0] + a[1][1] + a[2][2]
func (a R2[T]) Trace() T {
	return a[0][0].Add(a[1][1]).Add(a[2][2])
}

// Deviatoric returns dev(a) = a - tr(a)/3 I
func (a R2[T]) Deviatoric() (b R2[T]) {
	b = a
	p := a.Trace().Scale(1.0 / 3.0)
	for i := 0; i < 3; i++ {
		b[i][i] = b[i][i].Sub(p)
	}
	return
}

// Transpose returns aᵀ
func (a R2[T]) Transpose() (b R2[T]) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			b[i][j] = a[j][i]
		}
	}
	return
}

// Add returns a + b
func (a R2[T]) Add(b R2[T]) (c R2[T]) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = a[i][j].Add(b[i][j])
		}
	}
	return
}

// Sub returns a - b
func (a R2[T]) Sub(b R2[T]) (c R2[T]) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = a[i][j].Sub(b[i][j])
		}
	}
	return
}

// Scale returns s * a
func (a R2[T]) Scale(s float64) (b R2[T]) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			b[i][j] = a[i][j].Scale(s)
		}
	}
	return
}

// ScaleBy returns s * a where s may carry derivatives
func (a R2[T]) ScaleBy(s T) (b R2[T]) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			b[i][j] = a[i][j].Mul(s)
		}
	}
	return
}

// Mul returns the single contraction c = a · b  (c_ij = a_ik b_kj)
func (a R2[T]) Mul(b R2[T]) (c R2[T]) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = a[i][0].Mul(b[0][j])
			for k := 1; k < 3; k++ {
				c[i][j] = c[i][j].Add(a[i][k].Mul(b[k][j]))
			}
		}
	}
	return
}

// AddIa returns a + s I
func (a R2[T]) AddIa(s float64) (b R2[T]) {
	b = a
	for i := 0; i < 3; i++ {
		b[i][i] = b[i][i].Add(b[i][i].Const(s))
	}
	return
}

// Values returns the real parts
func (a R2[T]) Values() (v [3][3]float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v[i][j] = a[i][j].Value()
		}
	}
	return
}

// Derivs returns the derivative parts
func (a R2[T]) Derivs() (v [3][3]float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v[i][j] = a[i][j].Deriv()
		}
	}
	return
}
