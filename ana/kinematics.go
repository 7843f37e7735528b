// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cprakashj01/raccoon/tensor"
)

// UniaxialStretch computes the Green strain of a uniaxial stretch along x
//
//   u_x = a X  =>  F = diag(1+a, 1, 1)
//
//   E_xx = a + a²/2
func UniaxialStretch(a float64) (F, E [3][3]float64) {
	F = [3][3]float64{{1 + a, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	E[0][0] = a + a*a/2.0
	return
}

// SimpleShear computes the Green strain of simple shear in the x-y plane
//
//   u_x = γ Y  =>  F = I + γ e_x ⊗ e_y
//
//   E_xy = E_yx = γ/2,  E_yy = γ²/2
func SimpleShear(γ float64) (F, E [3][3]float64) {
	F = [3][3]float64{{1, γ, 0}, {0, 1, 0}, {0, 0, 1}}
	E[0][1] = γ / 2.0
	E[1][0] = γ / 2.0
	E[1][1] = γ * γ / 2.0
	return
}

// CheckTensor compares two tensors
func CheckTensor(tst *testing.T, msg string, tol float64, a, b [3][3]float64) {
	chk.Deep2(tst, msg, tol, tensor.Mat(a), tensor.Mat(b))
}
