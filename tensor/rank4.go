// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import "github.com/cprakashj01/raccoon/ad"

// R4 holds a fourth order tensor with components c[i][j][k][l]; e.g. the elasticity tensor
type R4[T ad.Number[T]] [3][3][3][3]T

// Isotropic returns the isotropic elasticity tensor
//
//   C_ijkl = λ δ_ij δ_kl + G (δ_ik δ_jl + δ_il δ_jk)
//
//  Note: C(0,0,1,1) == λ and C(0,1,0,1) == G
func Isotropic[T ad.Number[T]](λ, G T) (c R4[T]) {
	δ := func(i, j int) float64 {
		if i == j {
			return 1
		}
		return 0
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					c[i][j][k][l] = λ.Scale(δ(i, j) * δ(k, l)).Add(G.Scale(δ(i, k)*δ(j, l) + δ(i, l)*δ(j, k)))
				}
			}
		}
	}
	return
}

// At returns c_ijkl
func (c R4[T]) At(i, j, k, l int) T {
	return c[i][j][k][l]
}

// Contract returns the double contraction σ = c : ε  (σ_ij = c_ijkl ε_kl)
func (c R4[T]) Contract(ε R2[T]) (σ R2[T]) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			σ[i][j] = c[i][j][0][0].Mul(ε[0][0])
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					if k == 0 && l == 0 {
						continue
					}
					σ[i][j] = σ[i][j].Add(c[i][j][k][l].Mul(ε[k][l]))
				}
			}
		}
	}
	return
}

// ScaleBy returns s * c
func (c R4[T]) ScaleBy(s T) (d R4[T]) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					d[i][j][k][l] = c[i][j][k][l].Mul(s)
				}
			}
		}
	}
	return
}
