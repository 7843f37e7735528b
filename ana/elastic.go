// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// IsoElastic implements closed-form relations of isotropic linear elasticity
//
//   σ = λ tr(ε) I + 2 G ε
//
//   K = λ + 2 G / ndim
type IsoElastic struct {

	// input
	E    float64 // Young's modulus
	ν    float64 // Poisson's coefficient
	Ndim int     // space dimension

	// derived
	λ float64 // Lamé's first parameter
	G float64 // shear modulus
	K float64 // bulk modulus (consistent with ndim)
}

// Init initialises this structure
func (o *IsoElastic) Init(prms dbf.Params) {

	// default values
	o.E = 1000.0
	o.ν = 0.25
	o.Ndim = 3

	// parameters
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.ν = p.V
		case "ndim":
			o.Ndim = int(p.V)
		}
	}

	// derived
	o.λ = o.E * o.ν / ((1.0 + o.ν) * (1.0 - 2.0*o.ν))
	o.G = o.E / (2.0 * (1.0 + o.ν))
	o.K = o.λ + 2.0*o.G/float64(o.Ndim)
}

// Lame returns λ and G
func (o IsoElastic) Lame() (λ, G float64) { return o.λ, o.G }

// Bulk returns K
func (o IsoElastic) Bulk() float64 { return o.K }

// Stress computes σ = λ tr(ε) I + 2 G ε
func (o IsoElastic) Stress(ε [3][3]float64) (σ [3][3]float64) {
	tr := ε[0][0] + ε[1][1] + ε[2][2]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			σ[i][j] = 2.0 * o.G * ε[i][j]
		}
		σ[i][i] += o.λ * tr
	}
	return
}

// HydrostaticEigenstrain returns the diagonal value of the eigenstrain corresponding to T = p I
//
//   ε* = - 3 p / (9 K) / 3 I  =>  tr(ε*) = - p / K
func (o IsoElastic) HydrostaticEigenstrain(p float64) float64 {
	return -p / (3.0 * o.K)
}

// ShearEigenstrain returns the off-diagonal value of the eigenstrain corresponding to T_ij = T_ji = τ
func (o IsoElastic) ShearEigenstrain(τ float64) float64 {
	return -τ / (2.0 * o.G)
}

// CheckStress checks σ = C : (-ε*) against the prescribed eigen-stress
func (o IsoElastic) CheckStress(tst *testing.T, ε, T [3][3]float64, tol float64) {
	var mε [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			mε[i][j] = -ε[i][j]
		}
	}
	σ := o.Stress(mε)
	for i := 0; i < 3; i++ {
		chk.Array(tst, "σ[i] from -ε*", tol, σ[i][:], T[i][:])
	}
}
