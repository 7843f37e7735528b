// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ad

import (
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/num/dual"
)

// Dual is a dual number a + b·ϵ with ϵ² = 0
//  Real -- value
//  Emag -- derivative with respect to the seeded direction
type Dual dual.Number

// NewDual returns a dual number
func NewDual(v, dv float64) Dual { return Dual{Real: v, Emag: dv} }

// Add returns a + b
func (a Dual) Add(b Dual) Dual { return Dual{Real: a.Real + b.Real, Emag: a.Emag + b.Emag} }

// Sub returns a - b
func (a Dual) Sub(b Dual) Dual { return Dual{Real: a.Real - b.Real, Emag: a.Emag - b.Emag} }

// Mul returns a * b
func (a Dual) Mul(b Dual) Dual { return Dual(dual.Mul(dual.Number(a), dual.Number(b))) }

// Div returns a / b
func (a Dual) Div(b Dual) Dual {
	return Dual(dual.Mul(dual.Number(a), dual.Inv(dual.Number(b))))
}

// Neg returns -a
func (a Dual) Neg() Dual { return Dual{Real: -a.Real, Emag: -a.Emag} }

// Scale returns s * a
func (a Dual) Scale(s float64) Dual { return Dual(dual.Scale(s, dual.Number(a))) }

// Const returns v with zero derivative
func (a Dual) Const(v float64) Dual { return Dual{Real: v} }

// Var returns v seeded with derivative dv
func (a Dual) Var(v, dv float64) Dual { return Dual{Real: v, Emag: dv} }

// Value returns the real part
func (a Dual) Value() float64 { return a.Real }

// Deriv returns the derivative part
func (a Dual) Deriv() float64 { return a.Emag }

// IsDifferentiable returns true
func (a Dual) IsDifferentiable() bool { return true }

// String prints the dual number
func (a Dual) String() string {
	return io.Sf("%g%+gϵ", a.Real, a.Emag)
}
