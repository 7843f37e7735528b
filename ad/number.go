// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ad implements the numeric modes used by material models: plain reals and
// forward-mode dual numbers carrying one directional derivative
package ad

// Number defines the arithmetic needed by tensors and material models
//  Note: all operations return new values; the receiver is never modified
type Number[T any] interface {
	Add(b T) T              // a + b
	Sub(b T) T              // a - b
	Mul(b T) T              // a * b
	Div(b T) T              // a / b
	Neg() T                 // -a
	Scale(s float64) T      // s * a
	Const(v float64) T      // constant of the same kind; zero derivative
	Var(v, dv float64) T    // value v seeded with derivative dv
	Value() float64         // real part
	Deriv() float64         // derivative part; zero for plain numbers
	IsDifferentiable() bool // whether Deriv carries information
}

// Real is a plain number
type Real float64

// Add returns a + b
func (a Real) Add(b Real) Real { return a + b }

// Sub returns a - b
func (a Real) Sub(b Real) Real { return a - b }

// Mul returns a * b
func (a Real) Mul(b Real) Real { return a * b }

// Div returns a / b
func (a Real) Div(b Real) Real { return a / b }

// Neg returns -a
func (a Real) Neg() Real { return -a }

// Scale returns s * a
func (a Real) Scale(s float64) Real { return Real(s) * a }

// Const returns v
func (a Real) Const(v float64) Real { return Real(v) }

// Var returns v; the derivative is discarded
func (a Real) Var(v, dv float64) Real { return Real(v) }

// Value returns the number as float64
func (a Real) Value() float64 { return float64(a) }

// Deriv returns zero
func (a Real) Deriv() float64 { return 0 }

// IsDifferentiable returns false
func (a Real) IsDifferentiable() bool { return false }
