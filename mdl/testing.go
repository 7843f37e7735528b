// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cprakashj01/raccoon/inp"
	"github.com/cprakashj01/raccoon/prop"
)

// Poly implements f(t) = A + B t + C t² independent of x
type Poly struct {
	A, B, C float64
}

// F returns f(t)
func (o Poly) F(t float64, x []float64) float64 { return o.A + o.B*t + o.C*t*t }

// G returns ∂f/∂t
func (o Poly) G(t float64, x []float64) float64 { return o.B + 2*o.C*t }

// FuncMap implements a database of functions; "zero" and "none" are always available
type FuncMap map[string]inp.Function

// Func returns function by name
func (o FuncMap) Func(name string) (fcn inp.Function, err error) {
	if name == "zero" || name == "none" {
		return Poly{}, nil
	}
	fcn, ok := o[name]
	if !ok {
		return nil, chk.Err("cannot find function named %q\n", name)
	}
	return
}

// Chain holds models set up in sequence, with each model depending on previous ones only
type Chain struct {
	Store  *prop.Store
	Models []Material
}

// NewChain allocates, initialises, declares and resolves models in the given order
func NewChain(ndim, nqp int, funcs FuncDb, mats ...*inp.MatData) (o *Chain, err error) {
	o = &Chain{Store: prop.NewStore(nqp)}
	for _, mat := range mats {
		m, err := New(mat.Type)
		if err != nil {
			return nil, err
		}
		err = m.Init(ndim, mat, funcs)
		if err != nil {
			return nil, err
		}
		o.Models = append(o.Models, m)
	}
	for _, m := range o.Models {
		err = m.Declare(o.Store)
		if err != nil {
			return nil, err
		}
	}
	for _, m := range o.Models {
		err = m.Resolve(o.Store)
		if err != nil {
			return nil, err
		}
	}
	for qp := 0; qp < nqp; qp++ {
		for _, m := range o.Models {
			m.InitQp(qp)
		}
	}
	return
}

// Compute computes all models at qp
func (o *Chain) Compute(qp *Qp) (err error) {
	for _, m := range o.Models {
		err = m.ComputeQp(qp)
		if err != nil {
			return
		}
	}
	return
}
