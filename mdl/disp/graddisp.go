// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package disp implements providers of the displacement gradient at integration points
package disp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cprakashj01/raccoon/ad"
	"github.com/cprakashj01/raccoon/inp"
	"github.com/cprakashj01/raccoon/mdl"
	"github.com/cprakashj01/raccoon/prop"
	"github.com/cprakashj01/raccoon/tensor"
)

// RowNames returns the names of the rows of the displacement gradient
func RowNames(prefix string) []string {
	return []string{prefix + "grad_disp_x", prefix + "grad_disp_y", prefix + "grad_disp_z"}
}

// FuncGrad prescribes the displacement gradient A_ij = ∂u_i/∂X_j with functions of (t, x)
type FuncGrad[T ad.Number[T]] struct {
	Name   string         // name of material block
	Ndim   int            // space dimension
	Prefix string         // prefix of property names
	Fcns   []inp.Function // [ndim*ndim] components; row-major

	// properties
	rows [3]*prop.Prop[tensor.V3[T]] // rows of A
}

// add models to database
func init() {
	mdl.SetAllocator("function_grad_disp", func() mdl.Material { return new(FuncGrad[ad.Real]) })
	mdl.SetAllocator(mdl.AdPrefix+"function_grad_disp", func() mdl.Material { return new(FuncGrad[ad.Dual]) })
}

// Init initialises model
func (o *FuncGrad[T]) Init(ndim int, mat *inp.MatData, funcs mdl.FuncDb) (err error) {
	o.Name = mat.Name
	o.Ndim = ndim
	o.Prefix = mat.Prefix()
	nf := ndim * ndim
	if len(mat.GradDisp) != nf {
		return chk.Err("grad_disp: %s: %d displacement gradient functions must be provided.  You supplied %d.", o.Name, nf, len(mat.GradDisp))
	}
	o.Fcns, err = mdl.GetFuncs(funcs, mat.GradDisp)
	if err != nil {
		return chk.Err("grad_disp: %s:\n%v", o.Name, err)
	}
	return
}

// Declare declares the rows of the displacement gradient
func (o *FuncGrad[T]) Declare(store *prop.Store) (err error) {
	for i, name := range RowNames(o.Prefix) {
		o.rows[i], err = prop.Declare[tensor.V3[T]](store, name)
		if err != nil {
			return
		}
	}
	return
}

// Resolve does nothing
func (o *FuncGrad[T]) Resolve(store *prop.Store) (err error) { return }

// Supplies returns the names of the rows
func (o *FuncGrad[T]) Supplies() []string { return RowNames(o.Prefix) }

// Needs returns nil
func (o *FuncGrad[T]) Needs() []string { return nil }

// InitQp zeroes all rows
func (o *FuncGrad[T]) InitQp(qp int) {
	for i := 0; i < 3; i++ {
		o.rows[i].Set(qp, tensor.ZeroV3[T]())
	}
}

// ComputeQp evaluates the displacement gradient
func (o *FuncGrad[T]) ComputeQp(qp *mdl.Qp) (err error) {
	for i := 0; i < 3; i++ {
		r := tensor.ZeroV3[T]()
		if i < o.Ndim {
			for j := 0; j < o.Ndim; j++ {
				r[j] = mdl.Eval[T](o.Fcns[i*o.Ndim+j], qp)
			}
		}
		o.rows[i].Set(qp.Index, r)
	}
	return
}
