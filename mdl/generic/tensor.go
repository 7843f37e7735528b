// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package generic implements models prescribing properties with functions of (t, x)
package generic

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cprakashj01/raccoon/ad"
	"github.com/cprakashj01/raccoon/inp"
	"github.com/cprakashj01/raccoon/mdl"
	"github.com/cprakashj01/raccoon/prop"
	"github.com/cprakashj01/raccoon/tensor"
)

// Tensor computes a rank-two property from ndim*ndim functions; e.g. a global strain
type Tensor[T ad.Number[T]] struct {
	Name   string         // name of material block
	Ndim   int            // space dimension
	Prop   string         // name of property (with prefix)
	Fcns   []inp.Function // [ndim*ndim] components; row-major
	Symmet bool           // all pairs of off-diagonal functions are the same; only the upper triangle is evaluated

	// properties
	val *prop.Prop[tensor.R2[T]]
}

// add models to database
func init() {
	mdl.SetAllocator("function_tensor", func() mdl.Material { return new(Tensor[ad.Real]) })
	mdl.SetAllocator(mdl.AdPrefix+"function_tensor", func() mdl.Material { return new(Tensor[ad.Dual]) })
}

// Init initialises model
func (o *Tensor[T]) Init(ndim int, mat *inp.MatData, funcs mdl.FuncDb) (err error) {
	o.Name = mat.Name
	o.Ndim = ndim
	if mat.Property == "" {
		return chk.Err("function_tensor: %s: name of property must be given in \"property\"", o.Name)
	}
	o.Prop = mat.Prefix() + mat.Property
	nf := ndim * ndim
	if len(mat.Values) != nf {
		return chk.Err("function_tensor: %s: %d functions must be provided.  You supplied %d.", o.Name, nf, len(mat.Values))
	}
	o.Fcns, err = mdl.GetFuncs(funcs, mat.Values)
	if err != nil {
		return chk.Err("function_tensor: %s:\n%v", o.Name, err)
	}
	o.Symmet = true
	for i := 0; i < ndim; i++ {
		for j := i + 1; j < ndim; j++ {
			if mat.Values[i*ndim+j] != mat.Values[j*ndim+i] {
				o.Symmet = false
			}
		}
	}
	return
}

// Declare declares the property
func (o *Tensor[T]) Declare(store *prop.Store) (err error) {
	o.val, err = prop.Declare[tensor.R2[T]](store, o.Prop)
	return
}

// Resolve does nothing
func (o *Tensor[T]) Resolve(store *prop.Store) (err error) { return }

// Supplies returns the name of the property
func (o *Tensor[T]) Supplies() []string { return []string{o.Prop} }

// Needs returns nil
func (o *Tensor[T]) Needs() []string { return nil }

// InitQp zeroes the property
func (o *Tensor[T]) InitQp(qp int) {
	o.val.Set(qp, tensor.Zero[T]())
}

// ComputeQp evaluates all components
func (o *Tensor[T]) ComputeQp(qp *mdl.Qp) (err error) {
	a := tensor.Zero[T]()
	for i := 0; i < o.Ndim; i++ {
		for j := 0; j < o.Ndim; j++ {
			if o.Symmet && j < i {
				a[i][j] = a[j][i]
				continue
			}
			a[i][j] = mdl.Eval[T](o.Fcns[i*o.Ndim+j], qp)
		}
	}
	o.val.Set(qp.Index, a)
	return
}
