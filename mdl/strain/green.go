// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strain

import (
	"github.com/cprakashj01/raccoon/ad"
	"github.com/cprakashj01/raccoon/mdl"
	"github.com/cprakashj01/raccoon/prop"
	"github.com/cprakashj01/raccoon/tensor"
)

// Green computes the Green-Lagrange (finite) strain
//
//   F = I + A
//   E = ½ (Fᵀ·F - I)
//
//   where A is the displacement gradient
type Green[T ad.Number[T]] struct {
	Base[T]
	F *prop.Prop[tensor.R2[T]] // deformation gradient
}

// add models to database
func init() {
	mdl.SetAllocator("green_strain", func() mdl.Material { return new(Green[ad.Real]) })
	mdl.SetAllocator(mdl.AdPrefix+"green_strain", func() mdl.Material { return new(Green[ad.Dual]) })
}

// Declare declares the strains and the deformation gradient
func (o *Green[T]) Declare(store *prop.Store) (err error) {
	err = o.Base.Declare(store)
	if err != nil {
		return
	}
	o.F, err = prop.Declare[tensor.R2[T]](store, o.Prefix+"deformation_gradient")
	return
}

// Supplies returns the names of the strains and the deformation gradient
func (o *Green[T]) Supplies() []string {
	return append(o.Base.Supplies(), o.Prefix+"deformation_gradient")
}

// InitQp zeroes the strains and sets F = I
func (o *Green[T]) InitQp(qp int) {
	o.Base.InitQp(qp)
	o.F.Set(qp, tensor.Identity[T]())
}

// ComputeQp computes F, E and the mechanical strain
func (o *Green[T]) ComputeQp(qp *mdl.Qp) (err error) {
	F := o.GradDisp(qp.Index).AddIa(1)
	o.F.Set(qp.Index, F)
	E := F.Transpose().Mul(F).AddIa(-1).Scale(0.5)
	o.Finish(qp.Index, E)
	return
}
