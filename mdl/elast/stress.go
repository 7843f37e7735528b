// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elast

import (
	"github.com/cprakashj01/raccoon/ad"
	"github.com/cprakashj01/raccoon/inp"
	"github.com/cprakashj01/raccoon/mdl"
	"github.com/cprakashj01/raccoon/prop"
	"github.com/cprakashj01/raccoon/tensor"
)

// Stress computes σ = C : ε_mech
type Stress[T ad.Number[T]] struct {
	Prefix string // prefix of property names

	// properties
	σ    *prop.Prop[tensor.R2[T]]  // stress
	C    prop.Reader[tensor.R4[T]] // elasticity tensor
	εmec prop.Reader[tensor.R2[T]] // mechanical strain
}

// add models to database
func init() {
	mdl.SetAllocator("linear_elastic_stress", func() mdl.Material { return new(Stress[ad.Real]) })
	mdl.SetAllocator(mdl.AdPrefix+"linear_elastic_stress", func() mdl.Material { return new(Stress[ad.Dual]) })
}

// Init initialises model
func (o *Stress[T]) Init(ndim int, mat *inp.MatData, funcs mdl.FuncDb) (err error) {
	o.Prefix = mat.Prefix()
	return
}

// Declare declares the stress
func (o *Stress[T]) Declare(store *prop.Store) (err error) {
	o.σ, err = prop.Declare[tensor.R2[T]](store, o.Prefix+"stress")
	return
}

// Resolve gets the elasticity tensor and the mechanical strain
func (o *Stress[T]) Resolve(store *prop.Store) (err error) {
	o.C, err = prop.Get[tensor.R4[T]](store, o.Prefix+"elasticity_tensor")
	if err != nil {
		return
	}
	o.εmec, err = prop.Get[tensor.R2[T]](store, o.Prefix+"mechanical_strain")
	return
}

// Supplies returns the name of the stress
func (o *Stress[T]) Supplies() []string { return []string{o.Prefix + "stress"} }

// Needs returns the names of the elasticity tensor and the mechanical strain
func (o *Stress[T]) Needs() []string {
	return []string{o.Prefix + "elasticity_tensor", o.Prefix + "mechanical_strain"}
}

// InitQp zeroes the stress
func (o *Stress[T]) InitQp(qp int) {
	o.σ.Set(qp, tensor.Zero[T]())
}

// ComputeQp computes the stress
func (o *Stress[T]) ComputeQp(qp *mdl.Qp) (err error) {
	o.σ.Set(qp.Index, o.C.At(qp.Index).Contract(o.εmec.At(qp.Index)))
	return
}
