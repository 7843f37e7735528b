// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package strain implements strain calculators from the displacement gradient
//  All calculators produce the total strain and the mechanical strain
//
//   ε_mech = ε_total - Σ ε*_k
//
//  where ε*_k are eigenstrains computed by other models
package strain

import (
	"github.com/cprakashj01/raccoon/ad"
	"github.com/cprakashj01/raccoon/inp"
	"github.com/cprakashj01/raccoon/mdl"
	"github.com/cprakashj01/raccoon/mdl/disp"
	"github.com/cprakashj01/raccoon/prop"
	"github.com/cprakashj01/raccoon/tensor"
)

// Base holds data shared by all strain calculators
type Base[T ad.Number[T]] struct {

	// input
	Name       string   // name of material block
	Ndim       int      // space dimension
	Prefix     string   // prefix of property names
	EigNames   []string // names of eigenstrains (with prefix)
	GlobalName string   // name of global strain (with prefix); may be empty

	// consumed properties
	grad   [3]prop.Reader[tensor.V3[T]] // rows of the displacement gradient
	eigs   []prop.Reader[tensor.R2[T]]  // eigenstrains
	global prop.Reader[tensor.R2[T]]    // global strain; may be nil

	// computed properties
	total *prop.Prop[tensor.R2[T]] // total strain
	mech  *prop.Prop[tensor.R2[T]] // mechanical strain
}

// Init initialises base
func (o *Base[T]) Init(ndim int, mat *inp.MatData, funcs mdl.FuncDb) (err error) {
	o.Name = mat.Name
	o.Ndim = ndim
	o.Prefix = mat.Prefix()
	o.EigNames = mdl.Prefixed(o.Prefix, mat.EigenstrainNames)
	if mat.GlobalStrain != "" {
		o.GlobalName = o.Prefix + mat.GlobalStrain
	}
	return
}

// Declare declares the total and mechanical strains
func (o *Base[T]) Declare(store *prop.Store) (err error) {
	o.total, err = prop.Declare[tensor.R2[T]](store, o.Prefix+"total_strain")
	if err != nil {
		return
	}
	o.mech, err = prop.Declare[tensor.R2[T]](store, o.Prefix+"mechanical_strain")
	return
}

// Resolve gets the displacement gradient, the eigenstrains and the global strain
func (o *Base[T]) Resolve(store *prop.Store) (err error) {
	for i, name := range disp.RowNames(o.Prefix) {
		o.grad[i], err = prop.Get[tensor.V3[T]](store, name)
		if err != nil {
			return
		}
	}
	o.eigs = make([]prop.Reader[tensor.R2[T]], len(o.EigNames))
	for i, name := range o.EigNames {
		o.eigs[i], err = prop.Get[tensor.R2[T]](store, name)
		if err != nil {
			return
		}
	}
	if o.GlobalName != "" {
		o.global, err = prop.Get[tensor.R2[T]](store, o.GlobalName)
	}
	return
}

// Supplies returns the names of the total and mechanical strains
func (o *Base[T]) Supplies() []string {
	return []string{o.Prefix + "total_strain", o.Prefix + "mechanical_strain"}
}

// Needs returns the names of the displacement gradient rows, eigenstrains and global strain
func (o *Base[T]) Needs() (names []string) {
	names = append(disp.RowNames(o.Prefix), o.EigNames...)
	if o.GlobalName != "" {
		names = append(names, o.GlobalName)
	}
	return
}

// InitQp zeroes the strains
func (o *Base[T]) InitQp(qp int) {
	o.total.Set(qp, tensor.Zero[T]())
	o.mech.Set(qp, tensor.Zero[T]())
}

// GradDisp returns the displacement gradient A at qp
func (o *Base[T]) GradDisp(qp int) tensor.R2[T] {
	return tensor.FromRows(o.grad[0].At(qp), o.grad[1].At(qp), o.grad[2].At(qp))
}

// Finish sets the total strain, adding the global strain, and the mechanical strain
func (o *Base[T]) Finish(qp int, ε tensor.R2[T]) {
	if o.global != nil {
		ε = ε.Add(o.global.At(qp))
	}
	o.total.Set(qp, ε)
	for _, eig := range o.eigs {
		ε = ε.Sub(eig.At(qp))
	}
	o.mech.Set(qp, ε)
}
