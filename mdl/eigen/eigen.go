// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package eigen implements eigenstrains computed from prescribed eigen-stresses
package eigen

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cprakashj01/raccoon/ad"
	"github.com/cprakashj01/raccoon/inp"
	"github.com/cprakashj01/raccoon/mdl"
	"github.com/cprakashj01/raccoon/prop"
	"github.com/cprakashj01/raccoon/tensor"
)

// FromStress computes the eigenstrain ε* corresponding to a prescribed eigen-stress T
//
//   ε* = - tr(T) / (9 K) I - dev(T) / (2 G)
//
//   with λ = C_0011, G = C_0101 and K = λ + 2 G / ndim
//
//   Note: C is assumed isotropic; this is not checked
type FromStress[T ad.Number[T]] struct {

	// input
	Name    string         // name of material block
	Ndim    int            // space dimension
	Prefix  string         // prefix of property names
	EigName string         // name of eigenstrain property (with prefix)
	Fcns    []inp.Function // [ndim*ndim] eigen-stress components; row-major

	// properties
	eig *prop.Prop[tensor.R2[T]]  // eigenstrain
	Old prop.Reader[tensor.R2[T]] // eigenstrain at the end of the previous step
	C   prop.Reader[tensor.R4[T]] // elasticity tensor
}

// add models to database
func init() {
	mdl.SetAllocator("eigenstrain_from_eigenstress", func() mdl.Material { return new(FromStress[ad.Real]) })
	mdl.SetAllocator(mdl.AdPrefix+"eigenstrain_from_eigenstress", func() mdl.Material { return new(FromStress[ad.Dual]) })
}

// Init initialises model
func (o *FromStress[T]) Init(ndim int, mat *inp.MatData, funcs mdl.FuncDb) (err error) {
	o.Name = mat.Name
	o.Ndim = ndim
	o.Prefix = mat.Prefix()
	if mat.EigenstrainName == "" {
		return chk.Err("eigenstrain_name: %s: the name of the eigenstrain must be provided", o.Name)
	}
	o.EigName = o.Prefix + mat.EigenstrainName
	nf := ndim * ndim
	if len(mat.EigenStress) != nf {
		return chk.Err("eigen_stress: %s: %d initial stress functions must be provided.  You supplied %d.", o.Name, nf, len(mat.EigenStress))
	}
	o.Fcns, err = mdl.GetFuncs(funcs, mat.EigenStress)
	if err != nil {
		return chk.Err("eigen_stress: %s:\n%v", o.Name, err)
	}
	return
}

// Declare declares the eigenstrain
func (o *FromStress[T]) Declare(store *prop.Store) (err error) {
	o.eig, err = prop.Declare[tensor.R2[T]](store, o.EigName)
	return
}

// Resolve gets the elasticity tensor and tracks the history of the eigenstrain
func (o *FromStress[T]) Resolve(store *prop.Store) (err error) {
	o.C, err = prop.Get[tensor.R4[T]](store, o.Prefix+"elasticity_tensor")
	if err != nil {
		return
	}
	o.Old, err = prop.GetOld[tensor.R2[T]](store, o.EigName)
	return
}

// Supplies returns the name of the eigenstrain
func (o *FromStress[T]) Supplies() []string { return []string{o.EigName} }

// Needs returns the name of the elasticity tensor
func (o *FromStress[T]) Needs() []string { return []string{o.Prefix + "elasticity_tensor"} }

// InitQp zeroes the eigenstrain
func (o *FromStress[T]) InitQp(qp int) {
	o.eig.Set(qp, tensor.Zero[T]())
}

// ComputeQp computes the eigenstrain
func (o *FromStress[T]) ComputeQp(qp *mdl.Qp) (err error) {

	// eigen-stress
	σ := tensor.Zero[T]()
	for i := 0; i < o.Ndim; i++ {
		for j := 0; j < o.Ndim; j++ {
			σ[i][j] = mdl.Eval[T](o.Fcns[i*o.Ndim+j], qp)
		}
	}

	// moduli
	C := o.C.At(qp.Index)
	λ := C.At(0, 0, 1, 1)
	G := C.At(0, 1, 0, 1)
	K := λ.Add(G.Scale(2.0 / float64(o.Ndim)))
	if !invertible(G.Value()) {
		return chk.Err("%s: shear modulus G = %g is invalid at integration point %d", o.Name, G.Value(), qp.Index)
	}
	if !invertible(K.Value()) {
		return chk.Err("%s: bulk modulus K = %g is invalid at integration point %d", o.Name, K.Value(), qp.Index)
	}

	// eigenstrain
	var z T
	p := σ.Trace().Div(K.Scale(9)).Neg()
	ε := σ.Deviatoric().ScaleBy(z.Const(-1).Div(G.Scale(2)))
	o.eig.Set(qp.Index, ε.Add(tensor.Identity[T]().ScaleBy(p)))
	return
}

// invertible tells whether a modulus is finite and non-zero
func invertible(m float64) bool {
	return m != 0 && !math.IsNaN(m) && !math.IsInf(m, 0)
}
